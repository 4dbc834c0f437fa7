// cmd/qsym/main.go
package main

import (
	"fmt"
	"os"
	"strconv"

	"qsym/internal/fps"
	"qsym/internal/identity"
	"qsym/internal/qseries"
	"qsym/internal/session"
)

const version = "0.1.0"

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		return
	}

	switch args[0] {
	case "--version", "-v", "version":
		fmt.Println("qsym", version)
	case "--help", "-h", "help":
		showUsage()
	case "euler":
		if err := eulerCommand(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	case "prove":
		if err := proveCommand(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		showUsage()
		os.Exit(1)
	}
}

func showUsage() {
	fmt.Println(`qsym - symbolic computation core for q-series

Usage:
  qsym euler <truncation>      print the Euler product expansion to q^truncation
  qsym prove <level>           check eta(tau)^level / eta(level*tau)^level is modular on
                                Gamma_0(level) and print its order at every cusp
  qsym version                 print the version
  qsym help                    show this message`)
}

func eulerCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: qsym euler <truncation>")
	}
	trunc, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid truncation %q: %w", args[0], err)
	}

	s := session.NewSession()
	q := s.Arena.Symbols.Intern("q")
	series, err := qseries.Etaq(1, 1, q, trunc)
	if err != nil {
		return err
	}
	printSeries(series)
	return nil
}

func proveCommand(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: qsym prove <level>")
	}
	level, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid level %q: %w", args[0], err)
	}

	eta, err := identity.NewEtaExpression(map[int64]int64{1: level, level: -level}, level)
	if err != nil {
		return err
	}
	result := eta.CheckModularity()
	if !result.Modular {
		fmt.Println("not modular:", result.FailedConditions)
		return nil
	}

	cusps, err := identity.Cuspmake(level)
	if err != nil {
		return err
	}
	for _, c := range cusps {
		order := identity.EtaOrderAtCusp(eta, c)
		fmt.Printf("order at %s: %s\n", c, order.String())
	}
	return nil
}

func printSeries(s fps.Series) {
	for _, k := range s.Keys() {
		fmt.Printf("q^%d: %s\n", k, s.CoeffUnchecked(k).String())
	}
}
