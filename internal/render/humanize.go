package render

import (
	"strings"

	"qsym/internal/expr"
	"qsym/internal/qsymerr"
)

// HumanizeRenderer is the one concrete Renderer this module ships:
// Integer/Rational atoms are formatted with go-humanize's comma
// grouping, and compound nodes get a minimal recursive Unicode
// spelling. LaTeX output reuses the same spelling with LaTeX operators
// — a deliberately minimal implementation, not a typesetting engine.
type HumanizeRenderer struct{}

// NewHumanizeRenderer returns the default renderer.
func NewHumanizeRenderer() HumanizeRenderer { return HumanizeRenderer{} }

// RenderUnicode spells out ref recursively: Add nodes joined by " + ",
// Mul by "·", Pow as "base^exp", Neg as "-operand".
func (HumanizeRenderer) RenderUnicode(a *expr.Arena, ref expr.Ref) (string, error) {
	return renderNode(a, ref, false)
}

// RenderLaTeX spells out ref recursively using LaTeX operators: Mul
// via "\cdot", Pow via "^{...}", Neg via a unary minus.
func (HumanizeRenderer) RenderLaTeX(a *expr.Arena, ref expr.Ref) (string, error) {
	return renderNode(a, ref, true)
}

func renderNode(a *expr.Arena, ref expr.Ref, latex bool) (string, error) {
	n := a.Get(ref)
	switch n.Kind {
	case expr.KindInteger:
		return n.Int.Humanize(), nil
	case expr.KindRational:
		if latex {
			return "\\frac{" + n.Rat.Numer().Humanize() + "}{" + n.Rat.Denom().Humanize() + "}", nil
		}
		return n.Rat.Humanize(), nil
	case expr.KindSymbol:
		return a.Symbols.Name(n.Sym), nil
	case expr.KindInfinity:
		if latex {
			return "\\infty", nil
		}
		return "∞", nil
	case expr.KindUndefined:
		return "undefined", nil
	case expr.KindAdd:
		return joinChildren(a, n.Children, " + ", latex)
	case expr.KindMul:
		sep := "·"
		if latex {
			sep = " \\cdot "
		}
		return joinChildren(a, n.Children, sep, latex)
	case expr.KindNeg:
		operand, err := renderNode(a, n.Operand, latex)
		if err != nil {
			return "", err
		}
		return "-" + operand, nil
	case expr.KindPow:
		base, err := renderNode(a, n.Base, latex)
		if err != nil {
			return "", err
		}
		exp, err := renderNode(a, n.Exp, latex)
		if err != nil {
			return "", err
		}
		if latex {
			return base + "^{" + exp + "}", nil
		}
		return base + "^" + exp, nil
	case expr.KindQPochhammer:
		base, err := renderNode(a, n.PochBase, latex)
		if err != nil {
			return "", err
		}
		nome, err := renderNode(a, n.PochNome, latex)
		if err != nil {
			return "", err
		}
		order := "inf"
		if a.Get(n.PochOrder).Kind != expr.KindInfinity {
			order, err = renderNode(a, n.PochOrder, latex)
			if err != nil {
				return "", err
			}
		}
		if latex {
			return "(" + base + "; " + nome + ")_{" + order + "}", nil
		}
		return "(" + base + "; " + nome + ")_" + order, nil
	case expr.KindDedekindEta:
		tau, err := renderNode(a, n.Tau, latex)
		if err != nil {
			return "", err
		}
		if latex {
			return "\\eta(" + tau + ")", nil
		}
		return "η(" + tau + ")", nil
	case expr.KindJacobiTheta:
		nome, err := renderNode(a, n.ThetaNome, latex)
		if err != nil {
			return "", err
		}
		if latex {
			return "\\theta_{" + itoa(int(n.ThetaIdx)) + "}(" + nome + ")", nil
		}
		return "θ" + itoa(int(n.ThetaIdx)) + "(" + nome + ")", nil
	case expr.KindBasicHypergeometric:
		upper, err := joinChildren(a, n.Upper, ", ", latex)
		if err != nil {
			return "", err
		}
		lower, err := joinChildren(a, n.Lower, ", ", latex)
		if err != nil {
			return "", err
		}
		return "phi(" + upper + "; " + lower + ")", nil
	default:
		return "", qsymerr.Newf(qsymerr.InvariantViolation, "render.HumanizeRenderer", "unrecognized node kind %d", n.Kind)
	}
}

func joinChildren(a *expr.Arena, children []expr.Ref, sep string, latex bool) (string, error) {
	parts := make([]string, len(children))
	for i, c := range children {
		s, err := renderNode(a, c, latex)
		if err != nil {
			return "", err
		}
		parts[i] = s
	}
	return strings.Join(parts, sep), nil
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
