package render

import (
	"strings"
	"testing"

	"qsym/internal/expr"
	"qsym/internal/numeric"
)

func TestRenderUnicodeInteger(t *testing.T) {
	a := expr.New()
	ref := a.InternInt(numeric.NewZ(1234567))
	r := NewHumanizeRenderer()

	s, err := r.RenderUnicode(a, ref)
	if err != nil {
		t.Fatal(err)
	}
	if s != "1,234,567" {
		t.Errorf("got %q, want comma-grouped integer", s)
	}
}

func TestRenderUnicodeAdd(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	y := a.InternSymbol("y")
	sum := expr.MakeAdd(a, []expr.Ref{x, y})
	r := NewHumanizeRenderer()

	s, err := r.RenderUnicode(a, sum)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "+") {
		t.Errorf("got %q, want an addition spelled with +", s)
	}
}

func TestRenderLaTeXPow(t *testing.T) {
	a := expr.New()
	x := a.InternSymbol("x")
	two := a.InternInt(numeric.NewZ(2))
	pow := expr.MakePow(a, x, two)
	r := NewHumanizeRenderer()

	s, err := r.RenderLaTeX(a, pow)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "^{") {
		t.Errorf("got %q, want LaTeX exponent braces", s)
	}
}

func TestRenderQPochhammerInfiniteOrder(t *testing.T) {
	a := expr.New()
	q := a.InternSymbol("q")
	inf := a.InternInfinity()
	poch := expr.MakeQPochhammer(a, q, q, inf)
	r := NewHumanizeRenderer()

	s, err := r.RenderUnicode(a, poch)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(s, ")_inf") {
		t.Errorf("got %q, want an infinite Pochhammer suffix", s)
	}
}

func TestRenderQPochhammerFiniteOrder(t *testing.T) {
	a := expr.New()
	q := a.InternSymbol("q")
	three := a.InternInt(numeric.NewZ(3))
	poch := expr.MakeQPochhammer(a, q, q, three)
	r := NewHumanizeRenderer()

	s, err := r.RenderUnicode(a, poch)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(s, ")_3") {
		t.Errorf("got %q, want the finite order 3 rendered, not _inf", s)
	}

	latex, err := r.RenderLaTeX(a, poch)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(latex, ")_{3}") {
		t.Errorf("got %q, want LaTeX braces around the finite order", latex)
	}
}

func TestRenderDedekindEta(t *testing.T) {
	a := expr.New()
	tau := a.InternSymbol("tau")
	eta := expr.MakeDedekindEta(a, tau)
	r := NewHumanizeRenderer()

	s, err := r.RenderUnicode(a, eta)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(s, "η") {
		t.Errorf("got %q, want eta glyph", s)
	}

	latex, err := r.RenderLaTeX(a, eta)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(latex, "\\eta") {
		t.Errorf("got %q, want \\eta macro", latex)
	}
}
