// Package render defines the arena-to-text rendering interface (spec
// §1/§4: "treated as an interface only") plus one minimal concrete
// implementation, HumanizeRenderer.
package render

import "qsym/internal/expr"

// Renderer converts an arena node to text. Typesetting-quality LaTeX
// output is out of scope; this interface exists so callers can plug in
// a real renderer without qsym depending on one.
type Renderer interface {
	RenderLaTeX(a *expr.Arena, ref expr.Ref) (string, error)
	RenderUnicode(a *expr.Arena, ref expr.Ref) (string, error)
}
