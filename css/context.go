package css

// Viewport carries the dimensions used to resolve vw/vh lengths.
type Viewport struct {
	WidthPX  float64
	HeightPX float64
}

// StyleContext is the ambient information required to lower a specified
// value into a computed one: viewport size, root and parent font sizes,
// the element's own font size once resolved, and the parent's computed
// style for `inherit` and percentage font-size bases.
//
// A StyleContext is borrowed for the duration of a single SetProperty
// call. Recording the element's own resolved font size between calls (so
// later `em` lengths on the same element see it) is the caller's
// responsibility — see ApplyDeclarations.
type StyleContext struct {
	Viewport          Viewport
	RootFontSizePX    float64
	ParentFontSizePX  float64
	CurrentFontSizePX *float64
	ParentStyle       *ComputedStyle
}

// DefaultStyleContext returns the context a standalone caller (tests, the
// demonstration CLI) uses absent a real document: a 1280x720 viewport and
// a 16px root/parent font size, mirroring common user-agent defaults.
func DefaultStyleContext() *StyleContext {
	return &StyleContext{
		Viewport:         Viewport{WidthPX: 1280, HeightPX: 720},
		RootFontSizePX:   16,
		ParentFontSizePX: 16,
	}
}

// fontSizeBasisPX is the em-relative basis for the property currently
// being lowered: the element's own font size if already resolved this
// pass, otherwise the parent's.
func (ctx *StyleContext) fontSizeBasisPX() float64 {
	if ctx.CurrentFontSizePX != nil {
		return *ctx.CurrentFontSizePX
	}
	return ctx.ParentFontSizePX
}

// ownColor returns the element's currently computed `color`, used to
// resolve `currentcolor` at compute time (Open Question ii: resolved at
// compute time rather than at use time).
func (ctx *StyleContext) ownColor(style *ComputedStyle) Color {
	if style == nil {
		return namedColors["black"]
	}
	return style.Color()
}
