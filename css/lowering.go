package css

// lowerLength resolves a specified Length to an absolute, px-tagged
// Length given the style context: em against the current (or parent)
// font size, rem against the root font size, vw/vh against the viewport.
func lowerLength(l Length, ctx *StyleContext) Length {
	switch l.Unit {
	case UnitPX:
		return l
	case UnitEM:
		return Px(l.Value * ctx.fontSizeBasisPX())
	case UnitREM:
		return Px(l.Value * ctx.RootFontSizePX)
	case UnitVW:
		return Px(l.Value * ctx.Viewport.WidthPX / 100)
	case UnitVH:
		return Px(l.Value * ctx.Viewport.HeightPX / 100)
	case UnitVMin:
		return Px(l.Value * min(ctx.Viewport.WidthPX, ctx.Viewport.HeightPX) / 100)
	case UnitVMax:
		return Px(l.Value * max(ctx.Viewport.WidthPX, ctx.Viewport.HeightPX) / 100)
	case UnitEX:
		// Approximate ex as half the basis font size absent real font metrics.
		return Px(l.Value * ctx.fontSizeBasisPX() * 0.5)
	case UnitCH:
		// Approximate ch as half the basis font size absent real font metrics.
		return Px(l.Value * ctx.fontSizeBasisPX() * 0.5)
	default:
		if factor, ok := absoluteUnitsToPX[l.Unit]; ok {
			return Px(l.Value * factor)
		}
		return l
	}
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// lowerPercentageOrLength lowers the Length arm and leaves the Percentage
// arm untouched: the containing block needed to resolve a percentage is a
// layout concern, out of scope here (Open Question iii).
func lowerPercentageOrLength(v PercentageOr[Length], ctx *StyleContext) PercentageOr[Length] {
	if v.IsPercentage {
		return v
	}
	return OfValue(lowerLength(v.Value, ctx))
}

func lowerAutoOrPercentageOrLength(v AutoOr[PercentageOr[Length]], ctx *StyleContext) AutoOr[PercentageOr[Length]] {
	if v.Auto {
		return v
	}
	return OfAuto(lowerPercentageOrLength(v.Value, ctx))
}

// lowerColor resolves `currentcolor` against the element's own computed
// color; any other Color lowers to itself unchanged.
func lowerColor(c Color, ctx *StyleContext, style *ComputedStyle) Color {
	if c.IsCurrentColor() {
		return ctx.ownColor(style)
	}
	return c
}

func lowerLineWidth(w LineWidth, ctx *StyleContext) Length {
	return lowerLength(w.Length, ctx)
}

func lowerLineHeight(lh LineHeight, ctx *StyleContext) LineHeight {
	if lh.Normal || !lh.IsLen {
		return lh
	}
	return LineHeight{IsLen: true, Length: lowerLength(lh.Length, ctx)}
}
