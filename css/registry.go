package css

// This file is the property registry: the single table every dispatch
// table, default-value initializer, and inherited-property classification
// in the package is derived from. Each call to register (or one of its
// four-sided/border helpers below) adds one entry; init() below is the
// only place that fills the table, and Default() walks it.

func init() {
	registerColorProperty("color", true, func() Color { return namedColors["black"] })
	registerColorProperty("background-color", false, func() Color { return Color{} })

	register("background-image", false,
		parseSimple("background-image", parseBackgroundImage),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() BackgroundImage { return style.nonInherited.BackgroundImage })
			style.ownNonInherited().BackgroundImage = v
		},
		func() SpecifiedProperty { return specified(BackgroundImage{None: true}) })

	register("cursor", true,
		parseSimple("cursor", func(cur *valueCursor) (Cursor, bool) { return parseKeyword(cur, cursorNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() Cursor { return style.inherited.Cursor })
			style.ownInherited().Cursor = v
		},
		func() SpecifiedProperty { return specified(CursorAuto) })

	register("font-family", true,
		parseSimple("font-family", parseFontFamily),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() FontFamily { return style.inherited.FontFamily })
			style.ownInherited().FontFamily = v
		},
		func() SpecifiedProperty { return specified(FontFamily{"sans-serif"}) })

	register("font-size", true,
		parseSimple("font-size", parsePercentageOrLength),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() PercentageOr[Length] { return OfValue[Length](style.inherited.FontSize) })
			lowered := lowerPercentageOrLength(v, ctx)
			px := lowered.Value
			if lowered.IsPercentage {
				px = Px(float64(lowered.Percentage) / 100 * ctx.ParentFontSizePX)
			}
			style.ownInherited().FontSize = px
		},
		func() SpecifiedProperty { return specified(OfValue[Length](Px(16))) })

	register("font-style", true,
		parseSimple("font-style", func(cur *valueCursor) (FontStyle, bool) { return parseKeyword(cur, fontStyleNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() FontStyle { return style.inherited.FontStyle })
			style.ownInherited().FontStyle = v
		},
		func() SpecifiedProperty { return specified(FontStyleNormal) })

	register("line-height", true,
		parseSimple("line-height", parseLineHeight),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() LineHeight { return style.inherited.LineHeight })
			style.ownInherited().LineHeight = lowerLineHeight(v, ctx)
		},
		func() SpecifiedProperty { return specified(LineHeight{Normal: true}) })

	register("list-style-type", true,
		parseSimple("list-style-type", func(cur *valueCursor) (ListStyleType, bool) { return parseKeyword(cur, listStyleTypeNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() ListStyleType { return style.inherited.ListStyleType })
			style.ownInherited().ListStyleType = v
		},
		func() SpecifiedProperty { return specified(ListStyleTypeDisc) })

	register("display", false,
		parseSimple("display", func(cur *valueCursor) (Display, bool) { return parseKeyword(cur, displayNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() Display { return style.nonInherited.Display })
			style.ownNonInherited().Display = v
		},
		func() SpecifiedProperty { return specified(DisplayInline) })

	register("position", false,
		parseSimple("position", func(cur *valueCursor) (Position, bool) { return parseKeyword(cur, positionNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() Position { return style.nonInherited.Position })
			style.ownNonInherited().Position = v
		},
		func() SpecifiedProperty { return specified(PositionStatic) })

	register("float", false,
		parseSimple("float", func(cur *valueCursor) (Float, bool) { return parseKeyword(cur, floatNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() Float { return style.nonInherited.Float })
			style.ownNonInherited().Float = v
		},
		func() SpecifiedProperty { return specified(FloatNone) })

	register("clear", false,
		parseSimple("clear", func(cur *valueCursor) (Clear, bool) { return parseKeyword(cur, clearNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() Clear { return style.nonInherited.Clear })
			style.ownNonInherited().Clear = v
		},
		func() SpecifiedProperty { return specified(ClearNone) })

	register("justify-self", false,
		parseSimple("justify-self", func(cur *valueCursor) (JustifySelf, bool) { return parseKeyword(cur, justifySelfNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() JustifySelf { return style.nonInherited.JustifySelf })
			style.ownNonInherited().JustifySelf = v
		},
		func() SpecifiedProperty { return specified(JustifySelfAuto) })

	register("vertical-align", false,
		parseSimple("vertical-align", func(cur *valueCursor) (VerticalAlign, bool) { return parseKeyword(cur, verticalAlignNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() VerticalAlign { return style.nonInherited.VerticalAlign })
			style.ownNonInherited().VerticalAlign = v
		},
		func() SpecifiedProperty { return specified(VerticalAlignBaseline) })

	registerBoxOffset("top", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.Top })
	registerBoxOffset("right", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.Right })
	registerBoxOffset("bottom", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.Bottom })
	registerBoxOffset("left", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.Left })
	registerBoxOffset("width", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.Width })
	registerBoxOffset("height", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.Height })

	registerMarginSide("margin-top", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.MarginTop })
	registerMarginSide("margin-right", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.MarginRight })
	registerMarginSide("margin-bottom", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.MarginBottom })
	registerMarginSide("margin-left", func(d *NonInheritedData) *AutoOr[PercentageOr[Length]] { return &d.MarginLeft })

	registerPaddingSide("padding-top", func(d *NonInheritedData) *PercentageOr[Length] { return &d.PaddingTop })
	registerPaddingSide("padding-right", func(d *NonInheritedData) *PercentageOr[Length] { return &d.PaddingRight })
	registerPaddingSide("padding-bottom", func(d *NonInheritedData) *PercentageOr[Length] { return &d.PaddingBottom })
	registerPaddingSide("padding-left", func(d *NonInheritedData) *PercentageOr[Length] { return &d.PaddingLeft })

	registerBorderColorSide("border-top-color", func(d *NonInheritedData) *Color { return &d.BorderTopColor })
	registerBorderColorSide("border-right-color", func(d *NonInheritedData) *Color { return &d.BorderRightColor })
	registerBorderColorSide("border-bottom-color", func(d *NonInheritedData) *Color { return &d.BorderBottomColor })
	registerBorderColorSide("border-left-color", func(d *NonInheritedData) *Color { return &d.BorderLeftColor })

	registerBorderStyleSide("border-top-style", func(d *NonInheritedData) *LineStyle { return &d.BorderTopStyle })
	registerBorderStyleSide("border-right-style", func(d *NonInheritedData) *LineStyle { return &d.BorderRightStyle })
	registerBorderStyleSide("border-bottom-style", func(d *NonInheritedData) *LineStyle { return &d.BorderBottomStyle })
	registerBorderStyleSide("border-left-style", func(d *NonInheritedData) *LineStyle { return &d.BorderLeftStyle })

	registerBorderWidthSide("border-top-width", func(d *NonInheritedData) *Length { return &d.BorderTopWidth })
	registerBorderWidthSide("border-right-width", func(d *NonInheritedData) *Length { return &d.BorderRightWidth })
	registerBorderWidthSide("border-bottom-width", func(d *NonInheritedData) *Length { return &d.BorderBottomWidth })
	registerBorderWidthSide("border-left-width", func(d *NonInheritedData) *Length { return &d.BorderLeftWidth })

	registerFourSidedShorthand("margin", parseAutoOrPercentageOrLength,
		func(d *NonInheritedData, s Sides[AutoOr[PercentageOr[Length]]]) {
			d.MarginTop, d.MarginRight, d.MarginBottom, d.MarginLeft = s.Top, s.Right, s.Bottom, s.Left
		},
		func(v AutoOr[PercentageOr[Length]], ctx *StyleContext, style *ComputedStyle) AutoOr[PercentageOr[Length]] {
			return lowerAutoOrPercentageOrLength(v, ctx)
		})

	registerFourSidedShorthand("padding", parsePercentageOrLength,
		func(d *NonInheritedData, s Sides[PercentageOr[Length]]) {
			d.PaddingTop, d.PaddingRight, d.PaddingBottom, d.PaddingLeft = s.Top, s.Right, s.Bottom, s.Left
		},
		func(v PercentageOr[Length], ctx *StyleContext, style *ComputedStyle) PercentageOr[Length] {
			return lowerPercentageOrLength(v, ctx)
		})

	registerFourSidedShorthand("border-color", parseColorValue,
		func(d *NonInheritedData, s Sides[Color]) {
			d.BorderTopColor, d.BorderRightColor, d.BorderBottomColor, d.BorderLeftColor = s.Top, s.Right, s.Bottom, s.Left
		},
		func(c Color, ctx *StyleContext, style *ComputedStyle) Color { return c })

	registerFourSidedShorthand("border-style", func(cur *valueCursor) (LineStyle, bool) { return parseKeyword(cur, lineStyleNames) },
		func(d *NonInheritedData, s Sides[LineStyle]) {
			d.BorderTopStyle, d.BorderRightStyle, d.BorderBottomStyle, d.BorderLeftStyle = s.Top, s.Right, s.Bottom, s.Left
		},
		func(ls LineStyle, ctx *StyleContext, style *ComputedStyle) LineStyle { return ls })

	registerFourSidedShorthand("border-width", parseLineWidth,
		func(d *NonInheritedData, s Sides[LineWidth]) {
			d.BorderTopWidth, d.BorderRightWidth, d.BorderBottomWidth, d.BorderLeftWidth =
				s.Top.Length, s.Right.Length, s.Bottom.Length, s.Left.Length
		},
		func(w LineWidth, ctx *StyleContext, style *ComputedStyle) LineWidth {
			return LineWidth{Length: lowerLineWidth(w, ctx)}
		})

	register("border", false,
		func(cur *valueCursor) (SpecifiedProperty, error) {
			if cur.eof() {
				return nil, newParseError("border", ErrUnexpectedEOF, "")
			}
			b := parseBorderTriple(cur)
			if !cur.eof() {
				return nil, newParseError("border", ErrTrailingTokens, "")
			}
			return BorderShorthand{Border: b}, nil
		},
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			b := sp.(BorderShorthand).Border
			applyBorderSide(style, ctx, SideTop, b)
			applyBorderSide(style, ctx, SideRight, b)
			applyBorderSide(style, ctx, SideBottom, b)
			applyBorderSide(style, ctx, SideLeft, b)
		},
		nil)

	registerBorderSide("border-top", SideTop)
	registerBorderSide("border-right", SideRight)
	registerBorderSide("border-bottom", SideBottom)
	registerBorderSide("border-left", SideLeft)
}

func resolveValue[T any](sp SpecifiedProperty, currentParent func() T) T {
	v := sp.(SpecifiedValue[T])
	if v.Inherit {
		return currentParent()
	}
	return v.Value
}

func registerColorProperty(name string, inheritedFlag bool, initialValue func() Color) {
	register(name, inheritedFlag,
		parseSimple(name, parseColorValue),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			var current Color
			if inheritedFlag {
				current = style.inherited.Color
			} else {
				current = style.nonInherited.BackgroundColor
			}
			v := resolveValue(sp, func() Color { return current })
			lowered := lowerColor(v, ctx, style)
			if inheritedFlag {
				style.ownInherited().Color = lowered
			} else {
				style.ownNonInherited().BackgroundColor = lowered
			}
		},
		func() SpecifiedProperty { return specified(initialValue()) })
}

func registerBoxOffset(name string, field func(*NonInheritedData) *AutoOr[PercentageOr[Length]]) {
	register(name, false,
		parseSimple(name, parseAutoOrPercentageOrLength),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() AutoOr[PercentageOr[Length]] { return *field(style.nonInherited) })
			*field(style.ownNonInherited()) = lowerAutoOrPercentageOrLength(v, ctx)
		},
		func() SpecifiedProperty { return specified(Autoed[PercentageOr[Length]]()) })
}

func registerMarginSide(name string, field func(*NonInheritedData) *AutoOr[PercentageOr[Length]]) {
	registerBoxOffset(name, field)
}

func registerPaddingSide(name string, field func(*NonInheritedData) *PercentageOr[Length]) {
	register(name, false,
		parseSimple(name, parsePercentageOrLength),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() PercentageOr[Length] { return *field(style.nonInherited) })
			*field(style.ownNonInherited()) = lowerPercentageOrLength(v, ctx)
		},
		func() SpecifiedProperty { return specified(OfValue(Px(0))) })
}

// registerBorderColorSide stores whatever Color SetProperty resolves to
// (including the unresolved currentcolor sentinel) as-is: border colors
// resolve currentcolor against the element's own color lazily, at read
// time (see resolveOwnColor), not here.
func registerBorderColorSide(name string, field func(*NonInheritedData) *Color) {
	register(name, false,
		parseSimple(name, parseColorValue),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() Color { return *field(style.nonInherited) })
			*field(style.ownNonInherited()) = v
		},
		func() SpecifiedProperty { return specified(CurrentColor) })
}

func registerBorderStyleSide(name string, field func(*NonInheritedData) *LineStyle) {
	register(name, false,
		parseSimple(name, func(cur *valueCursor) (LineStyle, bool) { return parseKeyword(cur, lineStyleNames) }),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() LineStyle { return *field(style.nonInherited) })
			*field(style.ownNonInherited()) = v
		},
		func() SpecifiedProperty { return specified(LineStyleNone) })
}

func registerBorderWidthSide(name string, field func(*NonInheritedData) *Length) {
	register(name, false,
		parseSimple(name, parseLineWidth),
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := resolveValue(sp, func() LineWidth { return LineWidth{Length: *field(style.nonInherited)} })
			*field(style.ownNonInherited()) = lowerLineWidth(v, ctx)
		},
		func() SpecifiedProperty { return specified(LineWidth{Length: Px(3)}) })
}

// registerFourSidedShorthand registers a shorthand that expands 1-4
// components of type T into the four box sides via writeSides, lowering
// each with lowerOne. Shorthands have no storage of their own: initial is
// nil, and the corresponding longhands carry their own initial values.
func registerFourSidedShorthand[T any](name string, parseOne func(*valueCursor) (T, bool),
	writeSides func(*NonInheritedData, Sides[T]), lowerOne func(T, *StyleContext, *ComputedStyle) T) {

	register(name, false,
		func(cur *valueCursor) (SpecifiedProperty, error) {
			if cur.eof() {
				return nil, newParseError(name, ErrUnexpectedEOF, "")
			}
			sides, ok := parseFourSided(cur, parseOne)
			if !ok {
				return nil, newParseError(name, ErrInvalidValue, "")
			}
			if !cur.eof() {
				return nil, newParseError(name, ErrTrailingTokens, "")
			}
			return FourSided[T]{Sides: sides}, nil
		},
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			sides := sp.(FourSided[T]).Sides
			lowered := Sides[T]{
				Top:    lowerOne(sides.Top, ctx, style),
				Right:  lowerOne(sides.Right, ctx, style),
				Bottom: lowerOne(sides.Bottom, ctx, style),
				Left:   lowerOne(sides.Left, ctx, style),
			}
			writeSides(style.ownNonInherited(), lowered)
		},
		nil)
}

// applyBorderSide stores b.Color unresolved; currentcolor is resolved
// against the element's own color lazily by the BorderXColor getters.
func applyBorderSide(style *ComputedStyle, ctx *StyleContext, side Side, b Border) {
	data := style.ownNonInherited()
	width := lowerLength(b.Width, ctx)
	switch side {
	case SideTop:
		data.BorderTopColor, data.BorderTopStyle, data.BorderTopWidth = b.Color, b.Style, width
	case SideRight:
		data.BorderRightColor, data.BorderRightStyle, data.BorderRightWidth = b.Color, b.Style, width
	case SideBottom:
		data.BorderBottomColor, data.BorderBottomStyle, data.BorderBottomWidth = b.Color, b.Style, width
	case SideLeft:
		data.BorderLeftColor, data.BorderLeftStyle, data.BorderLeftWidth = b.Color, b.Style, width
	}
}

func registerBorderSide(name string, side Side) {
	register(name, false,
		func(cur *valueCursor) (SpecifiedProperty, error) {
			if cur.eof() {
				return nil, newParseError(name, ErrUnexpectedEOF, "")
			}
			b := parseBorderTriple(cur)
			if !cur.eof() {
				return nil, newParseError(name, ErrTrailingTokens, "")
			}
			return BorderSideShorthand{Side: side, Border: b}, nil
		},
		func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty) {
			v := sp.(BorderSideShorthand)
			applyBorderSide(style, ctx, v.Side, v.Border)
		},
		nil)
}
