package css

import "github.com/stormlicht/style/interning"

// InheritedData holds every property whose inherited flag is true.
type InheritedData struct {
	Color         Color
	Cursor        Cursor
	FontFamily    FontFamily
	FontSize      Length
	FontStyle     FontStyle
	LineHeight    LineHeight
	ListStyleType ListStyleType
}

// NonInheritedData holds every property whose inherited flag is false.
type NonInheritedData struct {
	BackgroundColor Color
	BackgroundImage BackgroundImage

	BorderTopColor, BorderRightColor, BorderBottomColor, BorderLeftColor Color
	BorderTopStyle, BorderRightStyle, BorderBottomStyle, BorderLeftStyle LineStyle
	BorderTopWidth, BorderRightWidth, BorderBottomWidth, BorderLeftWidth Length

	Top, Right, Bottom, Left AutoOr[PercentageOr[Length]]
	Width, Height            AutoOr[PercentageOr[Length]]

	MarginTop, MarginRight, MarginBottom, MarginLeft   AutoOr[PercentageOr[Length]]
	PaddingTop, PaddingRight, PaddingBottom, PaddingLeft PercentageOr[Length]

	Display       Display
	Position      Position
	Float         Float
	Clear         Clear
	JustifySelf   JustifySelf
	VerticalAlign VerticalAlign
}

// ComputedStyle is a copy-on-write pair of groups. Cloning shares both
// groups; the first write to a group clones it, tracked per-ComputedStyle
// instance by the *Unique flags so sibling instances sharing the same
// underlying data are unaffected.
type ComputedStyle struct {
	inherited    *InheritedData
	nonInherited *NonInheritedData

	inheritedUnique    bool
	nonInheritedUnique bool
}

// Default returns a ComputedStyle with every longhand set to its
// registry-declared initial value, lowered against DefaultStyleContext.
func Default() ComputedStyle {
	style := ComputedStyle{
		inherited:          &InheritedData{},
		nonInherited:       &NonInheritedData{},
		inheritedUnique:    true,
		nonInheritedUnique: true,
	}
	ctx := DefaultStyleContext()
	ctx.ParentStyle = &style
	for _, sym := range registryOrder {
		desc := registry[sym]
		if desc.initial == nil {
			continue // shorthand: no storage of its own
		}
		desc.apply(&style, ctx, desc.initial())
	}
	return style
}

// InheritFrom returns a child ComputedStyle that shares parent's inherited
// group by reference and starts with a fresh default non-inherited group.
func InheritFrom(parent ComputedStyle) ComputedStyle {
	def := Default()
	return ComputedStyle{
		inherited:          parent.inherited,
		nonInherited:       def.nonInherited,
		inheritedUnique:    false,
		nonInheritedUnique: true,
	}
}

// Clone returns a ComputedStyle sharing both of style's groups; a
// subsequent write on either the receiver or the clone copies only the
// group being written.
func (style *ComputedStyle) Clone() ComputedStyle {
	style.inheritedUnique = false
	style.nonInheritedUnique = false
	return *style
}

func (style *ComputedStyle) ownInherited() *InheritedData {
	if !style.inheritedUnique {
		cp := *style.inherited
		style.inherited = &cp
		style.inheritedUnique = true
	}
	return style.inherited
}

func (style *ComputedStyle) ownNonInherited() *NonInheritedData {
	if !style.nonInheritedUnique {
		cp := *style.nonInherited
		style.nonInherited = &cp
		style.nonInheritedUnique = true
	}
	return style.nonInherited
}

// SetProperty lowers decl's specified value against ctx and writes it into
// the correct longhand slot(s), expanding shorthands as needed.
func (style *ComputedStyle) SetProperty(decl Declaration, ctx *StyleContext) error {
	desc, ok := registry[decl.Property]
	if !ok {
		return newParseError(decl.Property.String(), ErrUnknownProperty, "")
	}
	desc.apply(style, ctx, decl.Value)
	return nil
}

// ApplyDeclarations applies every declaration in rule to style in order,
// except that any font-size declaration is applied first so later em
// lengths on the same element see the element's own font size.
func ApplyDeclarations(style *ComputedStyle, rule *StyleRule, ctx *StyleContext) error {
	fontSizeSym := interning.Intern("font-size")

	var errs []error
	for _, decl := range rule.Declarations {
		if decl.Property == fontSizeSym {
			if err := style.SetProperty(decl, ctx); err != nil {
				errs = append(errs, err)
				continue
			}
			px := style.FontSize()
			ctx.CurrentFontSizePX = &px.Value
		}
	}
	for _, decl := range rule.Declarations {
		if decl.Property == fontSizeSym {
			continue
		}
		if err := style.SetProperty(decl, ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return joinErrors(errs)
}

// Typed getters. Each returns by value since the value types here are
// small; wide or shared data lives behind the group pointers themselves.

func (style ComputedStyle) Color() Color                   { return style.inherited.Color }
func (style ComputedStyle) Cursor() Cursor                  { return style.inherited.Cursor }
func (style ComputedStyle) FontFamilyValue() FontFamily     { return style.inherited.FontFamily }
func (style ComputedStyle) FontSize() Length                { return style.inherited.FontSize }
func (style ComputedStyle) FontStyleValue() FontStyle       { return style.inherited.FontStyle }
func (style ComputedStyle) LineHeightValue() LineHeight     { return style.inherited.LineHeight }
func (style ComputedStyle) ListStyleTypeValue() ListStyleType {
	return style.inherited.ListStyleType
}

func (style ComputedStyle) BackgroundColor() Color { return style.nonInherited.BackgroundColor }
func (style ComputedStyle) BackgroundImageValue() BackgroundImage {
	return style.nonInherited.BackgroundImage
}
// Border colors are stored unresolved (the currentcolor sentinel passes
// through SetProperty untouched) and resolved against the element's own
// color here, at read time, rather than once when the longhand is
// applied. This is what makes InheritFrom correct: a freshly inherited
// style's border-color fields still read as "this element's own color"
// even though the NonInheritedData group backing them was built once by
// Default() against an unrelated bootstrap color.
func (style ComputedStyle) BorderTopColor() Color {
	return resolveOwnColor(style, style.nonInherited.BorderTopColor)
}
func (style ComputedStyle) BorderRightColor() Color {
	return resolveOwnColor(style, style.nonInherited.BorderRightColor)
}
func (style ComputedStyle) BorderBottomColor() Color {
	return resolveOwnColor(style, style.nonInherited.BorderBottomColor)
}
func (style ComputedStyle) BorderLeftColor() Color {
	return resolveOwnColor(style, style.nonInherited.BorderLeftColor)
}

func resolveOwnColor(style ComputedStyle, c Color) Color {
	if c.IsCurrentColor() {
		return style.Color()
	}
	return c
}
func (style ComputedStyle) BorderTopStyle() LineStyle    { return style.nonInherited.BorderTopStyle }
func (style ComputedStyle) BorderRightStyle() LineStyle  { return style.nonInherited.BorderRightStyle }
func (style ComputedStyle) BorderBottomStyle() LineStyle { return style.nonInherited.BorderBottomStyle }
func (style ComputedStyle) BorderLeftStyle() LineStyle   { return style.nonInherited.BorderLeftStyle }
func (style ComputedStyle) BorderTopWidth() Length    { return style.nonInherited.BorderTopWidth }
func (style ComputedStyle) BorderRightWidth() Length  { return style.nonInherited.BorderRightWidth }
func (style ComputedStyle) BorderBottomWidth() Length { return style.nonInherited.BorderBottomWidth }
func (style ComputedStyle) BorderLeftWidth() Length   { return style.nonInherited.BorderLeftWidth }

func (style ComputedStyle) Top() AutoOr[PercentageOr[Length]]    { return style.nonInherited.Top }
func (style ComputedStyle) Right() AutoOr[PercentageOr[Length]]  { return style.nonInherited.Right }
func (style ComputedStyle) Bottom() AutoOr[PercentageOr[Length]] { return style.nonInherited.Bottom }
func (style ComputedStyle) Left() AutoOr[PercentageOr[Length]]   { return style.nonInherited.Left }
func (style ComputedStyle) Width() AutoOr[PercentageOr[Length]]  { return style.nonInherited.Width }
func (style ComputedStyle) Height() AutoOr[PercentageOr[Length]] { return style.nonInherited.Height }

func (style ComputedStyle) MarginTop() AutoOr[PercentageOr[Length]] { return style.nonInherited.MarginTop }
func (style ComputedStyle) MarginRight() AutoOr[PercentageOr[Length]] {
	return style.nonInherited.MarginRight
}
func (style ComputedStyle) MarginBottom() AutoOr[PercentageOr[Length]] {
	return style.nonInherited.MarginBottom
}
func (style ComputedStyle) MarginLeft() AutoOr[PercentageOr[Length]] {
	return style.nonInherited.MarginLeft
}

func (style ComputedStyle) PaddingTop() PercentageOr[Length]    { return style.nonInherited.PaddingTop }
func (style ComputedStyle) PaddingRight() PercentageOr[Length]  { return style.nonInherited.PaddingRight }
func (style ComputedStyle) PaddingBottom() PercentageOr[Length] { return style.nonInherited.PaddingBottom }
func (style ComputedStyle) PaddingLeft() PercentageOr[Length]   { return style.nonInherited.PaddingLeft }

func (style ComputedStyle) DisplayValue() Display           { return style.nonInherited.Display }
func (style ComputedStyle) PositionValue() Position         { return style.nonInherited.Position }
func (style ComputedStyle) FloatValue() Float                { return style.nonInherited.Float }
func (style ComputedStyle) ClearValue() Clear                { return style.nonInherited.Clear }
func (style ComputedStyle) JustifySelfValue() JustifySelf     { return style.nonInherited.JustifySelf }
func (style ComputedStyle) VerticalAlignValue() VerticalAlign { return style.nonInherited.VerticalAlign }
