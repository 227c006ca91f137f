package css

import "fmt"

// Color is an RGBA color. CurrentColor is the `currentcolor` keyword and
// carries no RGBA payload of its own: it resolves at compute time against
// the element's own computed `color` (see lowerColor and resolveOwnColor).
var CurrentColor = Color{isCurrent: true}

type Color struct {
	R, G, B, A uint8
	isCurrent  bool
}

// IsCurrentColor reports whether c is the unresolved `currentcolor` keyword.
func (c Color) IsCurrentColor() bool { return c.isCurrent }

func (c Color) String() string {
	if c.isCurrent {
		return "currentcolor"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// Number is a bare, unitless numeric value (line-height multipliers).
type Number float64

// Unit identifies the dimension a Length was specified in.
type Unit int

const (
	UnitPX Unit = iota
	UnitEM
	UnitREM
	UnitVW
	UnitVH
	UnitVMin
	UnitVMax
	UnitPT
	UnitPC
	UnitIN
	UnitCM
	UnitMM
	UnitQ
	UnitEX
	UnitCH
)

var unitNames = map[string]Unit{
	"px": UnitPX, "em": UnitEM, "rem": UnitREM,
	"vw": UnitVW, "vh": UnitVH, "vmin": UnitVMin, "vmax": UnitVMax,
	"pt": UnitPT, "pc": UnitPC, "in": UnitIN,
	"cm": UnitCM, "mm": UnitMM, "q": UnitQ,
	"ex": UnitEX, "ch": UnitCH,
}

// absoluteUnitsToPX holds the fixed CSS conversion factor to pixels for
// units whose length does not depend on the style context (everything
// except em/rem/vw/vh/vmin/vmax/ex/ch).
var absoluteUnitsToPX = map[Unit]float64{
	UnitPX: 1,
	UnitPT: 96.0 / 72.0,
	UnitPC: 16,
	UnitIN: 96,
	UnitCM: 96.0 / 2.54,
	UnitMM: 96.0 / 25.4,
	UnitQ:  96.0 / 101.6,
}

// ParseUnit resolves a CSS unit identifier (case-insensitively handled by
// the caller) into a Unit, reporting whether it was recognized.
func ParseUnit(s string) (Unit, bool) {
	u, ok := unitNames[s]
	return u, ok
}

// Length is a unit-tagged numeric CSS length, specified but not yet
// resolved to device pixels.
type Length struct {
	Value float64
	Unit  Unit
}

// Px constructs a Length already expressed in pixels.
func Px(v float64) Length { return Length{Value: v, Unit: UnitPX} }

// Percentage is a bare CSS percentage, stored as the number written before
// the % sign (50% -> 50).
type Percentage float64

// AutoOr represents a value that is either the `auto` keyword or a T.
type AutoOr[T any] struct {
	Auto  bool
	Value T
}

// Autoed constructs the `auto` arm of AutoOr[T].
func Autoed[T any]() AutoOr[T] {
	return AutoOr[T]{Auto: true}
}

// OfAuto constructs the value arm of AutoOr[T].
func OfAuto[T any](v T) AutoOr[T] {
	return AutoOr[T]{Value: v}
}

// PercentageOr represents a value that is either a Percentage or a T (most
// commonly a Length).
type PercentageOr[T any] struct {
	IsPercentage bool
	Percentage   Percentage
	Value        T
}

// OfPercentage constructs the percentage arm of PercentageOr[T].
func OfPercentage[T any](p Percentage) PercentageOr[T] {
	return PercentageOr[T]{IsPercentage: true, Percentage: p}
}

// OfValue constructs the value arm of PercentageOr[T].
func OfValue[T any](v T) PercentageOr[T] {
	return PercentageOr[T]{Value: v}
}

// Side identifies one of the four box sides, in the CSS shorthand
// expansion order: top, right, bottom, left.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// Sides holds one T per box side.
type Sides[T any] struct {
	Top, Right, Bottom, Left T
}

// Get returns the value for the given side.
func (s Sides[T]) Get(side Side) T {
	switch side {
	case SideTop:
		return s.Top
	case SideRight:
		return s.Right
	case SideBottom:
		return s.Bottom
	default:
		return s.Left
	}
}

// Set assigns the value for the given side, returning the updated Sides.
func (s Sides[T]) Set(side Side, v T) Sides[T] {
	switch side {
	case SideTop:
		s.Top = v
	case SideRight:
		s.Right = v
	case SideBottom:
		s.Bottom = v
	default:
		s.Left = v
	}
	return s
}

// UniformSides constructs a Sides[T] with the same value on all four sides.
func UniformSides[T any](v T) Sides[T] {
	return Sides[T]{Top: v, Right: v, Bottom: v, Left: v}
}

// LineStyle is the `border-style`-family keyword set.
type LineStyle int

const (
	LineStyleNone LineStyle = iota
	LineStyleHidden
	LineStyleDotted
	LineStyleDashed
	LineStyleSolid
	LineStyleDouble
	LineStyleGroove
	LineStyleRidge
	LineStyleInset
	LineStyleOutset
)

var lineStyleNames = map[string]LineStyle{
	"none": LineStyleNone, "hidden": LineStyleHidden,
	"dotted": LineStyleDotted, "dashed": LineStyleDashed,
	"solid": LineStyleSolid, "double": LineStyleDouble,
	"groove": LineStyleGroove, "ridge": LineStyleRidge,
	"inset": LineStyleInset, "outset": LineStyleOutset,
}

// Border bundles the three longhands a single border side expands into.
type Border struct {
	Width Length
	Style LineStyle
	Color Color
}

// Display is the `display` keyword set (box-generation subset relevant to
// style resolution; layout-mode interpretation is out of scope here).
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayInlineBlock
	DisplayFlex
	DisplayGrid
	DisplayNone
)

var displayNames = map[string]Display{
	"block": DisplayBlock, "inline": DisplayInline,
	"inline-block": DisplayInlineBlock, "flex": DisplayFlex,
	"grid": DisplayGrid, "none": DisplayNone,
}

// Position is the `position` keyword set.
type Position int

const (
	PositionStatic Position = iota
	PositionRelative
	PositionAbsolute
	PositionFixed
	PositionSticky
)

var positionNames = map[string]Position{
	"static": PositionStatic, "relative": PositionRelative,
	"absolute": PositionAbsolute, "fixed": PositionFixed,
	"sticky": PositionSticky,
}

// FontStyle is the `font-style` keyword set.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleNames = map[string]FontStyle{
	"normal": FontStyleNormal, "italic": FontStyleItalic, "oblique": FontStyleOblique,
}

// LineHeight is either `normal`, a bare Number multiplier, or a length.
type LineHeight struct {
	Normal bool
	Number Number
	Length Length
	IsLen  bool
}

// Float is the `float` keyword set.
type Float int

const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

var floatNames = map[string]Float{
	"none": FloatNone, "left": FloatLeft, "right": FloatRight,
}

// Clear is the `clear` keyword set.
type Clear int

const (
	ClearNone Clear = iota
	ClearLeft
	ClearRight
	ClearBoth
)

var clearNames = map[string]Clear{
	"none": ClearNone, "left": ClearLeft, "right": ClearRight, "both": ClearBoth,
}

// Cursor is the `cursor` keyword set.
type Cursor int

const (
	CursorAuto Cursor = iota
	CursorDefault
	CursorPointer
	CursorText
	CursorMove
	CursorNotAllowed
	CursorWait
	CursorHelp
	CursorCrosshair
)

var cursorNames = map[string]Cursor{
	"auto": CursorAuto, "default": CursorDefault, "pointer": CursorPointer,
	"text": CursorText, "move": CursorMove, "not-allowed": CursorNotAllowed,
	"wait": CursorWait, "help": CursorHelp, "crosshair": CursorCrosshair,
}

// JustifySelf is the `justify-self` keyword set.
type JustifySelf int

const (
	JustifySelfAuto JustifySelf = iota
	JustifySelfStart
	JustifySelfEnd
	JustifySelfCenter
	JustifySelfStretch
)

var justifySelfNames = map[string]JustifySelf{
	"auto": JustifySelfAuto, "start": JustifySelfStart, "end": JustifySelfEnd,
	"center": JustifySelfCenter, "stretch": JustifySelfStretch,
}

// VerticalAlign is the `vertical-align` keyword set.
type VerticalAlign int

const (
	VerticalAlignBaseline VerticalAlign = iota
	VerticalAlignTop
	VerticalAlignMiddle
	VerticalAlignBottom
	VerticalAlignSub
	VerticalAlignSuper
	VerticalAlignTextTop
	VerticalAlignTextBottom
)

var verticalAlignNames = map[string]VerticalAlign{
	"baseline": VerticalAlignBaseline, "top": VerticalAlignTop,
	"middle": VerticalAlignMiddle, "bottom": VerticalAlignBottom,
	"sub": VerticalAlignSub, "super": VerticalAlignSuper,
	"text-top": VerticalAlignTextTop, "text-bottom": VerticalAlignTextBottom,
}

// ListStyleType is the `list-style-type` keyword set.
type ListStyleType int

const (
	ListStyleTypeDisc ListStyleType = iota
	ListStyleTypeCircle
	ListStyleTypeSquare
	ListStyleTypeDecimal
	ListStyleTypeNone
)

var listStyleTypeNames = map[string]ListStyleType{
	"disc": ListStyleTypeDisc, "circle": ListStyleTypeCircle,
	"square": ListStyleTypeSquare, "decimal": ListStyleTypeDecimal,
	"none": ListStyleTypeNone,
}

// BackgroundImage is either `none` or a `url(...)` reference. Resolving the
// URL to bytes is a networking concern and stays out of scope here.
type BackgroundImage struct {
	None bool
	URL  string
}

// FontFamily is an ordered list of font family names, most-preferred first.
type FontFamily []string

// LineWidth is the `border-<side>-width` value type: either a keyword
// (thin/medium/thick) or an explicit Length.
type LineWidth struct {
	Length Length
}

var lineWidthKeywords = map[string]float64{
	"thin": 1, "medium": 3, "thick": 5,
}
