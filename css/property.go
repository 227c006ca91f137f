package css

import "github.com/stormlicht/style/interning"

// SpecifiedProperty is the tagged union of every value a declaration can
// carry: one variant per longhand, one per shorthand. Go has no sum types,
// so each variant is a distinct generic instantiation of SpecifiedValue
// carrying its own marker method.
type SpecifiedProperty interface {
	isSpecifiedValue()
}

// SpecifiedValue wraps a single longhand's parsed value, plus whether the
// declaration used the `inherit` keyword instead of a concrete value.
type SpecifiedValue[T any] struct {
	Inherit bool
	Value   T
}

func (SpecifiedValue[T]) isSpecifiedValue() {}

func specified[T any](v T) SpecifiedProperty {
	return SpecifiedValue[T]{Value: v}
}

func inherited[T any]() SpecifiedProperty {
	return SpecifiedValue[T]{Inherit: true}
}

// FourSided is the shorthand variant produced by the four-sides expansion
// mechanism (margin, padding, border-color, border-style, border-width).
type FourSided[T any] struct {
	Sides Sides[T]
}

func (FourSided[T]) isSpecifiedValue() {}

// BorderShorthand is the `border` variant: one Border triple applied to
// all four sides.
type BorderShorthand struct {
	Border Border
}

func (BorderShorthand) isSpecifiedValue() {}

// BorderSideShorthand is the `border-<side>` variant: one Border triple
// applied to a single side.
type BorderSideShorthand struct {
	Side   Side
	Border Border
}

func (BorderSideShorthand) isSpecifiedValue() {}

// parseFourSided implements the 1/2/3/4-component CSS expansion rule
// shared by margin, padding, and the border-color/style/width shorthands.
func parseFourSided[T any](cur *valueCursor, parseOne func(*valueCursor) (T, bool)) (Sides[T], bool) {
	var vals []T
	for len(vals) < 4 {
		v, ok := parseOne(cur)
		if !ok {
			break
		}
		vals = append(vals, v)
	}
	switch len(vals) {
	case 1:
		return Sides[T]{Top: vals[0], Right: vals[0], Bottom: vals[0], Left: vals[0]}, true
	case 2:
		return Sides[T]{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}, true
	case 3:
		return Sides[T]{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[1]}, true
	case 4:
		return Sides[T]{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}, true
	default:
		return Sides[T]{}, false
	}
}

// parseBorderTriple parses the color/style/width components of `border` or
// `border-<side>` in any order. Each component is optional; a token that
// cannot extend any still-unset component is left unconsumed, which the
// caller surfaces as trailing tokens (this also rejects duplicates, since a
// second token of an already-set component has nothing left to match).
func parseBorderTriple(cur *valueCursor) Border {
	border := Border{
		Width: Px(3),
		Style: LineStyleNone,
		Color: CurrentColor,
	}

	var gotColor, gotStyle, gotWidth bool
	for !cur.eof() {
		if !gotStyle {
			if v, ok := parseKeyword(cur, lineStyleNames); ok {
				border.Style = v
				gotStyle = true
				continue
			}
		}
		if !gotWidth {
			if v, ok := parseLineWidth(cur); ok {
				border.Width = v.Length
				gotWidth = true
				continue
			}
		}
		if !gotColor {
			if v, ok := parseColorValue(cur); ok {
				border.Color = v
				gotColor = true
				continue
			}
		}
		break
	}
	return border
}

// propertyDescriptor is the single-source-of-truth entry the rest of the
// package is derived from: register adds each one to the dispatch table,
// and Default builds the default ComputedStyle by walking the registry in
// registration order. The inherited flag is recorded on each descriptor.
type propertyDescriptor struct {
	name      string
	inherited bool
	parse     func(cur *valueCursor) (SpecifiedProperty, error)
	apply     func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty)
	initial   func() SpecifiedProperty
}

var registry = map[interning.Symbol]*propertyDescriptor{}
var registryOrder []interning.Symbol

func register(name string, inherited bool,
	parse func(cur *valueCursor) (SpecifiedProperty, error),
	apply func(style *ComputedStyle, ctx *StyleContext, sp SpecifiedProperty),
	initial func() SpecifiedProperty) {

	sym := interning.Intern(name)
	registry[sym] = &propertyDescriptor{
		name: name, inherited: inherited, parse: parse, apply: apply, initial: initial,
	}
	registryOrder = append(registryOrder, sym)
}

// parseSimple adapts a plain `func(*valueCursor) (T, bool)` value grammar
// (with an `inherit` keyword escape hatch) into a descriptor's parse slot.
func parseSimple[T any](propertyName string, parseOne func(*valueCursor) (T, bool)) func(*valueCursor) (SpecifiedProperty, error) {
	return func(cur *valueCursor) (SpecifiedProperty, error) {
		if matchIdent(cur, "inherit") {
			if !cur.eof() {
				return nil, newParseError(propertyName, ErrTrailingTokens, "")
			}
			return inherited[T](), nil
		}
		v, ok := parseOne(cur)
		if !ok {
			if cur.eof() {
				return nil, newParseError(propertyName, ErrUnexpectedEOF, "")
			}
			return nil, newParseError(propertyName, ErrInvalidValue, "")
		}
		if !cur.eof() {
			return nil, newParseError(propertyName, ErrTrailingTokens, "")
		}
		return specified(v), nil
	}
}

// ParseDeclarationValue dispatches name (already ASCII-lowercased and
// interned by the caller) to its registered value grammar and parses cvs,
// the declaration's value component values.
func ParseDeclarationValue(name interning.Symbol, cvs []ComponentValue) (SpecifiedProperty, error) {
	desc, ok := registry[name]
	if !ok {
		return nil, newParseError(name.String(), ErrUnknownProperty, "")
	}
	cur := newValueCursor(cvs)
	return desc.parse(cur)
}
