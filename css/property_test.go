package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stormlicht/style/interning"
)

func parseValue(t *testing.T, property, source string) (SpecifiedProperty, error) {
	t.Helper()
	return ParseDeclarationValue(interning.Intern(property), cvsFromCSS(t, source))
}

func TestParseDeclarationValueUnknownProperty(t *testing.T) {
	_, err := parseValue(t, "not-a-real-property", "red")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrUnknownProperty, pe.Kind)
}

func TestParseDeclarationValueTrailingTokens(t *testing.T) {
	_, err := parseValue(t, "color", "red blue")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrTrailingTokens, pe.Kind)
}

func TestParseDeclarationValueInvalidValue(t *testing.T) {
	_, err := parseValue(t, "color", "not-a-color")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidValue, pe.Kind)
}

func TestParseDeclarationValueInherit(t *testing.T) {
	sp, err := parseValue(t, "color", "inherit")
	require.NoError(t, err)
	sv, ok := sp.(SpecifiedValue[Color])
	require.True(t, ok)
	assert.True(t, sv.Inherit)
}

func TestMarginShorthandExpansion(t *testing.T) {
	tests := []struct {
		input                            string
		top, right, bottom, left float64
	}{
		{"10px", 10, 10, 10, 10},
		{"10px 20px", 10, 20, 10, 20},
		{"10px 20px 30px", 10, 20, 30, 20},
		{"10px 20px 30px 40px", 10, 20, 30, 40},
	}
	for _, tt := range tests {
		sp, err := parseValue(t, "margin", tt.input)
		require.NoErrorf(t, err, "input %q", tt.input)
		fs, ok := sp.(FourSided[AutoOr[PercentageOr[Length]]])
		require.Truef(t, ok, "input %q", tt.input)
		assert.Equalf(t, Px(tt.top), fs.Sides.Top.Value.Value, "input %q top", tt.input)
		assert.Equalf(t, Px(tt.right), fs.Sides.Right.Value.Value, "input %q right", tt.input)
		assert.Equalf(t, Px(tt.bottom), fs.Sides.Bottom.Value.Value, "input %q bottom", tt.input)
		assert.Equalf(t, Px(tt.left), fs.Sides.Left.Value.Value, "input %q left", tt.input)
	}
}

func TestFourSidedShorthandTooManyComponentsIsTrailingTokens(t *testing.T) {
	_, err := parseValue(t, "margin", "1px 2px 3px 4px 5px")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrTrailingTokens, pe.Kind)
}

func TestFourSidedShorthandEmptyValueIsUnexpectedEOF(t *testing.T) {
	_, err := parseValue(t, "margin", "")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrUnexpectedEOF, pe.Kind)
}

func TestBorderShorthandAnyOrder(t *testing.T) {
	sp, err := parseValue(t, "border", "solid red 2px")
	require.NoError(t, err)
	bs, ok := sp.(BorderShorthand)
	require.True(t, ok)
	assert.Equal(t, LineStyleSolid, bs.Border.Style)
	assert.Equal(t, Color{R: 255, G: 0, B: 0, A: 255}, bs.Border.Color)
	assert.Equal(t, Px(2), bs.Border.Width)
}

func TestBorderShorthandDuplicateComponentIsTrailingTokens(t *testing.T) {
	_, err := parseValue(t, "border", "solid solid")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrTrailingTokens, pe.Kind)
}

func TestBorderShorthandEmptyValueIsUnexpectedEOF(t *testing.T) {
	_, err := parseValue(t, "border", "")
	require.Error(t, err)
	pe, ok := err.(*ParseError)
	require.True(t, ok)
	assert.Equal(t, ErrUnexpectedEOF, pe.Kind)
}

func TestBorderShorthandDefaultsWhenComponentOmitted(t *testing.T) {
	sp, err := parseValue(t, "border", "solid")
	require.NoError(t, err)
	bs := sp.(BorderShorthand)
	assert.Equal(t, LineStyleSolid, bs.Border.Style)
	assert.Equal(t, Px(3), bs.Border.Width)
	assert.True(t, bs.Border.Color.IsCurrentColor())
}
