package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cvsFromCSS(t *testing.T, source string) []ComponentValue {
	t.Helper()
	p := NewCSSParser(source)
	var cvs []ComponentValue
	for {
		tok := p.current()
		if tok.Type == TokenEOF {
			break
		}
		cvs = append(cvs, p.consumeComponentValue())
	}
	return cvs
}

func firstNonWhitespace(t *testing.T, cvs []ComponentValue) ComponentValue {
	t.Helper()
	for _, cv := range cvs {
		if pt, ok := cv.(PreservedToken); ok && pt.Token.Type == TokenWhitespace {
			continue
		}
		return cv
	}
	t.Fatal("no non-whitespace component value")
	return nil
}

func TestParseColorNamed(t *testing.T) {
	cvs := cvsFromCSS(t, "red")
	c, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
	require.True(t, ok)
	assert.Equal(t, Color{R: 255, G: 0, B: 0, A: 255}, c)
}

func TestParseColorCurrentColor(t *testing.T) {
	cvs := cvsFromCSS(t, "currentColor")
	c, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
	require.True(t, ok)
	assert.True(t, c.IsCurrentColor())
}

func TestParseColorHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
	}{
		{"#fff", Color{R: 255, G: 255, B: 255, A: 255}},
		{"#f00f", Color{R: 255, G: 0, B: 0, A: 255}},
		{"#336699", Color{R: 0x33, G: 0x66, B: 0x99, A: 255}},
		{"#33669980", Color{R: 0x33, G: 0x66, B: 0x99, A: 0x80}},
	}
	for _, tt := range tests {
		cvs := cvsFromCSS(t, tt.input)
		c, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
		require.Truef(t, ok, "input %q", tt.input)
		assert.Equalf(t, tt.want, c, "input %q", tt.input)
	}
}

func TestParseColorRGBFunction(t *testing.T) {
	cvs := cvsFromCSS(t, "rgb(51, 102, 153)")
	c, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
	require.True(t, ok)
	assert.Equal(t, Color{R: 51, G: 102, B: 153, A: 255}, c)
}

func TestParseColorRGBAClampsOutOfRange(t *testing.T) {
	cvs := cvsFromCSS(t, "rgb(300, -10, 128)")
	c, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
	require.True(t, ok)
	assert.Equal(t, uint8(255), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(128), c.B)
}

func TestParseColorHSLBlackAndWhite(t *testing.T) {
	cvs := cvsFromCSS(t, "hsl(0, 0%, 0%)")
	black, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
	require.True(t, ok)
	assert.Equal(t, Color{R: 0, G: 0, B: 0, A: 255}, black)

	cvs = cvsFromCSS(t, "hsl(0, 0%, 100%)")
	white, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
	require.True(t, ok)
	assert.Equal(t, Color{R: 255, G: 255, B: 255, A: 255}, white)
}

func TestParseColorInvalidIdentIsRejected(t *testing.T) {
	cvs := cvsFromCSS(t, "notacolor")
	_, ok := parseColorFromValue(firstNonWhitespace(t, cvs))
	assert.False(t, ok)
}
