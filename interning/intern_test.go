package interning

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternFoldsCase(t *testing.T) {
	a := Intern("Background-Color")
	b := Intern("background-color")
	c := Intern("BACKGROUND-COLOR")

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, "background-color", a.String())
}

func TestInternDistinctText(t *testing.T) {
	a := Intern("color")
	b := Intern("cursor")
	assert.NotEqual(t, a, b)
}

func TestLookupReportsMiss(t *testing.T) {
	_, ok := Lookup("definitely-not-interned-yet-xyz")
	assert.False(t, ok)

	Intern("definitely-not-interned-yet-xyz")
	sym, ok := Lookup("definitely-not-interned-yet-xyz")
	assert.True(t, ok)
	assert.Equal(t, "definitely-not-interned-yet-xyz", sym.String())
}

func TestInternConcurrentSafe(t *testing.T) {
	var wg sync.WaitGroup
	names := []string{"margin", "padding", "border", "color", "display"}
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Intern(names[i%len(names)])
		}(i)
	}
	wg.Wait()

	for _, n := range names {
		sym, ok := Lookup(n)
		assert.True(t, ok)
		assert.Equal(t, n, sym.String())
	}
}
