package theme

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestByName(t *testing.T) {
	assert.Equal(t, "amber", ByName("amber").Name)
	assert.Equal(t, Palettes[0].Name, ByName("no-such-palette").Name)
}

func TestNext_CyclesAndWraps(t *testing.T) {
	seen := map[string]bool{}
	name := Palettes[0].Name
	for range Palettes {
		seen[name] = true
		name = Next(name).Name
	}
	assert.Equal(t, Palettes[0].Name, name, "cycle wraps to the first palette")
	assert.Len(t, seen, len(Palettes), "cycle visits every palette once")
}

func TestNext_UnknownName(t *testing.T) {
	assert.Equal(t, Palettes[0].Name, Next("bogus").Name)
}

func TestDim(t *testing.T) {
	d := Dim("#33ff33")
	assert.True(t, strings.HasPrefix(d, "#"))
	assert.NotEqual(t, "#33ff33", d)

	// Non-hex input passes through.
	assert.Equal(t, "86", Dim("86"))
}

func TestBright(t *testing.T) {
	b := Bright("#1f7a1f")
	assert.True(t, strings.HasPrefix(b, "#"))
	assert.NotEqual(t, "#1f7a1f", b)
}
