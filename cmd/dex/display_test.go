package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayRecord(t *testing.T) {
	var buf bytes.Buffer
	displayRecord(&buf, mustFind(t, "bulbasaur"))

	expected := "\n" +
		"Pokémon:            Bulbasaur (#1)\n" +
		"Types:              grass, poison\n" +
		"Stats:\n" +
		"  HP:                45\n" +
		"  Attack:            49\n" +
		"  Defense:           49\n" +
		"  Special Attack:    65\n" +
		"  Special Defense:   65\n" +
		"  Speed:             45\n" +
		"  Total:            318\n" +
		"\n"
	assert.Equal(t, expected, buf.String())
}

func TestDisplayRecord_SingleType(t *testing.T) {
	var buf bytes.Buffer
	displayRecord(&buf, mustFind(t, "charmander"))

	assert.Contains(t, buf.String(), "Types:              fire\n")
	assert.Contains(t, buf.String(), "  Total:            309\n")
}

func TestDisplayComparison(t *testing.T) {
	// Totals: bulbasaur 318, charmander 309, squirtle 314.
	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{name: "greater", a: "bulbasaur", b: "charmander", expected: "Bulbasaur (#1) > Charmander (#4)\n\n"},
		{name: "lesser", a: "charmander", b: "squirtle", expected: "Charmander (#4) < Squirtle (#7)\n\n"},
		{name: "equal", a: "squirtle", b: "squirtle", expected: "Squirtle (#7) = Squirtle (#7)\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			displayComparison(&buf, mustFind(t, tt.a), mustFind(t, tt.b))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestDisplayOutcome(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected string
	}{
		{name: "greater", a: "bulbasaur", b: "charmander", expected: "Bulbasaur (#1) > Charmander (#4)\nOutcome: greater (318 vs 309)\n\n"},
		{name: "lesser", a: "charmander", b: "squirtle", expected: "Charmander (#4) < Squirtle (#7)\nOutcome: lesser (309 vs 314)\n\n"},
		{name: "equal", a: "eevee", b: "eevee", expected: "Eevee (#133) = Eevee (#133)\nOutcome: equal (325 vs 325)\n\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			displayOutcome(&buf, mustFind(t, tt.a), mustFind(t, tt.b))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestDisplayNotFound(t *testing.T) {
	var buf bytes.Buffer
	displayNotFound(&buf)
	assert.Equal(t, "Pokémon not found!\n", buf.String())
}
