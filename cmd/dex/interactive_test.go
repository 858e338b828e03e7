package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPrompt = "> "

func runSession(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := newSession(testLookup(t), strings.NewReader(input), &out, testPrompt, "c")
	require.NoError(t, s.run())
	return out.String()
}

func TestSession_ExitImmediately(t *testing.T) {
	out := runSession(t, "c\n")
	assert.Equal(t, testPrompt+"Goodbye\n", out)
}

func TestSession_ExitCommandIsCaseInsensitive(t *testing.T) {
	out := runSession(t, "  C \n")
	assert.Equal(t, testPrompt+"Goodbye\n", out)
}

func TestSession_EndOfInput(t *testing.T) {
	out := runSession(t, "")
	assert.Equal(t, testPrompt+"Goodbye\n", out)
}

func TestSession_NotFound(t *testing.T) {
	out := runSession(t, "missingno\n9999\nc\n")
	assert.Equal(t, 2, strings.Count(out, "Pokémon not found!"))
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"))
}

func TestSession_LookupThenAnother(t *testing.T) {
	out := runSession(t, " Bulbasaur \na\n4\nc\nc\n")

	assert.Contains(t, out, "Bulbasaur (#1)")
	assert.Contains(t, out, "Charmander (#4)")
	assert.Contains(t, out, "a. See another Pokémon")
	assert.Equal(t, 1, strings.Count(out, "Goodbye"))
}

func TestSession_Compare(t *testing.T) {
	out := runSession(t, "bulbasaur\nb\ncharmander\nb\nmew\nc\n")

	assert.Contains(t, out, "Enter a Pokémon name/number to compare to Bulbasaur (#1): ")
	assert.Contains(t, out, "Bulbasaur (#1) > Charmander (#4)\n")
	assert.Contains(t, out, "Pokémon not found!")
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"))
}

func TestSession_CompareEqualTotals(t *testing.T) {
	out := runSession(t, "7\nb\nsquirtle\nc\n")
	assert.Contains(t, out, "Squirtle (#7) = Squirtle (#7)\n")
}

func TestSession_InvalidChoice(t *testing.T) {
	out := runSession(t, "eevee\nz\nc\n")

	assert.Contains(t, out, "Eevee (#133)")
	assert.Contains(t, out, "Invalid choice. Please select a valid option.")
	assert.Equal(t, 2, strings.Count(out, "What would you like to do next?"))
}

func TestSession_EndOfInputInMenu(t *testing.T) {
	out := runSession(t, "eevee\nb\n")
	assert.Contains(t, out, "to compare to Eevee (#133): ")
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"))
}

func TestSession_CustomExitCommand(t *testing.T) {
	var out bytes.Buffer
	s := newSession(testLookup(t), strings.NewReader("c\nQuit\n"), &out, testPrompt, "quit")
	require.NoError(t, s.run())

	// "c" is just a lookup miss here.
	assert.Contains(t, out.String(), "Pokémon not found!")
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye\n"))
}

func TestSession_OverlongLineIsAMiss(t *testing.T) {
	long := strings.Repeat("x", 200*1024)
	out := runSession(t, long+"\neevee\nc\n")

	assert.Equal(t, 1, strings.Count(out, "Pokémon not found!"))
	assert.Contains(t, out, "Eevee (#133)")
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"))
}

func TestSession_LastLineWithoutNewline(t *testing.T) {
	out := runSession(t, "c")
	assert.Equal(t, testPrompt+"Goodbye\n", out)
}

func TestSession_ReadError(t *testing.T) {
	var out bytes.Buffer
	in := io.MultiReader(strings.NewReader("eevee\na\n"), iotest.ErrReader(errors.New("tty gone")))
	s := newSession(testLookup(t), in, &out, testPrompt, "c")

	err := s.run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
	assert.Contains(t, out.String(), "Eevee (#133)")
	assert.True(t, strings.HasSuffix(out.String(), "Goodbye\n"))
}
