package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/dex/internal/domain/services"
)

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	err := formatJSON(&buf, testCatalog(t).Records()[:1])
	require.NoError(t, err)

	var parsed []map[string]interface{}
	err = json.Unmarshal(buf.Bytes(), &parsed)
	require.NoError(t, err)

	require.Len(t, parsed, 1)
	assert.Equal(t, float64(1), parsed[0]["id"])
	assert.Equal(t, "bulbasaur", parsed[0]["name"])
	assert.Equal(t, []interface{}{"grass", "poison"}, parsed[0]["types"])
	assert.Equal(t, float64(318), parsed[0]["total"])

	stats, ok := parsed[0]["stats"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(45), stats["health"])
	assert.Equal(t, float64(65), stats["special-attack"])
	assert.Len(t, stats, 6)
}

func TestFormatJSON_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestFormatCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, testCatalog(t).Records()[:2]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,name,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed", lines[0])
	assert.Equal(t, "1,bulbasaur,grass,poison,45,49,49,65,65,45", lines[1])
	assert.Equal(t, "4,charmander,fire,,39,52,43,60,50,65", lines[2])
}

func TestFormatCSV_RoundTrip(t *testing.T) {
	original := testCatalog(t)

	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, original.Records()))

	reloaded := services.NewCatalog()
	require.NoError(t, reloaded.Load(&buf))
	require.Equal(t, original.Len(), reloaded.Len())

	for _, r := range original.Records() {
		got, ok := reloaded.Find(r.Name())
		require.True(t, ok)
		assert.Equal(t, r.ID(), got.ID())
		assert.Equal(t, r.Categories(), got.Categories())
		assert.Equal(t, r.Stats(), got.Stats())
	}
}

func TestFormatMarkdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, formatMarkdown(&buf, testCatalog(t).Records()[:1]))

	result := buf.String()
	assert.Contains(t, result, "# Exported Pokémon")
	assert.Contains(t, result, "Total: 1 records")
	assert.Contains(t, result, "| # | Name | Types | HP | Atk | Def | SpA | SpD | Spe | Total |")
	assert.Contains(t, result, "| 1 | bulbasaur | grass, poison | 45 | 49 | 49 | 65 | 65 | 45 | 318 |")
}

func TestFormatRecords_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := formatRecords(&buf, "xml", nil)
	require.Error(t, err)
}

func TestEscapeMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "pipe escaped",
			input:    "value|with|pipes",
			expected: "value\\|with\\|pipes",
		},
		{
			name:     "newline replaced",
			input:    "line1\nline2",
			expected: "line1 line2",
		},
		{
			name:     "no change needed",
			input:    "simple text",
			expected: "simple text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, escapeMarkdown(tt.input))
		})
	}
}

func TestFormatCSV_QuoteInNameLoadsBack(t *testing.T) {
	original := services.NewCatalog()
	require.NoError(t, original.Load(strings.NewReader(
		"id,name,type1,type2,hp,attack,defense,sp_attack,sp_defense,speed\n"+
			"83,farfetch\"d,normal,flying,52,90,55,58,62,60\n")))

	var buf bytes.Buffer
	require.NoError(t, formatCSV(&buf, original.Records()))
	assert.Contains(t, buf.String(), "83,farfetch\"d,normal,flying,52,90,55,58,62,60\n")

	reloaded := services.NewCatalog()
	require.NoError(t, reloaded.Load(&buf))
	got, ok := reloaded.Find(`farfetch"d`)
	require.True(t, ok)
	assert.Equal(t, 377, got.Total())
}
