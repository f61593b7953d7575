package normalization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type format string

var formats = New("log format", map[string]format{
	"text":       "text",
	"json":       "json",
	"JSON-Lines": "json",
})

func TestLookupFoldsCaseAndSpace(t *testing.T) {
	v, ok := formats.Lookup("  Text ")
	require.True(t, ok)
	assert.Equal(t, format("text"), v)

	v, ok = formats.Lookup("json-lines")
	require.True(t, ok)
	assert.Equal(t, format("json"), v)

	_, ok = formats.Lookup("xml")
	assert.False(t, ok)
}

func TestNormalizeFallsBack(t *testing.T) {
	assert.Equal(t, format("json"), formats.Normalize("JSON", "text"))
	assert.Equal(t, format("text"), formats.Normalize("yaml", "text"))
}

func TestParseNamesValidOptions(t *testing.T) {
	_, err := formats.Parse("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid log format "xml"`)
	assert.Contains(t, err.Error(), "json, json-lines, text")

	assert.Equal(t, []string{"json", "json-lines", "text"}, formats.Keys())
}
