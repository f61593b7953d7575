package theme

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltins(t *testing.T) {
	assert.Equal(t, []string{Nocturne, Parchment}, Names())

	light, err := Get(Parchment)
	require.NoError(t, err)
	assert.Equal(t, "light", light.Type)
	assert.Equal(t, "#F7F4EE", light.Colors["editor.background"])
	assert.Len(t, light.TokenColors, 10)

	dark, err := Get("Serinus-Nocturne")
	require.NoError(t, err)
	assert.Equal(t, "dark", dark.Type)

	_, err = Get("solarized")
	assert.ErrorIs(t, err, ErrUnknownTheme)
}

func TestStyleFor(t *testing.T) {
	th, err := Get(Parchment)
	require.NoError(t, err)

	tests := []struct {
		scope string
		want  Style
	}{
		{"comment", Style{Scope: "comment", Foreground: "#9B968D", FontStyle: "italic"}},
		{"comment.line.double-slash.dart", Style{Scope: "comment", Foreground: "#9B968D", FontStyle: "italic"}},
		{"keyword.control.dart", Style{Scope: "keyword", Foreground: "#E58A2E"}},
		{"punctuation.definition.string.begin", Style{Scope: "punctuation.definition.string", Foreground: "#4FB99F"}},
		{"punctuation.separator", Style{Scope: "punctuation", Foreground: "#6E6A63"}},
		{"entity.name.function.dart", Style{Scope: "entity.name.function", Foreground: "#6B8E9E"}},
		{"stringy", Style{Foreground: "#3A3A3A"}},
		{"markup.heading", Style{Foreground: "#3A3A3A"}},
	}
	for _, tt := range tests {
		t.Run(tt.scope, func(t *testing.T) {
			assert.Equal(t, tt.want, th.StyleFor(tt.scope))
		})
	}
}

func TestJSONExport(t *testing.T) {
	th, err := Get(Nocturne)
	require.NoError(t, err)

	data, err := th.JSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "serinus-nocturne", decoded["name"])
	tokens := decoded["tokenColors"].([]any)
	require.Len(t, tokens, 10)
	first := tokens[0].(map[string]any)
	assert.Equal(t, map[string]any{"foreground": "#6F726A", "fontStyle": "italic"}, first["settings"])
}

func TestParseRejectsInvalid(t *testing.T) {
	_, err := Parse([]byte("name: x\ntype: sepia\n"))
	require.Error(t, err)
	_, err = Parse([]byte("type: dark\n"))
	require.Error(t, err)
	_, err = Parse([]byte("name: x\ntype: dark\ntoken_colors:\n  - foreground: \"#fff\"\n"))
	require.Error(t, err)
	_, err = Parse([]byte("name: [unclosed"))
	require.Error(t, err)
}
