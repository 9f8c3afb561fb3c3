package surrogate

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioPrefs = `Legacy.migrated = {};
Legacy.migrated.prefs = Object.assign({
  "surrogate.foo.bar.replacement": "x=1;",
  "surrogate.foo.bar.sources": "example.com",
  "other.setting": true
}, Legacy.migrated.prefs);
`

func TestExtract(t *testing.T) {
	env, err := Extract(scenarioPrefs)
	require.NoError(t, err)

	assert.Equal(t, "Legacy.migrated = {};\nLegacy.migrated.prefs = Object.assign(", env.Prefix)
	assert.Equal(t, ", Legacy.migrated.prefs);\n", env.Suffix)
	assert.Equal(t, []string{
		"surrogate.foo.bar.replacement",
		"surrogate.foo.bar.sources",
		"other.setting",
	}, env.Store.Keys())
}

func TestExtract_WhitespaceInEnvelope(t *testing.T) {
	text := "// header\nLegacy.migrated.prefs  =\n Object.assign (\n {\"a\": 1}\n ,\n other);"
	env, err := Extract(text)
	require.NoError(t, err)

	assert.Equal(t, "// header\nLegacy.migrated.prefs  =\n Object.assign (\n ", env.Prefix)
	assert.Equal(t, "\n ,\n other);", env.Suffix)
	assert.Equal(t, []string{"a"}, env.Store.Keys())
}

func TestExtract_MalformedEnvelope(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"空", ""},
		{"代入なし", `{"a": 1}`},
		{"後置部なし", `Legacy.migrated.prefs = Object.assign({"a": 1})`},
		{"別の変数", `Legacy.prefs = Object.assign({"a": 1}, x);`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.text)
			assert.ErrorIs(t, err, ErrMalformedEnvelope)
		})
	}
}

func TestExtract_MalformedJSON(t *testing.T) {
	_, err := Extract(`Legacy.migrated.prefs = Object.assign({"a": 1,}, x);`)
	assert.ErrorIs(t, err, ErrMalformedJSON)
}

func TestExtract_RoundTripWithoutSurrogates(t *testing.T) {
	text := "var x;\nLegacy.migrated.prefs = Object.assign({\n\t\"a\": 1,\n\t\"b\": [\n\t\t\"c\"\n\t]\n}, y);\n"
	env, err := Extract(text)
	require.NoError(t, err)

	part := Classify(env.Store, nil, "")
	require.Empty(t, part.Records)

	out, err := RenderPreferences(env, part.Residual)
	require.NoError(t, err)
	assert.Equal(t, text, string(out))
}

func TestReadPreferences_IOError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.js")
	_, err := ReadPreferences(path)

	var ioErr *IOError
	require.True(t, errors.As(err, &ioErr))
	assert.Equal(t, path, ioErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
