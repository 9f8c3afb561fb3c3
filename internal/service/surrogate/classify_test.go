package surrogate

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"surrogatetk/internal/jsonobj"
)

func mustParse(t *testing.T, s string) *jsonobj.Object {
	t.Helper()
	o, err := jsonobj.Parse([]byte(s))
	require.NoError(t, err)
	return o
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		key       string
		wantName  string
		wantField string
		wantOK    bool
	}{
		{"surrogate.foo.sources", "foo", "sources", true},
		{"surrogate.foo.bar.replacement", "foo.bar", "replacement", true},
		{"surrogate.a.exceptions", "a", "exceptions", true},
		{"surrogate.x.sources.replacement", "x.sources", "replacement", true},
		{"surrogate.a..sources", "a.", "sources", true},
		{"surrogate.foo.other", "", "", false},
		{"surrogate..sources", "", "", false},
		{"surrogate.sources", "", "", false},
		{"xsurrogate.foo.sources", "", "", false},
		{"surrogate.foo.sourcesx", "", "", false},
		{"other.setting", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			name, field, ok := ParseKey(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantField, field)
		})
	}
}

func TestClassify(t *testing.T) {
	store := mustParse(t, `{
		"a": 1,
		"surrogate.g.sources": "g.com",
		"surrogate.foo.bar.replacement": "x=1;",
		"b": "keep",
		"surrogate.g.replacement": "g();",
		"surrogate.foo.bar.sources": "example.com",
		"surrogate.foo.nope": false
	}`)

	part := Classify(store, nil, "")

	want := []*Record{
		{Name: "g", Fields: []Field{
			{Name: "sources", Value: json.RawMessage(`"g.com"`)},
			{Name: "replacement", Value: json.RawMessage(`"g();"`)},
		}},
		{Name: "foo.bar", Fields: []Field{
			{Name: "replacement", Value: json.RawMessage(`"x=1;"`)},
			{Name: "sources", Value: json.RawMessage(`"example.com"`)},
		}},
	}
	if diff := cmp.Diff(want, part.Records); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"a", "b", "surrogate.foo.nope"}, part.Residual.Keys())

	rec, ok := part.Record("foo.bar")
	require.True(t, ok)
	assert.Equal(t, []string{"replacement", "sources"}, rec.FieldNames())
}

func TestClassify_Idempotent(t *testing.T) {
	store := mustParse(t, `{"surrogate.a.sources": "x", "k": [1], "surrogate.b.replacement": "y", "surrogate.a.replacement": "z"}`)

	first := Classify(store, nil, "")
	second := Classify(store, nil, "")

	if diff := cmp.Diff(first.Records, second.Records); diff != "" {
		t.Errorf("Records differ between runs:\n%s", diff)
	}
	r1, err := first.Residual.MarshalJSON()
	require.NoError(t, err)
	r2, err := second.Residual.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
}

func TestClassify_Progress(t *testing.T) {
	store := mustParse(t, `{"a": 1, "surrogate.a.sources": "x", "b": 2}`)

	type call struct {
		current, total int
		label          string
	}
	var calls []call
	Classify(store, func(current, total int, label string) {
		calls = append(calls, call{current, total, label})
	}, "parsing defaults.js")

	assert.Equal(t, []call{
		{1, 3, "parsing defaults.js"},
		{2, 3, "parsing defaults.js"},
		{3, 3, "parsing defaults.js"},
	}, calls)
}
