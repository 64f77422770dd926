package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedText_Resolve(t *testing.T) {
	tests := []struct {
		name string
		text LocalizedText
		lang string
		want string
	}{
		{
			name: "single string ignores language",
			text: Text("Record changes"),
			lang: "zh",
			want: "Record changes",
		},
		{
			name: "exact language match",
			text: TextMap(map[string]string{"en": "Record changes", "zh": "记录变更"}),
			lang: "zh",
			want: "记录变更",
		},
		{
			name: "unsupported language falls back to default",
			text: TextMap(map[string]string{"en": "Record changes", "zh": "记录变更"}),
			lang: "fr",
			want: "Record changes",
		},
		{
			name: "no default entry falls back to lexicographically first",
			text: TextMap(map[string]string{"zh": "记录变更", "de": "Änderungen aufzeichnen"}),
			lang: "fr",
			want: "Änderungen aufzeichnen",
		},
		{
			name: "zero value resolves to empty",
			text: LocalizedText{},
			lang: "en",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.text.Resolve(tt.lang))
		})
	}
}

func TestNewLocalizedText(t *testing.T) {
	// Plain string
	lt := newLocalizedText("hello")
	assert.Equal(t, "hello", lt.Resolve("en"))

	// Language map as decoded from YAML
	lt = newLocalizedText(map[string]interface{}{"en": "hello", "zh": "你好"})
	assert.Equal(t, "你好", lt.Resolve("zh"))
	assert.Equal(t, "hello", lt.Resolve("ja"))

	// Unexpected shapes yield the zero value
	lt = newLocalizedText(42)
	assert.True(t, lt.IsZero())
	lt = newLocalizedText(nil)
	assert.True(t, lt.IsZero())
}
