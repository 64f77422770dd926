package catalog

import "sort"

// DefaultLang is the language used when a requested language has no entry.
const DefaultLang = "en"

// LocalizedText is a text value that is either a single default string or a
// mapping from language code to string. Exactly one of the two variants is
// populated.
type LocalizedText struct {
	text   string
	byLang map[string]string
}

// Text builds the single-string variant.
func Text(s string) LocalizedText {
	return LocalizedText{text: s}
}

// TextMap builds the per-language variant.
func TextMap(m map[string]string) LocalizedText {
	return LocalizedText{byLang: m}
}

// IsZero reports whether no text is set at all.
func (t LocalizedText) IsZero() bool {
	return t.text == "" && len(t.byLang) == 0
}

// Resolve returns the text for the requested language code.
// Single-string values ignore the code. Mappings fall back from exact code
// to the default language to the lexicographically first entry. Resolve is
// pure and never fails; an empty value resolves to "".
func (t LocalizedText) Resolve(lang string) string {
	if t.byLang == nil {
		return t.text
	}
	if s, ok := t.byLang[lang]; ok {
		return s
	}
	if s, ok := t.byLang[DefaultLang]; ok {
		return s
	}
	keys := make([]string, 0, len(t.byLang))
	for k := range t.byLang {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return ""
	}
	sort.Strings(keys)
	return t.byLang[keys[0]]
}

// newLocalizedText normalizes a decoded definition value into a
// LocalizedText. Definition files may use a plain string or a
// {lang: text} mapping; anything else yields the zero value.
func newLocalizedText(v interface{}) LocalizedText {
	switch val := v.(type) {
	case string:
		return Text(val)
	case map[string]interface{}:
		m := make(map[string]string, len(val))
		for lang, raw := range val {
			if s, ok := raw.(string); ok {
				m[lang] = s
			}
		}
		if len(m) == 0 {
			return LocalizedText{}
		}
		return TextMap(m)
	default:
		return LocalizedText{}
	}
}
