package complete

import (
	"os"
	"strings"
)

// pathSuggestions lists filesystem entries for the path-completion fallback.
// The partial token may carry a directory prefix ("src/ma"); the listing
// targets that directory and the returned values keep the prefix so they
// can replace the token verbatim. Directories are suffixed with "/", the
// same character the splitter keys on, so an accepted suggestion descends
// on the next keystroke. Every filesystem error degrades to an empty
// suggestion set.
func pathSuggestions(partial string) []Suggestion {
	dir := "."
	prefix := partial
	keep := ""

	if i := strings.LastIndexByte(partial, '/'); i >= 0 {
		keep = partial[:i+1]
		prefix = partial[i+1:]
		dir = partial[:i+1]
		if dir != "/" {
			dir = strings.TrimSuffix(dir, "/")
		}
		if dir == "" {
			dir = "."
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []Suggestion{}
	}

	suggestions := []Suggestion{}
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		value := keep + name
		description := "File"
		if entry.IsDir() {
			value += "/"
			description = "Dir"
		}
		suggestions = append(suggestions, Suggestion{
			Value:       value,
			Description: description,
			Kind:        KindPath,
		})
	}
	return suggestions
}
