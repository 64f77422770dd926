// Package search implements fuzzy full-catalog search: a flattened view of
// every command path, description and example, matched by ordered
// subsequences of the query, plus the small state machine that interprets
// the user's follow-up selection.
package search

import (
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/smartcmd/smartcmd/internal/catalog"
)

// Field identifies which part of a catalog entry a search result matched.
type Field string

// Matched field kinds.
const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldExample     Field = "example"
)

// Score adjustments per field, carried over from interactive tuning:
// a hit on the command path itself outranks an equally good description
// hit, and example hits rank slightly below.
const (
	nameBoost      = 100
	examplePenalty = 10
)

// Result is one search hit. Results are ephemeral: recomputed per query,
// never persisted.
type Result struct {
	Path    string // dotted command path, e.g. "git.checkout"
	Field   Field
	Score   int
	Display string
}

// Invocation returns the command line this result stands for: the example's
// literal text for example hits, the command path with spaces otherwise.
func (r Result) Invocation() string {
	if r.Field == FieldExample {
		return r.Display
	}
	return strings.ReplaceAll(r.Path, ".", " ")
}

type entry struct {
	path  string
	field Field
	text  string
}

// Index is the flattened, read-only view of a catalog used by fuzzy search.
// It is built once when the catalog loads, not per keystroke.
type Index struct {
	entries []entry
}

// NewIndex flattens the catalog for the active language: one entry per
// dotted command path, one per localized description, one per example
// invocation. A language change requires rebuilding the index, exactly like
// a catalog reload.
func NewIndex(cat *catalog.Catalog, lang string) *Index {
	ix := &Index{}
	for i := range cat.Roots() {
		root := &cat.Roots()[i]
		ix.add(root, root.Name, lang)
	}
	return ix
}

func (ix *Index) add(node *catalog.CommandSpec, path string, lang string) {
	ix.entries = append(ix.entries, entry{path: path, field: FieldName, text: path})

	if desc := node.Description.Resolve(lang); desc != "" {
		ix.entries = append(ix.entries, entry{path: path, field: FieldDescription, text: desc})
	}

	for _, example := range node.Examples {
		ix.entries = append(ix.entries, entry{path: path, field: FieldExample, text: example.Cmd})
	}

	for i := range node.Subcommands {
		sub := &node.Subcommands[i]
		ix.add(sub, path+"."+sub.Name, lang)
	}
}

// Len implements fuzzy.Source
func (ix *Index) Len() int { return len(ix.entries) }

// String implements fuzzy.Source
func (ix *Index) String(i int) string { return ix.entries[i].text }

// Search returns at most limit results for the query, best first.
// A candidate matches only if every query character appears in its text in
// order; contiguous runs and matches near the start score higher, larger
// gaps lower. Ties keep catalog insertion order. A non-positive limit means
// no cap.
func (ix *Index) Search(query string, limit int) []Result {
	if query == "" {
		return []Result{}
	}

	matches := fuzzy.FindFrom(query, ix)

	scored := make([]scoredResult, 0, len(matches))
	for _, m := range matches {
		e := ix.entries[m.Index]
		score := m.Score
		switch e.field {
		case FieldName:
			score += nameBoost
		case FieldExample:
			score -= examplePenalty
		}
		scored = append(scored, scoredResult{
			result: Result{
				Path:    e.path,
				Field:   e.field,
				Score:   score,
				Display: e.text,
			},
			order: m.Index,
		})
	}

	// fuzzy.FindFrom sorts by raw score; the field adjustments above can
	// reorder, so sort again on the adjusted score, breaking ties by the
	// entry's catalog insertion order rather than the raw-score order.
	sortScored(scored)

	results := make([]Result, 0, len(scored))
	for _, s := range scored {
		results = append(results, s.result)
	}

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

type scoredResult struct {
	result Result
	order  int
}

func sortScored(scored []scoredResult) {
	sort.Slice(scored, func(i, j int) bool {
		if scored[i].result.Score != scored[j].result.Score {
			return scored[i].result.Score > scored[j].result.Score
		}
		return scored[i].order < scored[j].order
	})
}
