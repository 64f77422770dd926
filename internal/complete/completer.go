package complete

import (
	"strings"

	"github.com/smartcmd/smartcmd/internal/catalog"
)

// Kind classifies what a suggestion completes.
type Kind string

// Suggestion kinds, one per completion tier.
const (
	KindSubcommand Kind = "subcommand"
	KindFlag       Kind = "flag"
	KindExample    Kind = "example"
	KindPath       Kind = "path"
)

// Suggestion is a single completion candidate.
type Suggestion struct {
	Value       string
	Description string
	Kind        Kind
}

// Completer resolves a partial input line against a catalog snapshot.
// It is stateless beyond the catalog reference; the catalog is read-only,
// so a single Completer may serve every keystroke of a session.
type Completer struct {
	cat *catalog.Catalog
}

// New creates a completer over a loaded catalog
func New(cat *catalog.Catalog) *Completer {
	return &Completer{cat: cat}
}

// Complete returns ranked suggestions for the token under the cursor.
// It never fails; no match yields an empty slice.
//
// Completed tokens drive exact, case-sensitive descent from the catalog
// root. Descent stops at the first token that matches no subcommand; that
// node is the resolution context and the remaining completed tokens are
// ignored. Candidates are then built in tiers - subcommands, flags,
// examples, path fallback - and a lower tier is only consulted when every
// higher tier is empty. Ties within a tier keep catalog order.
func (c *Completer) Complete(line string, cursor int, lang string) []Suggestion {
	completed, partial := Tokenize(line, cursor)

	if len(completed) == 0 {
		return c.rootSuggestions(partial, lang)
	}

	node, ok := c.cat.Root(completed[0])
	if !ok {
		// Unknown root command: the resolution context is the catalog root.
		return c.rootSuggestions(partial, lang)
	}
	for _, token := range completed[1:] {
		sub, ok := node.Subcommand(token)
		if !ok {
			break
		}
		node = sub
	}

	if s := c.subcommandSuggestions(node, partial, lang); len(s) > 0 {
		return s
	}
	if s := c.flagSuggestions(node, partial, lang); len(s) > 0 {
		return s
	}
	if s := c.exampleSuggestions(node, partial, lang); len(s) > 0 {
		return s
	}
	if node.PathCompletion {
		return pathSuggestions(partial)
	}
	return []Suggestion{}
}

func (c *Completer) rootSuggestions(partial string, lang string) []Suggestion {
	suggestions := []Suggestion{}
	for _, root := range c.cat.Roots() {
		if !hasPrefixFold(root.Name, partial) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Value:       root.Name,
			Description: root.Description.Resolve(lang),
			Kind:        KindSubcommand,
		})
	}
	return suggestions
}

func (c *Completer) subcommandSuggestions(node *catalog.CommandSpec, partial, lang string) []Suggestion {
	var suggestions []Suggestion
	for i := range node.Subcommands {
		sub := &node.Subcommands[i]
		if !hasPrefixFold(sub.Name, partial) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Value:       sub.Name,
			Description: sub.Description.Resolve(lang),
			Kind:        KindSubcommand,
		})
	}
	return suggestions
}

func (c *Completer) flagSuggestions(node *catalog.CommandSpec, partial, lang string) []Suggestion {
	if len(node.Flags) == 0 {
		return nil
	}

	isChain := strings.HasPrefix(partial, "-") && !strings.HasPrefix(partial, "--") && len(partial) > 1
	if isChain {
		return chainSuggestions(node, partial, lang)
	}

	longOnly := strings.HasPrefix(partial, "--")
	var suggestions []Suggestion
	for i := range node.Flags {
		flag := &node.Flags[i]
		if !longOnly {
			if short := flag.ShortToken(); short != "" && hasPrefixFold(short, partial) {
				suggestions = append(suggestions, Suggestion{
					Value:       short,
					Description: flag.Description.Resolve(lang),
					Kind:        KindFlag,
				})
			}
		}
		if long := flag.LongToken(); long != "" && hasPrefixFold(long, partial) {
			suggestions = append(suggestions, Suggestion{
				Value:       long,
				Description: flag.Description.Resolve(lang),
				Kind:        KindFlag,
			})
		}
	}
	return suggestions
}

// chainSuggestions handles a partial token that is already a short-flag
// chain like "-a": it proposes declared combos and single-flag extensions.
// A value-taking flag may only be the last element of a chain, so a chain
// ending in one is never extended.
func chainSuggestions(node *catalog.CommandSpec, partial, lang string) []Suggestion {
	chain := partial[1:]
	used := []rune(chain)

	// Every character typed so far must be a known short flag, and all but
	// the trailing one must not take a value; otherwise this is not a chain
	// we can reason about (e.g. "-m" followed by its value).
	for i, ch := range used {
		flag, ok := node.ShortFlag(ch)
		if !ok {
			return nil
		}
		if flag.TakesValue && i < len(used)-1 {
			return nil
		}
	}
	if last, ok := node.ShortFlag(used[len(used)-1]); ok && last.TakesValue {
		return nil
	}

	var suggestions []Suggestion
	seen := map[string]bool{}

	for _, combo := range node.FlagCombos {
		if !strings.HasPrefix(combo.Combo, chain) || combo.Combo == chain {
			continue
		}
		seen["-"+combo.Combo] = true
		suggestions = append(suggestions, Suggestion{
			Value:       "-" + combo.Combo,
			Description: combo.Description.Resolve(lang),
			Kind:        KindFlag,
		})
	}

	for i := range node.Flags {
		flag := &node.Flags[i]
		if flag.Short == "" || strings.Contains(chain, flag.Short) || seen[partial+flag.Short] {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Value:       partial + flag.Short,
			Description: flag.Description.Resolve(lang),
			Kind:        KindFlag,
		})
	}

	return suggestions
}

func (c *Completer) exampleSuggestions(node *catalog.CommandSpec, partial, lang string) []Suggestion {
	var suggestions []Suggestion
	for _, example := range node.Examples {
		if !strings.HasPrefix(example.Cmd, partial) {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Value:       example.Cmd,
			Description: example.Scenario.Resolve(lang),
			Kind:        KindExample,
		})
	}
	return suggestions
}

// hasPrefixFold is a case-insensitive strings.HasPrefix
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return strings.EqualFold(s[:len(prefix)], prefix)
}
