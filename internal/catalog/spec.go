// Package catalog holds the command-specification data model for Smartcmd:
// the immutable forest of commands, subcommands, flags and examples that the
// completion engine and the search index are built from.
package catalog

import "strings"

// CommandSpec describes one command node in the catalog tree.
type CommandSpec struct {
	Name           string
	Description    LocalizedText
	Subcommands    []CommandSpec
	Flags          []FlagSpec
	Examples       []ExampleSpec
	FlagCombos     []FlagCombo
	PathCompletion bool
}

// FlagSpec describes a single flag of a command.
// At least one of Long/Short is set; this is enforced at load time.
type FlagSpec struct {
	Long        string // multi-character name, rendered as --name
	Short       string // single character, rendered as -c
	Description LocalizedText
	TakesValue  bool
}

// ExampleSpec is a literal invocation with a localized scenario description.
type ExampleSpec struct {
	Cmd      string
	Scenario LocalizedText
}

// FlagCombo is a commonly used short-flag combination, e.g. "am" for -a -m.
type FlagCombo struct {
	Combo       string
	Description LocalizedText
}

// LongToken returns the flag's long form with dashes, or "" if unset.
func (f FlagSpec) LongToken() string {
	if f.Long == "" {
		return ""
	}
	return "--" + f.Long
}

// ShortToken returns the flag's short form with a dash, or "" if unset.
func (f FlagSpec) ShortToken() string {
	if f.Short == "" {
		return ""
	}
	return "-" + f.Short
}

// Subcommand returns the direct subcommand with the given name.
// Lookup is exact and case-sensitive, matching tree descent semantics.
func (c *CommandSpec) Subcommand(name string) (*CommandSpec, bool) {
	for i := range c.Subcommands {
		if c.Subcommands[i].Name == name {
			return &c.Subcommands[i], true
		}
	}
	return nil, false
}

// ShortFlag returns the flag whose short form is the given character.
func (c *CommandSpec) ShortFlag(ch rune) (*FlagSpec, bool) {
	for i := range c.Flags {
		if c.Flags[i].Short == string(ch) {
			return &c.Flags[i], true
		}
	}
	return nil, false
}

// Catalog is the full set of root commands loaded for a session.
// It is insertion-ordered, unique by root name and read-only after load;
// a new catalog requires a fresh Load, never in-place patching.
type Catalog struct {
	roots []CommandSpec
}

// NewCatalog builds a catalog from root specs. Roots with duplicate names
// keep only the first occurrence; the loader relies on this for source
// precedence (higher-priority source wins wholesale).
func NewCatalog(roots []CommandSpec) *Catalog {
	c := &Catalog{}
	seen := make(map[string]struct{}, len(roots))
	for _, r := range roots {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		c.roots = append(c.roots, r)
	}
	return c
}

// Roots returns the root commands in insertion order.
func (c *Catalog) Roots() []CommandSpec {
	return c.roots
}

// Len returns the number of root commands.
func (c *Catalog) Len() int {
	return len(c.roots)
}

// Root returns the root command with the given name.
func (c *Catalog) Root(name string) (*CommandSpec, bool) {
	for i := range c.roots {
		if c.roots[i].Name == name {
			return &c.roots[i], true
		}
	}
	return nil, false
}

// Find descends the catalog along a path of exact command names and
// returns the deepest node, e.g. Find("git", "commit").
func (c *Catalog) Find(path ...string) (*CommandSpec, bool) {
	if len(path) == 0 {
		return nil, false
	}
	node, ok := c.Root(path[0])
	if !ok {
		return nil, false
	}
	for _, name := range path[1:] {
		node, ok = node.Subcommand(name)
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// FindPath is Find over a space-separated path such as "git commit".
func (c *Catalog) FindPath(path string) (*CommandSpec, bool) {
	return c.Find(strings.Fields(path)...)
}
