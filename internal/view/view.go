// Package view renders human-facing output for Smartcmd: search results,
// the catalog tree and validation reports. Pure string builders, no I/O.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/smartcmd/smartcmd/internal/catalog"
	"github.com/smartcmd/smartcmd/internal/search"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("249"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// SearchResults renders a ranked search result list with 1-based indices and
// the selection hint understood by the result selector.
func SearchResults(query string, results []search.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Search: %q", query)) + "\n")

	if len(results) == 0 {
		b.WriteString(tagStyle.Render("  no matches") + "\n")
		return b.String()
	}

	for i, r := range results {
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			rankStyle.Render(fmt.Sprintf("%2d.", i+1)),
			pathStyle.Render(r.Invocation()),
			tagStyle.Render("["+string(r.Field)+"]"),
		))
		if r.Field != search.FieldName {
			b.WriteString("     " + descStyle.Render(r.Display) + "\n")
		}
	}

	b.WriteString(hintStyle.Render("N to run, eN to edit, Enter to cancel, anything else searches again") + "\n")
	return b.String()
}

// CatalogTree renders the loaded catalog with descriptions, one indented
// line per command node.
func CatalogTree(cat *catalog.Catalog, lang string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Catalog: %d root commands", cat.Len())) + "\n")
	for i := range cat.Roots() {
		renderNode(&b, &cat.Roots()[i], lang, 0)
	}
	return b.String()
}

func renderNode(b *strings.Builder, node *catalog.CommandSpec, lang string, depth int) {
	indent := strings.Repeat("  ", depth+1)
	line := indent + pathStyle.Render(node.Name)
	if desc := node.Description.Resolve(lang); desc != "" {
		line += "  " + descStyle.Render(desc)
	}
	if len(node.Flags) > 0 {
		line += "  " + tagStyle.Render(fmt.Sprintf("(%d flags)", len(node.Flags)))
	}
	b.WriteString(line + "\n")
	for i := range node.Subcommands {
		renderNode(b, &node.Subcommands[i], lang, depth+1)
	}
}

// Examples renders a command's example invocations with localized scenarios.
// Template placeholders in the invocation are expanded for display.
func Examples(path string, examples []catalog.ExampleSpec, lang string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Examples: "+path) + "\n")
	if len(examples) == 0 {
		b.WriteString(tagStyle.Render("  none") + "\n")
		return b.String()
	}
	for _, e := range examples {
		b.WriteString("  " + pathStyle.Render(catalog.ExpandExample(e.Cmd)) + "\n")
		if scenario := e.Scenario.Resolve(lang); scenario != "" {
			b.WriteString("     " + descStyle.Render(scenario) + "\n")
		}
	}
	return b.String()
}

// ValidationReport renders the outcome of validating one definition file.
func ValidationReport(path string, errs []catalog.SchemaError) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Validating: "+path) + "\n")
	if len(errs) == 0 {
		b.WriteString(successStyle.Render("✓ definition is valid") + "\n")
		return b.String()
	}
	b.WriteString(errorStyle.Render("✗ definition has errors:") + "\n")
	for i, e := range errs {
		b.WriteString(fmt.Sprintf("%d. %s %s\n",
			i+1,
			tagStyle.Render("["+e.Field+"]"),
			e.Message,
		))
	}
	return b.String()
}
