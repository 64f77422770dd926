package complete

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartcmd/smartcmd/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *catalog.Catalog {
	return catalog.NewCatalog([]catalog.CommandSpec{
		{
			Name:        "git",
			Description: catalog.Text("Version control"),
			Subcommands: []catalog.CommandSpec{
				{
					Name:        "commit",
					Description: catalog.TextMap(map[string]string{"en": "Record changes", "zh": "记录变更"}),
					Flags: []catalog.FlagSpec{
						{Long: "all", Short: "a", Description: catalog.Text("Stage all changes")},
						{Long: "message", Short: "m", Description: catalog.Text("Commit message"), TakesValue: true},
						{Long: "verbose", Short: "v", Description: catalog.Text("Show diff in editor")},
					},
					FlagCombos: []catalog.FlagCombo{
						{Combo: "am", Description: catalog.Text("Stage everything with a message")},
					},
				},
				{Name: "checkout", Description: catalog.Text("Switch branches")},
				{Name: "add", Description: catalog.Text("Stage files"), PathCompletion: true},
			},
		},
		{
			Name:        "tar",
			Description: catalog.Text("Archive files"),
			Examples: []catalog.ExampleSpec{
				{Cmd: "tar -czvf archive.tar.gz .", Scenario: catalog.Text("Create a gzipped archive")},
				{Cmd: "tar -xzvf archive.tar.gz", Scenario: catalog.Text("Extract a gzipped archive")},
			},
		},
		{
			Name:           "cd",
			Description:    catalog.Text("Change directory"),
			PathCompletion: true,
		},
	})
}

func values(suggestions []Suggestion) []string {
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Value)
	}
	return out
}

func complete(t *testing.T, line string) []Suggestion {
	t.Helper()
	return New(testCatalog()).Complete(line, len(line), "en")
}

func TestComplete_Roots(t *testing.T) {
	assert.Equal(t, []string{"git", "tar", "cd"}, values(complete(t, "")))
	assert.Equal(t, []string{"git"}, values(complete(t, "gi")))

	// Prefix matching on candidates is case-insensitive
	assert.Equal(t, []string{"git"}, values(complete(t, "GI")))
}

func TestComplete_UnknownRootFallsBackToRoots(t *testing.T) {
	assert.Equal(t, []string{"git", "tar", "cd"}, values(complete(t, "zzz ")))
}

func TestComplete_Subcommands(t *testing.T) {
	got := complete(t, "git ")
	assert.Equal(t, []string{"commit", "checkout", "add"}, values(got))
	for _, s := range got {
		assert.Equal(t, KindSubcommand, s.Kind)
	}

	assert.Equal(t, []string{"commit", "checkout"}, values(complete(t, "git c")))
}

func TestComplete_DescentStopsAtFirstMiss(t *testing.T) {
	// "foo" matches no subcommand of git, so git stays the resolution
	// context and the trailing completed tokens are ignored.
	assert.Equal(t, []string{"commit", "checkout", "add"}, values(complete(t, "git foo bar ")))
}

func TestComplete_Flags(t *testing.T) {
	got := complete(t, "git commit -")
	assert.Equal(t, []string{"-a", "--all", "-m", "--message", "-v", "--verbose"}, values(got))
	for _, s := range got {
		assert.Equal(t, KindFlag, s.Kind)
	}

	// A "--" prefix restricts to long forms
	assert.Equal(t, []string{"--all", "--message", "--verbose"}, values(complete(t, "git commit --")))
	assert.Equal(t, []string{"--message"}, values(complete(t, "git commit --me")))
}

func TestComplete_FlagChains(t *testing.T) {
	// Declared combos come first, then single-flag extensions; the combo
	// "am" absorbs the identical extension.
	got := complete(t, "git commit -a")
	assert.Equal(t, []string{"-am", "-av"}, values(got))
	assert.Equal(t, "Stage everything with a message", got[0].Description)

	assert.Equal(t, []string{"-va", "-vm"}, values(complete(t, "git commit -v")))
}

func TestComplete_ChainTerminatesOnValueFlag(t *testing.T) {
	// -m takes a value, so the chain cannot be extended past it.
	assert.Empty(t, complete(t, "git commit -m"))
	assert.Empty(t, complete(t, "git commit -am"))

	// A value-taking flag anywhere but last is not a chain either.
	assert.Empty(t, complete(t, "git commit -ma"))
}

func TestComplete_ChainWithUnknownFlag(t *testing.T) {
	assert.Empty(t, complete(t, "git commit -x"))
}

func TestComplete_ExamplesOnEmptyPartial(t *testing.T) {
	// An empty partial token is a prefix of every example, so a node with
	// examples but no subcommands or flags enumerates them all.
	got := complete(t, "tar ")
	require.Len(t, got, 2)
	assert.Equal(t, "tar -czvf archive.tar.gz .", got[0].Value)
	assert.Equal(t, "tar -xzvf archive.tar.gz", got[1].Value)
	for _, s := range got {
		assert.Equal(t, KindExample, s.Kind)
	}
}

func TestComplete_Examples(t *testing.T) {
	got := complete(t, "tar ta")
	require.Len(t, got, 2)
	assert.Equal(t, "tar -czvf archive.tar.gz .", got[0].Value)
	assert.Equal(t, KindExample, got[0].Kind)

	assert.Equal(t, "tar -xzvf archive.tar.gz", got[1].Value)
}

func TestComplete_TierGating(t *testing.T) {
	// commit has flags but no subcommands; an empty partial goes straight
	// to the flag tier.
	got := complete(t, "git commit ")
	require.NotEmpty(t, got)
	for _, s := range got {
		assert.Equal(t, KindFlag, s.Kind)
	}
}

func TestComplete_PathFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), nil, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "src"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "src", "app.go"), nil, 0644))
	t.Chdir(dir)

	got := complete(t, "cd ma")
	require.Len(t, got, 1)
	assert.Equal(t, "main.go", got[0].Value)
	assert.Equal(t, KindPath, got[0].Kind)
	assert.Equal(t, "File", got[0].Description)

	got = complete(t, "cd sr")
	require.Len(t, got, 1)
	assert.Equal(t, "src/", got[0].Value)
	assert.Equal(t, "Dir", got[0].Description)

	// Accepting the directory suggestion verbatim descends into it
	got = complete(t, "cd src/")
	require.Len(t, got, 1)
	assert.Equal(t, "src/app.go", got[0].Value)

	// A directory prefix in the token is preserved in the suggestion
	got = complete(t, "cd src/ap")
	require.Len(t, got, 1)
	assert.Equal(t, "src/app.go", got[0].Value)

	// Path fallback only applies to nodes that opted in
	assert.Empty(t, complete(t, "git checkout ma"))
}

func TestComplete_Localized(t *testing.T) {
	c := New(testCatalog())
	got := c.Complete("git c", 5, "zh")
	require.NotEmpty(t, got)
	assert.Equal(t, "记录变更", got[0].Description)

	got = c.Complete("git c", 5, "fr")
	assert.Equal(t, "Record changes", got[0].Description)
}

func TestComplete_Repeatable(t *testing.T) {
	c := New(testCatalog())
	first := c.Complete("git commit -a", 13, "en")
	second := c.Complete("git commit -a", 13, "en")
	assert.Equal(t, first, second)
}
