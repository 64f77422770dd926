package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/smartcmd/smartcmd/internal/catalog"
	"github.com/smartcmd/smartcmd/internal/serrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gitDefinition = `name: git
description:
  en: Version control
  zh: 版本控制
subcommands:
  - name: commit
    description: Record changes
    flags:
      - long: all
        short: a
        description: Stage all changes
      - long: message
        short: m
        description: Commit message
        takes_value: true
  - name: checkout
    description: Switch branches
examples:
  - cmd: git commit -am "wip"
    scenario: Commit all changes
`

// isolate pins the working directory and config home to empty temp
// directories so only the explicit definitions dir feeds the catalog.
func isolate(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	defs := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(defs, "git.yml"), []byte(gitDefinition), 0644))
	return defs
}

func TestComplete(t *testing.T) {
	defs := isolate(t)
	var buf bytes.Buffer

	err := Complete(CompleteParams{
		Line:           "git c",
		Cursor:         -1,
		Lang:           "en",
		DefinitionsDir: defs,
		Output:         &buf,
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{
		"commit\tRecord changes",
		"checkout\tSwitch branches",
	}, lines)
}

func TestComplete_Localized(t *testing.T) {
	defs := isolate(t)
	var buf bytes.Buffer

	err := Complete(CompleteParams{
		Line:           "gi",
		Cursor:         -1,
		Lang:           "zh",
		DefinitionsDir: defs,
		Output:         &buf,
	})
	require.NoError(t, err)
	assert.Equal(t, "git\t版本控制\n", buf.String())
}

func TestComplete_NoMatchIsNotAnError(t *testing.T) {
	defs := isolate(t)
	var buf bytes.Buffer

	err := Complete(CompleteParams{
		Line:           "git frobnicate x",
		Cursor:         -1,
		Lang:           "en",
		DefinitionsDir: defs,
		Output:         &buf,
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

func TestSearch(t *testing.T) {
	defs := isolate(t)
	var buf bytes.Buffer

	err := Search(SearchParams{
		Query:          "checkout",
		Lang:           "en",
		Limit:          10,
		DefinitionsDir: defs,
		Output:         &buf,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "git checkout")
}

func TestSearch_EmptyQuery(t *testing.T) {
	err := Search(SearchParams{})
	assert.Error(t, err)
}

func TestExamples(t *testing.T) {
	defs := isolate(t)
	var buf bytes.Buffer

	err := Examples(ExamplesParams{
		Path:           "git",
		Lang:           "en",
		DefinitionsDir: defs,
		Output:         &buf,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `git commit -am "wip"`)
	assert.Contains(t, buf.String(), "Commit all changes")
}

func TestExamples_UnknownPath(t *testing.T) {
	defs := isolate(t)

	err := Examples(ExamplesParams{
		Path:           "git rebase",
		Lang:           "en",
		DefinitionsDir: defs,
		Output:         &bytes.Buffer{},
	})
	require.Error(t, err)
	var nferr *serrors.NotFoundError
	assert.True(t, errors.As(err, &nferr))
}

func TestList(t *testing.T) {
	defs := isolate(t)
	var buf bytes.Buffer

	err := List(ListParams{
		Lang:           "en",
		DefinitionsDir: defs,
		Output:         &buf,
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "git")
	assert.Contains(t, buf.String(), "commit")
	assert.Contains(t, buf.String(), "(2 flags)")
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "git.yml")
	require.NoError(t, os.WriteFile(path, []byte(gitDefinition), 0644))

	var buf bytes.Buffer
	err := Validate(ValidateParams{Path: path, Output: &buf})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "valid")
}

func TestValidate_SchemaViolation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("description: nameless\n"), 0644))

	var buf bytes.Buffer
	err := Validate(ValidateParams{Path: path, Output: &buf})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidate_LoaderInvariant(t *testing.T) {
	// Passes the schema but violates sibling-name uniqueness.
	dir := t.TempDir()
	path := filepath.Join(dir, "dup.yml")
	require.NoError(t, os.WriteFile(path, []byte(`name: git
subcommands:
  - name: commit
  - name: commit
`), 0644))

	var buf bytes.Buffer
	err := Validate(ValidateParams{Path: path, Output: &buf})
	require.Error(t, err)
	assert.Contains(t, buf.String(), "duplicate subcommand")
}

func TestInitSample(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "definitions")

	require.NoError(t, InitSample(InitSampleParams{Dir: dir}))

	path := filepath.Join(dir, "sample.yml")
	spec, err := catalog.NewLoader().LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "sample", spec.Name)
	assert.Equal(t, "示例命令", spec.Description.Resolve("zh"))

	// Refuses to overwrite
	err = InitSample(InitSampleParams{Dir: dir})
	require.Error(t, err)
	var existsErr *serrors.AlreadyExistsError
	assert.True(t, errors.As(err, &existsErr))
}
