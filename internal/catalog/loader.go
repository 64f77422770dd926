package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/smartcmd/smartcmd/internal/serrors"
)

// DefinitionsDirName is the directory name searched for definition files.
const DefinitionsDirName = "definitions"

// SupportedExtensions lists definition file extensions (in no particular order)
var SupportedExtensions = []string{".yml", ".yaml", ".toml", ".json"}

// DefaultSourceDirs returns candidate definition directories in precedence
// order: working directory, executable-adjacent, user config directory,
// then system-shared directories. Directories that do not exist are skipped
// by Load.
func DefaultSourceDirs() []string {
	var dirs []string

	if cwd, err := os.Getwd(); err == nil {
		dirs = append(dirs, filepath.Join(cwd, DefinitionsDirName))
	}

	if exe, err := os.Executable(); err == nil {
		dirs = append(dirs, filepath.Join(filepath.Dir(exe), DefinitionsDirName))
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		if home, err := os.UserHomeDir(); err == nil {
			configHome = filepath.Join(home, ".config")
		}
	}
	if configHome != "" {
		dirs = append(dirs, filepath.Join(configHome, "smartcmd", DefinitionsDirName))
	}

	dirs = append(dirs,
		filepath.Join("/usr/share/smartcmd", DefinitionsDirName),
		filepath.Join("/usr/local/share/smartcmd", DefinitionsDirName),
	)

	return dirs
}

// rawCommand mirrors the definition file schema for decoding.
// Description and scenario values are either a plain string or a
// {lang: text} mapping, so they decode as interface{} and are
// normalized afterwards.
type rawCommand struct {
	Name           string       `koanf:"name"`
	Description    interface{}  `koanf:"description"`
	Subcommands    []rawCommand `koanf:"subcommands"`
	Flags          []rawFlag    `koanf:"flags"`
	Examples       []rawExample `koanf:"examples"`
	FlagCombos     []rawCombo   `koanf:"flag_combos"`
	PathCompletion bool         `koanf:"path_completion"`
}

type rawFlag struct {
	Long        string      `koanf:"long"`
	Short       string      `koanf:"short"`
	Description interface{} `koanf:"description"`
	TakesValue  bool        `koanf:"takes_value"`
}

type rawExample struct {
	Cmd      string      `koanf:"cmd"`
	Scenario interface{} `koanf:"scenario"`
}

type rawCombo struct {
	Combo       string      `koanf:"combo"`
	Description interface{} `koanf:"description"`
}

// Loader reads definition files and assembles the command catalog.
// A loader is cheap; the expensive artifact is the catalog it produces,
// which is built once per session and then read-only.
type Loader struct{}

// NewLoader creates a new definition loader
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every definition file from the given directories, highest
// precedence first. When the same root command name appears in several
// directories, the higher-priority source wins wholesale; there is no deep
// merge. Files that fail to parse or validate are skipped and reported in
// the returned error slice - the catalog stays usable with whatever parsed,
// and an empty catalog is a valid result.
func (l *Loader) Load(dirs ...string) (*Catalog, []error) {
	var roots []CommandSpec
	var failures []error

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			// Missing or unreadable source directories are not an error;
			// lower-priority sources may still provide definitions.
			continue
		}

		names := make([]string, 0, len(entries))
		for _, e := range entries {
			if e.IsDir() || !isSupportedFile(e.Name()) {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)

		for _, name := range names {
			path := filepath.Join(dir, name)
			spec, err := l.LoadFile(path)
			if err != nil {
				failures = append(failures, err)
				continue
			}
			roots = append(roots, *spec)
		}
	}

	// NewCatalog keeps the first occurrence of each root name, which is the
	// highest-priority source because dirs are walked in precedence order.
	return NewCatalog(roots), failures
}

// LoadFile parses and validates a single definition file into a CommandSpec.
func (l *Loader) LoadFile(path string) (*CommandSpec, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, serrors.NewParseError(path, "failed to read definition file", err)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, serrors.NewParseError(path, "unsupported definition format", err)
	}

	// Schema validation first: it produces better-targeted messages than
	// decode errors and rejects structurally invalid files early.
	schemaResult, err := ValidateWithSchema(path, content)
	if err != nil {
		return nil, err
	}
	if !schemaResult.Valid {
		first := schemaResult.Errors[0]
		return nil, serrors.NewValidationError(
			fmt.Sprintf("%s#%s", path, first.Field),
			first.Message,
			nil,
		)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return nil, serrors.NewParseError(path, "failed to parse definition file", err)
	}

	var raw rawCommand
	if err := k.Unmarshal("", &raw); err != nil {
		return nil, serrors.NewParseError(path, "failed to decode definition file", err)
	}

	spec := normalizeCommand(raw)
	if err := validateSpec(&spec, spec.Name); err != nil {
		return nil, serrors.NewValidationError(path, "invalid definition", err)
	}

	return &spec, nil
}

func isSupportedFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported extension: %s", filepath.Ext(path))
	}
}

func normalizeCommand(raw rawCommand) CommandSpec {
	spec := CommandSpec{
		Name:           raw.Name,
		Description:    newLocalizedText(raw.Description),
		PathCompletion: raw.PathCompletion,
	}

	for _, sub := range raw.Subcommands {
		spec.Subcommands = append(spec.Subcommands, normalizeCommand(sub))
	}

	for _, f := range raw.Flags {
		spec.Flags = append(spec.Flags, FlagSpec{
			Long:        f.Long,
			Short:       f.Short,
			Description: newLocalizedText(f.Description),
			TakesValue:  f.TakesValue,
		})
	}

	for _, e := range raw.Examples {
		spec.Examples = append(spec.Examples, ExampleSpec{
			Cmd:      e.Cmd,
			Scenario: newLocalizedText(e.Scenario),
		})
	}

	for _, c := range raw.FlagCombos {
		spec.FlagCombos = append(spec.FlagCombos, FlagCombo{
			Combo:       c.Combo,
			Description: newLocalizedText(c.Description),
		})
	}

	return spec
}
