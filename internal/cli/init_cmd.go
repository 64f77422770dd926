package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/smartcmd/smartcmd/internal/catalog"
	"github.com/smartcmd/smartcmd/internal/serrors"
)

const sampleDefinition = `# yaml-language-server: $schema=https://raw.githubusercontent.com/smartcmd/smartcmd/main/schema/smartcmd.schema.json
# Smartcmd command definition
# One file describes one command tree: the command, its subcommands, flags
# and examples. Descriptions may be a plain string or a per-language map.

name: sample
description:
  en: A sample command
  zh: 示例命令

flags:
  - long: verbose
    short: v
    description: Enable verbose output
  - long: output
    short: o
    description: Write result to a file
    takes_value: true

flag_combos:
  - combo: vo
    description: Verbose output to a file

subcommands:
  - name: run
    description: Run the sample task
    path_completion: true

examples:
  - cmd: sample run --verbose
    scenario:
      en: Run the task and show progress
      zh: 运行任务并显示进度
`

// InitSampleParams contains parameters for the InitSample command
type InitSampleParams struct {
	Dir string // target directory; defaults to ./definitions
}

// InitSample writes a commented sample definition file, refusing to
// overwrite an existing one.
func InitSample(params InitSampleParams) error {
	dir := params.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		dir = filepath.Join(cwd, catalog.DefinitionsDirName)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return serrors.NewCatalogError(dir, "failed to create definitions directory", err)
	}

	path := filepath.Join(dir, "sample.yml")
	if _, err := os.Stat(path); err == nil {
		return serrors.NewAlreadyExistsError(path, fmt.Sprintf("definition file already exists: %s", path))
	}

	if err := os.WriteFile(path, []byte(sampleDefinition), 0644); err != nil {
		return serrors.NewCatalogError(path, "failed to write sample definition", err)
	}

	fmt.Printf("Created %s\n", path)
	return nil
}
