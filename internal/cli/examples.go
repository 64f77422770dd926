package cli

import (
	"fmt"
	"io"

	"github.com/smartcmd/smartcmd/internal/logger"
	"github.com/smartcmd/smartcmd/internal/serrors"
	"github.com/smartcmd/smartcmd/internal/view"
)

// ExamplesParams contains parameters for the Examples command
type ExamplesParams struct {
	Path           string // space-separated command path, e.g. "git commit"
	Lang           string
	DefinitionsDir string
	LogLevel       string
	Output         io.Writer
}

// Examples lists a command's example invocations with localized scenarios.
func Examples(params ExamplesParams) error {
	if params.Path == "" {
		return fmt.Errorf("command path required")
	}

	log := logger.New(params.LogLevel, nil)
	cat := loadCatalog(params.DefinitionsDir, log)

	node, ok := cat.FindPath(params.Path)
	if !ok {
		return serrors.NewNotFoundError(params.Path, fmt.Sprintf("unknown command: %s", params.Path))
	}

	fmt.Fprint(output(params.Output), view.Examples(params.Path, node.Examples, params.Lang))
	return nil
}
