package cli

import (
	"fmt"
	"io"

	"github.com/smartcmd/smartcmd/internal/logger"
	"github.com/smartcmd/smartcmd/internal/view"
)

// ListParams contains parameters for the List command
type ListParams struct {
	Lang           string
	DefinitionsDir string
	LogLevel       string
	Output         io.Writer
}

// List renders the loaded catalog tree with descriptions.
func List(params ListParams) error {
	log := logger.New(params.LogLevel, nil)
	cat := loadCatalog(params.DefinitionsDir, log)
	fmt.Fprint(output(params.Output), view.CatalogTree(cat, params.Lang))
	return nil
}
