package cli

import (
	"fmt"
	"io"

	"github.com/smartcmd/smartcmd/internal/logger"
	"github.com/smartcmd/smartcmd/internal/search"
	"github.com/smartcmd/smartcmd/internal/view"
)

// SearchParams contains parameters for the Search command
type SearchParams struct {
	Query          string
	Lang           string
	Limit          int
	DefinitionsDir string
	LogLevel       string
	Output         io.Writer
}

// Search runs a fuzzy full-catalog search and renders the ranked results.
func Search(params SearchParams) error {
	if params.Query == "" {
		return fmt.Errorf("search query required")
	}

	log := logger.New(params.LogLevel, nil)
	cat := loadCatalog(params.DefinitionsDir, log)

	index := search.NewIndex(cat, params.Lang)
	results := index.Search(params.Query, params.Limit)

	log.Debug().
		Str("query", params.Query).
		Int("results", len(results)).
		Msg("Search done")

	fmt.Fprint(output(params.Output), view.SearchResults(params.Query, results))
	return nil
}
