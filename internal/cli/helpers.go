// Package cli implements the actions behind the smartcmd commands.
package cli

import (
	"io"
	"os"

	"github.com/smartcmd/smartcmd/internal/catalog"
	"github.com/smartcmd/smartcmd/internal/logger"
)

// loadCatalog assembles the catalog from the definition sources, an optional
// extra directory taking highest precedence. Per-file failures are logged
// and skipped; the catalog stays usable with whatever parsed (an empty
// catalog is a valid state).
func loadCatalog(extraDir string, log *logger.Logger) *catalog.Catalog {
	dirs := catalog.DefaultSourceDirs()
	if extraDir != "" {
		dirs = append([]string{extraDir}, dirs...)
	}

	cat, failures := catalog.NewLoader().Load(dirs...)
	for _, err := range failures {
		log.Warn().Err(err).Msg("Skipping definition file")
	}

	log.Debug().
		Int("roots", cat.Len()).
		Int("failures", len(failures)).
		Msg("Catalog loaded")

	return cat
}

func output(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
