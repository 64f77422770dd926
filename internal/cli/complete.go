package cli

import (
	"fmt"
	"io"

	"github.com/smartcmd/smartcmd/internal/complete"
	"github.com/smartcmd/smartcmd/internal/logger"
	"github.com/smartcmd/smartcmd/internal/timing"
)

// CompleteParams contains parameters for the Complete command
type CompleteParams struct {
	Line           string
	Cursor         int // -1 means end of line
	Lang           string
	DefinitionsDir string
	LogLevel       string
	Output         io.Writer
}

// Complete resolves the input line against the catalog and prints one
// suggestion per line as "value<TAB>description", the format shell
// completion functions consume. It never fails on a non-matching line;
// no suggestions simply produces no output.
func Complete(params CompleteParams) error {
	log := logger.New(params.LogLevel, nil)
	timer := timing.NewTimer()

	cursor := params.Cursor
	if cursor < 0 || cursor > len(params.Line) {
		cursor = len(params.Line)
	}

	cat := loadCatalog(params.DefinitionsDir, log)
	timer.Mark("load")

	completer := complete.New(cat)
	suggestions := completer.Complete(params.Line, cursor, params.Lang)
	timer.Mark("complete")

	w := output(params.Output)
	for _, s := range suggestions {
		if s.Description != "" {
			fmt.Fprintf(w, "%s\t%s\n", s.Value, s.Description)
		} else {
			fmt.Fprintln(w, s.Value)
		}
	}

	log.Debug().
		Str("line", params.Line).
		Int("cursor", cursor).
		Int("suggestions", len(suggestions)).
		Str("timing", timer.Summary()).
		Msg("Completion done")

	return nil
}
