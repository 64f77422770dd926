package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/smartcmd/smartcmd/internal/catalog"
	"github.com/smartcmd/smartcmd/internal/serrors"
	"github.com/smartcmd/smartcmd/internal/view"
)

// ValidateParams contains parameters for the Validate command
type ValidateParams struct {
	Path   string
	Output io.Writer
}

// Validate checks a definition file against the JSON Schema and the
// load-time invariants (sibling-name uniqueness, flag forms). It renders a
// report and returns a non-nil error when the file is invalid, so the CLI
// exits non-zero.
func Validate(params ValidateParams) error {
	if params.Path == "" {
		return fmt.Errorf("definition file required")
	}

	content, err := os.ReadFile(params.Path)
	if err != nil {
		return fmt.Errorf("failed to read definition file: %w", err)
	}

	result, err := catalog.ValidateWithSchema(params.Path, content)
	if err != nil {
		return err
	}

	errs := result.Errors
	if result.Valid {
		// Schema passed; run the loader's own invariant checks too.
		if _, err := catalog.NewLoader().LoadFile(params.Path); err != nil {
			var verr *serrors.ValidationError
			if errors.As(err, &verr) {
				errs = append(errs, catalog.SchemaError{Field: verr.Field, Message: verr.Error()})
			} else {
				return err
			}
		}
	}

	fmt.Fprint(output(params.Output), view.ValidationReport(params.Path, errs))

	if len(errs) > 0 {
		return fmt.Errorf("validation failed")
	}
	return nil
}
