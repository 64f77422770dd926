package cli

import (
	"fmt"
	"os"

	"github.com/smartcmd/smartcmd/internal/catalog"
)

// SchemaParams contains parameters for the Schema command
type SchemaParams struct {
	OutputPath string // empty prints to stdout
}

// Schema prints or writes the embedded JSON Schema for definition files.
func Schema(params SchemaParams) error {
	schema := catalog.GetSchemaJSON()

	if params.OutputPath == "" {
		fmt.Print(schema)
		return nil
	}

	if err := os.WriteFile(params.OutputPath, []byte(schema), 0644); err != nil {
		return fmt.Errorf("failed to write schema: %w", err)
	}

	fmt.Printf("Schema written to %s\n", params.OutputPath)
	return nil
}
