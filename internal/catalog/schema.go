package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// GetSchemaJSON returns the JSON Schema for Smartcmd definition files
func GetSchemaJSON() string {
	return schemaJSON
}

// SchemaError is one schema violation found in a definition file
type SchemaError struct {
	Field   string
	Message string
}

// SchemaResult contains the result of validating a file against the schema
type SchemaResult struct {
	Valid  bool
	Errors []SchemaError
}

// ValidateWithSchema validates definition file content against the embedded
// JSON Schema. YAML and TOML documents are converted to a JSON-compatible
// tree first. Syntax errors are reported as schema errors on the "syntax"
// field rather than returned as Go errors, so callers can render them the
// same way as structural violations.
func ValidateWithSchema(path string, content []byte) (*SchemaResult, error) {
	result := &SchemaResult{
		Valid:  true,
		Errors: []SchemaError{},
	}

	var data interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(content, &data); err != nil {
			return syntaxError(result, "Invalid YAML syntax: %v", err), nil
		}
	case ".json":
		if err := json.Unmarshal(content, &data); err != nil {
			return syntaxError(result, "Invalid JSON syntax: %v", err), nil
		}
	case ".toml":
		m, err := toml.Parser().Unmarshal(content)
		if err != nil {
			return syntaxError(result, "Invalid TOML syntax: %v", err), nil
		}
		data = m
	default:
		return nil, fmt.Errorf("unsupported definition format: %s", filepath.Ext(path))
	}

	schemaLoader := gojsonschema.NewStringLoader(schemaJSON)
	documentLoader := gojsonschema.NewGoLoader(data)

	validation, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	if !validation.Valid() {
		result.Valid = false
		for _, desc := range validation.Errors() {
			result.Errors = append(result.Errors, SchemaError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
	}

	return result, nil
}

func syntaxError(result *SchemaResult, format string, err error) *SchemaResult {
	result.Valid = false
	result.Errors = append(result.Errors, SchemaError{
		Field:   "syntax",
		Message: fmt.Sprintf(format, err),
	})
	return result
}
