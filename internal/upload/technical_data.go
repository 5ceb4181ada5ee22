// Package upload parses uploaded technical-data JSON documents and validates
// them against the embedded schema.
package upload

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/visiblehq/visibility-insights/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed technical_data.schema.json
var technicalDataSchema string

// ValidationError represents schema validation failures with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single validation failure at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("technical data validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ParseTechnicalData validates raw JSON against the technical-data schema and
// decodes it. Unknown fields are rejected by the schema; missing optional
// fields decode as zero values.
func ParseTechnicalData(raw []byte) (*types.TechnicalData, error) {
	schemaLoader := gojsonschema.NewStringLoader(technicalDataSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate technical data: %w", err)
	}

	if !result.Valid() {
		ve := &ValidationError{}
		for _, desc := range result.Errors() {
			ve.Errors = append(ve.Errors, FieldError{
				Field:   desc.Field(),
				Message: desc.Description(),
			})
		}
		return nil, ve
	}

	var data types.TechnicalData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode technical data: %w", err)
	}
	return &data, nil
}
