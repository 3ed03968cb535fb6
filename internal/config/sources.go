package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/jobfeed/internal/jobs"
)

// sourcesSchema validates a user-supplied sources file. The id enum is fixed
// because each id selects a registered parser strategy.
const sourcesSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "array",
	"minItems": 1,
	"items": {
		"type": "object",
		"required": ["id", "name", "document_url", "root_url", "table"],
		"additionalProperties": false,
		"properties": {
			"id": {
				"type": "string",
				"enum": ["simplify", "zapply", "zapply_swe_2026"]
			},
			"name": {"type": "string", "minLength": 1},
			"document_url": {"type": "string", "pattern": "^https?://"},
			"root_url": {"type": "string", "pattern": "^https?://"},
			"table": {"type": "string", "pattern": "^[a-z][a-z0-9_]*$"}
		}
	}
}`

// SourcesError reports where a sources file failed schema validation.
type SourcesError struct {
	Path   string
	Errors []string
}

func (e *SourcesError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid sources file %s:\n", e.Path)
	for i, msg := range e.Errors {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, msg)
	}
	return sb.String()
}

// LoadSources reads a JSON sources file, validates it against the embedded
// schema, and returns the source registry it describes.
func LoadSources(path string) ([]jobs.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sources file %s: %w", path, err)
	}

	schemaLoader := gojsonschema.NewStringLoader(sourcesSchema)
	documentLoader := gojsonschema.NewStringLoader(string(data))

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("failed to validate sources file %s: %w", path, err)
	}

	if !result.Valid() {
		srcErr := &SourcesError{Path: path}
		for _, desc := range result.Errors() {
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			srcErr.Errors = append(srcErr.Errors, fmt.Sprintf("%s: %s", field, desc.Description()))
		}
		return nil, srcErr
	}

	var sources []jobs.Source
	if err := json.Unmarshal(data, &sources); err != nil {
		return nil, fmt.Errorf("failed to parse sources file %s: %w", path, err)
	}
	return sources, nil
}
