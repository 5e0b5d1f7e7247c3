package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// catalogSchema is the JSON Schema the catalog document must satisfy.
// Per-kind field requirements are enforced by liftActivity; the schema
// guards the overall document shape.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"themes": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"name":        map[string]any{"type": "string", "minLength": 1},
					"emoji":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"background":  map[string]any{"type": "string"},
					"activities": map[string]any{
						"type": "object",
						"additionalProperties": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"type":        map[string]any{"type": "string", "minLength": 1},
									"level":       map[string]any{"type": "integer", "minimum": 1},
									"instruction": map[string]any{"type": "string"},
								},
								"required": []any{"type"},
							},
						},
					},
				},
				"required": []any{"id", "name", "activities"},
			},
		},
		"vocabulary": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"emoji":    map[string]any{"type": "string"},
					"category": map[string]any{"type": "string"},
				},
				"required": []any{"emoji"},
			},
		},
	},
	"required": []any{"themes", "vocabulary"},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateCatalog checks raw catalog JSON against the schema.
func validateCatalog(data []byte) error {
	compileOnce.Do(func() {
		compiledSchema, compileErr = compileCatalogSchema()
	})
	if compileErr != nil {
		return fmt.Errorf("compile schema: %w", compileErr)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := compiledSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileCatalogSchema() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(catalogSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://catalog.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	return c.Compile(schemaURL)
}
