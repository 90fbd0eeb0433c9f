package questions

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const bankSchemaURL = "schema://question-bank.json"

// bankSchema describes the on-disk question bank document.
var bankSchema = map[string]any{
	"type":     "object",
	"required": []any{"id", "version", "questions"},
	"properties": map[string]any{
		"id":      map[string]any{"type": "string", "minLength": 1},
		"version": map[string]any{"type": "string", "minLength": 1},
		"lang":    map[string]any{"type": "string"},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "text", "keyed", "domain", "facet"},
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"text":   map[string]any{"type": "string", "minLength": 1},
					"keyed":  map[string]any{"enum": []any{"plus", "minus"}},
					"domain": map[string]any{"enum": []any{"N", "E", "O", "A", "C"}},
					"facet":  map[string]any{"type": "integer", "minimum": 1, "maximum": 6},
					"num":    map[string]any{"type": "integer"},
					"choices": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type":     "object",
							"required": []any{"text", "score"},
							"properties": map[string]any{
								"text":  map[string]any{"type": "string"},
								"score": map[string]any{"type": "integer"},
								"color": map[string]any{"type": "integer"},
							},
						},
					},
				},
			},
		},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateDocument checks a decoded bank document against bankSchema.
// The document must be in encoding/json form (maps, slices, float64).
func validateDocument(doc any) error {
	compileOnce.Do(func() {
		// The compiler expects encoding/json values, not Go literals.
		def, err := toJSONValue(bankSchema)
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(bankSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(bankSchemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile bank schema: %w", compileErr)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// toJSONValue normalises a YAML-decoded value into the shape encoding/json
// would produce.
func toJSONValue(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
