package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const submitSchemaURL = "schema://submit-request.json"

// submitSchema describes the POST /api/results body.
var submitSchema = map[string]any{
	"type":     "object",
	"required": []any{"testId", "timeElapsed", "dateStamp", "answers"},
	"properties": map[string]any{
		"testId":      map[string]any{"type": "string", "minLength": 1},
		"lang":        map[string]any{"type": "string"},
		"invalid":     map[string]any{"type": "boolean"},
		"timeElapsed": map[string]any{"type": "integer", "minimum": 0},
		"dateStamp":   map[string]any{"type": "string", "format": "date-time"},
		"answers": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type":     "object",
				"required": []any{"id", "score", "domain", "facet"},
				"properties": map[string]any{
					"id":     map[string]any{"type": "string", "minLength": 1},
					"score":  map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
					"domain": map[string]any{"enum": []any{"N", "E", "O", "A", "C"}},
					"facet":  map[string]any{"type": "integer", "minimum": 1, "maximum": 6},
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

// validateSubmission checks a raw request body against submitSchema.
func validateSubmission(body []byte) error {
	compileOnce.Do(func() {
		b, err := json.Marshal(submitSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		def, err := jsonschema.UnmarshalJSON(bytes.NewReader(b))
		if err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		c.AssertFormat()
		if err := c.AddResource(submitSchemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(submitSchemaURL)
	})
	if compileErr != nil {
		return fmt.Errorf("compile submit schema: %w", compileErr)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := compiledSchema.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
