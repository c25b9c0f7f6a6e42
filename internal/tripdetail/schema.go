package tripdetail

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Schema returns the JSON-Schema (draft 2020-12 subset) for the trip
// payload as a generic map, shared between producer and consumer.
func Schema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"schemaVersion":   map[string]any{"type": "integer", "minimum": 1},
			"tripNumber":      map[string]any{"type": "string", "minLength": 1},
			"billOfLading":    map[string]any{"type": "string"},
			"driverName":      map[string]any{"type": "string"},
			"driverFirstName": map[string]any{"type": "string"},
			"driverLastName":  map[string]any{"type": "string"},
			"shipperName":     map[string]any{"type": "string"},
			"origin":          map[string]any{"type": "string"},
			"destination":     map[string]any{"type": "string"},
			"deliveryDate":    map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"weight":          map[string]any{"type": "number", "minimum": 0},
			"miles":           map[string]any{"type": "number", "minimum": 0},
			"serviceItems": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"description": map[string]any{"type": "string"},
						"amount":      decimalProp(),
					},
					"required": []string{"description", "amount"},
				},
			},
			"netBalance": decimalProp(),
		},
		"required": []string{"schemaVersion", "tripNumber", "netBalance"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{
		"type":    "string",
		"pattern": `^-?\d+(\.\d{1,2})?$`,
	}
}

// Validate checks a raw trip payload against Schema.
func Validate(raw []byte) error {
	b, err := json.Marshal(Schema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("tripdetail.schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("tripdetail.schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("trip payload does not match schema: %w", err)
	}
	return nil
}
