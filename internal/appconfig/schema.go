// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema constrains the config file shape before unmarshaling, so a
// typo'd baseline or a palette entry with the wrong type fails loudly at
// startup instead of silently becoming a zero value.
var configSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"properties": map[string]any{
		"dataFile":      map[string]any{"type": "string"},
		"logFile":       map[string]any{"type": "string"},
		"debug":         map[string]any{"type": "boolean"},
		"humanPlatform": map[string]any{"type": "string"},
		"columns": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"question": map[string]any{"type": "string"},
				"category": map[string]any{"type": "string"},
				"platform": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": 1,
				},
				"model":    map[string]any{"type": "string"},
				"correct":  map[string]any{"type": "string"},
				"cost":     map[string]any{"type": "string"},
				"duration": map[string]any{"type": "string"},
			},
		},
		"baselines": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"humanAveragePct": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"passBandLowPct":  map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"passBandHighPct": map[string]any{"type": "number", "minimum": 0, "maximum": 100},
				"humanRawScore":   map[string]any{"type": "number", "minimum": 0},
				"maxRawScore":     map[string]any{"type": "number", "minimum": 0},
				"passBandLowRaw":  map[string]any{"type": "number", "minimum": 0},
				"passBandHighRaw": map[string]any{"type": "number", "minimum": 0},
			},
		},
		"categoryAliases": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string"},
		},
		"palette": map[string]any{
			"type":                 "object",
			"additionalProperties": map[string]any{"type": "string", "pattern": "^#[0-9a-fA-F]{6}$"},
		},
	},
}

// validate checks raw config bytes against the schema and reports every
// violation in one error.
func validate(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("could not validate config: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
}
