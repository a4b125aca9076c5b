package oracle

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// responseSchema is the contract the oracle's response must satisfy before it
// is decoded. Any deviation is treated as unavailability, not repaired.
const responseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["category_id", "confidence", "technologies", "reasoning"],
  "properties": {
    "category_id": {"type": "string", "minLength": 1},
    "confidence": {"type": "number", "minimum": 0, "maximum": 1},
    "technologies": {
      "type": "array",
      "items": {"type": "string"}
    },
    "reasoning": {"type": "string"}
  },
  "additionalProperties": true
}`

// validateResponseShape checks the raw JSON response against the schema.
func validateResponseShape(jsonText string) error {
	schemaLoader := gojsonschema.NewStringLoader(responseSchema)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed to run: %w", err)
	}

	if !result.Valid() {
		first := ""
		if errs := result.Errors(); len(errs) > 0 {
			first = errs[0].String()
		}
		return fmt.Errorf("response does not match expected shape: %s", first)
	}

	return nil
}
