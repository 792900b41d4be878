package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrSchemaViolation marks a candidate that failed structural validation
// irrecoverably. Jobs hitting it are quarantined for manual review rather
// than discarded.
var ErrSchemaViolation = errors.New("candidate failed structural validation")

// candidateSchema constrains what we accept from the extraction service
// before anything touches the store.
func candidateSchema() map[string]any {
	decimal := map[string]any{"type": "string", "pattern": `^-?\d+(\.\d{1,2})?$`}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": true,
		"properties": map[string]any{
			"doc_type":       map[string]any{"type": "string", "enum": []string{"income", "expense"}},
			"invoice_class":  map[string]any{"type": "string", "enum": []string{"A", "B", "C"}},
			"invoice_number": map[string]any{"type": "string"},
			"issue_date":     map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
			"party_name":     map[string]any{"type": "string", "minLength": 1},
			"tax_id":         map[string]any{"type": "string"},
			"subtotal":       decimal,
			"tax_amount":     decimal,
			"total_amount":   decimal,
			"confidence":     map[string]any{"type": "number", "minimum": 0.0, "maximum": 1.0},
		},
		"required": []string{"doc_type", "party_name", "total_amount"},
	}
}

var compiledSchema = mustCompile(candidateSchema())

func mustCompile(schemaMap map[string]any) *jsonschema.Schema {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		panic(fmt.Sprintf("marshal candidate schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("candidate.json", bytes.NewReader(b)); err != nil {
		panic(fmt.Sprintf("add candidate schema: %v", err))
	}
	schema, err := compiler.Compile("candidate.json")
	if err != nil {
		panic(fmt.Sprintf("compile candidate schema: %v", err))
	}
	return schema
}

// ValidateCandidate checks raw candidate JSON against the schema. A failure
// wraps ErrSchemaViolation so callers can route the job to quarantine.
func ValidateCandidate(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("%w: not valid JSON: %v", ErrSchemaViolation, err)
	}
	if err := compiledSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return nil
}
