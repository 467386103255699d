package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var answerSchema = &Schema{
	Name:        "test-answer",
	Description: "A labeled answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"label": map[string]any{
				"type": "string",
				"enum": []any{"A", "B", "C", "D"},
			},
			"reason": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"label", "reason"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"label": "B", "reason": "closest match"}`)

	if err := ValidateJSON(answerSchema, raw); err != nil {
		t.Errorf("expected valid response, got %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := ValidateJSON(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema must skip validation, got %v", err)
	}
}

func TestValidateResponse_InvalidJSON(t *testing.T) {
	err := ValidateJSON(answerSchema, json.RawMessage(`{"label": `))

	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponse_SchemaViolation(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"missing required field", `{"label": "A"}`},
		{"enum violation", `{"label": "E", "reason": "x"}`},
		{"extra field", `{"label": "A", "reason": "x", "score": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(answerSchema, json.RawMessage(tt.raw))

			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %v", err)
			}
		})
	}
}

func TestValidateResponse_CachesCompiledSchema(t *testing.T) {
	raw := json.RawMessage(`{"label": "A", "reason": "x"}`)

	if err := ValidateJSON(answerSchema, raw); err != nil {
		t.Fatalf("first validation failed: %v", err)
	}
	if _, ok := schemaCache.Load(answerSchema.Name); !ok {
		t.Error("expected compiled schema to be cached")
	}
	if err := ValidateJSON(answerSchema, raw); err != nil {
		t.Errorf("cached validation failed: %v", err)
	}
}
