package quizgen

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestExtractJSON_BarePayload(t *testing.T) {
	payload, ok := ExtractJSON(`{"quiz_title": "T", "questions": []}`)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if string(payload) != `{"quiz_title": "T", "questions": []}` {
		t.Errorf("unexpected payload: %s", payload)
	}
}

func TestExtractJSON_WrappedVariants(t *testing.T) {
	want := map[string]any{"quiz_title": "T"}

	tests := []struct {
		name string
		raw  string
	}{
		{"leading and trailing prose", "Sure! Here is your quiz: {\"quiz_title\": \"T\"} Enjoy!"},
		{"plain fences", "```\n{\"quiz_title\": \"T\"}\n```"},
		{"language-tagged fence", "```json\n{\"quiz_title\": \"T\"}\n```"},
		{"fence plus prose", "```json\n{\"quiz_title\": \"T\"}\n```\nLet me know if you need more."},
		{"surrounding whitespace", "\n\n  {\"quiz_title\": \"T\"}  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, ok := ExtractJSON(tt.raw)
			if !ok {
				t.Fatal("expected extraction to succeed")
			}

			var got map[string]any
			if err := json.Unmarshal(payload, &got); err != nil {
				t.Fatalf("extracted payload does not parse: %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestExtractJSON_SameAsDirectParse(t *testing.T) {
	direct := `{"quiz_title":"Space","questions":[{"id":1}]}`
	wrapped := "Here you go:\n```json\n" + direct + "\n```"

	fromWrapped, ok := ExtractJSON(wrapped)
	if !ok {
		t.Fatal("wrapped extraction failed")
	}
	fromDirect, ok := ExtractJSON(direct)
	if !ok {
		t.Fatal("direct extraction failed")
	}

	var a, b any
	if err := json.Unmarshal(fromWrapped, &a); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(fromDirect, &b); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("wrapped and direct extraction disagree")
	}
}

func TestExtractJSON_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty input", ""},
		{"whitespace only", "   \n\t "},
		{"no braces", "I could not produce a quiz, sorry."},
		{"opening brace only", "here it comes {"},
		{"closing before opening", "} oops {"},
		{"malformed between braces", `{"quiz_title": "T", "questions": `+"}"},
		{"unbalanced nesting", `{"a": {"b": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if payload, ok := ExtractJSON(tt.raw); ok {
				t.Errorf("expected failure, got payload %s", payload)
			}
		})
	}
}

func TestExtractJSON_BracesInsideStringsAreFine(t *testing.T) {
	raw := `{"quiz_title": "T", "questions": [{"id": 1, "explanation": "sets use {braces}"}]}`

	payload, ok := ExtractJSON(raw)
	if !ok {
		t.Fatal("expected extraction to succeed")
	}

	var parsed map[string]any
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("payload does not parse: %v", err)
	}
}
