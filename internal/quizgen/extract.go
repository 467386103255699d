package quizgen

import (
	"encoding/json"
	"strings"
)

// ExtractJSON recovers a single JSON object from raw LLM text. The text may
// be wrapped in markdown code fences or surrounded by conversational prose.
//
// The payload is taken to be the substring from the first "{" to the last
// "}". That assumes the outermost brace pair delimits the entire object;
// stray braces in surrounding prose can select the wrong boundaries, in
// which case the slice fails to parse and extraction reports failure rather
// than attempting any bracket balancing.
//
// Returns (payload, true) when the slice parses as JSON, (nil, false)
// otherwise. No schema validation happens here; that is the generator's job.
func ExtractJSON(raw string) (json.RawMessage, bool) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, false
	}

	// Strip code fences, including a language-tagged opening fence.
	if strings.HasPrefix(text, "```") {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, false
	}

	payload := []byte(text[start : end+1])
	if !json.Valid(payload) {
		return nil, false
	}

	return json.RawMessage(payload), true
}
