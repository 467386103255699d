package quizgen

import "github.com/abhisek/quizbee/internal/llm"

// QuizSchema is the JSON Schema the extracted payload must satisfy before
// field-level validation runs. It pins the overall shape; uniqueness of
// question ids and label membership of correct_answer are checked in Go.
//
// explanation is deliberately not required: an absent key is tolerated and
// coerced to the empty string.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A multiple-choice quiz with four labeled options per question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"quiz_title": map[string]any{
				"type":        "string",
				"description": "The quiz title shown to the learner",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Positive integer, unique within the quiz",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question prompt",
						},
						"options": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"A": map[string]any{"type": "string"},
								"B": map[string]any{"type": "string"},
								"C": map[string]any{"type": "string"},
								"D": map[string]any{"type": "string"},
							},
							"required":             []any{"A", "B", "C", "D"},
							"additionalProperties": false,
							"description":          "Exactly four options labeled A-D",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "The label of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Child-friendly explanation of the answer",
						},
					},
					"required": []any{"id", "question", "options", "correct_answer"},
				},
			},
		},
		"required": []any{"quiz_title", "questions"},
	},
}
