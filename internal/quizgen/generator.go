package quizgen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/quizbee/internal/llm"
)

// GenerationError reports a failed quiz generation: the LLM call failed,
// returned unusable text, or returned a structurally invalid payload.
// Recoverable by a manual retry from the UI.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("quiz generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("quiz generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator produces quizzes from an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// quizOutput mirrors the JSON payload the LLM is asked to produce.
type quizOutput struct {
	QuizTitle string           `json:"quiz_title"`
	Questions []questionOutput `json:"questions"`
}

type questionOutput struct {
	ID            int               `json:"id"`
	Question      string            `json:"question"`
	Options       map[string]string `json:"options"`
	CorrectAnswer string            `json:"correct_answer"`
	Explanation   string            `json:"explanation"`
}

// Generate builds the prompt, calls the provider once and turns the raw
// completion into a validated Quiz. Every failure surfaces as a
// *GenerationError; no retry is attempted here — the learner retries
// manually.
func (g *Generator) Generate(ctx context.Context, p Params) (*Quiz, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: BuildPrompt(p)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, &GenerationError{Reason: "LLM call failed", Err: err}
	}

	payload, ok := ExtractJSON(string(resp.Content))
	if !ok {
		return nil, &GenerationError{Reason: "invalid JSON"}
	}

	if err := llm.ValidateJSON(QuizSchema, payload); err != nil {
		return nil, &GenerationError{Reason: "malformed quiz payload", Err: err}
	}

	var raw quizOutput
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, &GenerationError{Reason: "invalid JSON", Err: err}
	}

	quiz, err := buildQuiz(raw)
	if err != nil {
		return nil, err
	}

	return quiz, nil
}

// buildQuiz validates the decoded payload and normalizes it into a Quiz.
// The schema already pinned the shape; this layer enforces what JSON Schema
// cannot express cheaply: positive unique ids, non-empty texts, and the
// correct label pointing at an existing option.
func buildQuiz(raw quizOutput) (*Quiz, error) {
	if raw.QuizTitle == "" {
		return nil, &GenerationError{Reason: "missing quiz_title"}
	}
	if len(raw.Questions) == 0 {
		return nil, &GenerationError{Reason: "questions is empty"}
	}

	quiz := &Quiz{
		Title:     raw.QuizTitle,
		Questions: make([]Question, 0, len(raw.Questions)),
	}

	seen := make(map[int]bool, len(raw.Questions))
	for i, rq := range raw.Questions {
		if rq.ID <= 0 {
			return nil, &GenerationError{
				Reason: fmt.Sprintf("question %d: id must be a positive integer", i+1),
			}
		}
		if seen[rq.ID] {
			return nil, &GenerationError{
				Reason: fmt.Sprintf("question %d: duplicate id %d", i+1, rq.ID),
			}
		}
		seen[rq.ID] = true

		if rq.Question == "" {
			return nil, &GenerationError{
				Reason: fmt.Sprintf("question %d: empty question text", rq.ID),
			}
		}
		if len(rq.Options) != len(Labels) {
			return nil, &GenerationError{
				Reason: fmt.Sprintf("question %d: expected exactly %d options, got %d", rq.ID, len(Labels), len(rq.Options)),
			}
		}
		for _, label := range Labels {
			if rq.Options[label] == "" {
				return nil, &GenerationError{
					Reason: fmt.Sprintf("question %d: missing or empty option %s", rq.ID, label),
				}
			}
		}
		if _, ok := rq.Options[rq.CorrectAnswer]; !ok {
			return nil, &GenerationError{
				Reason: fmt.Sprintf("question %d: correct_answer %q is not an option label", rq.ID, rq.CorrectAnswer),
			}
		}

		// Explanation may be absent; an empty string is tolerated.
		quiz.Questions = append(quiz.Questions, Question{
			ID:           rq.ID,
			Prompt:       rq.Question,
			Options:      rq.Options,
			CorrectLabel: rq.CorrectAnswer,
			Explanation:  rq.Explanation,
		})
	}

	return quiz, nil
}
