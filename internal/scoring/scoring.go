// Package scoring evaluates a completed answer set against a quiz.
package scoring

import (
	"fmt"
	"math"

	"github.com/abhisek/quizbee/internal/quizgen"
)

// IncompleteAnswerError reports a submission with unanswered questions.
// The session stays in the answering phase; nothing is scored or persisted.
type IncompleteAnswerError struct {
	Unanswered int
}

func (e *IncompleteAnswerError) Error() string {
	return fmt.Sprintf("submission incomplete: %d unanswered question(s)", e.Unanswered)
}

// MissedItem describes one incorrectly answered question for review.
// Selected and Correct are formatted "label. option text".
type MissedItem struct {
	Question    string
	Selected    string
	Correct     string
	Explanation string
}

// Result is the outcome of scoring one submission.
type Result struct {
	Score  int
	Total  int
	Missed []MissedItem // in quiz order; len(Missed) == Total - Score
}

// Percentage returns the score as a percentage rounded to two decimals.
func (r *Result) Percentage() float64 {
	if r.Total == 0 {
		return 0
	}
	return round2(float64(r.Score) / float64(r.Total) * 100)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Score compares the learner's selections against the quiz, in quiz order.
// answers maps question id to the selected label; a missing or empty entry
// means unanswered and yields an IncompleteAnswerError. Pure function:
// identical inputs always produce an identical Result.
func Score(quiz *quizgen.Quiz, answers map[int]string) (*Result, error) {
	unanswered := 0
	for _, q := range quiz.Questions {
		if answers[q.ID] == "" {
			unanswered++
		}
	}
	if unanswered > 0 {
		return nil, &IncompleteAnswerError{Unanswered: unanswered}
	}

	result := &Result{Total: len(quiz.Questions)}

	for _, q := range quiz.Questions {
		selected := answers[q.ID]
		if selected == q.CorrectLabel {
			result.Score++
			continue
		}
		result.Missed = append(result.Missed, MissedItem{
			Question:    q.Prompt,
			Selected:    q.OptionText(selected),
			Correct:     q.OptionText(q.CorrectLabel),
			Explanation: q.Explanation,
		})
	}

	return result, nil
}
