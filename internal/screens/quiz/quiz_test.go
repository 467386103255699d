package quiz

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizbee/internal/history"
	"github.com/abhisek/quizbee/internal/quizgen"
	"github.com/abhisek/quizbee/internal/session"
)

type stubGen struct {
	quiz *quizgen.Quiz
}

func (g stubGen) Generate(context.Context, quizgen.Params) (*quizgen.Quiz, error) {
	return g.quiz, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(t *testing.T) (*QuizScreen, *session.Session) {
	t.Helper()

	quiz := &quizgen.Quiz{
		Title: "Capitals",
		Questions: []quizgen.Question{
			{
				ID:           1,
				Prompt:       "Capital of France?",
				Options:      map[string]string{"A": "Paris", "B": "Lyon", "C": "Nice", "D": "Lille"},
				CorrectLabel: "A",
				Explanation:  "Paris is the capital of France.",
			},
			{
				ID:           2,
				Prompt:       "Capital of Japan?",
				Options:      map[string]string{"A": "Osaka", "B": "Tokyo", "C": "Kyoto", "D": "Nagoya"},
				CorrectLabel: "B",
				Explanation:  "Tokyo is the capital of Japan.",
			},
		},
	}

	store := history.NewStore(filepath.Join(t.TempDir(), "quiz_history.json"))
	sess := session.New(stubGen{quiz: quiz}, store)
	if err := sess.Generate(t.Context(), quizgen.Params{Name: "Asha", Age: "9", Topic: "Capitals", Difficulty: "Easy", Count: 2}); err != nil {
		t.Fatal(err)
	}

	return New(sess), sess
}

func TestSelectRecordsAnswer(t *testing.T) {
	q, sess := testScreen(t)

	// Cursor starts on option A; enter chooses it.
	q.Update(specialKey(tea.KeyEnter))

	if sess.Selected(1) != "A" {
		t.Errorf("expected selection A for question 1, got %q", sess.Selected(1))
	}
	if sess.State() != session.StateAnswering {
		t.Errorf("expected answering state, got %s", sess.State())
	}
}

func TestIncompleteSubmitWarns(t *testing.T) {
	q, sess := testScreen(t)
	q.Update(specialKey(tea.KeyEnter))

	q.Update(keyPress('s'))

	if q.mode != modeAnswering {
		t.Error("incomplete submit must stay on the answering view")
	}
	if !strings.Contains(q.warn, "1 left") {
		t.Errorf("expected unanswered-count warning, got %q", q.warn)
	}
	if sess.State() != session.StateAnswering {
		t.Errorf("expected answering state, got %s", sess.State())
	}
}

func TestFullFlowToResults(t *testing.T) {
	q, sess := testScreen(t)

	// Q1: choose A (correct).
	q.Update(specialKey(tea.KeyEnter))
	// Q2: choose C (wrong).
	q.Update(specialKey(tea.KeyRight))
	q.Update(specialKey(tea.KeyDown))
	q.Update(specialKey(tea.KeyDown))
	q.Update(specialKey(tea.KeyEnter))

	q.Update(keyPress('s'))

	if q.mode != modeResults {
		t.Fatal("expected results view after a complete submit")
	}
	if sess.State() != session.StateSubmitted {
		t.Errorf("expected submitted state, got %s", sess.State())
	}

	result := sess.Result()
	if result == nil || result.Score != 1 {
		t.Fatalf("expected score 1, got %+v", result)
	}

	view := q.View(100, 40)
	if !strings.Contains(view, "You scored 1 out of 2") {
		t.Error("results view must show the score")
	}
	if !strings.Contains(view, "C. Kyoto") || !strings.Contains(view, "B. Tokyo") {
		t.Error("results view must show the missed answer pair")
	}
}

func TestRetakePresentsFreshChoices(t *testing.T) {
	q, sess := testScreen(t)

	q.Update(specialKey(tea.KeyEnter))
	q.Update(specialKey(tea.KeyRight))
	q.Update(specialKey(tea.KeyEnter))
	q.Update(keyPress('s'))

	if q.mode != modeResults {
		t.Fatal("expected results view")
	}

	q.Update(keyPress('r'))

	if q.mode != modeAnswering {
		t.Error("retake must return to the answering view")
	}
	if q.idx != 0 {
		t.Error("retake must rewind to the first question")
	}
	if sess.Selected(1) != "" {
		t.Error("retake must clear recorded answers")
	}

	group := q.group(sess.Quiz().Questions[0])
	if group.HasChoice() {
		t.Error("retake must present an unselected choice widget")
	}
}

func TestHeaderStatusCountsAnswers(t *testing.T) {
	q, _ := testScreen(t)

	if got := q.HeaderStatus(); got != "0/2 answered" {
		t.Errorf("expected 0/2 answered, got %q", got)
	}

	q.Update(specialKey(tea.KeyEnter))

	if got := q.HeaderStatus(); got != "1/2 answered" {
		t.Errorf("expected 1/2 answered, got %q", got)
	}
}
