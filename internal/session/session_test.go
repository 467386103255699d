package session

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/abhisek/quizbee/internal/history"
	"github.com/abhisek/quizbee/internal/llm"
	"github.com/abhisek/quizbee/internal/quizgen"
	"github.com/abhisek/quizbee/internal/scoring"
)

// stubGenerator returns a fixed quiz or error without touching an LLM.
type stubGenerator struct {
	quiz      *quizgen.Quiz
	err       error
	calls     int
	sessionID string
}

func (g *stubGenerator) Generate(ctx context.Context, _ quizgen.Params) (*quizgen.Quiz, error) {
	g.calls++
	g.sessionID = llm.SessionFrom(ctx)
	if g.err != nil {
		return nil, g.err
	}
	return g.quiz, nil
}

func testQuiz() *quizgen.Quiz {
	return &quizgen.Quiz{
		Title: "Animals",
		Questions: []quizgen.Question{
			{
				ID:           1,
				Prompt:       "Fastest land animal?",
				Options:      map[string]string{"A": "Cheetah", "B": "Lion", "C": "Horse", "D": "Ostrich"},
				CorrectLabel: "A",
				Explanation:  "Cheetahs sprint up to 100 km/h.",
			},
			{
				ID:           2,
				Prompt:       "Largest animal ever?",
				Options:      map[string]string{"A": "Elephant", "B": "Blue whale", "C": "T. rex", "D": "Giraffe"},
				CorrectLabel: "B",
				Explanation:  "Blue whales outweigh any dinosaur.",
			},
		},
	}
}

func testSession(t *testing.T, gen QuizGenerator) *Session {
	t.Helper()
	store := history.NewStore(filepath.Join(t.TempDir(), "quiz_history.json"))
	s := New(gen, store)
	s.now = func() time.Time {
		return time.Date(2026, 5, 1, 10, 30, 0, 0, time.Local)
	}
	return s
}

func generated(t *testing.T) (*Session, *stubGenerator) {
	t.Helper()
	gen := &stubGenerator{quiz: testQuiz()}
	s := testSession(t, gen)
	if err := s.Generate(t.Context(), quizgen.Params{Name: "Asha", Age: "9", Topic: "Animals", Difficulty: "Easy", Count: 2}); err != nil {
		t.Fatal(err)
	}
	return s, gen
}

func TestNew_StartsIdle(t *testing.T) {
	s := testSession(t, &stubGenerator{})

	if s.State() != StateIdle {
		t.Errorf("expected idle, got %s", s.State())
	}
	if s.Quiz() != nil {
		t.Error("expected no quiz")
	}
	if s.ID() == "" {
		t.Error("expected a session id")
	}
}

func TestGenerate_StampsSessionOnContext(t *testing.T) {
	s, gen := generated(t)

	if gen.sessionID == "" {
		t.Fatal("expected the session id on the generation context")
	}
	if gen.sessionID != s.ID() {
		t.Errorf("context session %q does not match session id %q", gen.sessionID, s.ID())
	}
}

func TestGenerate_Success(t *testing.T) {
	s, _ := generated(t)

	if s.State() != StateGenerated {
		t.Errorf("expected generated, got %s", s.State())
	}
	if s.Quiz() == nil || s.Quiz().Title != "Animals" {
		t.Error("quiz not stored on session")
	}
	if s.RunID() != 0 {
		t.Errorf("fresh quiz must start at run 0, got %d", s.RunID())
	}
}

func TestGenerate_FailureClearsQuiz(t *testing.T) {
	s, _ := generated(t)
	if err := s.Answer(1, "A"); err != nil {
		t.Fatal(err)
	}

	failing := &stubGenerator{err: &quizgen.GenerationError{Reason: "invalid JSON"}}
	s.gen = failing

	err := s.Generate(t.Context(), quizgen.Params{Topic: "Space"})

	var genErr *quizgen.GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("expected GenerationError, got %v", err)
	}
	if s.Quiz() != nil {
		t.Error("failed generation must clear the quiz")
	}
	if s.State() != StateIdle {
		t.Errorf("expected idle after failure, got %s", s.State())
	}
	if s.Selected(1) != "" {
		t.Error("failed generation must reset answers")
	}
}

func TestAnswer_TransitionsToAnswering(t *testing.T) {
	s, _ := generated(t)

	if err := s.Answer(1, "A"); err != nil {
		t.Fatal(err)
	}
	if s.State() != StateAnswering {
		t.Errorf("expected answering, got %s", s.State())
	}
	if s.Selected(1) != "A" {
		t.Errorf("expected selection A, got %q", s.Selected(1))
	}

	// Selections can be changed before submit.
	if err := s.Answer(1, "C"); err != nil {
		t.Fatal(err)
	}
	if s.Selected(1) != "C" {
		t.Errorf("expected selection C, got %q", s.Selected(1))
	}
}

func TestAnswer_Validation(t *testing.T) {
	s, _ := generated(t)

	if err := s.Answer(99, "A"); err == nil {
		t.Error("expected error for unknown question id")
	}
	if err := s.Answer(1, "E"); err == nil {
		t.Error("expected error for invalid label")
	}

	idle := testSession(t, &stubGenerator{})
	if err := idle.Answer(1, "A"); !errors.Is(err, ErrNoQuiz) {
		t.Errorf("expected ErrNoQuiz, got %v", err)
	}
}

func TestSubmit_Incomplete(t *testing.T) {
	s, _ := generated(t)
	if err := s.Answer(1, "A"); err != nil {
		t.Fatal(err)
	}

	_, err := s.Submit()

	var incomplete *scoring.IncompleteAnswerError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteAnswerError, got %v", err)
	}
	if s.State() != StateAnswering {
		t.Errorf("incomplete submit must stay in answering, got %s", s.State())
	}
	if len(s.store.LoadAll()) != 0 {
		t.Error("incomplete submit must not persist an attempt")
	}
}

func TestSubmit_ScoresAndPersists(t *testing.T) {
	s, _ := generated(t)
	if err := s.Answer(1, "A"); err != nil {
		t.Fatal(err)
	}
	if err := s.Answer(2, "C"); err != nil {
		t.Fatal(err)
	}

	result, err := s.Submit()
	if err != nil {
		t.Fatal(err)
	}

	if result.Score != 1 || result.Total != 2 {
		t.Errorf("expected 1/2, got %d/%d", result.Score, result.Total)
	}
	if s.State() != StateSubmitted {
		t.Errorf("expected submitted, got %s", s.State())
	}

	records := s.store.LoadAll()
	if len(records) != 1 {
		t.Fatalf("expected one attempt record, got %d", len(records))
	}
	rec := records[0]
	if rec.Name != "Asha" || rec.Age != "9" {
		t.Errorf("unexpected identity on record: %+v", rec)
	}
	if rec.Score != 1 || rec.Total != 2 || rec.Percentage != 50 {
		t.Errorf("unexpected score fields on record: %+v", rec)
	}
	if rec.Time != "2026-05-01 10:30" {
		t.Errorf("unexpected timestamp %q", rec.Time)
	}
}

func TestSubmit_TwiceRejected(t *testing.T) {
	s, _ := generated(t)
	s.Answer(1, "A")
	s.Answer(2, "B")
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Submit(); !errors.Is(err, ErrAlreadySubmitted) {
		t.Errorf("expected ErrAlreadySubmitted, got %v", err)
	}
	if len(s.store.LoadAll()) != 1 {
		t.Error("double submit must not persist twice")
	}
}

func TestRetake_ResetsRunState(t *testing.T) {
	s, gen := generated(t)
	s.Answer(1, "A")
	s.Answer(2, "B")
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	before := s.Quiz()
	if err := s.Retake(); err != nil {
		t.Fatal(err)
	}

	if s.State() != StateAnswering {
		t.Errorf("expected answering after retake, got %s", s.State())
	}
	if s.RunID() != 1 {
		t.Errorf("expected run 1, got %d", s.RunID())
	}
	if s.Selected(1) != "" || s.Selected(2) != "" {
		t.Error("retake must clear the answer set")
	}
	if s.Result() != nil {
		t.Error("retake must clear the previous result")
	}
	if !reflect.DeepEqual(before, s.Quiz()) {
		t.Error("retake must keep the same quiz content")
	}
	if gen.calls != 1 {
		t.Errorf("retake must not call the generator, got %d calls", gen.calls)
	}
}

func TestRetake_OnlyFromSubmitted(t *testing.T) {
	s, _ := generated(t)

	if err := s.Retake(); !errors.Is(err, ErrNotSubmitted) {
		t.Errorf("expected ErrNotSubmitted, got %v", err)
	}
}

func TestRetakeThenResubmit(t *testing.T) {
	s, _ := generated(t)
	s.Answer(1, "A")
	s.Answer(2, "C")
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}
	if err := s.Retake(); err != nil {
		t.Fatal(err)
	}

	s.Answer(1, "A")
	s.Answer(2, "B")
	result, err := s.Submit()
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 2 {
		t.Errorf("expected perfect retake score, got %d", result.Score)
	}

	if len(s.store.LoadAll()) != 2 {
		t.Error("each submission must append its own attempt record")
	}
}

func TestGenerate_FromSubmittedReplacesQuiz(t *testing.T) {
	s, gen := generated(t)
	s.Answer(1, "A")
	s.Answer(2, "B")
	if _, err := s.Submit(); err != nil {
		t.Fatal(err)
	}

	if err := s.Generate(t.Context(), quizgen.Params{Name: "Asha", Age: "9", Topic: "Space", Difficulty: "Hard", Count: 2}); err != nil {
		t.Fatal(err)
	}

	if s.State() != StateGenerated {
		t.Errorf("expected generated, got %s", s.State())
	}
	if s.RunID() != 0 {
		t.Error("regeneration must reset the run counter")
	}
	if s.Result() != nil {
		t.Error("regeneration must clear the previous result")
	}
	if gen.calls != 2 {
		t.Errorf("expected 2 generator calls, got %d", gen.calls)
	}
}
