// Package session owns the quiz lifecycle state machine:
// generation, answering, submission, review and retake.
package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizbee/internal/history"
	"github.com/abhisek/quizbee/internal/llm"
	"github.com/abhisek/quizbee/internal/quizgen"
	"github.com/abhisek/quizbee/internal/scoring"
)

// State is the session phase.
type State int

const (
	// StateIdle means no quiz is loaded.
	StateIdle State = iota
	// StateGenerated means a quiz is loaded but no answer recorded yet.
	StateGenerated
	// StateAnswering means the learner is selecting answers.
	StateAnswering
	// StateSubmitted means the current run has been scored and persisted.
	StateSubmitted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGenerated:
		return "generated"
	case StateAnswering:
		return "answering"
	case StateSubmitted:
		return "submitted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrNoQuiz is returned for answer/submit calls with no quiz loaded.
var ErrNoQuiz = errors.New("no quiz loaded")

// ErrNotSubmitted is returned for a retake outside the submitted state.
var ErrNotSubmitted = errors.New("retake requires a submitted attempt")

// ErrAlreadySubmitted is returned when answering or re-submitting a
// submitted run; the learner must retake or regenerate first.
var ErrAlreadySubmitted = errors.New("attempt already submitted")

// QuizGenerator produces a quiz for learner parameters.
// *quizgen.Generator satisfies this; tests substitute their own.
type QuizGenerator interface {
	Generate(ctx context.Context, p quizgen.Params) (*quizgen.Quiz, error)
}

// Session is the single owner of the active quiz and the learner's
// in-progress answers. All mutation goes through its methods; the UI layer
// only reads. Not safe for concurrent use — one learner, one goroutine.
type Session struct {
	id    string
	gen   QuizGenerator
	store *history.Store
	now   func() time.Time

	state   State
	params  quizgen.Params
	quiz    *quizgen.Quiz
	answers map[int]string
	result  *scoring.Result
	runID   int
}

// New creates an idle session.
func New(gen QuizGenerator, store *history.Store) *Session {
	return &Session{
		id:    uuid.NewString(),
		gen:   gen,
		store: store,
		now:   time.Now,
	}
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// History returns the attempt store backing this session.
func (s *Session) History() *history.Store { return s.store }

// State returns the current phase.
func (s *Session) State() State { return s.state }

// Quiz returns the active quiz, nil when idle.
func (s *Session) Quiz() *quizgen.Quiz { return s.quiz }

// Params returns the parameters the active quiz was generated from.
func (s *Session) Params() quizgen.Params { return s.params }

// Result returns the score of the last submission, nil before submit.
func (s *Session) Result() *scoring.Result { return s.result }

// RunID identifies the current answering pass over the quiz. It starts at
// zero for a fresh quiz and increments on every retake, so the UI can key
// its choice widgets by (RunID, question id) and present unselected
// controls after a retake.
func (s *Session) RunID() int { return s.runID }

// Selected returns the learner's selection for a question, "" if none.
func (s *Session) Selected(questionID int) string {
	return s.answers[questionID]
}

// Answered reports how many questions currently have a selection.
func (s *Session) Answered() int {
	if s.quiz == nil {
		return 0
	}
	n := 0
	for _, q := range s.quiz.Questions {
		if s.answers[q.ID] != "" {
			n++
		}
	}
	return n
}

// Complete reports whether every question has a selection.
func (s *Session) Complete() bool {
	return s.quiz != nil && s.Answered() == len(s.quiz.Questions)
}

// Generate requests a fresh quiz and resets the answer set, the missed
// list and the run counter. On failure the previous quiz is cleared and
// the error (a *quizgen.GenerationError) surfaces for a manual retry.
func (s *Session) Generate(ctx context.Context, p quizgen.Params) error {
	ctx = llm.WithSession(ctx, s.id)
	quiz, err := s.gen.Generate(ctx, p)
	if err != nil {
		s.quiz = nil
		s.reset()
		s.state = StateIdle
		return err
	}

	s.quiz = quiz
	s.params = p
	s.reset()
	s.state = StateGenerated
	return nil
}

// Answer records the learner's selection for a question. The first answer
// moves a freshly generated quiz into the answering phase. Selections can
// be changed freely until submission.
func (s *Session) Answer(questionID int, label string) error {
	switch s.state {
	case StateIdle:
		return ErrNoQuiz
	case StateSubmitted:
		return ErrAlreadySubmitted
	}

	if _, ok := s.question(questionID); !ok {
		return fmt.Errorf("unknown question id %d", questionID)
	}
	if !validLabel(label) {
		return fmt.Errorf("invalid option label %q", label)
	}

	s.answers[questionID] = label
	s.state = StateAnswering
	return nil
}

// Submit freezes the answer set, scores it and appends an attempt record.
// A partial answer set rejects with *scoring.IncompleteAnswerError and the
// session stays in the answering phase.
func (s *Session) Submit() (*scoring.Result, error) {
	switch s.state {
	case StateIdle:
		return nil, ErrNoQuiz
	case StateSubmitted:
		return nil, ErrAlreadySubmitted
	}

	result, err := scoring.Score(s.quiz, s.answers)
	if err != nil {
		return nil, err
	}

	s.result = result
	s.state = StateSubmitted

	rec := history.NewAttempt(s.params.Name, s.params.Age, result.Score, result.Total, s.now())
	if err := s.store.Append(rec); err != nil {
		// History is best-effort; a failed write never blocks the learner.
		fmt.Fprintf(os.Stderr, "warning: failed to record attempt: %v\n", err)
	}

	return result, nil
}

// Retake starts a new answering pass over the same quiz: clears the
// answer set and the missed list, bumps the run counter, and makes no
// LLM call. Only valid after a submission.
func (s *Session) Retake() error {
	if s.state != StateSubmitted {
		return ErrNotSubmitted
	}

	s.answers = make(map[int]string)
	s.result = nil
	s.runID++
	s.state = StateAnswering
	return nil
}

// reset clears per-run state when a quiz is loaded or replaced.
func (s *Session) reset() {
	s.answers = make(map[int]string)
	s.result = nil
	s.runID = 0
}

func (s *Session) question(id int) (quizgen.Question, bool) {
	for _, q := range s.quiz.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return quizgen.Question{}, false
}

func validLabel(label string) bool {
	for _, l := range quizgen.Labels {
		if l == label {
			return true
		}
	}
	return false
}
