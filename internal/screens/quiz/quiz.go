// Package quiz hosts the answering screen and the post-submission results
// view with retake, review and PDF export.
package quiz

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbee/internal/export"
	"github.com/abhisek/quizbee/internal/quizgen"
	"github.com/abhisek/quizbee/internal/router"
	"github.com/abhisek/quizbee/internal/screen"
	"github.com/abhisek/quizbee/internal/screens/leaderboard"
	"github.com/abhisek/quizbee/internal/scoring"
	"github.com/abhisek/quizbee/internal/session"
	"github.com/abhisek/quizbee/internal/ui/components"
	"github.com/abhisek/quizbee/internal/ui/layout"
	"github.com/abhisek/quizbee/internal/ui/theme"
)

type mode int

const (
	modeAnswering mode = iota
	modeResults
)

// groupKey identifies a choice widget: answer state never leaks across
// retakes because a retake bumps the run counter.
type groupKey struct {
	run int
	qid int
}

// QuizScreen walks the learner through the questions and shows results.
type QuizScreen struct {
	sess   *session.Session
	mode   mode
	idx    int
	groups map[groupKey]components.OptionGroup
	warn   string
	note   string
	scroll int
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.HeaderStatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the session's active quiz.
func New(sess *session.Session) *QuizScreen {
	return &QuizScreen{
		sess:   sess,
		groups: make(map[groupKey]components.OptionGroup),
	}
}

func (q *QuizScreen) Init() tea.Cmd {
	return nil
}

func (q *QuizScreen) Title() string {
	if quiz := q.sess.Quiz(); quiz != nil && quiz.Title != "" {
		return quiz.Title
	}
	return "Quiz"
}

func (q *QuizScreen) HeaderStatus() string {
	quiz := q.sess.Quiz()
	if quiz == nil || q.mode != modeAnswering {
		return ""
	}
	return fmt.Sprintf("%d/%d answered", q.sess.Answered(), len(quiz.Questions))
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.mode == modeResults {
		return []layout.KeyHint{
			{Key: "R", Description: "Retake"},
			{Key: "D", Description: "Save PDF"},
			{Key: "T", Description: "Leaderboard"},
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Select"},
		{Key: "S", Description: "Submit"},
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case pdfSavedMsg:
		if msg.Err != nil {
			q.note = "Could not save PDF: " + msg.Err.Error()
		} else {
			q.note = "Saved " + msg.Path
		}
		return q, nil

	case tea.KeyMsg:
		if q.mode == modeResults {
			return q.updateResults(msg)
		}
		return q.updateAnswering(msg)
	}

	return q, nil
}

func (q *QuizScreen) updateAnswering(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	quiz := q.sess.Quiz()
	if quiz == nil {
		return q, nil
	}

	switch msg.String() {
	case "left":
		if q.idx > 0 {
			q.idx--
		}
		return q, nil
	case "right", "tab":
		if q.idx < len(quiz.Questions)-1 {
			q.idx++
		}
		return q, nil
	case "s", "S":
		return q, q.submit()
	}

	question := quiz.Questions[q.idx]
	key := groupKey{run: q.sess.RunID(), qid: question.ID}
	group := q.group(question)
	group, cmd := group.Update(msg)
	q.groups[key] = group

	if group.HasChoice() && group.ChosenLabel() != q.sess.Selected(question.ID) {
		if err := q.sess.Answer(question.ID, group.ChosenLabel()); err == nil {
			q.warn = ""
		}
	}

	return q, cmd
}

func (q *QuizScreen) updateResults(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if q.scroll > 0 {
			q.scroll--
		}
	case "down", "j":
		q.scroll++
	case "r", "R":
		if err := q.sess.Retake(); err == nil {
			q.mode = modeAnswering
			q.idx = 0
			q.warn = ""
			q.note = ""
			q.scroll = 0
		}
	case "d", "D":
		return q, savePDF(q.sess.Quiz())
	case "t", "T":
		store := q.sess.History()
		return q, func() tea.Msg {
			return router.PushScreenMsg{Screen: leaderboard.New(store)}
		}
	}
	return q, nil
}

func (q *QuizScreen) submit() tea.Cmd {
	_, err := q.sess.Submit()
	if err != nil {
		var incomplete *scoring.IncompleteAnswerError
		if errors.As(err, &incomplete) {
			q.warn = fmt.Sprintf("Please answer every question — %d left.", incomplete.Unanswered)
		} else {
			q.warn = err.Error()
		}
		return nil
	}

	q.mode = modeResults
	q.scroll = 0
	return nil
}

// group returns the choice widget for a question on the current run,
// creating it on first sight.
func (q *QuizScreen) group(question quizgen.Question) components.OptionGroup {
	key := groupKey{run: q.sess.RunID(), qid: question.ID}
	if g, ok := q.groups[key]; ok {
		return g
	}

	options := make([]string, len(quizgen.Labels))
	for i, label := range quizgen.Labels {
		options[i] = question.Options[label]
	}

	g := components.NewOptionGroup(quizgen.Labels, options)
	q.groups[key] = g
	return g
}

func (q *QuizScreen) View(width, height int) string {
	if q.sess.Quiz() == nil {
		return ""
	}
	if q.mode == modeResults {
		return q.viewResults(width, height)
	}
	return q.viewAnswering(width, height)
}

func (q *QuizScreen) viewAnswering(width, height int) string {
	quiz := q.sess.Quiz()
	question := quiz.Questions[q.idx]

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Question %d of %d", q.idx+1, len(quiz.Questions))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Q%d. %s", question.ID, question.Prompt)))
	b.WriteString("\n\n")

	b.WriteString(q.group(question).View())

	if q.warn != "" {
		b.WriteString("\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ "+q.warn))
	}

	card := theme.Card.Width(min(width-4, 76)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (q *QuizScreen) viewResults(width, height int) string {
	result := q.sess.Result()
	if result == nil {
		return ""
	}

	innerWidth := min(width-8, 72)
	var lines []string

	head := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("You scored %d out of %d!", result.Score, result.Total))
	lines = append(lines, head, "")

	bar := components.NewProgressBar("", result.Percentage()/100, true, innerWidth)
	lines = append(lines, bar.View(), "")

	if len(result.Missed) == 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Success).Bold(true).
			Render("★ Perfect score! Amazing work!"))
	} else {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("Review the ones you missed:"), "")

		for _, m := range result.Missed {
			lines = append(lines,
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question),
				lipgloss.NewStyle().Foreground(theme.Error).Render("  Your answer:    "+m.Selected),
				lipgloss.NewStyle().Foreground(theme.Success).Render("  Correct answer: "+m.Correct),
			)
			if m.Explanation != "" {
				lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).
					Render("  💡 "+m.Explanation))
			}
			lines = append(lines, "")
		}
	}

	if q.note != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Secondary).Render(q.note))
	}

	// Clamp scrolling to keep at least one line visible.
	maxScroll := len(lines) - 1
	if q.scroll > maxScroll {
		q.scroll = maxScroll
	}
	visible := lines[q.scroll:]
	if height > 2 && len(visible) > height-2 {
		visible = visible[:height-2]
	}

	content := strings.Join(visible, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, content)
}

// savePDF writes the quiz sheet into the working directory.
func savePDF(quiz *quizgen.Quiz) tea.Cmd {
	return func() tea.Msg {
		data, err := export.QuizPDF("QuizBee", quiz)
		if err != nil {
			return pdfSavedMsg{Err: err}
		}
		if err := os.WriteFile(export.FileName, data, 0o644); err != nil {
			return pdfSavedMsg{Err: err}
		}
		path, err := filepath.Abs(export.FileName)
		if err != nil {
			path = export.FileName
		}
		return pdfSavedMsg{Path: path}
	}
}
