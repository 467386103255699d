// Package setup hosts the quiz request form: learner identity, topic,
// difficulty and question count, plus the generation spinner.
package setup

import (
	"context"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbee/internal/quizgen"
	"github.com/abhisek/quizbee/internal/router"
	"github.com/abhisek/quizbee/internal/screen"
	"github.com/abhisek/quizbee/internal/screens/quiz"
	"github.com/abhisek/quizbee/internal/session"
	"github.com/abhisek/quizbee/internal/ui/components"
	"github.com/abhisek/quizbee/internal/ui/layout"
	"github.com/abhisek/quizbee/internal/ui/theme"
)

const (
	fieldName = iota
	fieldAge
	fieldTopic
	fieldDifficulty
	fieldCount
	fieldGenerate
	numFields
)

const spinnerInterval = 100 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// SetupScreen collects quiz parameters and drives generation.
type SetupScreen struct {
	sess *session.Session

	name  components.TextInput
	age   components.TextInput
	topic components.TextInput

	difficulty components.Picker
	count      components.Picker

	focus      int
	generating bool
	spinner    int
	errText    string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen bound to the session.
func New(sess *session.Session) *SetupScreen {
	counts := make([]string, len(quizgen.QuestionCounts))
	for i, c := range quizgen.QuestionCounts {
		counts[i] = strconv.Itoa(c)
	}

	s := &SetupScreen{
		sess:       sess,
		name:       components.NewTextInput("your name", false, 32),
		age:        components.NewTextInput("age", true, 2),
		topic:      components.NewTextInput("e.g. the solar system", false, 64),
		difficulty: components.NewPicker(quizgen.Difficulties),
		count:      components.NewPicker(counts),
	}

	// Prefill from the previous run so a second quiz only needs a topic tweak.
	if p := sess.Params(); p.Name != "" {
		s.name.Model.SetValue(p.Name)
		s.age.Model.SetValue(p.Age)
		s.topic.Model.SetValue(p.Topic)
	}

	return s
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.name.Focus()
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.generating {
		return []layout.KeyHint{
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "◂▸", Description: "Choose"},
		{Key: "Enter", Description: "Next"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case quizReadyMsg:
		s.generating = false
		if msg.Err != nil {
			s.errText = msg.Err.Error()
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: quiz.New(s.sess)}
		}

	case spinnerTickMsg:
		if !s.generating {
			return s, nil
		}
		s.spinner++
		return s, s.tick()

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return s, s.setFocus(s.focus + 1)
	case "shift+tab", "up":
		return s, s.setFocus(s.focus - 1)
	case "enter":
		if s.focus == fieldGenerate {
			return s, s.startGeneration()
		}
		return s, s.setFocus(s.focus + 1)
	}

	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldAge:
		s.age, cmd = s.age.Update(msg)
	case fieldTopic:
		s.topic, cmd = s.topic.Update(msg)
	case fieldDifficulty:
		s.difficulty, cmd = s.difficulty.Update(msg)
	case fieldCount:
		s.count, cmd = s.count.Update(msg)
	}
	return s, cmd
}

func (s *SetupScreen) setFocus(f int) tea.Cmd {
	if f < 0 {
		f = 0
	}
	if f >= numFields {
		f = numFields - 1
	}
	s.focus = f

	s.name.Blur()
	s.age.Blur()
	s.topic.Blur()
	s.difficulty.Focused = f == fieldDifficulty
	s.count.Focused = f == fieldCount

	switch f {
	case fieldName:
		return s.name.Focus()
	case fieldAge:
		return s.age.Focus()
	case fieldTopic:
		return s.topic.Focus()
	}
	return nil
}

func (s *SetupScreen) startGeneration() tea.Cmd {
	name := strings.TrimSpace(s.name.Value())
	age := strings.TrimSpace(s.age.Value())
	topic := strings.TrimSpace(s.topic.Value())

	switch {
	case name == "":
		s.errText = "Please enter your name."
		return s.setFocus(fieldName)
	case age == "":
		s.errText = "Please enter your age."
		return s.setFocus(fieldAge)
	case topic == "":
		s.errText = "Please enter a quiz topic."
		return s.setFocus(fieldTopic)
	}

	countVal, err := strconv.Atoi(s.count.Value())
	if err != nil {
		countVal = quizgen.QuestionCounts[0]
	}

	params := quizgen.Params{
		Name:       name,
		Age:        age,
		Topic:      topic,
		Difficulty: s.difficulty.Value(),
		Count:      countVal,
	}

	s.errText = ""
	s.generating = true
	s.spinner = 0

	// The provider layer enforces the configured request timeout.
	return tea.Batch(s.tick(), func() tea.Msg {
		return quizReadyMsg{Err: s.sess.Generate(context.Background(), params)}
	})
}

func (s *SetupScreen) tick() tea.Cmd {
	return tea.Tick(spinnerInterval, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

func (s *SetupScreen) View(width, height int) string {
	if s.generating {
		frame := spinnerFrames[s.spinner%len(spinnerFrames)]
		msg := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
			Render(frame+" Making your quiz...") + "\n\n" +
			lipgloss.NewStyle().Foreground(theme.TextDim).
				Render("Topic: "+strings.TrimSpace(s.topic.Value()))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
	}

	label := func(text string, focused bool) string {
		st := lipgloss.NewStyle().Foreground(theme.TextDim)
		if focused {
			st = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}
		return st.Render(text)
	}

	var b strings.Builder
	b.WriteString(label("Name", s.focus == fieldName) + "\n")
	b.WriteString(s.name.View() + "\n\n")
	b.WriteString(label("Age", s.focus == fieldAge) + "\n")
	b.WriteString(s.age.View() + "\n\n")
	b.WriteString(label("Topic", s.focus == fieldTopic) + "\n")
	b.WriteString(s.topic.View() + "\n\n")
	b.WriteString(label("Difficulty", s.focus == fieldDifficulty) + "  " + s.difficulty.View() + "\n\n")
	b.WriteString(label("Questions", s.focus == fieldCount) + "  " + s.count.View() + "\n\n")

	btn := components.NewButton("Generate Quiz", s.focus == fieldGenerate, nil)
	b.WriteString(btn.View())

	if s.errText != "" {
		b.WriteString("\n\n" + lipgloss.NewStyle().Foreground(theme.Error).Render("⚠ "+s.errText))
	}

	card := theme.Card.Width(min(width-4, 64)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
