package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbee/internal/ui/theme"
)

// OptionGroup is a radio-style selector over a question's lettered options.
// Selections stay editable until the screen stops forwarding messages.
type OptionGroup struct {
	Labels  []string
	Options []string
	Cursor  int
	Chosen  int // -1 until a choice is made
}

// NewOptionGroup creates an option group with no choice made.
func NewOptionGroup(labels, options []string) OptionGroup {
	return OptionGroup{
		Labels:  labels,
		Options: options,
		Cursor:  0,
		Chosen:  -1,
	}
}

// Init returns nil.
func (g OptionGroup) Init() tea.Cmd {
	return nil
}

// Update handles cursor movement and selection.
func (g OptionGroup) Update(msg tea.Msg) (OptionGroup, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "down", "j":
		if g.Cursor < len(g.Options)-1 {
			g.Cursor++
		}
	case "enter", "space":
		g.Chosen = g.Cursor
	}

	return g, nil
}

// HasChoice reports whether an option has been chosen.
func (g OptionGroup) HasChoice() bool {
	return g.Chosen >= 0
}

// ChosenLabel returns the label of the chosen option, "" if none.
func (g OptionGroup) ChosenLabel() string {
	if g.Chosen < 0 || g.Chosen >= len(g.Labels) {
		return ""
	}
	return g.Labels[g.Chosen]
}

// View renders the option group.
func (g OptionGroup) View() string {
	var s string
	for i, opt := range g.Options {
		marker := "( )"
		if i == g.Chosen {
			marker = "(●)"
		}

		prefix := "  "
		if i == g.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s. %s", prefix, marker, g.Labels[i], opt)

		switch {
		case i == g.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		case i == g.Chosen:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
