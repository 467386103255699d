package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbee/internal/ui/theme"
)

// Picker cycles through a fixed list of choices with the left/right keys.
type Picker struct {
	Choices  []string
	Selected int
	Focused  bool
}

// NewPicker creates a picker with the first choice selected.
func NewPicker(choices []string) Picker {
	return Picker{Choices: choices}
}

// Update handles left/right cycling while focused.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if !p.Focused {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if p.Selected > 0 {
			p.Selected--
		}
	case "right", "l":
		if p.Selected < len(p.Choices)-1 {
			p.Selected++
		}
	}

	return p, nil
}

// Value returns the selected choice.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Choices) {
		return ""
	}
	return p.Choices[p.Selected]
}

// View renders the picker as "◂ choice ▸" with dimmed arrows at the ends.
func (p Picker) View() string {
	leftArrow := "◂"
	rightArrow := "▸"

	arrowStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if p.Focused {
		arrowStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	}

	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if p.Focused {
		valueStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	if p.Selected == 0 {
		leftArrow = " "
	}
	if p.Selected == len(p.Choices)-1 {
		rightArrow = " "
	}

	return arrowStyle.Render(leftArrow) + " " + valueStyle.Render(p.Value()) + " " + arrowStyle.Render(rightArrow)
}
