// Package leaderboard renders the top attempts ranked by percentage.
package leaderboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbee/internal/history"
	"github.com/abhisek/quizbee/internal/screen"
	"github.com/abhisek/quizbee/internal/ui/layout"
	"github.com/abhisek/quizbee/internal/ui/theme"
)

// TopN is how many ranked attempts the leaderboard shows.
const TopN = 10

// LeaderboardScreen shows the ranked attempt history.
type LeaderboardScreen struct {
	ranked []history.AttemptRecord
}

var _ screen.Screen = (*LeaderboardScreen)(nil)
var _ screen.KeyHintProvider = (*LeaderboardScreen)(nil)

// New creates a LeaderboardScreen from the current history file.
func New(store *history.Store) *LeaderboardScreen {
	ranked := history.Rank(store.LoadAll())
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return &LeaderboardScreen{ranked: ranked}
}

func (l *LeaderboardScreen) Init() tea.Cmd {
	return nil
}

func (l *LeaderboardScreen) Title() string {
	return "Leaderboard"
}

func (l *LeaderboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LeaderboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return l, nil
}

func (l *LeaderboardScreen) View(width, height int) string {
	if len(l.ranked) == 0 {
		empty := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No quiz attempts yet — take a quiz to get on the board!")
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, empty)
	}

	headerStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(theme.Text)
	topStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-4s %-20s %-4s %-8s %-8s %s",
		"#", "Name", "Age", "Score", "Percent", "When")))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("─", 64)))
	b.WriteString("\n")

	for i, rec := range l.ranked {
		line := fmt.Sprintf("%-4d %-20s %-4s %-8s %-8s %s",
			i+1,
			truncate(rec.Name, 20),
			rec.Age,
			fmt.Sprintf("%d/%d", rec.Score, rec.Total),
			fmt.Sprintf("%.2f%%", rec.Percentage),
			rec.Time,
		)
		if i == 0 {
			b.WriteString(topStyle.Render(line))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

// truncate shortens s to max runes. Byte slicing would split
// multibyte names.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
