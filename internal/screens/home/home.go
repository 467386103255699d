package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizbee/internal/history"
	"github.com/abhisek/quizbee/internal/router"
	"github.com/abhisek/quizbee/internal/screen"
	"github.com/abhisek/quizbee/internal/screens/leaderboard"
	"github.com/abhisek/quizbee/internal/screens/setup"
	"github.com/abhisek/quizbee/internal/session"
	"github.com/abhisek/quizbee/internal/ui/components"
	"github.com/abhisek/quizbee/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu  components.Menu
	store *history.Store
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(sess *session.Session, store *history.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START QUIZ", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(sess)}
			}
		}},
		{Label: "LEADERBOARD", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: leaderboard.New(store)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:  components.NewMenu(items),
		store: store,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, RenderBanner(width))

	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("AI quiz maker for curious kids")
	sections = append(sections, tagline, "")

	// Read on every render so the count is fresh when the learner
	// comes back from a quiz.
	if attempts := len(h.store.LoadAll()); attempts > 0 {
		stats := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("★ %d quiz attempts recorded", attempts))
		sections = append(sections, stats, "")
	}

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
