package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func testGroup() OptionGroup {
	return NewOptionGroup(
		[]string{"A", "B", "C", "D"},
		[]string{"Paris", "Lyon", "Nice", "Lille"},
	)
}

func TestOptionGroup_StartsUnchosen(t *testing.T) {
	g := testGroup()

	if g.HasChoice() {
		t.Error("fresh group must have no choice")
	}
	if g.ChosenLabel() != "" {
		t.Errorf("expected empty chosen label, got %q", g.ChosenLabel())
	}
}

func TestOptionGroup_CursorAndChoice(t *testing.T) {
	g := testGroup()

	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if g.ChosenLabel() != "C" {
		t.Errorf("expected choice C, got %q", g.ChosenLabel())
	}

	// A later selection replaces the earlier one.
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if g.ChosenLabel() != "B" {
		t.Errorf("expected choice B after reselect, got %q", g.ChosenLabel())
	}
}

func TestOptionGroup_CursorClamps(t *testing.T) {
	g := testGroup()

	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if g.Cursor != 0 {
		t.Errorf("cursor must clamp at the top, got %d", g.Cursor)
	}

	for i := 0; i < 10; i++ {
		g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if g.Cursor != 3 {
		t.Errorf("cursor must clamp at the bottom, got %d", g.Cursor)
	}
}

func TestOptionGroup_ViewMarksChoice(t *testing.T) {
	g := testGroup()
	g, _ = g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	view := g.View()
	if !strings.Contains(view, "(●) A. Paris") {
		t.Errorf("expected the chosen option marked, got:\n%s", view)
	}
	if strings.Count(view, "(●)") != 1 {
		t.Error("exactly one option may be marked chosen")
	}
}
