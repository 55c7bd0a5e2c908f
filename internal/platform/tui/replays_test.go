package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func updateReplays(t *testing.T, m ReplaysModel, msg tea.Msg) ReplaysModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(ReplaysModel)
	if !ok {
		t.Fatalf("Update returned %T, want ReplaysModel", next)
	}
	return nm
}

// recordSession plays a short game through Model and saves its replay.
func recordSession(t *testing.T, store *storage.Store) {
	t.Helper()
	m, _ := newTestModel(t, Options{Store: store})
	for i := range 120 {
		if i%10 == 0 {
			m = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
		}
		m = update(t, m, TickMsg{})
	}
	update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
}

func TestReplaysEmpty(t *testing.T) {
	m := NewReplaysModel(openStore(t), nil, 80, 24)
	if !strings.Contains(m.View(), "No replays recorded yet") {
		t.Error("empty browser should say so")
	}
}

func TestReplaysVerify(t *testing.T) {
	store := openStore(t)
	recordSession(t, store)

	m := NewReplaysModel(store, nil, 100, 30)
	m = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.Status(), "verified") {
		t.Errorf("status = %q, want verified", m.Status())
	}
}

func TestReplaysTabsFilter(t *testing.T) {
	store := openStore(t)
	recordSession(t, store)

	m := NewReplaysModel(store, nil, 100, 30)
	if len(m.replays) != 1 {
		t.Fatalf("All tab has %d replays, want 1", len(m.replays))
	}

	m = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyTab}) // invaders
	if len(m.replays) != 1 {
		t.Errorf("campaign tab has %d replays, want 1", len(m.replays))
	}
	m = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyTab}) // invaders_endless
	if len(m.replays) != 0 {
		t.Errorf("endless tab has %d replays, want 0", len(m.replays))
	}
	m = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if len(m.replays) != 1 {
		t.Errorf("back on campaign tab has %d replays, want 1", len(m.replays))
	}
}

func TestReplaysDelete(t *testing.T) {
	store := openStore(t)
	recordSession(t, store)

	m := NewReplaysModel(store, nil, 100, 30)
	m = updateReplays(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})

	if len(m.replays) != 0 {
		t.Errorf("%d replays after delete, want 0", len(m.replays))
	}
	if !strings.Contains(m.Status(), "deleted") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestReplaysBackAndQuit(t *testing.T) {
	m := updateReplays(t, NewReplaysModel(nil, nil, 80, 24), tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsGoingBack() {
		t.Error("esc should go back")
	}

	m = updateReplays(t, NewReplaysModel(nil, nil, 80, 24), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
}
