package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	_ "github.com/vovakirdan/tui-invaders/internal/invaders"
)

var menuCfg = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

func updateMenu(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T, want MenuModel", next)
	}
	return nm
}

func TestMenuListsModes(t *testing.T) {
	m := NewMenuModel(menuCfg)
	view := m.View()

	for _, want := range []string{"Alien Invaders", "Alien Invaders (Endless)", "replays"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestMenuSelect(t *testing.T) {
	m := NewMenuModel(menuCfg)
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("no mode selected")
	}
	if sel.ID != "invaders_endless" {
		t.Errorf("selected %q, want invaders_endless", sel.ID)
	}
}

func TestMenuCursorClamps(t *testing.T) {
	m := NewMenuModel(menuCfg)
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyUp})
	for range 5 {
		m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = updateMenu(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if sel := m.Selected(); sel == nil || sel.ID != "invaders_endless" {
		t.Errorf("selected %+v, want last mode", sel)
	}
}

func TestMenuReplaysAndQuit(t *testing.T) {
	m := updateMenu(t, NewMenuModel(menuCfg), tea.KeyMsg{Type: tea.KeyTab})
	if !m.WantsReplays() {
		t.Error("tab should open replays")
	}

	m = updateMenu(t, NewMenuModel(menuCfg), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit the menu")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := updateMenu(t, NewMenuModel(menuCfg), tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %dx%d, want 120x40", cfg.ScreenW, cfg.ScreenH)
	}
}

func TestSessionMenuGameMenu(t *testing.T) {
	store := openStore(t)
	s := NewSessionModel(store, menuCfg, Options{Store: store, Player: "bob", AllowBack: true})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if !s.InGame() {
		t.Fatal("enter should start a game")
	}

	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	s = next.(SessionModel)
	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)

	if s.InGame() {
		t.Fatal("esc while paused should return to menu")
	}
	list, err := store.ListReplays("", 10)
	if err != nil {
		t.Fatalf("ListReplays() failed: %v", err)
	}
	if len(list) != 1 || list[0].Player != "bob" {
		t.Errorf("replays = %+v, want one by bob", list)
	}
}

func TestSessionReplaysRoundTrip(t *testing.T) {
	s := NewSessionModel(nil, menuCfg, Options{AllowBack: true})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if !s.InReplays() {
		t.Fatal("tab should open replays")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.InReplays() || s.InGame() {
		t.Error("esc should return to menu")
	}
	if !strings.Contains(s.View(), "Select a mode") {
		t.Error("menu not shown after returning")
	}
}
