package tui

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/replay"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

const maxReplays = 100 // Max replays to load per tab

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Verify  key.Binding
	Delete  key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextTab, k.Verify, k.Delete, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextTab, k.PrevTab},
		{k.Verify, k.Delete, k.Back, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Verify: key.NewBinding(
			key.WithKeys("enter", "v"),
			key.WithHelp("enter", "verify"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// replayTab is one filter of the browser. An empty gameID lists every mode.
type replayTab struct {
	gameID string
	title  string
}

// ReplaysModel is the Bubble Tea model for browsing and verifying replays.
type ReplaysModel struct {
	tabs      []replayTab
	tabCursor int
	store     *storage.Store
	logger    *log.Logger
	replays   []storage.Summary
	table     table.Model
	help      help.Model
	keys      ReplaysKeyMap
	status    string
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewReplaysModel creates a new replay browser.
func NewReplaysModel(store *storage.Store, logger *log.Logger, width, height int) ReplaysModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	tabs := []replayTab{{title: "All"}}
	for _, g := range registry.List() {
		tabs = append(tabs, replayTab{gameID: g.ID, title: g.Title})
	}

	m := ReplaysModel{
		tabs:   tabs,
		store:  store,
		logger: logger,
		keys:   DefaultReplaysKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a table sized to the terminal.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 5},
		{Title: "Mode", Width: 8},
		{Title: "Player", Width: 10},
		{Title: "Score", Width: 7},
		{Title: "Wave", Width: 5},
		{Title: "Outcome", Width: 9},
		{Title: "Ticks", Width: 7},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Header, tabs, status and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays reloads the listing for the current tab.
func (m *ReplaysModel) loadReplays() {
	m.replays = nil
	if m.store != nil {
		list, err := m.store.ListReplays(m.tabs[m.tabCursor].gameID, maxReplays)
		if err != nil {
			m.status = "cannot list replays: " + err.Error()
		} else {
			m.replays = list
		}
	}
	m.updateTableRows()
}

// modeLabel shortens a game ID for the Mode column.
func modeLabel(gameID string) string {
	if strings.HasSuffix(gameID, "_endless") {
		return "endless"
	}
	return "campaign"
}

// updateTableRows updates the table with the loaded replays.
func (m *ReplaysModel) updateTableRows() {
	rows := make([]table.Row, len(m.replays))
	for i, r := range m.replays {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			strconv.FormatInt(r.ID, 10),
			modeLabel(r.GameID),
			player,
			strconv.Itoa(r.Score),
			strconv.Itoa(r.Waves),
			r.Outcome,
			strconv.Itoa(r.Ticks),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selected returns the highlighted replay, if any.
func (m ReplaysModel) selected() (storage.Summary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.replays) {
		return storage.Summary{}, false
	}
	return m.replays[i], true
}

// verifySelected re-simulates the highlighted replay and sets the status line.
func (m *ReplaysModel) verifySelected() {
	sum, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	rec, err := m.store.Replay(sum.ID)
	if err != nil {
		m.status = fmt.Sprintf("#%d: %v", sum.ID, err)
		return
	}

	err = replay.Verify(rec, m.logger)
	switch {
	case err == nil:
		m.status = fmt.Sprintf("#%d verified: score %d over %d ticks", sum.ID, rec.Score, len(rec.Inputs))
	case errors.Is(err, replay.ErrMismatch):
		m.status = fmt.Sprintf("#%d DIVERGED: %v", sum.ID, err)
	default:
		m.status = fmt.Sprintf("#%d: %v", sum.ID, err)
	}
}

// deleteSelected removes the highlighted replay.
func (m *ReplaysModel) deleteSelected() {
	sum, ok := m.selected()
	if !ok || m.store == nil {
		return
	}
	if err := m.store.DeleteReplay(sum.ID); err != nil {
		m.status = fmt.Sprintf("#%d: %v", sum.ID, err)
		return
	}
	m.status = fmt.Sprintf("#%d deleted", sum.ID)
	m.loadReplays()
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextTab):
			m.tabCursor = (m.tabCursor + 1) % len(m.tabs)
			m.status = ""
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tabCursor = (m.tabCursor + len(m.tabs) - 1) % len(m.tabs)
			m.status = ""
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Verify):
			m.verifySelected()
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteSelected()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "REPLAYS"
	b.WriteString(centerText(titleStyle.Render(title), title, m.width))
	b.WriteString("\n\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTabs renders the mode filter line.
func (m ReplaysModel) renderTabs() string {
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		if i == m.tabCursor {
			tabs[i] = activeTabStyle.Render(t.title)
		} else {
			tabs[i] = dimStyle.Render(" " + t.title + " ")
		}
	}
	return strings.Join(tabs, " ")
}

// renderTableContent renders the table or an empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.replays) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nFinish a game to record one!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplaysModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplaysModel) IsQuitting() bool {
	return m.quitting
}

// Status returns the last verify or delete message.
func (m ReplaysModel) Status() string {
	return m.status
}

// RunReplays runs the replay browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunReplays(store *storage.Store, logger *log.Logger, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewReplaysModel(store, logger, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReplaysModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
