package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/replay"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game Model.
type Options struct {
	Store     *storage.Store // Replays are saved here when set
	Logger    *log.Logger
	Preset    string // Difficulty preset, recorded with replays
	Player    string // Recorded with replays
	AllowBack bool   // Esc/B returns to a menu instead of being ignored
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig // Terminal size
	keys       GameKeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	recorder   *replay.Recorder
	saved      bool // Whether the current session's replay has been stored
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		opts:       opts,
		logger:     logger,
		config:     cfg,
		keys:       DefaultGameKeyMap(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.Width = cfg.ScreenW
	m.startRecording()
	return m
}

// gameHeight returns the rows left for the game below the help bar.
func gameHeight(termH int) int {
	return max(termH-helpRows, 1)
}

// runtime returns the config the game is Reset with.
func (m *Model) runtime() core.RuntimeConfig {
	rt := m.config
	rt.ScreenH = gameHeight(rt.ScreenH)
	return rt
}

// startRecording begins a fresh recording for the current seed and size.
func (m *Model) startRecording() {
	m.saved = false
	m.recorder = nil
	if _, ok := m.game.(*invaders.Game); ok {
		m.recorder = replay.NewRecorder(m.game.ID(), m.runtime(), m.opts.Preset)
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.runtime())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.saveReplay()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		if m.opts.AllowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.saveReplay()
			m.backToMenu = true
			return m, tea.Quit
		}

	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}

	case core.ActionNone:

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. A running session restarts
// at the new size; a finished one keeps its final screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if !m.gameState.GameOver {
		if m.recorder != nil && m.recorder.Len() > 0 {
			m.logger.Debug("resize discarded recording", "ticks", m.recorder.Len())
		}
		m.game.Reset(m.runtime())
		m.gameState = m.game.State()
		m.startRecording()
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// Restart with a new seed so the next recording stands alone
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.runtime())
		m.gameState = m.game.State()
		m.startRecording()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.recorder != nil && !m.saved {
		m.recorder.Record(m.inputFrame)
	}
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		m.saveReplay()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveReplay stores the current recording once.
func (m *Model) saveReplay() {
	if m.saved || m.recorder == nil || m.recorder.Len() == 0 || m.opts.Store == nil {
		return
	}
	m.saved = true

	g, ok := m.game.(*invaders.Game)
	if !ok {
		return
	}
	rec, err := m.recorder.Finish(g)
	if err != nil {
		m.logger.Error("cannot build replay", "error", err)
		return
	}
	rec.Player = m.opts.Player

	id, err := m.opts.Store.SaveReplay(rec)
	if err != nil {
		m.logger.Error("cannot save replay", "error", err)
		return
	}
	m.logger.Info("replay saved",
		"id", id,
		"game", rec.GameID,
		"player", rec.Player,
		"score", rec.Score,
		"outcome", rec.Outcome,
		"ticks", len(rec.Inputs))
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".invaders", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state after the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts a Bubble Tea program for one game and blocks until it exits.
// Returns true if user went back to the menu, false if quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
