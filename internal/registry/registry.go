// Package registry maps game IDs to factories. Game packages register
// themselves in init(), so the TUI, the SSH server and the replay runner can
// look a mode up by name without importing it directly.
package registry

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Game is the contract between a pure simulation and the platform.
// Implementations hold no terminal or network state; the platform owns
// input mapping, timing and drawing.
type Game interface {
	// ID returns the stable identifier used on the CLI and in replay records.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh session for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score, lives and the terminal flags.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, not yet Reset, game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries []entry
	byID    = make(map[string]int)
)

// Register adds a factory under id. Registering the same id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := byID[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	byID[id] = len(entries)
	entries = append(entries, entry{
		info:    GameInfo{ID: id, Title: f().Title()},
		factory: f,
	})
}

// List returns every registered game in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, len(entries))
	for i, e := range entries {
		result[i] = e.info
	}
	return result
}

// Create instantiates a game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	i, ok := byID[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return entries[i].factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := byID[id]
	return ok
}
