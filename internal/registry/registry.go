// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "colormatch").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick, resolving at most one event.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, status, paused).
	State() core.GameState
}

// Session is a headless game controller driven by discrete events. Remote
// clients (the websocket API) play through it instead of the tick loop.
type Session interface {
	// Apply resolves one event. Rejected events return an error and leave
	// the session unchanged.
	Apply(ev core.Event) error

	// Snapshot returns a read-only, JSON-encodable view of the session.
	Snapshot() any

	// State returns the current game state (score, status).
	State() core.GameState
}

// SessionFactory creates a headless session seeded with seed.
type SessionFactory func(seed int64) (Session, error)

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Headless bool   `json:"headless"` // Playable through the websocket API
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	sessions  = make(map[string]SessionFactory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// RegisterSession adds a headless session factory for an already registered game.
func RegisterSession(id string, f SessionFactory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; !exists {
		panic(fmt.Sprintf("registry: session for unknown game %q", id))
	}
	sessions[id] = f
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		_, headless := sessions[id]
		result = append(result, GameInfo{
			ID:       id,
			Title:    titles[id],
			Headless: headless,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// NewSession creates a headless session for the given game.
func NewSession(id string, seed int64) (Session, error) {
	mu.RLock()
	f, ok := sessions[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: game %q has no headless session", id)
	}
	return f(seed)
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
