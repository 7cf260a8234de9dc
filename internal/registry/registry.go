// Package registry maps game IDs to factories.
// Games register themselves in init() functions, so the platform can list
// and create them without importing each game directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-watersort/internal/core"
)

// Game is the interface every playable mode implements.
// Implementations hold pure logic; the platform owns input, timing and
// terminal output.
type Game interface {
	// ID returns a unique identifier, used by the CLI and score storage.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset initializes or restarts the game for the given screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick with the actions of that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns the current score and status flags.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game.
type Factory func() Game

// Registry holds game factories keyed by ID. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]entry
}

type entry struct {
	factory Factory
	title   string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]entry)}
}

// Register adds a factory. It panics if id is already taken.
func (r *Registry) Register(id string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	r.entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func (r *Registry) List() []GameInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]GameInfo, 0, len(r.entries))
	for id, e := range r.entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID.
func (r *Registry) Create(id string) (Game, error) {
	r.mu.RLock()
	e, ok := r.entries[id]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func (r *Registry) Exists(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[id]
	return ok
}

// Default is the registry games add themselves to from init().
var Default = New()

// Register adds a factory to the default registry.
func Register(id string, f Factory) { Default.Register(id, f) }

// List returns the games in the default registry.
func List() []GameInfo { return Default.List() }

// Create instantiates a game from the default registry.
func Create(id string) (Game, error) { return Default.Create(id) }

// Exists reports whether id is in the default registry.
func Exists(id string) bool { return Default.Exists(id) }
