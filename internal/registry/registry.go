// Package registry provides a global registry for playable levels.
// Levels register themselves in init() functions, allowing scenes and the
// CLI to discover them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/objects"
)

// Level describes one playable level.
type Level struct {
	// ID is the scene name of the level (e.g., "point", "line").
	ID string

	// Title is a human-readable name for listings.
	Title string

	// Track is the soundtrack played while the level runs. The level ends
	// once the track position passes the track's total duration.
	Track string

	// Next is the level introduced after this one completes.
	// Empty means the game is finished.
	Next string

	// FadeEarly starts fading the track this many seconds before it ends.
	FadeEarly float64

	// Order sorts levels in menus and listings.
	Order int

	// Theme colors the level's progress bar.
	Theme core.Color

	// Spawn creates the level's enemy for a fresh run.
	Spawn Factory
}

// Factory creates a level's enemy inside env's playfield.
type Factory func(env objects.Env) objects.Entity

var (
	levels = make(map[string]Level)
	mu     sync.RWMutex
)

// Register adds a level to the registry.
// Typically called from a level's init() function.
// Panics if a level with the same ID is already registered or has no factory.
func Register(l Level) {
	mu.Lock()
	defer mu.Unlock()

	if l.Spawn == nil {
		panic(fmt.Sprintf("registry: level %q has no spawn factory", l.ID))
	}
	if _, exists := levels[l.ID]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", l.ID))
	}

	levels[l.ID] = l
}

// List returns all registered levels in play order.
func List() []Level {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Level, 0, len(levels))
	for _, l := range levels {
		result = append(result, l)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// IDs returns the registered level IDs in play order.
func IDs() []string {
	list := List()
	ids := make([]string, len(list))
	for i, l := range list {
		ids[i] = l.ID
	}
	return ids
}

// Get looks a level up by its ID.
// Returns an error if the level ID is not registered.
func Get(id string) (Level, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := levels[id]
	if !ok {
		return Level{}, fmt.Errorf("registry: unknown level %q", id)
	}

	return l, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := levels[id]
	return ok
}

// unregister removes a level. Used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(levels, id)
}
