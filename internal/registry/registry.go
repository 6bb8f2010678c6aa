// Package registry maps variant ids to their factories. Variant packages
// register from init, so importing them for side effects is enough to make
// them playable.
package registry

import (
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/vovakirdan/tetra-arcade/internal/config"
	"github.com/vovakirdan/tetra-arcade/internal/tetris"
)

// ErrUnknownGame is returned for ids nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is one playable variant. A variant only picks the piece set; rules,
// timing and rendering are shared.
type Game interface {
	ID() string    // stable id used on the command line and in the score table
	Title() string // display name
	Shapes() []tetris.Shape
}

// GameInfo describes a registered variant without instantiating it.
type GameInfo struct {
	ID     string
	Title  string
	Pieces int
}

// Factory creates a fresh variant.
type Factory func() Game

type entry struct {
	info GameInfo
	new  Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register adds a variant under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	g := f()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{
		info: GameInfo{ID: id, Title: g.Title(), Pieces: len(g.Shapes())},
		new:  f,
	}
}

// List returns every registered variant ordered by id.
func List() []GameInfo {
	mu.RLock()
	out := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.info)
	}
	mu.RUnlock()

	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create instantiates the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.new(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}

// NewSession builds a ready-to-play session for the variant id: the
// variant's shapes plus any configured extras, the configured palette, and
// a random source seeded with seed (0 means seed from the clock).
func NewSession(id string, cfg config.TetrisConfig, seed int64) (*tetris.Session, error) {
	g, err := Create(id)
	if err != nil {
		return nil, err
	}

	extra, err := cfg.ExtraShapes()
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	colors, err := cfg.Colors()
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	catalog, err := tetris.NewCatalog(append(g.Shapes(), extra...), colors, rng)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	session, err := tetris.NewSession(opts, catalog)
	if err != nil {
		return nil, fmt.Errorf("registry: %s: %w", id, err)
	}
	return session, nil
}
