package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aretw0/cellsweep/pkg/config"
)

// Registry manages the named patterns available to the CLI and adapters.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]config.Pattern
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		patterns: make(map[string]config.Pattern),
	}
}

// Register adds a pattern to the registry.
// If a pattern with the same name exists, it is overwritten.
func (r *Registry) Register(p config.Pattern) error {
	if p.Name == "" {
		return fmt.Errorf("pattern name is required")
	}
	if err := p.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.patterns[p.Name] = p
	return nil
}

// Get looks up a pattern by name.
func (r *Registry) Get(name string) (config.Pattern, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.patterns[name]
	if !ok {
		return config.Pattern{}, fmt.Errorf("pattern not found: %s", name)
	}
	return p, nil
}

// Names returns the registered pattern names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.patterns))
	for name := range r.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Builtin returns a registry preloaded with the classic still lifes, oscillators
// and the glider demo.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range builtins {
		if err := r.Register(p); err != nil {
			panic(fmt.Sprintf("builtin pattern %s: %v", p.Name, err))
		}
	}
	return r
}

var builtins = []config.Pattern{
	{
		Name:        "block",
		Description: "2x2 still life",
		Rows:        "------\n------\n--**--\n--**--\n------\n------\n",
		Generations: 1,
	},
	{
		Name:        "blinker",
		Description: "period 2 oscillator",
		Rows:        "-----\n-----\n-***-\n-----\n-----\n",
		Generations: 2,
	},
	{
		Name:        "toad",
		Description: "period 2 oscillator",
		Rows:        "------\n------\n--***-\n-***--\n------\n------\n",
		Generations: 2,
	},
	{
		Name:        "beacon",
		Description: "period 2 oscillator",
		Rows:        "------\n-**---\n-**---\n---**-\n---**-\n------\n",
		Generations: 2,
	},
	{
		Name:        "glider",
		Description: "spaceship moving one cell diagonally every 4 generations",
		Height:      8,
		Width:       8,
		Alive:       [][]int{{0, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}},
		Generations: 4,
	},
	{
		Name:        "demo",
		Description: "glider on a 5x9 torus",
		Height:      5,
		Width:       9,
		Alive:       [][]int{{0, 3}, {1, 4}, {2, 2}, {2, 3}, {2, 4}},
		Generations: 10,
	},
}
