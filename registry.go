package sketchbook

import (
	"errors"
	"fmt"
	"slices"
)

var ErrUnknownScene = errors.New("unknown scene")

// SceneFactory creates a fresh scene for the given configuration.
type SceneFactory func(cfg Config) Scene

// Registry maps scene names to factories.
type Registry struct {
	factories map[string]SceneFactory
}

// Add registers a factory. Registering the same name twice is a programming
// error and panics.
func (r *Registry) Add(name string, factory SceneFactory) {
	if r.factories == nil {
		r.factories = map[string]SceneFactory{}
	}

	if _, exists := r.factories[name]; exists {
		panic(fmt.Sprintf("scene %q already registered", name))
	}

	r.factories[name] = factory
}

// New creates the scene with the given name.
func (r *Registry) New(name string, cfg Config) (Scene, error) {
	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("scene %q: %w (available: %v)", name, ErrUnknownScene, r.Names())
	}

	return factory(cfg), nil
}

// Names returns all registered scene names in sorted order.
func (r *Registry) Names() []string {
	var names []string
	for name := range r.factories {
		names = append(names, name)
	}

	slices.Sort(names)
	return names
}
