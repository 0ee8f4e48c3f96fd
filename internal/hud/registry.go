package hud

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownModule is returned when an id is not registered.
	ErrUnknownModule = errors.New("unknown module")
	// ErrDuplicateModule is returned when an id is registered twice.
	ErrDuplicateModule = errors.New("duplicate module id")
)

// Factory constructs a fresh instance of one module kind.
type Factory func() (Module, error)

// Registry maps module ids to their kinds and holds the default column
// order. It only stores factories; every module instance belongs to the
// caller that built it.
type Registry struct {
	order []string
	kinds map[string]Factory
	left  []string
	right []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]Factory)}
}

// Register adds a module kind. The factory is called once to check that it
// builds a module with the registered id.
func (r *Registry) Register(id string, f Factory) error {
	if _, ok := r.kinds[id]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateModule, id)
	}
	m, err := f()
	if err != nil {
		return fmt.Errorf("building %q: %w", id, err)
	}
	if m.ID() != id {
		return fmt.Errorf("factory for %q built module %q", id, m.ID())
	}
	r.kinds[id] = f
	r.order = append(r.order, id)
	return nil
}

// New constructs a fresh instance of a kind.
func (r *Registry) New(id string) (Module, error) {
	f, ok := r.kinds[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModule, id)
	}
	m, err := f()
	if err != nil {
		return nil, fmt.Errorf("constructing %q: %w", id, err)
	}
	return m, nil
}

// IDs returns every registered id in registration order.
func (r *Registry) IDs() []string {
	return append([]string(nil), r.order...)
}

// SetDefaultLayout sets the built-in left and right column order.
func (r *Registry) SetDefaultLayout(left, right []string) error {
	for _, id := range append(append([]string(nil), left...), right...) {
		if _, ok := r.kinds[id]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownModule, id)
		}
	}
	r.left = append([]string(nil), left...)
	r.right = append([]string(nil), right...)
	return nil
}

// DefaultLayout returns the ids of the default left and right columns.
func (r *Registry) DefaultLayout() (left, right []string) {
	return append([]string(nil), r.left...), append([]string(nil), r.right...)
}
