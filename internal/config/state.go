package config

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/atomic"

	"github.com/lc/hudconf/internal/hud"
	"github.com/lc/hudconf/internal/log"
)

// Column names one side of the overlay.
type Column int

const (
	Left Column = iota
	Right
)

func (c Column) String() string {
	if c == Right {
		return "right"
	}
	return "left"
}

// Ref returns the "<column>:<index>" reference of slot i, as accepted by
// State.Find.
func (c Column) Ref(i int) string { return fmt.Sprintf("%s:%d", c, i) }

// State is the configuration context threaded through Load and Save: the
// general options, the two ordered module columns and the registry the
// modules come from. It is built once at startup with the built-in
// defaults.
//
// A State owns one instance of every registered kind. The default layout,
// the legacy "modules" section and the legacy order lists all refer to
// those instances, so a legacy override shows up in the columns. Module
// instances are never shared between States.
type State struct {
	General GeneralOptions
	Left    []hud.Module
	Right   []hud.Module

	registry *hud.Registry
	kinds    map[string]hud.Module
	revision atomic.Uint64
}

// NewState returns a state holding the built-in defaults of reg.
func NewState(reg *hud.Registry) *State {
	st := &State{registry: reg}
	st.Reset()
	return st
}

// Reset restores the built-in general options and the default layout,
// rebuilding every kind instance from its factory. A kind whose factory
// fails is left out.
func (s *State) Reset() {
	s.General = DefaultGeneral()
	s.kinds = make(map[string]hud.Module)
	for _, id := range s.registry.IDs() {
		m, err := s.registry.New(id)
		if err != nil {
			log.Warn("config: module kind unavailable", "id", id, "error", err)
			continue
		}
		s.kinds[id] = m
	}
	left, right := s.registry.DefaultLayout()
	s.Left, s.Right = s.Resolve(left), s.Resolve(right)
	s.revision.Inc()
}

// Registry returns the module registry.
func (s *State) Registry() *hud.Registry { return s.registry }

// Revision increases every time the state is reset or loaded. Renderers
// may poll it from another goroutine to notice a reload.
func (s *State) Revision() uint64 { return s.revision.Load() }

// Kind returns this state's instance of a module kind.
func (s *State) Kind(id string) (hud.Module, bool) {
	m, ok := s.kinds[id]
	return m, ok
}

// Kinds returns the kind instances in registration order.
func (s *State) Kinds() []hud.Module {
	return s.Resolve(s.registry.IDs())
}

// Resolve maps ids to kind instances, dropping ids that have none.
func (s *State) Resolve(ids []string) []hud.Module {
	out := make([]hud.Module, 0, len(ids))
	for _, id := range ids {
		if m, ok := s.kinds[id]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Column returns the modules of one side.
func (s *State) Column(c Column) []hud.Module {
	if c == Right {
		return s.Right
	}
	return s.Left
}

// Find resolves a module reference. A reference is tried as an instance
// handle, then as a "<column>:<index>" position such as "right:0", then as
// the id of the first module of that kind. Handles only live as long as the
// process, so callers outside it should use positions or ids.
func (s *State) Find(ref string) (hud.Module, Column, bool) {
	for _, c := range []Column{Left, Right} {
		for _, m := range s.Column(c) {
			if m.Handle() == ref {
				return m, c, true
			}
		}
	}
	if col, idx, ok := strings.Cut(ref, ":"); ok {
		for _, c := range []Column{Left, Right} {
			if col != c.String() {
				continue
			}
			i, err := strconv.Atoi(idx)
			if err != nil || i < 0 || i >= len(s.Column(c)) {
				return nil, c, false
			}
			return s.Column(c)[i], c, true
		}
	}
	for _, c := range []Column{Left, Right} {
		for _, m := range s.Column(c) {
			if m.ID() == ref {
				return m, c, true
			}
		}
	}
	return nil, Left, false
}

func (s *State) loaded() { s.revision.Inc() }
