package hud

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lc/hudconf/internal/record"
)

// Color is a packed 0xRRGGBB text color.
type Color int

// String renders the color as #RRGGBB.
func (c Color) String() string {
	return fmt.Sprintf("#%06X", int(c)&0xFFFFFF)
}

// ParseColor accepts "#RRGGBB", "0xRRGGBB" or a bare hex triple.
func ParseColor(s string) (Color, error) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	if len(h) == 0 || len(h) > 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(n), nil
}

// lookupColor reads key as an integer or a hex string.
func lookupColor(r record.Record, key string) (Color, bool) {
	if n, ok := r.LookupInt(key); ok {
		return Color(n), true
	}
	if s, ok := r.String(key); ok {
		if c, err := ParseColor(s); err == nil {
			return c, true
		}
	}
	return 0, false
}

// ColorSlot is one persisted color key of a module. A slot either has a
// built-in default, in which case it always holds a value, or it has
// none and never holds one.
type ColorSlot struct {
	key      string
	def      Color
	value    Color
	declared bool
	legacy   bool
}

// NewColorSlot returns a slot with a default that legacy files may override.
func NewColorSlot(key string, def Color) *ColorSlot {
	return &ColorSlot{key: key, def: def, value: def, declared: true, legacy: true}
}

// NoColorSlot returns a slot without a default.
func NoColorSlot(key string) *ColorSlot {
	return &ColorSlot{key: key}
}

// currentOnly marks the slot as unknown to the legacy schema.
func (s *ColorSlot) currentOnly() *ColorSlot {
	s.legacy = false
	return s
}

// Key returns the persisted key of the slot.
func (s *ColorSlot) Key() string { return s.key }

// Default returns the built-in default, if declared.
func (s *ColorSlot) Default() (Color, bool) { return s.def, s.declared }

// Value returns the current color. ok is false for slots without a default.
func (s *ColorSlot) Value() (Color, bool) { return s.value, s.declared }

// Set overrides the color. It reports false, and does nothing, for a
// slot without a default.
func (s *ColorSlot) Set(c Color) bool {
	if !s.declared {
		return false
	}
	s.value = c
	return true
}

// Reset restores the default.
func (s *ColorSlot) Reset() { s.value = s.def }

// apply sets the slot from r, or back to its default when r has no usable
// value for the key.
func (s *ColorSlot) apply(r record.Record, schema Schema) {
	if !s.declared {
		return
	}
	if schema == Legacy && !s.legacy {
		return
	}
	if c, ok := lookupColor(r, s.key); ok {
		s.value = c
		return
	}
	s.value = s.def
}
