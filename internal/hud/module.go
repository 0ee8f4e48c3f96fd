// Package hud models the configurable HUD modules: their toggleable debug
// lines, their color slots and the registry of known module kinds.
//
// Variant-specific settings (coordinate axis colors, fps threshold colors,
// spacer height) live on the concrete module types; persistence code only
// talks to the Module interface.
package hud

import (
	"github.com/google/uuid"

	"github.com/lc/hudconf/internal/record"
)

// Schema identifies the on-disk layout a record was read from.
type Schema int

const (
	// Current is the ordered modules_left / modules_right layout.
	Current Schema = iota
	// Legacy is the monolithic "modules" map layout.
	Legacy
)

func (s Schema) String() string {
	if s == Legacy {
		return "legacy"
	}
	return "current"
}

// Persisted keys shared by every module record.
const (
	KeyName       = "name"
	KeyEnabled    = "enabled"
	KeyLines      = "lines"
	KeyNameColor  = "name_color"
	KeyValueColor = "value_color"
)

// DebugLine is one toggleable text line of a module.
type DebugLine struct {
	id      string
	Enabled bool
}

// ID returns the stable line id.
func (l *DebugLine) ID() string { return l.id }

// Module is the contract shared by every HUD module kind.
type Module interface {
	// ID is the registry id of the module kind.
	ID() string
	// Handle identifies this instance; two spacers share an ID but not a Handle.
	Handle() string
	Enabled() bool
	SetEnabled(enabled bool)
	// Lines returns the declared lines in display order.
	Lines() []*DebugLine
	// Line returns the line with the given id, or nil.
	Line(id string) *DebugLine
	// Colors returns every color slot of the module, declared or not.
	Colors() []*ColorSlot
	// ApplyOverrides reconciles the module with one persisted record.
	ApplyOverrides(r record.Record, schema Schema)
	// Export renders the module as a current-schema record.
	Export() record.Record
}

// Base holds the state common to all module kinds.
type Base struct {
	id         string
	handle     string
	enabled    bool
	lines      []*DebugLine
	nameColor  *ColorSlot
	valueColor *ColorSlot
}

func newBase(id string, name, value *ColorSlot, lineIDs ...string) Base {
	lines := make([]*DebugLine, 0, len(lineIDs))
	for _, l := range lineIDs {
		lines = append(lines, &DebugLine{id: l, Enabled: true})
	}
	return Base{
		id:         id,
		handle:     uuid.NewString(),
		enabled:    true,
		lines:      lines,
		nameColor:  name,
		valueColor: value,
	}
}

func (b *Base) ID() string              { return b.id }
func (b *Base) Handle() string          { return b.handle }
func (b *Base) Enabled() bool           { return b.enabled }
func (b *Base) SetEnabled(enabled bool) { b.enabled = enabled }
func (b *Base) Lines() []*DebugLine     { return b.lines }

// NameColor returns the slot for the module name.
func (b *Base) NameColor() *ColorSlot { return b.nameColor }

// ValueColor returns the slot for the module values.
func (b *Base) ValueColor() *ColorSlot { return b.valueColor }

func (b *Base) Line(id string) *DebugLine {
	for _, l := range b.lines {
		if l.id == id {
			return l
		}
	}
	return nil
}

func (b *Base) baseColors() []*ColorSlot {
	return []*ColorSlot{b.nameColor, b.valueColor}
}

// reconcile applies the line, color and enabled overrides every kind shares.
// Unknown line ids are ignored, slots without a default are never assigned
// and a missing enabled flag means enabled.
func reconcile(m Module, r record.Record, schema Schema) {
	if lines, ok := r.Sub(KeyLines); ok {
		for _, id := range lines.Keys() {
			line := m.Line(id)
			if line == nil {
				continue
			}
			if on, ok := lines.LookupBool(id); ok {
				line.Enabled = on
			}
		}
	}
	for _, slot := range m.Colors() {
		slot.apply(r, schema)
	}
	m.SetEnabled(r.Bool(KeyEnabled, true))
}

// export writes the fields every kind shares.
func export(m Module) record.Record {
	lines := record.New()
	for _, l := range m.Lines() {
		lines.Set(l.ID(), l.Enabled)
	}
	out := record.New().
		Set(KeyName, m.ID()).
		Set(KeyEnabled, m.Enabled()).
		Set(KeyLines, lines)
	for _, slot := range m.Colors() {
		if c, ok := slot.Value(); ok {
			out.Set(slot.Key(), int(c))
		}
	}
	return out
}

// Standard is a module with no variant-specific settings.
type Standard struct {
	Base
}

// NewStandard builds a plain module. Pass nil for a color without default.
func NewStandard(id string, name, value *Color, lineIDs ...string) *Standard {
	return &Standard{Base: newBase(id, optionalSlot(KeyNameColor, name), optionalSlot(KeyValueColor, value), lineIDs...)}
}

func (m *Standard) Colors() []*ColorSlot { return m.baseColors() }

func (m *Standard) ApplyOverrides(r record.Record, schema Schema) { reconcile(m, r, schema) }

func (m *Standard) Export() record.Record { return export(m) }

func optionalSlot(key string, def *Color) *ColorSlot {
	if def == nil {
		return NoColorSlot(key)
	}
	return NewColorSlot(key, *def)
}

// Rgb is a convenience for optional color arguments.
func Rgb(c Color) *Color { return &c }

var (
	_ Module = (*Standard)(nil)
	_ Module = (*Coords)(nil)
	_ Module = (*FPS)(nil)
	_ Module = (*Empty)(nil)
)
