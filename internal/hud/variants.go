package hud

import (
	"github.com/lc/hudconf/internal/record"
)

// Variant keys.
const (
	KeyColorX     = "color_x"
	KeyColorY     = "color_y"
	KeyColorZ     = "color_z"
	KeyColorHigh  = "color_high"
	KeyColorMed   = "color_med"
	KeyColorLow   = "color_low"
	KeyEmptyLines = "empty_lines"
)

// Coords shows the player position with one color per axis.
type Coords struct {
	Base
	x, y, z *ColorSlot
}

// NewCoords builds a coordinates module. Axis colors are optional.
func NewCoords(id string, name, value, x, y, z *Color, lineIDs ...string) *Coords {
	return &Coords{
		Base: newBase(id, optionalSlot(KeyNameColor, name), optionalSlot(KeyValueColor, value), lineIDs...),
		x:    optionalSlot(KeyColorX, x),
		y:    optionalSlot(KeyColorY, y),
		z:    optionalSlot(KeyColorZ, z),
	}
}

// Axes returns the x, y and z slots.
func (m *Coords) Axes() (x, y, z *ColorSlot) { return m.x, m.y, m.z }

func (m *Coords) Colors() []*ColorSlot {
	return append(m.baseColors(), m.x, m.y, m.z)
}

func (m *Coords) ApplyOverrides(r record.Record, schema Schema) { reconcile(m, r, schema) }

func (m *Coords) Export() record.Record { return export(m) }

// FPS colors the frame rate by threshold. The threshold colors were
// introduced with the current schema.
type FPS struct {
	Base
	high, med, low *ColorSlot
}

// NewFPS builds a frame rate module.
func NewFPS(id string, name, value, high, med, low *Color, lineIDs ...string) *FPS {
	return &FPS{
		Base: newBase(id, optionalSlot(KeyNameColor, name), optionalSlot(KeyValueColor, value), lineIDs...),
		high: optionalSlot(KeyColorHigh, high).currentOnly(),
		med:  optionalSlot(KeyColorMed, med).currentOnly(),
		low:  optionalSlot(KeyColorLow, low).currentOnly(),
	}
}

// Thresholds returns the high, medium and low slots.
func (m *FPS) Thresholds() (high, med, low *ColorSlot) { return m.high, m.med, m.low }

func (m *FPS) Colors() []*ColorSlot {
	return append(m.baseColors(), m.high, m.med, m.low)
}

func (m *FPS) ApplyOverrides(r record.Record, schema Schema) { reconcile(m, r, schema) }

func (m *FPS) Export() record.Record { return export(m) }

// EmptyID is the registry id of the spacer module.
const EmptyID = "empty"

// Empty is a spacer that renders blank lines.
type Empty struct {
	Base
	EmptyLines int
}

// NewEmpty builds a spacer of one line.
func NewEmpty(enabled bool) *Empty {
	m := &Empty{
		Base:       newBase(EmptyID, NoColorSlot(KeyNameColor), NoColorSlot(KeyValueColor)),
		EmptyLines: 1,
	}
	m.enabled = enabled
	return m
}

// NewPlaceholder returns a disabled spacer that stands in for a module
// that could not be constructed. The failed record is applied to it like
// to any other spacer.
func NewPlaceholder() *Empty { return NewEmpty(false) }

func (m *Empty) Colors() []*ColorSlot { return m.baseColors() }

func (m *Empty) ApplyOverrides(r record.Record, schema Schema) {
	reconcile(m, r, schema)
	if schema == Current {
		m.EmptyLines = r.Int(KeyEmptyLines, 1)
	}
}

func (m *Empty) Export() record.Record {
	return export(m).Set(KeyEmptyLines, m.EmptyLines)
}
