package hud

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/lc/hudconf/internal/record"
)

type HudTestSuite struct {
	suite.Suite
	reg *Registry
}

func (s *HudTestSuite) SetupTest() {
	s.reg = Builtin()
}

func (s *HudTestSuite) TestRegistryRejectsDuplicateIDs() {
	err := s.reg.Register("fps", func() (Module, error) { return NewStandard("fps", nil, nil), nil })
	s.ErrorIs(err, ErrDuplicateModule)
}

func (s *HudTestSuite) TestRegistryRejectsMismatchedFactory() {
	r := NewRegistry()
	err := r.Register("a", func() (Module, error) { return NewStandard("b", nil, nil), nil })
	s.Error(err)
	_, err = r.New("a")
	s.ErrorIs(err, ErrUnknownModule)
	s.Empty(r.IDs())
}

func (s *HudTestSuite) TestNewBuildsFreshInstances() {
	first, err := s.reg.New("coords")
	s.Require().NoError(err)

	m, err := s.reg.New("coords")
	s.Require().NoError(err)
	s.IsType(&Coords{}, m)
	s.Equal("coords", m.ID())
	s.NotSame(first, m)
	s.NotEqual(first.Handle(), m.Handle())

	first.SetEnabled(false)
	s.True(m.Enabled())

	_, err = s.reg.New("nope")
	s.ErrorIs(err, ErrUnknownModule)
}

func (s *HudTestSuite) TestNewPropagatesFactoryFailure() {
	calls := 0
	r := NewRegistry()
	s.Require().NoError(r.Register("flaky", func() (Module, error) {
		calls++
		if calls > 1 {
			return nil, errors.New("boom")
		}
		return NewStandard("flaky", nil, nil), nil
	}))

	_, err := r.New("flaky")
	s.Error(err)
	s.Contains(err.Error(), "boom")
}

func (s *HudTestSuite) TestDefaultLayout() {
	left, right := s.reg.DefaultLayout()
	s.Equal(DefaultLeft, left)
	s.Equal(DefaultRight, right)

	left[0] = "changed"
	again, _ := s.reg.DefaultLayout()
	s.Equal(DefaultLeft, again)

	s.ErrorIs(s.reg.SetDefaultLayout([]string{"ghost"}, nil), ErrUnknownModule)
}

func (s *HudTestSuite) TestApplyOverrides() {
	testCases := []struct {
		name   string
		id     string
		schema Schema
		in     record.Record
		check  func(m Module)
	}{
		{
			name:   "unknown lines are ignored",
			id:     "location",
			schema: Current,
			in: record.Record{KeyLines: map[string]any{
				"biome": false, "not_a_line": false, "days": "nope",
			}},
			check: func(m Module) {
				s.False(m.Line("biome").Enabled)
				s.True(m.Line("days").Enabled)
				s.Nil(m.Line("not_a_line"))
			},
		},
		{
			name:   "enabled defaults to true",
			id:     "sound",
			schema: Current,
			in:     record.Record{},
			check:  func(m Module) { s.True(m.Enabled()) },
		},
		{
			name:   "enabled override",
			id:     "sound",
			schema: Legacy,
			in:     record.Record{KeyEnabled: false},
			check:  func(m Module) { s.False(m.Enabled()) },
		},
		{
			name:   "color without default is never assigned",
			id:     "help",
			schema: Current,
			in:     record.Record{KeyNameColor: 0x123456, KeyValueColor: 0x654321},
			check: func(m Module) {
				for _, slot := range m.Colors() {
					_, ok := slot.Value()
					s.False(ok, slot.Key())
				}
			},
		},
		{
			name:   "missing color resets to default",
			id:     "minecraft",
			schema: Current,
			in:     record.Record{KeyValueColor: int64(0x010203)},
			check: func(m Module) {
				b := m.(*Standard)
				c, _ := b.NameColor().Value()
				s.Equal(colorName, c)
				c, _ = b.ValueColor().Value()
				s.Equal(Color(0x010203), c)
			},
		},
		{
			name:   "hex string color",
			id:     "minecraft",
			schema: Current,
			in:     record.Record{KeyNameColor: "#00FF00"},
			check: func(m Module) {
				c, _ := m.(*Standard).NameColor().Value()
				s.Equal(Color(0x00FF00), c)
			},
		},
		{
			name:   "legacy coords axis colors",
			id:     "coords",
			schema: Legacy,
			in:     record.Record{KeyColorX: 1, KeyColorY: 2, KeyColorZ: 3, KeyValueColor: 4},
			check: func(m Module) {
				x, y, z := m.(*Coords).Axes()
				cx, _ := x.Value()
				cy, _ := y.Value()
				cz, _ := z.Value()
				s.Equal([]Color{1, 2, 3}, []Color{cx, cy, cz})
				_, ok := m.(*Coords).ValueColor().Value()
				s.False(ok)
			},
		},
		{
			name:   "legacy schema ignores fps thresholds",
			id:     "fps",
			schema: Legacy,
			in:     record.Record{KeyColorHigh: 7},
			check: func(m Module) {
				high, _, _ := m.(*FPS).Thresholds()
				c, _ := high.Value()
				s.Equal(colorHigh, c)
			},
		},
		{
			name:   "current schema reads fps thresholds",
			id:     "fps",
			schema: Current,
			in:     record.Record{KeyColorHigh: 7, KeyColorLow: 9},
			check: func(m Module) {
				high, med, low := m.(*FPS).Thresholds()
				h, _ := high.Value()
				md, _ := med.Value()
				l, _ := low.Value()
				s.Equal([]Color{7, colorMed, 9}, []Color{h, md, l})
			},
		},
		{
			name:   "empty lines default to one",
			id:     EmptyID,
			schema: Current,
			in:     record.Record{},
			check:  func(m Module) { s.Equal(1, m.(*Empty).EmptyLines) },
		},
		{
			name:   "empty lines override",
			id:     EmptyID,
			schema: Current,
			in:     record.Record{KeyEmptyLines: 4.0},
			check:  func(m Module) { s.Equal(4, m.(*Empty).EmptyLines) },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			m, err := s.reg.New(tc.id)
			s.Require().NoError(err)
			m.ApplyOverrides(tc.in, tc.schema)
			tc.check(m)
		})
	}
}

func (s *HudTestSuite) TestExportOmitsColorsWithoutDefault() {
	for _, id := range []string{"help", EmptyID} {
		m, err := s.reg.New(id)
		s.Require().NoError(err)
		out := m.Export()
		for _, key := range []string{KeyNameColor, KeyValueColor} {
			s.False(out.Has(key), "%s should not export %s", id, key)
		}
	}

	fps, _ := s.reg.New("fps")
	out := fps.Export()
	s.True(out.Has(KeyNameColor))
	s.False(out.Has(KeyValueColor))
	s.True(out.Has(KeyColorHigh))
	s.Equal("fps", out[KeyName])
}

func (s *HudTestSuite) TestExportLines() {
	m, _ := s.reg.New("entity")
	m.Line("particles").Enabled = false

	lines, ok := m.Export().Sub(KeyLines)
	s.Require().True(ok)
	s.Equal(record.Record{"particles": false, "entities": true}, lines)
}

func (s *HudTestSuite) TestPlaceholderIsDisabledSpacer() {
	p := NewPlaceholder()
	s.Equal(EmptyID, p.ID())
	s.False(p.Enabled())
	s.Equal(1, p.EmptyLines)
}

func (s *HudTestSuite) TestParseColor() {
	for in, want := range map[string]Color{"#FF0000": 0xFF0000, "0x00ff00": 0x00FF00, "ff": 0xFF} {
		c, err := ParseColor(in)
		s.Require().NoError(err, in)
		s.Equal(want, c)
	}
	_, err := ParseColor("#GGGGGG")
	s.Error(err)
	_, err = ParseColor("#1234567")
	s.Error(err)
	s.Equal("#A0522D", colorName.String())
}

func TestHudSuite(t *testing.T) {
	suite.Run(t, new(HudTestSuite))
}
