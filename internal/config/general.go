package config

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/lc/hudconf/internal/hud"
	"github.com/lc/hudconf/internal/record"
)

// ErrUnknownOption is returned by GeneralOptions.Set for an unknown key.
var ErrUnknownOption = errors.New("unknown option")

// Keys of the general section.
const (
	KeyDisableMod        = "disable_mod"
	KeySpaceModules      = "space_modules"
	KeyShadowText        = "shadow_text"
	KeyAnimations        = "animations"
	KeyAnimationSpeed    = "animationSpeed"
	KeyFontScale         = "fontScale"
	KeyBackgroundColor   = "background_color"
	KeyHideSidebar       = "hide_sidebar"
	KeyModulesLeftOrder  = "modules_left_order"
	KeyModulesRightOrder = "modules_right_order"
)

// DefaultBackgroundColor is the packed ARGB default for the text background.
const DefaultBackgroundColor = 0x6F505050

// GeneralOptions are the display options that apply to the whole overlay.
type GeneralOptions struct {
	DisableMod       bool
	SpaceEveryModule bool
	ShadowText       bool
	EnableAnimations bool
	AnimationSpeed   float64
	FontScale        float64
	BackgroundColor  int
	HideSidebar      bool
}

// DefaultGeneral returns the built-in general options.
func DefaultGeneral() GeneralOptions {
	return GeneralOptions{
		ShadowText:       true,
		EnableAnimations: true,
		AnimationSpeed:   1.0,
		FontScale:        1.0,
		BackgroundColor:  DefaultBackgroundColor,
		HideSidebar:      true,
	}
}

// OptionKeys lists the general keys in display order.
func OptionKeys() []string {
	return []string{
		KeyDisableMod, KeySpaceModules, KeyShadowText, KeyAnimations,
		KeyAnimationSpeed, KeyFontScale, KeyBackgroundColor, KeyHideSidebar,
	}
}

// readGeneral builds options from a general record. Every absent or
// unusable key takes its built-in default, not the current value.
func readGeneral(r record.Record) GeneralOptions {
	d := DefaultGeneral()
	return GeneralOptions{
		DisableMod:       r.Bool(KeyDisableMod, d.DisableMod),
		SpaceEveryModule: r.Bool(KeySpaceModules, d.SpaceEveryModule),
		ShadowText:       r.Bool(KeyShadowText, d.ShadowText),
		EnableAnimations: r.Bool(KeyAnimations, d.EnableAnimations),
		AnimationSpeed:   r.Float(KeyAnimationSpeed, d.AnimationSpeed),
		FontScale:        r.Float(KeyFontScale, d.FontScale),
		BackgroundColor:  r.Int(KeyBackgroundColor, d.BackgroundColor),
		HideSidebar:      r.Bool(KeyHideSidebar, d.HideSidebar),
	}
}

// toRecord renders the options as the general section.
func (g GeneralOptions) toRecord() record.Record {
	return record.New().
		Set(KeyDisableMod, g.DisableMod).
		Set(KeySpaceModules, g.SpaceEveryModule).
		Set(KeyShadowText, g.ShadowText).
		Set(KeyAnimations, g.EnableAnimations).
		Set(KeyAnimationSpeed, g.AnimationSpeed).
		Set(KeyFontScale, g.FontScale).
		Set(KeyBackgroundColor, g.BackgroundColor).
		Set(KeyHideSidebar, g.HideSidebar)
}

// Get returns the textual value of one option.
func (g GeneralOptions) Get(key string) (string, error) {
	switch key {
	case KeyDisableMod:
		return strconv.FormatBool(g.DisableMod), nil
	case KeySpaceModules:
		return strconv.FormatBool(g.SpaceEveryModule), nil
	case KeyShadowText:
		return strconv.FormatBool(g.ShadowText), nil
	case KeyAnimations:
		return strconv.FormatBool(g.EnableAnimations), nil
	case KeyAnimationSpeed:
		return strconv.FormatFloat(g.AnimationSpeed, 'g', -1, 64), nil
	case KeyFontScale:
		return strconv.FormatFloat(g.FontScale, 'g', -1, 64), nil
	case KeyBackgroundColor:
		return fmt.Sprintf("#%08X", uint32(g.BackgroundColor)), nil
	case KeyHideSidebar:
		return strconv.FormatBool(g.HideSidebar), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
}

// Set parses value and assigns it to the option named key.
func (g *GeneralOptions) Set(key, value string) error {
	var err error
	switch key {
	case KeyDisableMod:
		g.DisableMod, err = strconv.ParseBool(value)
	case KeySpaceModules:
		g.SpaceEveryModule, err = strconv.ParseBool(value)
	case KeyShadowText:
		g.ShadowText, err = strconv.ParseBool(value)
	case KeyAnimations:
		g.EnableAnimations, err = strconv.ParseBool(value)
	case KeyAnimationSpeed:
		g.AnimationSpeed, err = parsePositive(value)
	case KeyFontScale:
		g.FontScale, err = parsePositive(value)
	case KeyBackgroundColor:
		g.BackgroundColor, err = parseARGB(value)
	case KeyHideSidebar:
		g.HideSidebar, err = strconv.ParseBool(value)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOption, key)
	}
	if err != nil {
		return fmt.Errorf("option %s: %w", key, err)
	}
	return nil
}

func parsePositive(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f <= 0 {
		return 0, errors.New("must be greater than zero")
	}
	return f, nil
}

// parseARGB accepts a decimal integer or an 8-digit hex color.
func parseARGB(s string) (int, error) {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(int32(n)), nil
	}
	if len(s) == 9 && s[0] == '#' {
		n, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return 0, err
		}
		return int(int32(uint32(n))), nil
	}
	c, err := hud.ParseColor(s)
	if err != nil {
		return 0, err
	}
	return int(c), nil
}
