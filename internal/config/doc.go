// Package config persists the overlay settings: the general display
// options and the ordered left and right module columns.
//
// A Store maps a State to a single file at <root>/config/<mod>.<ext>, in
// TOML, JSON or YAML. Two layouts are understood on load.
//
// # Current schema
//
// Each column is an ordered list of self-describing module records:
//
//	[[modules_left]]
//	name = "fps"
//	enabled = true
//	name_color = 10506797
//	color_high = 5635925
//
//	[modules_left.lines]
//	fps = true
//
//	[general]
//	disable_mod = false
//	fontScale = 1.0
//
// # Legacy schema
//
// Older files keep one table per module id under "modules" and store the
// column order separately:
//
//	[modules.coords]
//	enabled = true
//	color_x = 16733525
//
//	[general]
//	modules_left_order = ["fps", "coords"]
//
// The presence of a top-level "modules" key selects the legacy path. Legacy
// values are applied to the kind instances owned by the State; current
// records always produce fresh module instances.
//
// # Basic Usage
//
//	reg := hud.Builtin()
//	st := config.NewState(reg)
//	store := config.Default(gameDir)
//	if _, err := store.Load(st, config.JSON); err != nil {
//		log.Fatal(err)
//	}
//	// ... later, after a settings change
//	if err := store.Save(st); err != nil {
//		log.Fatal(err)
//	}
//
// # Error Handling
//
// Load only fails when the file exists but cannot be read or parsed; the
// state is left untouched in that case. A missing file keeps the
// defaults. Records without a name or with an unknown name are dropped,
// a module whose kind fails to construct is replaced by a spacer that takes
// the record's enabled flag and blank-line count,
// and wrongly typed values fall back to their defaults. All of these are
// listed in the returned Report and never abort the load.
//
// Save writes atomically and wraps any failure in ErrWriteConfig.
//
// # Thread Safety
//
// Load and Save are not safe for concurrent use and must not overlap with
// mutation of the State. State.Revision may be read from any goroutine.
package config
