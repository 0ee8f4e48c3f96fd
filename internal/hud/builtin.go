package hud

// Built-in default colors.
const (
	colorName  Color = 0xA0522D
	colorValue Color = 0xDDDDDD
	colorAxisX Color = 0xFF5555
	colorAxisY Color = 0x55FF55
	colorAxisZ Color = 0x55FFFF
	colorHigh  Color = 0x55FF55
	colorMed   Color = 0xFFFF55
	colorLow   Color = 0xFF5555
)

// DefaultLeft and DefaultRight are the built-in column orders.
var (
	DefaultLeft = []string{
		"minecraft", "fps", "graphics", "server", "coords", "chunks",
		"location", "entity", "sound", "help", "misc_left",
	}
	DefaultRight = []string{"system", "misc_right", "target"}
)

func standard(id string, name, value *Color, lines ...string) Factory {
	return func() (Module, error) { return NewStandard(id, name, value, lines...), nil }
}

// Builtin returns a registry holding every module kind the mod ships with.
func Builtin() *Registry {
	r := NewRegistry()
	kinds := []struct {
		id string
		f  Factory
	}{
		{"minecraft", standard("minecraft", Rgb(colorName), Rgb(colorValue), "minecraft")},
		{"fps", func() (Module, error) {
			return NewFPS("fps", Rgb(colorName), nil, Rgb(colorHigh), Rgb(colorMed), Rgb(colorLow), "fps"), nil
		}},
		{"graphics", standard("graphics", Rgb(colorName), Rgb(colorValue),
			"render_distance", "graphics", "clouds", "biome_blend", "shader")},
		{"server", standard("server", Rgb(colorName), Rgb(colorValue),
			"server_tick", "packets_sent", "packets_received")},
		{"coords", func() (Module, error) {
			return NewCoords("coords", Rgb(colorName), nil, Rgb(colorAxisX), Rgb(colorAxisY), Rgb(colorAxisZ),
				"player_coords", "block_coords", "chunk_block_coords", "chunk_coords"), nil
		}},
		{"chunks", standard("chunks", Rgb(colorName), Rgb(colorValue),
			"chunk_sections", "chunk_culling", "pending_chunks", "pending_uploads",
			"available_buffers", "client_chunk_cache", "server_chunk_cache", "spawn_chunks")},
		{"location", standard("location", Rgb(colorName), Rgb(colorValue),
			"dimension", "facing", "rotation", "light", "highest_block", "biome",
			"local_difficulty", "day_ticks", "days", "slime_chunk")},
		{"entity", standard("entity", Rgb(colorName), Rgb(colorValue), "particles", "entities")},
		{"sound", standard("sound", Rgb(colorName), Rgb(colorValue), "sounds", "ambient_sounds")},
		{"help", standard("help", nil, nil, "pie_graph", "fps_tps", "help")},
		{"misc_left", standard("misc_left", Rgb(colorName), Rgb(colorValue), "server_brand", "version_type")},
		{"system", standard("system", Rgb(colorName), Rgb(colorValue),
			"time", "java_version", "memory_usage", "memory_allocation", "cpu", "display", "gpu", "gpu_driver")},
		{"misc_right", standard("misc_right", Rgb(colorName), Rgb(colorValue), "integrated_server", "client_tick")},
		{"target", standard("target", Rgb(colorName), Rgb(colorValue),
			"targeted_block", "targeted_fluid", "targeted_entity")},
		{EmptyID, func() (Module, error) { return NewEmpty(true), nil }},
	}
	for _, k := range kinds {
		if err := r.Register(k.id, k.f); err != nil {
			panic(err)
		}
	}
	if err := r.SetDefaultLayout(DefaultLeft, DefaultRight); err != nil {
		panic(err)
	}
	return r
}
