package crosshair

// Preset is a named starting shape offered by the Type dropdown. Applying a
// preset rewrites the shape fields and keeps the color.
type Preset struct {
	Name  string
	Apply func(*Settings)
}

// PresetCustom leaves the current settings untouched.
const PresetCustom = "Create"

var presets = []Preset{
	{Name: PresetCustom, Apply: func(*Settings) {}},
	{Name: "Crosshair", Apply: func(s *Settings) {
		d := DefaultSettings()
		s.Length = d.Length
		s.Thickness = d.Thickness
		s.CenterGap = d.CenterGap
		s.DotSize = d.DotSize
		s.CircleRadius = 0
		s.OutlineOpacity = 0
	}},
	{Name: "Dot", Apply: func(s *Settings) {
		s.Length = 0
		s.CenterGap = 0
		s.DotSize = 4
		s.CircleRadius = 0
		s.OutlineOpacity = 0
	}},
	{Name: "Circle", Apply: func(s *Settings) {
		s.Length = 0
		s.CenterGap = 0
		s.DotSize = 2
		s.CircleRadius = 15
		s.OutlineOpacity = 255
	}},
}

// PresetNames returns the dropdown entries in display order.
func PresetNames() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}

// LookupPreset finds a preset by name.
func LookupPreset(name string) (Preset, bool) {
	for _, p := range presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
