package config

import "sort"

var presets = map[string]*Config{
	"classic": {
		Bodies: 3, Gravity: 1e2, Speed: 3, Drag: 0.99,
		TrailCap: DefaultTrailCap, Theme: DefaultTheme,
	},
	"binary": {
		Bodies: 2, Gravity: 1e3, Speed: 1, Drag: 1.0,
		TrailCap: DefaultTrailCap, Theme: DefaultTheme,
	},
	"swarm": {
		Bodies: 8, Gravity: 1e2, Speed: 2, Drag: 0.98,
		TrailCap: 1200, Theme: DefaultTheme,
	},
}

// GetPreset returns a copy of the named preset, or nil if unknown.
func GetPreset(name string) *Config {
	p, ok := presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// ListPresets returns the preset names sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
