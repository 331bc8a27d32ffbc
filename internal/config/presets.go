package config

import "sort"

var Presets = map[string]*Config{
	"helix": {
		Bodies: 200, Steps: 600, Sample: 10, Dt: 0.016, G: 1, Epsilon: 1e-6,
		Layout: "helix", Integrator: "euler", Reinit: "keep", Format: "xy", Scale: 0.01, FPS: 60,
	},
	"ring": {
		Bodies: 64, Steps: 1000, Sample: 10, Dt: 0.01, G: 1, Epsilon: 1e-4,
		Layout: "ring", Integrator: "leapfrog", Reinit: "keep", Format: "xy", Scale: 0.1, FPS: 60,
	},
	"binary": {
		Bodies: 2, Steps: 200, Sample: 1, Dt: 0.016, G: 1, Epsilon: 1e-6,
		Layout: "line", Integrator: "euler", Reinit: "replace", Format: "xyz", Scale: 0.5, FPS: 60,
	},
	"collapse": {
		Bodies: 16, Steps: 100, Sample: 1, Dt: 0.016, G: 1, Epsilon: 1e-6,
		Layout: "collapsed", Integrator: "euler", Reinit: "replace", Format: "xyz", Scale: 1, FPS: 30,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
