package config

import "sort"

// Preset holds the numeric parameters for one named run.
type Preset struct {
	Size      int
	Steps     int
	Particles int
	Sigma     float64
}

var Presets = map[string]map[string]Preset{
	"plasma": {
		"tiny":    {Size: 10},
		"default": {Size: DefaultSize},
		"dense":   {Size: 400},
	},
	"neutrino": {
		"short":   {Steps: 50},
		"default": {Steps: DefaultSteps},
		"long":    {Steps: 5000},
	},
	"darkmatter": {
		"sparse":  {Particles: 10, Steps: 200, Sigma: DefaultSigma},
		"default": {Particles: DefaultParticles, Steps: DefaultSteps, Sigma: DefaultSigma},
		"swarm":   {Particles: 500, Steps: 300, Sigma: DefaultSigma},
		"boiling": {Particles: 100, Steps: 200, Sigma: 3.0},
	},
}

// GetPreset returns the named preset for a simulation.
func GetPreset(simulation, name string) (Preset, bool) {
	presets, ok := Presets[simulation]
	if !ok {
		return Preset{}, false
	}
	p, ok := presets[name]
	return p, ok
}

// ListPresets returns preset names for a simulation, or nil if unknown.
func ListPresets(simulation string) []string {
	presets, ok := Presets[simulation]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply copies the preset's non-zero values into cfg.
func (p Preset) Apply(simulation string, cfg *Config) {
	switch simulation {
	case "plasma":
		if p.Size != 0 {
			cfg.Plasma.Size = p.Size
		}
	case "neutrino":
		if p.Steps != 0 {
			cfg.Neutrino.Steps = p.Steps
		}
	case "darkmatter":
		if p.Particles != 0 {
			cfg.DarkMatter.Particles = p.Particles
		}
		if p.Steps != 0 {
			cfg.DarkMatter.Steps = p.Steps
		}
		if p.Sigma != 0 {
			cfg.DarkMatter.Sigma = p.Sigma
		}
	}
}
