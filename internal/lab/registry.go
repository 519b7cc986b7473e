package lab

import (
	"context"
	"fmt"
	"slices"

	"github.com/san-kum/quarkviz/internal/config"
	"github.com/san-kum/quarkviz/internal/quantum"
	"github.com/san-kum/quarkviz/internal/viz"
)

// Simulation describes one selectable entry.
type Simulation struct {
	Key    string // selector key: "1", "2" or "3"
	Name   string // subcommand and preset name
	Title  string
	Info   string
	Params []string
	Run    func(ctx context.Context, r *Runner, params map[string]int) error
}

type Registry struct {
	sims map[string]Simulation
	cfg  *config.Config
}

// NewRegistry registers the three simulations with defaults from cfg.
func NewRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	r := &Registry{sims: make(map[string]Simulation), cfg: cfg}

	r.sims["1"] = Simulation{
		Key:    "1",
		Name:   "plasma",
		Title:  "Quark-Gluon Plasma Simulation",
		Info:   "Random grid of quarks, gluons and empty space",
		Params: []string{"size"},
		Run: func(ctx context.Context, rn *Runner, p map[string]int) error {
			return rn.GenerateAndDisplayPlasma(ctx, p["size"])
		},
	}
	r.sims["2"] = Simulation{
		Key:    "2",
		Name:   "neutrino",
		Title:  "Neutrino Transport Simulation",
		Info:   "Random walk on a square lattice",
		Params: []string{"steps"},
		Run: func(ctx context.Context, rn *Runner, p map[string]int) error {
			return rn.RunNeutrinoWalk(ctx, p["steps"])
		},
	}
	r.sims["3"] = Simulation{
		Key:    "3",
		Name:   "darkmatter",
		Title:  "Dark Matter Interaction Simulation",
		Info:   "Particles jittering inside a box",
		Params: []string{"particles", "steps"},
		Run: func(ctx context.Context, rn *Runner, p map[string]int) error {
			return rn.RunDarkMatterField(ctx, p["particles"], p["steps"])
		},
	}
	return r
}

// Get looks a simulation up by selector key or name.
func (r *Registry) Get(key string) (Simulation, error) {
	if s, ok := r.sims[key]; ok {
		return s, nil
	}
	for _, s := range r.sims {
		if s.Name == key {
			return s, nil
		}
	}
	return Simulation{}, fmt.Errorf("%q: %w", key, quantum.ErrUnknownSimulation)
}

// List returns the simulations ordered by key.
func (r *Registry) List() []Simulation {
	keys := make([]string, 0, len(r.sims))
	for k := range r.sims {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	sims := make([]Simulation, len(keys))
	for i, k := range keys {
		sims[i] = r.sims[k]
	}
	return sims
}

// Defaults returns the configured parameter values for a simulation.
func (r *Registry) Defaults(name string) map[string]int {
	switch name {
	case "plasma":
		return map[string]int{"size": r.cfg.Plasma.Size}
	case "neutrino":
		return map[string]int{"steps": r.cfg.Neutrino.Steps}
	case "darkmatter":
		return map[string]int{"particles": r.cfg.DarkMatter.Particles, "steps": r.cfg.DarkMatter.Steps}
	}
	return nil
}

// MenuEntries describes the simulations for the interactive menu.
func (r *Registry) MenuEntries() []viz.MenuEntry {
	var entries []viz.MenuEntry
	for _, s := range r.List() {
		defaults := r.Defaults(s.Name)
		params := make([]viz.MenuParam, len(s.Params))
		for i, name := range s.Params {
			params[i] = viz.MenuParam{Name: name, Default: defaults[name]}
		}
		entries = append(entries, viz.MenuEntry{Key: s.Key, Title: s.Title, Info: s.Info, Params: params})
	}
	return entries
}

// Run dispatches a menu selection to its simulation.
func (r *Registry) Run(ctx context.Context, rn *Runner, sel viz.Selection) error {
	s, err := r.Get(sel.Key)
	if err != nil {
		return err
	}
	params := r.Defaults(s.Name)
	for k, v := range sel.Params {
		params[k] = v
	}
	return s.Run(ctx, rn, params)
}
