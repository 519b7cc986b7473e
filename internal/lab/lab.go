package lab

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/san-kum/quarkviz/internal/config"
	"github.com/san-kum/quarkviz/internal/display"
	"github.com/san-kum/quarkviz/internal/metrics"
	"github.com/san-kum/quarkviz/internal/physics"
	"github.com/san-kum/quarkviz/internal/quantum"
)

// Runner executes simulations. Each call draws a fresh random source and
// owns a freshly opened display until it returns.
type Runner struct {
	open   display.Opener
	seeder *quantum.Seeder
	log    *log.Entry

	Plasma     *physics.Plasma
	Neutrino   *physics.Neutrino
	DarkMatter *physics.DarkMatter
}

// NewRunner returns a runner. A zero seed gives a different run each call.
func NewRunner(open display.Opener, seed int64, logger *log.Entry) *Runner {
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}
	return &Runner{
		open:       open,
		seeder:     quantum.NewSeeder(seed),
		log:        logger,
		Plasma:     physics.NewPlasma(),
		Neutrino:   physics.NewNeutrino(),
		DarkMatter: physics.NewDarkMatter(),
	}
}

// Configure applies the tunables from cfg to the generators.
func (r *Runner) Configure(cfg *config.Config) error {
	if err := configure(r.Plasma, cfg.PlasmaParams()); err != nil {
		return fmt.Errorf("plasma: %w", err)
	}
	if err := configure(r.DarkMatter, cfg.DarkMatterParams()); err != nil {
		return fmt.Errorf("dark matter: %w", err)
	}
	r.log.WithFields(log.Fields{
		"plasma":     r.Plasma.GetParams(),
		"darkmatter": r.DarkMatter.GetParams(),
	}).Debug("generators configured")
	return nil
}

func configure(c quantum.Configurable, params map[string]float64) error {
	for _, name := range slices.Sorted(maps.Keys(params)) {
		if err := c.SetParam(name, params[name]); err != nil {
			return err
		}
	}
	return nil
}

// GenerateAndDisplayPlasma renders one size×size plasma grid.
func (r *Runner) GenerateAndDisplayPlasma(ctx context.Context, size int) error {
	if err := quantum.CheckSize(size); err != nil {
		return fmt.Errorf("plasma: %w", err)
	}
	seed := r.seeder.Seed()
	logger := r.log.WithFields(log.Fields{"simulation": "plasma", "size": size, "seed": seed})

	grid, err := r.Plasma.Generate(size, quantum.NewRand(seed))
	if err != nil {
		return fmt.Errorf("plasma: %w", err)
	}
	counts := grid.Counts()
	logger.WithFields(log.Fields{
		"quarks": counts[quantum.Quark],
		"gluons": counts[quantum.Gluon],
		"empty":  counts[quantum.Empty],
	}).Debug("grid generated")

	return r.show(logger, func(d display.Display) error {
		return d.ShowGrid(ctx, grid)
	})
}

// RunNeutrinoWalk simulates a lattice walk of steps moves and plots it.
func (r *Runner) RunNeutrinoWalk(ctx context.Context, steps int) error {
	if err := quantum.CheckSteps(steps); err != nil {
		return fmt.Errorf("neutrino: %w", err)
	}
	seed := r.seeder.Seed()
	logger := r.log.WithFields(log.Fields{"simulation": "neutrino", "steps": steps, "seed": seed})

	path, err := r.Neutrino.Simulate(steps, quantum.NewRand(seed))
	if err != nil {
		return fmt.Errorf("neutrino: %w", err)
	}
	last := path.Len() - 1
	logger.WithFields(log.Fields{
		"x":   path.X[last],
		"y":   path.Y[last],
		"msd": metrics.MeanSquaredDisplacement(path),
	}).Debug("walk finished")

	return r.show(logger, func(d display.Display) error {
		return d.ShowPath(ctx, path)
	})
}

// RunDarkMatterField animates particles jittering in the box for steps frames.
func (r *Runner) RunDarkMatterField(ctx context.Context, particles, steps int) error {
	if err := r.DarkMatter.Validate(particles, steps); err != nil {
		return fmt.Errorf("dark matter: %w", err)
	}
	seed := r.seeder.Seed()
	logger := r.log.WithFields(log.Fields{
		"simulation": "darkmatter",
		"particles":  particles,
		"steps":      steps,
		"seed":       seed,
	})

	spread, walls := metrics.NewSpread(), metrics.NewWallContact()
	frames := metrics.Observe(r.DarkMatter.Frames(particles, steps, quantum.NewRand(seed)), spread, walls)
	err := r.show(logger, func(d display.Display) error {
		return d.Animate(ctx, frames)
	})
	if err == nil {
		logger.WithFields(metricFields(spread, walls)).Debug("field summary")
	}
	return err
}

func metricFields(ms ...metrics.FieldMetric) log.Fields {
	fields := make(log.Fields, len(ms))
	for name, v := range metrics.Values(ms...) {
		fields[name] = v
	}
	return fields
}

// show opens a display, hands it to render and closes it.
func (r *Runner) show(logger *log.Entry, render func(display.Display) error) (err error) {
	d, err := r.open()
	if err != nil {
		return fmt.Errorf("open display: %w", err)
	}
	defer func() {
		if cerr := d.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close display: %w", cerr)
		}
	}()

	start := time.Now()
	logger.Info("run started")
	if err := render(d); err != nil {
		logger.WithError(err).Warn("run failed")
		return err
	}
	logger.WithField("elapsed", time.Since(start)).Info("run finished")
	return nil
}
