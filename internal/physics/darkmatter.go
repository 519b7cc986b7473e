package physics

import (
	"fmt"
	"iter"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// DarkMatter jitters particles inside a square box. Movements are
// independent Gaussian noise; particles do not interact.
type DarkMatter struct {
	Extent float64 // box side; positions stay in [0, Extent]
	Sigma  float64 // displacement scale per axis per step
}

func NewDarkMatter() *DarkMatter {
	return &DarkMatter{Extent: 100, Sigma: 0.5}
}

func (d *DarkMatter) Validate(particles, steps int) error {
	if err := quantum.CheckParticles(particles); err != nil {
		return err
	}
	return quantum.CheckSteps(steps)
}

// Init places particles uniformly at random in the box.
func (d *DarkMatter) Init(particles int, rng quantum.Rand) quantum.Field {
	f := quantum.Field{Extent: d.Extent, Positions: make([]quantum.Point, particles)}
	for i := range f.Positions {
		f.Positions[i] = quantum.Point{X: rng.Float64() * d.Extent, Y: rng.Float64() * d.Extent}
	}
	return f
}

// Step displaces every particle in place and clamps it back into the box.
func (d *DarkMatter) Step(f *quantum.Field, rng quantum.Rand) {
	for i := range f.Positions {
		f.Positions[i].X += rng.NormFloat64() * d.Sigma
		f.Positions[i].Y += rng.NormFloat64() * d.Sigma
	}
	f.Clamp()
}

// Frames returns a lazy sequence of exactly steps frames. The field is
// initialised on the first pull and mutated in place between frames.
// Parameters are assumed valid; see Validate.
func (d *DarkMatter) Frames(particles, steps int, rng quantum.Rand) iter.Seq[quantum.Frame] {
	return func(yield func(quantum.Frame) bool) {
		field := d.Init(max(particles, 0), rng)
		for i := 0; i < steps; i++ {
			d.Step(&field, rng)
			if !yield(quantum.Frame{Index: i, Total: steps, Field: field}) {
				return
			}
		}
	}
}

// Run drives the frames through fn until fn returns false.
func (d *DarkMatter) Run(particles, steps int, rng quantum.Rand, fn func(quantum.Frame) bool) error {
	if err := d.Validate(particles, steps); err != nil {
		return err
	}
	for fr := range d.Frames(particles, steps, rng) {
		if !fn(fr) {
			return nil
		}
	}
	return nil
}

func (d *DarkMatter) GetParams() map[string]float64 {
	return map[string]float64{"sigma": d.Sigma, "extent": d.Extent}
}

func (d *DarkMatter) SetParam(name string, value float64) error {
	if !quantum.Finite(value) {
		return fmt.Errorf("dark matter %s %g: %w", name, value, quantum.ErrParameterBounds)
	}
	switch name {
	case "sigma":
		if value < 0 {
			return fmt.Errorf("dark matter sigma %g: %w", value, quantum.ErrParameterBounds)
		}
		d.Sigma = value
	case "extent":
		if value <= 0 {
			return fmt.Errorf("dark matter extent %g: %w", value, quantum.ErrParameterBounds)
		}
		d.Extent = value
	default:
		return fmt.Errorf("dark matter: unknown parameter %q", name)
	}
	return nil
}
