package physics

import (
	"fmt"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// Plasma draws each grid cell independently from a categorical
// distribution over quark, gluon and empty.
type Plasma struct {
	// Weights holds the probability of each label, indexed by quantum.Label.
	Weights [3]float64
}

func NewPlasma() *Plasma {
	return &Plasma{Weights: [3]float64{0.3, 0.3, 0.4}}
}

// Generate returns a size×size grid.
func (p *Plasma) Generate(size int, rng quantum.Rand) (quantum.Grid, error) {
	if err := quantum.CheckSize(size); err != nil {
		return quantum.Grid{}, err
	}
	cells := make([]quantum.Label, size*size)
	for i := range cells {
		cells[i] = p.draw(rng.Float64())
	}
	return quantum.NewGrid(size, cells), nil
}

// draw maps a uniform sample in [0,1) onto a label by cumulative weight.
func (p *Plasma) draw(u float64) quantum.Label {
	total := p.Weights[0] + p.Weights[1] + p.Weights[2]
	u *= total
	acc := 0.0
	for i, w := range p.Weights {
		acc += w
		if u < acc {
			return quantum.Label(i)
		}
	}
	return quantum.Empty
}

func (p *Plasma) GetParams() map[string]float64 {
	return map[string]float64{"quark": p.Weights[0], "gluon": p.Weights[1], "empty": p.Weights[2]}
}

func (p *Plasma) SetParam(name string, value float64) error {
	if value < 0 || !quantum.Finite(value) {
		return fmt.Errorf("plasma %s weight %g: %w", name, value, quantum.ErrParameterBounds)
	}
	switch name {
	case "quark":
		p.Weights[0] = value
	case "gluon":
		p.Weights[1] = value
	case "empty":
		p.Weights[2] = value
	default:
		return fmt.Errorf("plasma: unknown parameter %q", name)
	}
	return nil
}
