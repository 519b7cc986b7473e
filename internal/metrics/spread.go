package metrics

import (
	"math"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// Spread is the mean distance of particles from the box centre,
// averaged over every observed frame.
type Spread struct {
	name    string
	total   float64
	samples int
}

func NewSpread() *Spread {
	return &Spread{name: "spread"}
}

func (s *Spread) Name() string { return s.name }

func (s *Spread) Observe(f quantum.Frame) {
	if len(f.Field.Positions) == 0 {
		return
	}
	c := f.Field.Extent / 2
	sum := 0.0
	for _, p := range f.Field.Positions {
		sum += math.Hypot(p.X-c, p.Y-c)
	}
	s.total += sum / float64(len(f.Field.Positions))
	s.samples++
}

func (s *Spread) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return s.total / float64(s.samples)
}

func (s *Spread) Reset() {
	s.total = 0
	s.samples = 0
}

// MeanSquaredDisplacement is the average squared distance of a walk from
// the origin over all its points.
func MeanSquaredDisplacement(p quantum.Path) float64 {
	if p.Len() == 0 {
		return 0
	}
	sum := 0
	for i := range p.X {
		sum += p.X[i]*p.X[i] + p.Y[i]*p.Y[i]
	}
	return float64(sum) / float64(p.Len())
}
