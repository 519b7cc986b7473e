package quantum

import (
	"errors"
	"math"
	"testing"
)

func TestLabelColors(t *testing.T) {
	tests := []struct {
		label Label
		rgb   [3]float64
		r     rune
	}{
		{Quark, [3]float64{1, 0, 0}, 'q'},
		{Gluon, [3]float64{0, 0, 1}, 'g'},
		{Empty, [3]float64{1, 1, 1}, '-'},
	}

	for _, tt := range tests {
		if got := tt.label.RGB(); got != tt.rgb {
			t.Errorf("%s: expected rgb %v, got %v", tt.label, tt.rgb, got)
		}
		if got := tt.label.Rune(); got != tt.r {
			t.Errorf("%s: expected rune %q, got %q", tt.label, tt.r, got)
		}
	}

	if Label(7).Valid() {
		t.Error("label 7 should be invalid")
	}
}

func TestGridCountsAndRows(t *testing.T) {
	g := NewGrid(2, []Label{Quark, Gluon, Empty, Empty})

	counts := g.Counts()
	if counts[Quark] != 1 || counts[Gluon] != 1 || counts[Empty] != 2 {
		t.Errorf("unexpected counts %v", counts)
	}

	rows := g.Rows()
	if len(rows) != 2 || rows[0] != "qg" || rows[1] != "--" {
		t.Errorf("unexpected rows %q", rows)
	}
	if g.At(1, 0) != Empty {
		t.Errorf("expected empty at (1,0), got %s", g.At(1, 0))
	}
}

func TestPathAppend(t *testing.T) {
	p := NewPath(3)
	if p.Len() != 1 || p.X[0] != 0 || p.Y[0] != 0 {
		t.Fatalf("new path should hold only the origin, got %v", p)
	}

	p.Append(1, 0)
	p.Append(0, 1)
	p.Append(-1, 0)

	if p.Len() != 4 {
		t.Fatalf("expected 4 points, got %d", p.Len())
	}
	if p.X[3] != 0 || p.Y[3] != 1 {
		t.Errorf("expected (0,1), got (%d,%d)", p.X[3], p.Y[3])
	}

	d := p.Displacement()
	if math.Abs(d[2]-math.Sqrt2) > 1e-12 {
		t.Errorf("expected displacement sqrt2, got %f", d[2])
	}

	minX, maxX, minY, maxY := p.Bounds()
	if minX != 0 || maxX != 1 || minY != 0 || maxY != 1 {
		t.Errorf("unexpected bounds %d %d %d %d", minX, maxX, minY, maxY)
	}
}

func TestFieldClamp(t *testing.T) {
	f := Field{Extent: 100, Positions: []Point{{-3, 50}, {120, 101}, {10, 20}}}
	if f.InBounds() {
		t.Fatal("field should start out of bounds")
	}

	f.Clamp()
	if !f.InBounds() {
		t.Fatal("field should be in bounds after clamp")
	}
	if f.Positions[0].X != 0 || f.Positions[1].X != 100 || f.Positions[1].Y != 100 {
		t.Errorf("unexpected clamped positions %v", f.Positions)
	}
	if f.Positions[2] != (Point{10, 20}) {
		t.Errorf("in-bounds point moved: %v", f.Positions[2])
	}
}

func TestFieldInBoundsRejectsNaN(t *testing.T) {
	tests := []struct {
		name string
		p    Point
	}{
		{"nan x", Point{math.NaN(), 10}},
		{"nan y", Point{10, math.NaN()}},
		{"inf x", Point{math.Inf(1), 10}},
		{"-inf y", Point{10, math.Inf(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Field{Extent: 100, Positions: []Point{{1, 1}, tt.p}}
			if f.InBounds() {
				t.Error("non-finite coordinate reported in bounds")
			}
		})
	}
	if !Finite(1) || Finite(math.NaN()) || Finite(math.Inf(-1)) {
		t.Error("Finite misclassified a value")
	}
}

func TestFrameCloneDetaches(t *testing.T) {
	fr := Frame{Index: 1, Total: 2, Field: Field{Extent: 100, Positions: []Point{{1, 1}}}}
	c := fr.Clone()
	fr.Field.Positions[0].X = 99

	if c.Field.Positions[0].X != 1 {
		t.Error("clone should not alias the original positions")
	}
}

func TestParamErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"zero size", CheckSize(0), ErrInvalidSize},
		{"negative size", CheckSize(-1), ErrInvalidSize},
		{"negative steps", CheckSteps(-1), ErrNegativeSteps},
		{"negative particles", CheckParticles(-5), ErrNegativeParticles},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, tt.err)
			}
			var pe *ParamError
			if !errors.As(tt.err, &pe) {
				t.Error("expected a ParamError")
			}
		})
	}

	if CheckSize(1) != nil || CheckSteps(0) != nil || CheckParticles(0) != nil {
		t.Error("boundary values should be accepted")
	}
}

func TestSeeder(t *testing.T) {
	fixed := NewSeeder(7)
	if fixed.Seed() != 7 || fixed.Seed() != 7 {
		t.Error("fixed seeder should repeat its base")
	}

	clock := NewSeeder(0)
	if clock.Seed() == clock.Seed() {
		t.Error("clock seeder should not repeat")
	}
}
