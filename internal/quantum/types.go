package quantum

import (
	"image/color"
	"math"
)

// Configurable is implemented by generators with runtime tunables.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Label is the state of one plasma cell.
type Label uint8

const (
	Quark Label = iota
	Gluon
	Empty
)

// Labels lists every label in draw order.
var Labels = [...]Label{Quark, Gluon, Empty}

var labelNames = [...]string{"quark", "gluon", "empty"}
var labelRunes = [...]rune{'q', 'g', '-'}

// labelRGB is the fixed label colour mapping: red, blue, white.
var labelRGB = [...][3]float64{
	{1, 0, 0},
	{0, 0, 1},
	{1, 1, 1},
}

func (l Label) String() string {
	if int(l) < len(labelNames) {
		return labelNames[l]
	}
	return "invalid"
}

func (l Label) Rune() rune {
	if int(l) < len(labelRunes) {
		return labelRunes[l]
	}
	return '?'
}

func (l Label) Valid() bool { return int(l) < len(labelNames) }

// RGB returns the label's colour as channel intensities in [0,1].
func (l Label) RGB() [3]float64 {
	if !l.Valid() {
		return [3]float64{}
	}
	return labelRGB[l]
}

// Color returns the label's colour as an opaque RGBA value.
func (l Label) Color() color.RGBA {
	c := l.RGB()
	return color.RGBA{R: uint8(c[0] * 255), G: uint8(c[1] * 255), B: uint8(c[2] * 255), A: 255}
}

// Grid is a square, row-major array of labels.
type Grid struct {
	size  int
	cells []Label
}

// NewGrid wraps cells as a size×size grid. len(cells) must be size*size.
func NewGrid(size int, cells []Label) Grid {
	if len(cells) != size*size {
		panic("quantum: grid cell count does not match size")
	}
	return Grid{size: size, cells: cells}
}

func (g Grid) Size() int { return g.size }

func (g Grid) At(row, col int) Label { return g.cells[row*g.size+col] }

// Counts returns how many cells hold each label, indexed by Label.
func (g Grid) Counts() [len(labelNames)]int {
	var n [len(labelNames)]int
	for _, l := range g.cells {
		if l.Valid() {
			n[l]++
		}
	}
	return n
}

// Rows renders the grid using label runes, one string per row.
func (g Grid) Rows() []string {
	rows := make([]string, g.size)
	buf := make([]rune, g.size)
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			buf[c] = g.At(r, c).Rune()
		}
		rows[r] = string(buf)
	}
	return rows
}

// Point is a 2D position.
type Point struct{ X, Y float64 }

// Moves are the four axis-aligned unit steps of the lattice walk.
var Moves = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// Path is a lattice walk stored as parallel coordinate sequences.
// Index 0 is always the origin.
type Path struct {
	X []int
	Y []int
}

// NewPath returns a path holding only the origin, with capacity for steps moves.
func NewPath(steps int) Path {
	return Path{X: make([]int, 1, max(steps, 0)+1), Y: make([]int, 1, max(steps, 0)+1)}
}

func (p Path) Len() int { return len(p.X) }

// Append adds a point offset from the last one by (dx, dy).
func (p *Path) Append(dx, dy int) {
	last := len(p.X) - 1
	p.X = append(p.X, p.X[last]+dx)
	p.Y = append(p.Y, p.Y[last]+dy)
}

// Floats returns the coordinates as float64 slices for plotting.
func (p Path) Floats() (xs, ys []float64) {
	xs = make([]float64, len(p.X))
	ys = make([]float64, len(p.Y))
	for i := range p.X {
		xs[i] = float64(p.X[i])
		ys[i] = float64(p.Y[i])
	}
	return xs, ys
}

// Displacement returns the Euclidean distance from the origin at each step.
func (p Path) Displacement() []float64 {
	d := make([]float64, len(p.X))
	for i := range p.X {
		d[i] = math.Hypot(float64(p.X[i]), float64(p.Y[i]))
	}
	return d
}

// Bounds returns the smallest box containing every point.
func (p Path) Bounds() (minX, maxX, minY, maxY int) {
	if len(p.X) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX, minY, maxY = p.X[0], p.X[0], p.Y[0], p.Y[0]
	for i := range p.X {
		minX = min(minX, p.X[i])
		maxX = max(maxX, p.X[i])
		minY = min(minY, p.Y[i])
		maxY = max(maxY, p.Y[i])
	}
	return minX, maxX, minY, maxY
}

// Field holds particle positions inside a square box [0, Extent]².
type Field struct {
	Extent    float64
	Positions []Point
}

// Clamp pins every coordinate into [0, Extent].
func (f *Field) Clamp() {
	for i := range f.Positions {
		f.Positions[i].X = clamp(f.Positions[i].X, 0, f.Extent)
		f.Positions[i].Y = clamp(f.Positions[i].Y, 0, f.Extent)
	}
}

// InBounds reports whether every coordinate lies in [0, Extent]. NaN never does.
func (f Field) InBounds() bool {
	for _, p := range f.Positions {
		if !(p.X >= 0 && p.X <= f.Extent && p.Y >= 0 && p.Y <= f.Extent) {
			return false
		}
	}
	return true
}

func (f Field) Clone() Field {
	c := Field{Extent: f.Extent, Positions: make([]Point, len(f.Positions))}
	copy(c.Positions, f.Positions)
	return c
}

// Frame is one snapshot of a field during an animation. Field aliases
// the generator's live positions and is only valid until the next frame.
type Frame struct {
	Index int
	Total int
	Field Field
}

// Clone detaches the frame from the generator.
func (f Frame) Clone() Frame {
	return Frame{Index: f.Index, Total: f.Total, Field: f.Field.Clone()}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
