package viz

import (
	"math/bits"
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// SubWidth and SubHeight give the canvas size in dots.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set lights the dot at (x, y) in sub-pixel coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Dots counts lit dots.
func (c *Canvas) Dots() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			n += bits.OnesCount32(uint32(r - brailleBlank))
		}
	}
	return n
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawDotted lights every step-th dot of a horizontal or vertical line.
func (c *Canvas) DrawDotted(x0, y0, x1, y1, step int) {
	if step < 1 {
		step = 1
	}
	if y0 == y1 {
		for x := min(x0, x1); x <= max(x0, x1); x += step {
			c.Set(x, y0)
		}
		return
	}
	for y := min(y0, y1); y <= max(y0, y1); y += step {
		c.Set(x0, y)
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Viewport maps data coordinates onto canvas dots, y pointing up.
type Viewport struct {
	MinX, MaxX, MinY, MaxY float64
	W, H                   int
}

// Project returns the dot for (x, y).
func (v Viewport) Project(x, y float64) (int, int) {
	rx := v.MaxX - v.MinX
	ry := v.MaxY - v.MinY
	if rx == 0 {
		rx = 1
	}
	if ry == 0 {
		ry = 1
	}
	px := int((x - v.MinX) / rx * float64(v.W-1))
	py := (v.H - 1) - int((y-v.MinY)/ry*float64(v.H-1))
	return px, py
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
