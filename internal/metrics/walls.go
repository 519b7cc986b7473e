package metrics

import "github.com/san-kum/quarkviz/internal/quantum"

// WallContact is the fraction of particle observations pinned to a wall
// of the box by clamping.
type WallContact struct {
	name     string
	contacts int
	samples  int
}

func NewWallContact() *WallContact {
	return &WallContact{name: "wall_contact"}
}

func (w *WallContact) Name() string { return w.name }

func (w *WallContact) Observe(f quantum.Frame) {
	ext := f.Field.Extent
	for _, p := range f.Field.Positions {
		w.samples++
		if p.X == 0 || p.Y == 0 || p.X == ext || p.Y == ext {
			w.contacts++
		}
	}
}

func (w *WallContact) Value() float64 {
	if w.samples == 0 {
		return 0
	}
	return float64(w.contacts) / float64(w.samples)
}

func (w *WallContact) Reset() {
	w.contacts = 0
	w.samples = 0
}
