package display

import (
	"context"
	"iter"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// Recorder keeps copies of everything shown on it.
type Recorder struct {
	Grids  []quantum.Grid
	Paths  []quantum.Path
	Frames [][]quantum.Frame
	Closed bool
}

func (r *Recorder) ShowGrid(_ context.Context, g quantum.Grid) error {
	if r.Closed {
		return quantum.ErrDisplayClosed
	}
	r.Grids = append(r.Grids, g)
	return nil
}

func (r *Recorder) ShowPath(_ context.Context, p quantum.Path) error {
	if r.Closed {
		return quantum.ErrDisplayClosed
	}
	r.Paths = append(r.Paths, p)
	return nil
}

func (r *Recorder) Animate(ctx context.Context, frames iter.Seq[quantum.Frame]) error {
	if r.Closed {
		return quantum.ErrDisplayClosed
	}
	var run []quantum.Frame
	for fr := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		run = append(run, fr.Clone())
	}
	r.Frames = append(r.Frames, run)
	return nil
}

func (r *Recorder) Close() error {
	r.Closed = true
	return nil
}
