package display

import (
	"context"
	"errors"
	"iter"
	"slices"

	"github.com/san-kum/quarkviz/internal/quantum"
)

type tee struct {
	displays []Display
}

// Tee shows everything on each display in order. Animations are buffered
// once and replayed to every display, since a frame sequence can only be
// consumed a single time.
func Tee(displays ...Display) Display {
	return &tee{displays: displays}
}

func (t *tee) ShowGrid(ctx context.Context, g quantum.Grid) error {
	for _, d := range t.displays {
		if err := d.ShowGrid(ctx, g); err != nil {
			return err
		}
	}
	return nil
}

func (t *tee) ShowPath(ctx context.Context, p quantum.Path) error {
	for _, d := range t.displays {
		if err := d.ShowPath(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (t *tee) Animate(ctx context.Context, frames iter.Seq[quantum.Frame]) error {
	var buffered []quantum.Frame
	for fr := range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		buffered = append(buffered, fr.Clone())
	}
	for _, d := range t.displays {
		if err := d.Animate(ctx, slices.Values(buffered)); err != nil {
			return err
		}
	}
	return nil
}

func (t *tee) Close() error {
	var errs []error
	for _, d := range t.displays {
		errs = append(errs, d.Close())
	}
	return errors.Join(errs...)
}
