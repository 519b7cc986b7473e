package display

import (
	"context"
	"iter"
	"os"

	"github.com/san-kum/quarkviz/internal/export"
	"github.com/san-kum/quarkviz/internal/quantum"
)

// PathCSV writes walk paths to a CSV file and ignores everything else.
type PathCSV struct {
	Path   string
	closed bool
}

func (c *PathCSV) ShowPath(_ context.Context, p quantum.Path) error {
	if c.closed {
		return quantum.ErrDisplayClosed
	}
	return writeFile(c.Path, func(f *os.File) error {
		return export.WritePathCSV(f, p)
	})
}

func (c *PathCSV) ShowGrid(context.Context, quantum.Grid) error { return nil }

func (c *PathCSV) Animate(context.Context, iter.Seq[quantum.Frame]) error { return nil }

func (c *PathCSV) Close() error {
	c.closed = true
	return nil
}
