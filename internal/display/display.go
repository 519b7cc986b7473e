// Package display provides scoped rendering targets for the simulations.
//
// A [Display] is opened per simulation run and closed when the run ends;
// nothing is shared between runs. Implementations:
//
//   - [Terminal]: Bubble Tea views, blocking until the user closes them
//   - [Window]: an ebiten window
//   - [Files]: PNG, SVG, GIF and MJPEG files in a directory
//   - [Recorder]: keeps everything in memory, for tests
//   - [Tee]: fans out to several displays
package display

import (
	"context"
	"fmt"
	"iter"
	"time"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// Display renders simulation output. Animate consumes frames lazily and
// must not retain a frame past the next pull without cloning it.
type Display interface {
	ShowGrid(ctx context.Context, g quantum.Grid) error
	ShowPath(ctx context.Context, p quantum.Path) error
	Animate(ctx context.Context, frames iter.Seq[quantum.Frame]) error
	Close() error
}

// Kind names a display implementation.
type Kind string

const (
	KindTerminal Kind = "terminal"
	KindWindow   Kind = "window"
	KindFiles    Kind = "files"
	KindNone     Kind = "none"
)

// Options configures Open.
type Options struct {
	Kind      Kind
	OutputDir string        // extra file output when set; required for KindFiles
	Interval  time.Duration // pause between animation frames
	Theme     string
	CSVPath   string // walk paths are also written here when set
}

// Opener creates a fresh display for one run.
type Opener func() (Display, error)

// NewOpener returns an Opener for opts. With a non-empty OutputDir and a
// kind other than files, the display is teed with a Files display; a
// CSVPath adds a PathCSV display.
func NewOpener(opts Options) (Opener, error) {
	var open Opener
	switch opts.Kind {
	case KindTerminal, "":
		open = func() (Display, error) { return NewTerminal(opts.Interval, opts.Theme), nil }
	case KindWindow:
		open = func() (Display, error) { return NewWindow(opts.Interval), nil }
	case KindFiles:
		if opts.OutputDir == "" {
			return nil, fmt.Errorf("display %s: output directory required", opts.Kind)
		}
		dir, interval := opts.OutputDir, opts.Interval
		open = func() (Display, error) { return NewFiles(dir, interval) }
		opts.OutputDir = ""
	case KindNone:
		open = func() (Display, error) { return Discard{}, nil }
	default:
		return nil, fmt.Errorf("unknown display: %s", opts.Kind)
	}

	if opts.OutputDir == "" && opts.CSVPath == "" {
		return open, nil
	}
	return func() (Display, error) {
		primary, err := open()
		if err != nil {
			return nil, err
		}
		displays := []Display{primary}
		if opts.OutputDir != "" {
			files, err := NewFiles(opts.OutputDir, opts.Interval)
			if err != nil {
				primary.Close()
				return nil, err
			}
			displays = append(displays, files)
		}
		if opts.CSVPath != "" {
			displays = append(displays, &PathCSV{Path: opts.CSVPath})
		}
		return Tee(displays...), nil
	}, nil
}

// Discard renders nothing. Animations are still drained so the
// generator runs to completion.
type Discard struct{}

func (Discard) ShowGrid(context.Context, quantum.Grid) error { return nil }
func (Discard) ShowPath(context.Context, quantum.Path) error { return nil }
func (Discard) Close() error                                 { return nil }

func (Discard) Animate(ctx context.Context, frames iter.Seq[quantum.Frame]) error {
	for range frames {
		if err := ctx.Err(); err != nil {
			return err
		}
	}
	return nil
}
