package display

import (
	"context"
	"errors"
	"iter"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/quarkviz/internal/export"
	"github.com/san-kum/quarkviz/internal/quantum"
	"github.com/san-kum/quarkviz/internal/viz"
)

// DefaultInterval is the pause between animation frames.
const DefaultInterval = 10 * time.Millisecond

// Terminal renders into the terminal's alternate screen. Each call runs
// its own Bubble Tea program and returns when the user closes it.
type Terminal struct {
	interval time.Duration
	theme    viz.Theme
	closed   bool
	opts     []tea.ProgramOption
}

func NewTerminal(interval time.Duration, theme string) *Terminal {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Terminal{
		interval: interval,
		theme:    viz.GetTheme(theme),
		opts:     []tea.ProgramOption{tea.WithAltScreen()},
	}
}

func (t *Terminal) run(ctx context.Context, m tea.Model) error {
	if t.closed {
		return quantum.ErrDisplayClosed
	}
	opts := append([]tea.ProgramOption{tea.WithContext(ctx)}, t.opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (t *Terminal) ShowGrid(ctx context.Context, g quantum.Grid) error {
	return t.run(ctx, viz.NewPlasmaView(g, export.PlasmaTitle, t.theme))
}

func (t *Terminal) ShowPath(ctx context.Context, p quantum.Path) error {
	return t.run(ctx, viz.NewWalkView(p, export.WalkTitle, t.theme))
}

func (t *Terminal) Animate(ctx context.Context, frames iter.Seq[quantum.Frame]) error {
	v := viz.NewFieldView(ctx, frames, t.interval, export.FieldTitle, t.theme)
	defer v.Stop()
	if err := t.run(ctx, v); err != nil {
		return err
	}
	return ctx.Err()
}

func (t *Terminal) Close() error {
	t.closed = true
	return nil
}
