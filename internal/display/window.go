package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"iter"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/san-kum/quarkviz/internal/export"
	"github.com/san-kum/quarkviz/internal/quantum"
)

const fieldSide = 600

// ErrWindowUsed is returned when a second window is requested; ebiten
// runs one game loop per process.
var ErrWindowUsed = errors.New("display: window already used in this process")

var windowUsed atomic.Bool

// Window shows output in a native window. It blocks until the window is
// closed or q/Esc is pressed.
type Window struct {
	interval time.Duration
	closed   bool
}

func NewWindow(interval time.Duration) *Window {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Window{interval: interval}
}

func (w *Window) run(title string, width, height int, g ebiten.Game) error {
	if w.closed {
		return quantum.ErrDisplayClosed
	}
	if !windowUsed.CompareAndSwap(false, true) {
		return ErrWindowUsed
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(max(int(time.Second/w.interval), 1))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (w *Window) ShowGrid(ctx context.Context, g quantum.Grid) error {
	img := export.PlasmaImage(g, export.PlasmaScale(g.Size(), fieldSide))
	b := img.Bounds()
	return w.run(export.PlasmaTitle, b.Dx(), b.Dy(), &still{ctx: ctx, src: img})
}

func (w *Window) ShowPath(ctx context.Context, p quantum.Path) error {
	img, err := export.RenderImage(export.WalkChart(p))
	if err != nil {
		return err
	}
	b := img.Bounds()
	return w.run(export.WalkTitle, b.Dx(), b.Dy(), &still{ctx: ctx, src: img})
}

func (w *Window) Animate(ctx context.Context, frames iter.Seq[quantum.Frame]) error {
	next, stop := iter.Pull(frames)
	defer stop()
	g := &scatter{ctx: ctx, next: next}
	if err := w.run(export.FieldTitle, fieldSide, fieldSide, g); err != nil {
		return err
	}
	return ctx.Err()
}

func (w *Window) Close() error {
	w.closed = true
	return nil
}

func quitRequested(ctx context.Context) bool {
	return ctx.Err() != nil ||
		inpututil.IsKeyJustPressed(ebiten.KeyQ) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// still displays a fixed image.
type still struct {
	ctx context.Context
	src image.Image
	img *ebiten.Image
}

func (s *still) Update() error {
	if quitRequested(s.ctx) {
		return ebiten.Termination
	}
	return nil
}

func (s *still) Draw(screen *ebiten.Image) {
	if s.img == nil {
		s.img = ebiten.NewImageFromImage(s.src)
	}
	screen.DrawImage(s.img, nil)
}

func (s *still) Layout(int, int) (int, int) {
	b := s.src.Bounds()
	return b.Dx(), b.Dy()
}

// scatter pulls one frame per tick and keeps the last one on screen.
type scatter struct {
	ctx    context.Context
	next   func() (quantum.Frame, bool)
	points []quantum.Point
	extent float64
	index  int
	total  int
	done   bool
}

func (s *scatter) Update() error {
	if quitRequested(s.ctx) {
		return ebiten.Termination
	}
	if s.done {
		return nil
	}
	fr, ok := s.next()
	if !ok {
		s.done = true
		return nil
	}
	s.points = append(s.points[:0], fr.Field.Positions...)
	s.extent = fr.Field.Extent
	s.index, s.total = fr.Index, fr.Total
	return nil
}

var (
	particleColor = color.RGBA{0, 0, 0, 178}
	boxColor      = color.RGBA{160, 160, 160, 255}
)

func (s *scatter) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	const margin = 30
	side := float32(fieldSide - 2*margin)
	vector.StrokeRect(screen, margin, margin, side, side, 1, boxColor, false)

	if s.extent > 0 {
		scale := side / float32(s.extent)
		for _, p := range s.points {
			x := margin + float32(p.X)*scale
			y := margin + side - float32(p.Y)*scale
			vector.DrawFilledCircle(screen, x, y, 2, particleColor, true)
		}
	}

	status := fmt.Sprintf("%s  frame %d/%d", export.FieldTitle, s.index+1, s.total)
	if s.done {
		status += "  (done, q to close)"
	}
	ebitenutil.DebugPrint(screen, status)
}

func (s *scatter) Layout(int, int) (int, int) {
	return fieldSide, fieldSide
}
