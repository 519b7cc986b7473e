package viz

import (
	"context"
	"fmt"
	"iter"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/quarkviz/internal/quantum"
)

type frameMsg struct{}

// FieldView animates a dark-matter frame sequence. Frames are pulled one
// per tick; the last one stays on screen after the sequence ends.
type FieldView struct {
	ctx      context.Context
	next     func() (quantum.Frame, bool)
	stop     func()
	interval time.Duration
	theme    Theme
	title    string

	plot   string
	index  int
	total  int
	shown  int
	done   bool
	paused bool
}

// NewFieldView pulls from frames. Call Stop when the program exits.
func NewFieldView(ctx context.Context, frames iter.Seq[quantum.Frame], interval time.Duration, title string, theme Theme) *FieldView {
	next, stop := iter.Pull(frames)
	return &FieldView{
		ctx:      ctx,
		next:     next,
		stop:     stop,
		interval: interval,
		theme:    theme,
		title:    title,
		plot:     renderField(quantum.Field{Extent: 100}),
	}
}

// Stop releases the frame generator.
func (v *FieldView) Stop() { v.stop() }

// Shown is the number of frames rendered so far.
func (v *FieldView) Shown() int { return v.shown }

func (v *FieldView) tick() tea.Cmd {
	return tea.Tick(v.interval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (v *FieldView) Init() tea.Cmd { return v.tick() }

func (v *FieldView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isCloseKey(msg) {
			return v, tea.Quit
		}
		if msg.String() == " " && !v.done {
			v.paused = !v.paused
			if !v.paused {
				return v, v.tick()
			}
		}
	case frameMsg:
		if v.ctx.Err() != nil {
			return v, tea.Quit
		}
		if v.paused || v.done {
			return v, nil
		}
		if !v.Advance() {
			return v, nil
		}
		return v, v.tick()
	}
	return v, nil
}

// Advance pulls and renders the next frame. It reports false once the
// sequence is exhausted.
func (v *FieldView) Advance() bool {
	fr, ok := v.next()
	if !ok {
		v.done = true
		return false
	}
	v.plot = renderField(fr.Field)
	v.index, v.total = fr.Index, fr.Total
	v.shown++
	return true
}

func renderField(f quantum.Field) string {
	c := NewCanvas(plotWidth/2, plotHeight)
	vp := Viewport{MinX: 0, MaxX: f.Extent, MinY: 0, MaxY: f.Extent, W: c.SubWidth(), H: c.SubHeight()}
	for _, p := range f.Positions {
		c.Set(vp.Project(p.X, p.Y))
	}
	return c.String()
}

func (v *FieldView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle(v.theme).Render(v.title) + "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(v.theme.Muted).
		Foreground(v.theme.Particle)
	b.WriteString(box.Render(strings.TrimSuffix(v.plot, "\n")) + "\n")

	progress := 1.0
	if v.total > 0 {
		progress = float64(v.index+1) / float64(v.total)
	}
	status := "running"
	switch {
	case v.done:
		status = "done"
	case v.paused:
		status = "paused"
	}
	b.WriteString(fmt.Sprintf("%s %s %s\n",
		ProgressBar(progress, 30),
		MetricValue.Render(fmt.Sprintf("%d/%d", v.shown, v.total)),
		MetricLabel.Render(status)))
	b.WriteString(Hints("space", "pause", "q", "close"))
	return b.String()
}
