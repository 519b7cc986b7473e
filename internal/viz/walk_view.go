package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/quarkviz/internal/quantum"
)

const (
	plotWidth  = 60
	plotHeight = 20
	gridEvery  = 8
)

// WalkView plots a lattice walk on a Braille canvas with dotted grid
// lines, and charts the distance from the origin underneath.
type WalkView struct {
	path  quantum.Path
	theme Theme
	title string
	plot  string
	chart string
}

func NewWalkView(p quantum.Path, title string, theme Theme) WalkView {
	v := WalkView{path: p, theme: theme, title: title}
	v.plot = renderPath(p)
	if p.Len() > 1 {
		v.chart = asciigraph.Plot(p.Displacement(),
			asciigraph.Height(6),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("distance from origin"),
		)
	}
	return v
}

func renderPath(p quantum.Path) string {
	c := NewCanvas(plotWidth, plotHeight)
	minX, maxX, minY, maxY := p.Bounds()
	vp := Viewport{
		MinX: float64(minX) - 1, MaxX: float64(maxX) + 1,
		MinY: float64(minY) - 1, MaxY: float64(maxY) + 1,
		W: c.SubWidth(), H: c.SubHeight(),
	}

	for x := 0; x < c.SubWidth(); x += gridEvery * 2 {
		c.DrawDotted(x, 0, x, c.SubHeight()-1, 3)
	}
	for y := 0; y < c.SubHeight(); y += gridEvery {
		c.DrawDotted(0, y, c.SubWidth()-1, y, 3)
	}

	px, py := vp.Project(float64(p.X[0]), float64(p.Y[0]))
	c.Set(px, py)
	for i := 1; i < p.Len(); i++ {
		nx, ny := vp.Project(float64(p.X[i]), float64(p.Y[i]))
		c.DrawLine(px, py, nx, ny)
		px, py = nx, ny
	}
	return c.String()
}

func (v WalkView) Init() tea.Cmd { return nil }

func (v WalkView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && isCloseKey(k) {
		return v, tea.Quit
	}
	return v, nil
}

func (v WalkView) View() string {
	var b strings.Builder
	b.WriteString(titleStyle(v.theme).Render(v.title) + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(v.theme.Path).Render(v.plot))

	minX, maxX, minY, maxY := v.path.Bounds()
	last := v.path.Len() - 1
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		MetricLabel.Render("X Position"), MetricValue.Render(fmt.Sprintf("[%d, %d]", minX, maxX)),
		MetricLabel.Render("Y Position"), MetricValue.Render(fmt.Sprintf("[%d, %d]", minY, maxY)),
		MetricLabel.Render("end"), MetricValue.Render(fmt.Sprintf("(%d, %d)", v.path.X[last], v.path.Y[last]))))
	if v.chart != "" {
		b.WriteString("\n" + v.chart + "\n")
	}
	b.WriteString(Hints("q", "close"))
	return b.String()
}
