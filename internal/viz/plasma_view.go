package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/quarkviz/internal/quantum"
)

// PlasmaView shows a grid with two cells per character using "▀":
// the foreground paints the upper cell, the background the lower one.
type PlasmaView struct {
	grid   quantum.Grid
	theme  Theme
	title  string
	width  int
	height int
	styles map[[2]quantum.Label]lipgloss.Style
}

func NewPlasmaView(g quantum.Grid, title string, theme Theme) PlasmaView {
	styles := make(map[[2]quantum.Label]lipgloss.Style, 9)
	for _, top := range quantum.Labels {
		for _, bottom := range quantum.Labels {
			styles[[2]quantum.Label{top, bottom}] = lipgloss.NewStyle().
				Foreground(labelColor(top)).
				Background(labelColor(bottom))
		}
	}
	return PlasmaView{grid: g, theme: theme, title: title, width: 80, height: 24, styles: styles}
}

func (v PlasmaView) Init() tea.Cmd { return nil }

func (v PlasmaView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isCloseKey(msg) {
			return v, tea.Quit
		}
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
	}
	return v, nil
}

func (v PlasmaView) View() string {
	n := v.grid.Size()
	cols := min(n, max(v.width-2, 1))
	rows := min(n, max((v.height-4)*2, 2))

	var b strings.Builder
	b.WriteString(titleStyle(v.theme).Render(v.title) + "\n")
	for r := 0; r < rows; r += 2 {
		for c := 0; c < cols; c++ {
			top := v.grid.At(r*n/rows, c*n/cols)
			bottom := quantum.Empty
			if r+1 < rows {
				bottom = v.grid.At((r+1)*n/rows, c*n/cols)
			}
			b.WriteString(v.styles[[2]quantum.Label{top, bottom}].Render("▀"))
		}
		b.WriteString("\n")
	}

	counts := v.grid.Counts()
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s\n",
		MetricLabel.Render("quark"), MetricValue.Render(fmt.Sprint(counts[quantum.Quark])),
		MetricLabel.Render("gluon"), MetricValue.Render(fmt.Sprint(counts[quantum.Gluon])),
		MetricLabel.Render("empty"), MetricValue.Render(fmt.Sprint(counts[quantum.Empty]))))
	b.WriteString(Hints("q", "close"))
	return b.String()
}

func labelColor(l quantum.Label) lipgloss.Color {
	c := l.Color()
	return lipgloss.Color(hexColor(int(c.R), int(c.G), int(c.B)))
}

func isCloseKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "enter", "ctrl+c":
		return true
	}
	return false
}
