package viz

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuParam is one integer parameter editable from the menu.
type MenuParam struct {
	Name    string
	Default int
}

// MenuEntry is one selectable simulation.
type MenuEntry struct {
	Key    string
	Title  string
	Info   string
	Params []MenuParam
}

// Selection is what the user picked. Chosen is false if the menu was quit.
type Selection struct {
	Key    string
	Params map[string]int
	Chosen bool
}

const (
	stateMenu = iota
	stateConfig
)

// Menu lets the user pick a simulation and edit its parameters.
type Menu struct {
	entries []MenuEntry
	theme   Theme
	state   int
	cursor  int

	params      map[string]int
	paramCursor int
	editing     bool
	editBuf     string

	selection Selection
}

func NewMenu(entries []MenuEntry, theme Theme) Menu {
	return Menu{entries: entries, theme: theme, state: stateMenu}
}

// Selection returns the result once the program has exited.
func (m Menu) Selection() Selection { return m.selection }

func (m Menu) Init() tea.Cmd { return nil }

func (m Menu) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if k.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.state {
	case stateMenu:
		return m.menuKey(k)
	case stateConfig:
		return m.configKey(k)
	}
	return m, nil
}

func (m Menu) menuKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		for i, e := range m.entries {
			if e.Key == msg.String() {
				m.cursor = i
				return m.open()
			}
		}
	case "enter", " ":
		return m.open()
	}
	return m, nil
}

func (m Menu) open() (Menu, tea.Cmd) {
	if len(m.entries) == 0 {
		return m, nil
	}
	e := m.entries[m.cursor]
	m.params = make(map[string]int, len(e.Params))
	for _, p := range e.Params {
		m.params[p.Name] = p.Default
	}
	m.paramCursor = 0
	if len(e.Params) == 0 {
		return m.start()
	}
	m.state = stateConfig
	return m, nil
}

func (m Menu) start() (Menu, tea.Cmd) {
	m.selection = Selection{Key: m.entries[m.cursor].Key, Params: m.params, Chosen: true}
	return m, tea.Quit
}

func (m Menu) configKey(msg tea.KeyMsg) (Menu, tea.Cmd) {
	params := m.entries[m.cursor].Params
	name := params[m.paramCursor].Name

	if m.editing {
		switch msg.String() {
		case "enter":
			if v, err := strconv.Atoi(m.editBuf); err == nil {
				m.params[name] = v
			}
			m.editing = false
			m.editBuf = ""
		case "esc":
			m.editing = false
			m.editBuf = ""
		case "backspace":
			if len(m.editBuf) > 0 {
				m.editBuf = m.editBuf[:len(m.editBuf)-1]
			}
		default:
			if s := msg.String(); len(s) == 1 && ((s[0] >= '0' && s[0] <= '9') || (s[0] == '-' && m.editBuf == "")) {
				m.editBuf += s
			}
		}
		return m, nil
	}

	switch msg.String() {
	case "q", "esc":
		m.state = stateMenu
	case "up", "k":
		if m.paramCursor > 0 {
			m.paramCursor--
		}
	case "down", "j":
		if m.paramCursor < len(params)-1 {
			m.paramCursor++
		}
	case "enter", " ":
		m.editing = true
		m.editBuf = strconv.Itoa(m.params[name])
	case "left", "h":
		m.params[name] = max(m.params[name]-step(m.params[name]), 0)
	case "right", "l":
		m.params[name] += step(m.params[name])
	case "s":
		return m.start()
	}
	return m, nil
}

// step scales arrow-key adjustments with the magnitude of the value.
func step(v int) int {
	switch {
	case v >= 1000:
		return 100
	case v >= 100:
		return 10
	default:
		return 1
	}
}

func (m Menu) View() string {
	switch m.state {
	case stateConfig:
		return m.viewConfig()
	default:
		return m.viewMenu()
	}
}

func (m Menu) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n\n    " + GradientText("QUARKVIZ", m.theme.Primary, m.theme.Accent) +
		"\n    " + Subtle.Render("Select a simulation to run:") +
		"\n    " + Separator(30) + "\n\n")

	selected := lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true)
	info := lipgloss.NewStyle().Foreground(m.theme.Primary)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
	for i, e := range m.entries {
		line := fmt.Sprintf("%s: %-36s", e.Key, e.Title)
		if i == m.cursor {
			b.WriteString("    " + titleStyle(m.theme).Render("▸") + " " + selected.Render(line) + " " + info.Render(e.Info) + "\n")
		} else {
			b.WriteString("      " + muted.Render(line) + "\n")
		}
	}
	b.WriteString("\n    " + Hints("j/k", "navigate", "enter", "select", "q", "quit") + "\n")
	return b.String()
}

func (m Menu) viewConfig() string {
	e := m.entries[m.cursor]
	var b strings.Builder
	b.WriteString("\n\n    " + titleStyle(m.theme).Render(strings.ToUpper(e.Title)) +
		"\n    " + Subtle.Render(e.Info) +
		"\n    " + Separator(30) + "\n\n")

	for i, p := range e.Params {
		val := fmt.Sprintf("%8d", m.params[p.Name])
		if m.editing && i == m.paramCursor {
			val = fmt.Sprintf("%8s", m.editBuf+"_")
		}
		if i == m.paramCursor {
			b.WriteString(fmt.Sprintf("    %s %s %s\n", titleStyle(m.theme).Render("▸"),
				lipgloss.NewStyle().Foreground(m.theme.Text).Bold(true).Render(fmt.Sprintf("%-10s", p.Name)),
				MetricValue.Render(val)))
		} else {
			b.WriteString(fmt.Sprintf("      %s %s\n", MetricLabel.Render(fmt.Sprintf("%-10s", p.Name)), Subtle.Render(val)))
		}
	}
	b.WriteString("\n    " + Hints("j/k", "select", "h/l", "adjust", "enter", "edit", "s", "start", "esc", "back") + "\n")
	return b.String()
}

// RunMenu shows the menu until the user starts a simulation or quits.
func RunMenu(entries []MenuEntry, theme Theme) (Selection, error) {
	final, err := tea.NewProgram(NewMenu(entries, theme), tea.WithAltScreen()).Run()
	if err != nil {
		return Selection{}, err
	}
	return final.(Menu).Selection(), nil
}
