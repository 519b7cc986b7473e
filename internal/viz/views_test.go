package viz

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/quarkviz/internal/physics"
	"github.com/san-kum/quarkviz/internal/quantum"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPlasmaViewRenders(t *testing.T) {
	g, _ := physics.NewPlasma().Generate(6, quantum.NewRand(1))
	v := NewPlasmaView(g, "Quark-Gluon Plasma Simulation", ThemeMinimal)

	out := v.View()
	if !strings.Contains(out, "Quark-Gluon Plasma Simulation") {
		t.Error("view should contain the title")
	}
	if got := strings.Count(out, "▀"); got != 6*3 {
		t.Errorf("expected 18 half-blocks for a 6x6 grid, got %d", got)
	}

	if _, cmd := v.Update(key("q")); cmd == nil {
		t.Error("q should quit")
	}
}

func TestWalkViewRenders(t *testing.T) {
	for _, steps := range []int{0, 40} {
		p, _ := physics.NewNeutrino().Simulate(steps, quantum.NewRand(2))
		out := NewWalkView(p, "Neutrino Transport Simulation", ThemeMinimal).View()

		if !strings.Contains(out, "Neutrino Transport Simulation") {
			t.Errorf("steps %d: missing title", steps)
		}
		if !strings.Contains(out, "X Position") || !strings.Contains(out, "Y Position") {
			t.Errorf("steps %d: missing axis labels", steps)
		}
		if steps > 0 && !strings.Contains(out, "distance from origin") {
			t.Errorf("steps %d: missing displacement chart", steps)
		}
	}
}

func TestFieldViewAdvances(t *testing.T) {
	frames := physics.NewDarkMatter().Frames(20, 5, quantum.NewRand(3))
	v := NewFieldView(context.Background(), frames, time.Millisecond, "Dark Matter Interaction Simulation", ThemeMinimal)
	defer v.Stop()

	for v.Advance() {
	}
	if v.Shown() != 5 {
		t.Errorf("expected 5 frames, got %d", v.Shown())
	}
	if !strings.Contains(v.View(), "done") {
		t.Error("finished view should say done")
	}

	// a tick after the end keeps the final frame and schedules nothing
	if _, cmd := v.Update(frameMsg{}); cmd != nil {
		t.Error("no further ticks expected after the last frame")
	}
}

func TestFieldViewPause(t *testing.T) {
	frames := physics.NewDarkMatter().Frames(3, 10, quantum.NewRand(4))
	v := NewFieldView(context.Background(), frames, time.Millisecond, "field", ThemeMinimal)
	defer v.Stop()

	v.Update(key(" "))
	v.Update(frameMsg{})
	if v.Shown() != 0 {
		t.Error("paused view should not advance")
	}

	v.Update(key(" "))
	v.Update(frameMsg{})
	if v.Shown() != 1 {
		t.Errorf("expected 1 frame after resume, got %d", v.Shown())
	}
}

func TestFieldViewCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	frames := physics.NewDarkMatter().Frames(3, 10, quantum.NewRand(4))
	v := NewFieldView(ctx, frames, time.Millisecond, "field", ThemeMinimal)
	defer v.Stop()

	if _, cmd := v.Update(frameMsg{}); cmd == nil {
		t.Error("canceled context should quit")
	}
	if v.Shown() != 0 {
		t.Error("canceled view should not advance")
	}
}

func testEntries() []MenuEntry {
	return []MenuEntry{
		{Key: "1", Title: "Quark-Gluon Plasma Simulation"},
		{Key: "2", Title: "Neutrino Transport Simulation", Params: []MenuParam{{"steps", 100}}},
		{Key: "3", Title: "Dark Matter Interaction Simulation", Params: []MenuParam{{"particles", 50}, {"steps", 100}}},
	}
}

func TestMenuDirectSelect(t *testing.T) {
	m := NewMenu(testEntries(), ThemeMinimal)
	next, cmd := m.Update(key("1"))
	if cmd == nil {
		t.Fatal("entry without params should start immediately")
	}
	sel := next.(Menu).Selection()
	if !sel.Chosen || sel.Key != "1" {
		t.Errorf("unexpected selection %+v", sel)
	}
}

func TestMenuEditParams(t *testing.T) {
	var model tea.Model = NewMenu(testEntries(), ThemeMinimal)
	for _, k := range []string{"j", "j", "enter", "enter", "backspace", "backspace", "backspace", "7", "enter", "j", "l", "s"} {
		if k == "backspace" {
			model, _ = model.Update(tea.KeyMsg{Type: tea.KeyBackspace})
			continue
		}
		model, _ = model.Update(key(k))
	}

	sel := model.(Menu).Selection()
	if !sel.Chosen || sel.Key != "3" {
		t.Fatalf("unexpected selection %+v", sel)
	}
	if sel.Params["particles"] != 7 {
		t.Errorf("expected particles 7, got %d", sel.Params["particles"])
	}
	if sel.Params["steps"] != 110 {
		t.Errorf("expected steps 110, got %d", sel.Params["steps"])
	}
}

func TestMenuQuit(t *testing.T) {
	next, cmd := NewMenu(testEntries(), ThemeMinimal).Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.(Menu).Selection().Chosen {
		t.Error("quitting should not choose anything")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
