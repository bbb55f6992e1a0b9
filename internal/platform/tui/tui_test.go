package tui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/scene"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected []core.Action
	}{
		{"w moves up", runes("w"), []core.Action{core.ActionUp}},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, []core.Action{core.ActionDown}},
		{"a moves left", runes("a"), []core.Action{core.ActionLeft}},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, []core.Action{core.ActionRight}},
		{"shift W boosts", runes("W"), []core.Action{core.ActionUp, core.ActionFast}},
		{"shift arrow boosts", tea.KeyMsg{Type: tea.KeyShiftLeft}, []core.Action{core.ActionLeft, core.ActionFast}},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, []core.Action{core.ActionConfirm}},
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []core.Action{core.ActionConfirm}},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionBack}},
		{"e toggles easy", runes("e"), []core.Action{core.ActionToggleEasy}},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, []core.Action{core.ActionQuit}},
		{"unbound key", runes("x"), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Actions(tc.msg); !slices.Equal(got, tc.expected) {
				t.Errorf("Actions(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Error("ShortHelp() should not be empty")
	}
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	if n != 10 {
		t.Errorf("FullHelp() lists %d bindings, expected 10", n)
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	h := newHoldTracker(120 * time.Millisecond)

	h.press(core.ActionUp, start)
	h.press(core.ActionConfirm, start)

	tests := []struct {
		name     string
		at       time.Duration
		action   core.Action
		expected bool
	}{
		{"held right after press", 0, core.ActionUp, true},
		{"held inside window", 100 * time.Millisecond, core.ActionUp, true},
		{"discrete actions never held", 0, core.ActionConfirm, false},
		{"released after window", 200 * time.Millisecond, core.ActionUp, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			frame := core.NewInputFrame()
			h.apply(&frame, start.Add(tc.at))
			if got := frame.IsHeld(tc.action); got != tc.expected {
				t.Errorf("IsHeld(%v) = %v, expected %v", tc.action, got, tc.expected)
			}
		})
	}

	if len(h.last) != 0 {
		t.Errorf("expired holds should be forgotten, %d left", len(h.last))
	}

	h.press(core.ActionLeft, start)
	h.release()
	frame := core.NewInputFrame()
	h.apply(&frame, start)
	if frame.IsHeld(core.ActionLeft) {
		t.Error("release should drop held actions")
	}
}

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd", core.ColorSky)
	s.DrawText(0, 1, "efgh", core.ColorBrown)

	// no color profile outside a terminal, so styling adds nothing
	if got, expected := RenderScreen(s), s.String(); got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestPaletteCoversColors(t *testing.T) {
	for c := core.ColorRed; c < core.ColorBlack; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no palette entry", c)
		}
	}
	if _, ok := palette[core.ColorBlack]; ok {
		t.Error("ColorBlack erases and should not be styled")
	}
}

func newTestModel(t *testing.T) (Model, *core.ManualClock) {
	t.Helper()
	clock := core.NewManualClock(time.Unix(1000, 0))
	mgr := scene.NewManager(scene.Services{Clock: clock})
	m := NewModel(mgr, Options{
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60},
		Field:      core.Box{W: 800, H: 600},
		HoldWindow: 120 * time.Millisecond,
		Clock:      clock,
	})
	return m, clock
}

func TestModelMouseToWorld(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.MouseMsg{X: 40, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = next.(Model)
	if !m.hasPointer || !m.clicked {
		t.Fatalf("pointer = %v clicked = %v, expected both set", m.hasPointer, m.clicked)
	}
	if m.pointer != core.V(405, 310) {
		t.Errorf("pointer = %v, expected (405, 310)", m.pointer)
	}

	next, _ = m.Update(TickMsg(time.Now()))
	m = next.(Model)
	if m.clicked {
		t.Error("click should last one frame")
	}

	// the help row is not part of the playfield
	next, _ = m.Update(tea.MouseMsg{X: 1, Y: 30, Action: tea.MouseActionMotion})
	m = next.(Model)
	if m.pointer != core.V(405, 310) {
		t.Errorf("pointer moved to %v from the help row", m.pointer)
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	next, cmd := next.(Model).Update(TickMsg(time.Now()))
	m = next.(Model)

	if cmd == nil {
		t.Fatal("expected a command after the quit frame")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit the program")
	}
	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestModelViewHeight(t *testing.T) {
	m, _ := newTestModel(t)

	count := func() int { return strings.Count(m.View(), "\n") + 1 }
	if got := count(); got != 31 {
		t.Errorf("home view has %d rows, expected 31", got)
	}

	m.manager.SwitchMode(scene.Help, true, false)
	if got := count(); got != 31 {
		t.Errorf("help view has %d rows, expected 31", got)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 41})
	m = next.(Model)
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if b := m.canvas.Bounds(); b.W != 800 || b.H != 600 {
		t.Errorf("canvas bounds = %v, expected the playfield", b)
	}
}
