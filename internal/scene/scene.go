// Package scene sequences the game's screens: menus, level intros, the
// levels themselves and the retry prompt. Switches can wait behind a
// closing transition so the swap happens while the screen is covered.
package scene

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/browser"

	"github.com/vovakirdan/dimensions/internal/audio"
	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/globals"
	"github.com/vovakirdan/dimensions/internal/objects"
	"github.com/vovakirdan/dimensions/internal/subtitle"
	"github.com/vovakirdan/dimensions/internal/transition"
)

// Scene names. Levels use their registry IDs.
const (
	Home        = "home"
	Help        = "help"
	Settings    = "settings"
	Credits     = "credits"
	LevelSelect = "level-select"
	LevelIntro  = "level-intro"
	Retry       = "retry"
	Quit        = "quit"
)

// Scene is one screen of the game.
type Scene interface {
	Name() string

	// Reset re-enters the scene from scratch.
	Reset()

	Update(in core.InputFrame)
	Draw(r core.Renderer)
}

// Opener opens a URL outside the game.
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the system browser.
type BrowserOpener struct{}

// NewBrowserOpener silences the browser launcher's output, which would
// otherwise scribble over the terminal UI.
func NewBrowserOpener() BrowserOpener {
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return BrowserOpener{}
}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// Services are the collaborators every scene shares.
type Services struct {
	Runtime     *objects.Runtime
	Subtitles   *subtitle.Queue
	Transitions *transition.Manager
	Globals     *globals.Store
	Audio       audio.Player
	Logger      *log.Logger
	Opener      Opener
	Rand        *rand.Rand
	Clock       core.Clock

	// Themes overrides the progress bar color of a level by id.
	Themes map[string]core.Color
}

// withDefaults fills missing collaborators with quiet stand-ins.
func (s Services) withDefaults() *Services {
	if s.Clock == nil {
		s.Clock = core.SystemClock{}
	}
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.Rand == nil {
		s.Rand = rand.New(rand.NewSource(s.Clock.Now().UnixNano()))
	}
	if s.Runtime == nil {
		env := objects.DefaultEnv()
		env.Clock = s.Clock
		env.Rand = s.Rand
		s.Runtime = objects.NewRuntime(env)
	}
	if s.Subtitles == nil {
		s.Subtitles = subtitle.NewQueue(s.Clock)
	}
	if s.Transitions == nil {
		s.Transitions = transition.NewManager(nil)
	}
	if s.Globals == nil {
		s.Globals = globals.New()
	}
	if s.Audio == nil {
		s.Audio = audio.NewSoundtrack(audio.Silent{}, s.Clock, audio.DefaultDurations, s.Logger)
	}
	if s.Opener == nil {
		s.Opener = NewBrowserOpener()
	}
	return &s
}

// base is embedded by every scene.
type base struct {
	m    *Manager
	name string
}

func (b *base) Name() string { return b.name }

func (b *base) svc() *Services { return b.m.svc }

func (b *base) field() core.Box { return b.m.svc.Runtime.Env().Field }

// enter records the scene change in globals and wipes the stage.
func (b *base) enter() {
	g := b.svc().Globals
	g.Set(globals.PreviousLevel, g.String(globals.CurrentLevel))
	g.Set(globals.CurrentLevel, b.name)
	b.svc().Subtitles.Clear()
	b.svc().Runtime.Clear()
}

// frame draws the menu border and the scene title.
func (b *base) frame(r core.Renderer, title string) {
	f := b.field()
	border := f.Inflate(-20, -200)
	border.Y += 90
	r.Rect(border, core.ColorWhite, 3)
	r.Blit(r.Text(title, 100, core.ColorWhite), core.V(f.X+50, f.Y+100), core.AnchorLeft)
}

// typed queues a typewriter message.
func (b *base) typed(text string, hold time.Duration, pos core.Vec2, onDone func()) {
	b.svc().Subtitles.Add(subtitle.Typed(text, hold, pos, onDone)...)
}

// menuList is a vertical list of options with a highlighted entry.
type menuList struct {
	options  []string
	selected int
	top      float64
	gap      float64
}

// move handles up and down, wrapping around. It reports whether the
// selection changed.
func (l *menuList) move(in core.InputFrame) bool {
	n := len(l.options)
	if n == 0 {
		return false
	}
	moved := false
	if in.Has(core.ActionDown) {
		l.selected = (l.selected + 1) % n
		moved = true
	}
	if in.Has(core.ActionUp) {
		l.selected = (l.selected - 1 + n) % n
		moved = true
	}
	return moved
}

func (l *menuList) current() string {
	if len(l.options) == 0 {
		return ""
	}
	return l.options[l.selected]
}

func (l *menuList) draw(r core.Renderer, f core.Box) {
	for i, opt := range l.options {
		c := core.ColorWhite
		if i == l.selected {
			c = core.ColorOrange
		}
		y := f.Y + l.top + float64(i)*l.gap
		r.Blit(r.Text(opt, 50, c), core.V(f.X+100, y+25), core.AnchorLeft)
	}
}
