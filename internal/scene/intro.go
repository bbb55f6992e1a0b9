package scene

import (
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/globals"
	"github.com/vovakirdan/dimensions/internal/subtitle"
	"github.com/vovakirdan/dimensions/internal/transition"
)

const introDelay = 3 * time.Second

// levelIntroScene shows the upcoming level's name, then starts it.
type levelIntroScene struct {
	base
	upcoming string
	timer    *core.Timer
}

func newLevelIntro(m *Manager) *levelIntroScene {
	return &levelIntroScene{base: base{m: m, name: LevelIntro}}
}

func (s *levelIntroScene) Reset() {
	s.enter()
	s.upcoming = s.svc().Globals.String(globals.UpcomingLevel)
	if s.upcoming == "" {
		s.upcoming = "undefined"
	}
	s.timer = core.NewTimer(introDelay, s.svc().Clock)
}

// Upcoming returns the level being introduced.
func (s *levelIntroScene) Upcoming() string { return s.upcoming }

func (s *levelIntroScene) Update(core.InputFrame) {
	if s.timer == nil || !s.timer.Tick() {
		return
	}
	s.svc().Globals.Set(globals.UpcomingLevel, "")
	s.svc().Transitions.Set(transition.Fade)
	s.m.SwitchMode(s.upcoming, true, true)
}

func (s *levelIntroScene) Draw(r core.Renderer) {
	r.Blit(r.Text(s.upcoming, 50, core.ColorWhite), s.field().Center(), core.AnchorCenter)
}

// retryScene asks whether to replay the level that was just lost.
type retryScene struct {
	base
	options  [2]string
	selected int
	unlocked bool
}

func newRetry(m *Manager) *retryScene {
	return &retryScene{
		base:    base{m: m, name: Retry},
		options: [2]string{"Yes", "No"},
	}
}

func (s *retryScene) Reset() {
	s.enter()
	s.selected = 0
	g := s.svc().Globals
	msg := g.String(globals.RetryMessage)
	s.unlocked = msg == ""
	if msg == "" {
		return
	}
	f := s.field()
	s.typed(msg, subtitle.Infinite, core.V(f.X+f.W/2, f.Y+150), func() {
		g.Set(globals.RetryMessage, "")
	})
}

// Unlocked reports whether the choice accepts input yet.
func (s *retryScene) Unlocked() bool { return s.unlocked }

func (s *retryScene) Update(in core.InputFrame) {
	if s.svc().Globals.String(globals.RetryMessage) == "" {
		s.unlocked = true
	}
	if !s.unlocked {
		return
	}
	if in.Has(core.ActionLeft) {
		s.selected = (s.selected + 1) % 2
	}
	if in.Has(core.ActionRight) {
		s.selected = (s.selected + 1) % 2
	}
	if in.Has(core.ActionConfirm) {
		s.svc().Subtitles.Clear()
		s.svc().Transitions.Set(transition.Fade)
		if s.selected == 0 {
			s.m.SwitchMode(s.svc().Globals.String(globals.PreviousLevel), true, true)
		} else {
			s.m.SwitchMode(Home, true, true)
		}
	}
}

func (s *retryScene) Draw(r core.Renderer) {
	f := s.field()
	c := f.Center()
	r.Blit(r.Text("Retry ?", subtitle.DefaultSize, core.ColorWhite), c, core.AnchorCenter)
	for i, opt := range s.options {
		col := core.ColorWhite
		if i == s.selected {
			col = core.ColorOrange
		}
		x := f.X + f.W*float64(1+2*i)/4
		r.Blit(r.Text(opt, subtitle.DefaultSize, col), core.V(x, c.Y+150), core.AnchorCenter)
	}
}
