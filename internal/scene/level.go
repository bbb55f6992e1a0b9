package scene

import (
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/globals"
	"github.com/vovakirdan/dimensions/internal/registry"
	"github.com/vovakirdan/dimensions/internal/transition"
)

// Level scene tuning.
const (
	deathMessage = "Press E to play in easy mode"
	deathFade    = 500 * time.Millisecond
	barLength    = 400
	barHeight    = 10
	barTop       = 20
)

// levelScene plays one registered level against its soundtrack.
type levelScene struct {
	base
	level   registry.Level
	leaving bool
	fading  bool
}

func newLevel(m *Manager, l registry.Level) *levelScene {
	return &levelScene{base: base{m: m, name: l.ID}, level: l}
}

func (s *levelScene) Reset() {
	s.enter()
	s.leaving, s.fading = false, false

	svc := s.svc()
	svc.Runtime.Initialize()
	svc.Runtime.Add(s.level.Spawn(svc.Runtime.Env()))

	svc.Audio.Stop()
	svc.Audio.PlayTrack(s.level.Track, 0)
	svc.Globals.Set(globals.TotalSoundtrack, svc.Audio.TotalDuration(s.level.Track))
	s.m.syncSoundtrack()

	svc.Logger.Info("level started", "level", s.level.ID, "track", s.level.Track)
}

func (s *levelScene) Update(core.InputFrame) {
	if s.leaving {
		return
	}
	svc := s.svc()

	if p := svc.Runtime.Player(); p != nil && !p.Alive() {
		s.leaving = true
		svc.Logger.Info("player died", "level", s.level.ID)
		svc.Globals.Set(globals.RetryMessage, deathMessage)
		kinds := []transition.Kind{transition.Square, transition.Circle}
		svc.Transitions.Set(kinds[svc.Rand.Intn(len(kinds))])
		s.m.SwitchMode(Retry, true, true)
		svc.Audio.Fade(deathFade)
		return
	}

	elapsed, ok := svc.Globals.Float(globals.ElapsedSoundtrack)
	if !ok {
		return
	}
	total, ok := svc.Globals.Float(globals.TotalSoundtrack)
	if !ok {
		return
	}

	if s.level.FadeEarly > 0 && !s.fading && elapsed > total-s.level.FadeEarly {
		s.fading = true
		svc.Audio.Fade(deathFade)
	}

	if elapsed > total {
		s.leaving = true
		s.complete()
	}
}

// complete moves on to the next level's intro, or to the credits after
// the last level.
func (s *levelScene) complete() {
	svc := s.svc()
	svc.Logger.Info("level complete", "level", s.level.ID, "next", s.level.Next)
	svc.Transitions.Set(transition.Fade)
	if s.level.Next == "" {
		svc.Globals.Set(globals.FullPlayed, true)
		s.m.SwitchMode(Credits, true, true)
		return
	}
	svc.Globals.Set(globals.UpcomingLevel, s.level.Next)
	s.m.SwitchMode(LevelIntro, true, true)
}

// Progress returns the fill length of the progress bar.
func (s *levelScene) Progress() float64 {
	g := s.svc().Globals
	total, _ := g.Float(globals.TotalSoundtrack)
	if total == 0 {
		total = barLength
	}
	elapsed, _ := g.Float(globals.ElapsedSoundtrack)
	return core.MapToRange(elapsed, 0, total, 0, barLength)
}

// Theme returns the progress bar color.
func (s *levelScene) Theme() core.Color {
	if c, ok := s.svc().Themes[s.level.ID]; ok {
		return c
	}
	return s.level.Theme
}

func (s *levelScene) Draw(r core.Renderer) {
	f := s.field()
	x := f.X + f.W/2 - barLength/2
	r.Rect(core.Box{X: x, Y: f.Y + barTop, W: s.Progress(), H: barHeight}, s.Theme(), 0)
	r.Rect(core.Box{X: x, Y: f.Y + barTop, W: barLength, H: barHeight}, core.ColorWhite, 2)
}
