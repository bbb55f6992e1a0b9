package scene

import (
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/globals"
	"github.com/vovakirdan/dimensions/internal/registry"
	"github.com/vovakirdan/dimensions/internal/subtitle"
	"github.com/vovakirdan/dimensions/internal/transition"
)

// Manager owns the scene registry and the active scene.
type Manager struct {
	svc     *Services
	scenes  map[string]Scene
	mode    string
	current Scene

	// deferred switch, performed once the transition has closed
	toSwitch string
	toReset  bool

	exit bool
}

// NewManager builds every scene and enters home. Missing services are
// replaced with quiet defaults. Levels are taken from the level registry.
func NewManager(svc Services) *Manager {
	m := &Manager{svc: svc.withDefaults()}

	g := m.svc.Globals
	g.Set(globals.FirstTimePlayed, g.Bool(globals.FirstTimePlayed))
	g.Set(globals.FullPlayed, g.Bool(globals.FullPlayed))
	g.Set(globals.RetryMessage, g.String(globals.RetryMessage))
	g.Set(globals.CurrentLevel, "")
	g.Set(globals.UpcomingLevel, g.String(globals.UpcomingLevel))

	m.svc.Runtime.SetSoundtrack(func() (float64, bool) {
		return g.Float(globals.ElapsedSoundtrack)
	})

	m.scenes = map[string]Scene{
		Home:        newHome(m),
		Help:        newHelp(m),
		Settings:    newSettings(m),
		Credits:     newCredits(m),
		LevelSelect: newLevelSelect(m),
		LevelIntro:  newLevelIntro(m),
		Retry:       newRetry(m),
		Quit:        newQuit(m),
	}
	for _, l := range registry.List() {
		m.scenes[l.ID] = newLevel(m, l)
	}

	m.svc.Audio.Stop()
	m.mode = Home
	m.current = m.scenes[Home]
	m.current.Reset()
	return m
}

// Services returns the shared collaborators.
func (m *Manager) Services() *Services { return m.svc }

// Mode returns the active scene name.
func (m *Manager) Mode() string { return m.mode }

// Scene returns the active scene.
func (m *Manager) Scene() Scene { return m.current }

// Lookup returns a registered scene by name.
func (m *Manager) Lookup(name string) (Scene, bool) {
	s, ok := m.scenes[name]
	return s, ok
}

// Pending returns the scene waiting for the transition to close.
func (m *Manager) Pending() (string, bool) {
	return m.toSwitch, m.toSwitch != ""
}

// Exit reports whether the game asked to quit.
func (m *Manager) Exit() bool { return m.exit }

// RequestExit asks the frame driver to quit.
func (m *Manager) RequestExit() {
	if !m.exit {
		m.svc.Logger.Info("exit requested", "scene", m.mode)
	}
	m.exit = true
}

// SwitchMode changes the active scene. Unknown targets are ignored.
// With useTransition the switch waits until the transition has closed;
// otherwise it happens now, re-entering the target when reset is set.
// Either way the runtime and the subtitle queue are cleared.
func (m *Manager) SwitchMode(target string, reset, useTransition bool) {
	next, ok := m.scenes[target]
	if !ok {
		m.svc.Logger.Warn("ignoring switch to unknown scene", "target", target, "from", m.mode)
		return
	}
	m.svc.Runtime.Clear()
	m.svc.Subtitles.Clear()

	if useTransition {
		m.toSwitch = target
		m.toReset = reset
		m.svc.Transitions.Close()
		return
	}

	m.svc.Logger.Debug("switch scene", "from", m.mode, "to", target, "reset", reset)
	m.mode = target
	m.current = next
	if reset {
		next.Reset()
	}
}

// Update advances one frame: soundtrack position, global keys, a pending
// switch, then the scene, the runtime, the transition and the subtitles.
func (m *Manager) Update(in core.InputFrame) {
	m.syncSoundtrack()
	m.globalKeys(in)

	if m.toSwitch != "" && m.svc.Transitions.Status() == transition.Closed {
		target, reset := m.toSwitch, m.toReset
		m.toSwitch, m.toReset = "", false
		m.SwitchMode(target, reset, false)
		m.svc.Transitions.Open()
	}

	m.current.Update(in)
	m.svc.Runtime.Tick(in)
	m.svc.Transitions.Update()
	m.svc.Subtitles.Update()
}

// Draw renders the frame in update order.
func (m *Manager) Draw(r core.Renderer) {
	m.current.Draw(r)
	m.svc.Runtime.Draw(r)
	m.svc.Transitions.Draw(r)
	m.svc.Subtitles.Draw(r)
}

// syncSoundtrack publishes the track position into globals.
func (m *Manager) syncSoundtrack() {
	g := m.svc.Globals
	if elapsed, ok := m.svc.Audio.Elapsed(); ok {
		g.Set(globals.ElapsedSoundtrack, elapsed)
	} else {
		g.Delete(globals.ElapsedSoundtrack)
	}
}

func (m *Manager) globalKeys(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		m.RequestExit()
	}

	if in.Has(core.ActionBack) {
		if m.mode == Home {
			if m.svc.Globals.Bool(globals.FirstTimePlayed) {
				m.RequestExit()
			}
		} else if _, pending := m.Pending(); !pending {
			// a wipe already closing keeps its kind; replacing it would never close
			m.svc.Transitions.Set(transition.Fade)
			m.svc.Subtitles.Clear()
			if !registry.Exists(m.mode) {
				m.SwitchMode(Home, false, true)
			}
		}
	}

	if in.Has(core.ActionToggleEasy) {
		on := m.svc.Runtime.ToggleCollisions()
		mode := "noob"
		if on {
			mode = "pro"
		}
		m.svc.Logger.Info("difficulty toggled", "mode", mode)
		f := m.svc.Runtime.Env().Field
		m.svc.Subtitles.Add(subtitle.Typed(mode+" Mode Entered", 2*time.Second, core.V(f.X+f.W/2, f.Bottom()-50), nil)...)
	}
}
