package scene

import (
	"time"

	"github.com/vovakirdan/dimensions/internal/audio"
	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/globals"
	"github.com/vovakirdan/dimensions/internal/registry"
	"github.com/vovakirdan/dimensions/internal/subtitle"
	"github.com/vovakirdan/dimensions/internal/transition"
)

// homeScene is the main menu.
type homeScene struct {
	base
	list    menuList
	targets []string
}

func newHome(m *Manager) *homeScene {
	return &homeScene{
		base:    base{m: m, name: Home},
		list:    menuList{options: []string{"quit", "help", "settings", "credits", "play"}, top: 200, gap: 75},
		targets: []string{Quit, Help, Settings, Credits, LevelSelect},
	}
}

func (s *homeScene) Reset() {
	s.enter()
	s.svc().Transitions.Set(transition.Fade)
	s.list.selected = 0
}

func (s *homeScene) Update(in core.InputFrame) {
	if s.list.move(in) {
		s.svc().Audio.PlaySound(audio.SoundPing)
	}
	if in.Has(core.ActionConfirm) {
		s.svc().Transitions.Set(transition.Fade)
		target := s.targets[s.list.selected]
		// quitting either exits or taunts; neither needs a wipe
		s.m.SwitchMode(target, true, target != Quit)
	}
}

func (s *homeScene) Draw(r core.Renderer) {
	s.frame(r, s.name)
	s.list.draw(r, s.field())
}

// levelSelectScene picks the level to start from.
type levelSelectScene struct {
	base
	list menuList
}

func newLevelSelect(m *Manager) *levelSelectScene {
	return &levelSelectScene{
		base: base{m: m, name: LevelSelect},
		list: menuList{options: registry.IDs(), top: 200, gap: 75},
	}
}

func (s *levelSelectScene) Reset() {
	s.enter()
	s.svc().Transitions.Set(transition.Fade)
	s.list.selected = 0
}

func (s *levelSelectScene) Update(in core.InputFrame) {
	if s.list.move(in) {
		s.svc().Audio.PlaySound(audio.SoundPing)
	}
	if in.Has(core.ActionConfirm) && len(s.list.options) > 0 {
		g := s.svc().Globals
		g.Set(globals.FirstTimePlayed, true)
		g.Set(globals.UpcomingLevel, s.list.current())
		s.svc().Transitions.Set(transition.Fade)
		s.m.SwitchMode(LevelIntro, true, true)
	}
}

func (s *levelSelectScene) Draw(r core.Renderer) {
	s.frame(r, "Select Level")
	s.list.draw(r, s.field())
}

// helpScene lists the controls.
type helpScene struct {
	base
}

var helpLines = []string{
	"WASD or arrows to move",
	"hold shift to move faster",
	"e to toggle difficulty",
	"escape to go back",
}

func newHelp(m *Manager) *helpScene {
	return &helpScene{base: base{m: m, name: Help}}
}

func (s *helpScene) Reset() { s.enter() }

func (s *helpScene) Update(core.InputFrame) {}

func (s *helpScene) Draw(r core.Renderer) {
	s.frame(r, s.name)
	c := s.field().Center()
	r.Blit(r.Text("We dont do that here but...", 35, core.ColorWhite), c.Add(core.V(0, -50)), core.AnchorCenter)
	for i, line := range helpLines {
		r.Blit(r.Text(line, 25, core.ColorWhite), c.Add(core.V(0, float64(i)*50)), core.AnchorCenter)
	}
}

// quitScene exits once a level has been played, and taunts otherwise.
type quitScene struct {
	base
}

var taunts = []string{
	"Play The Game First Idiot!",
	"First Play The Game You Noob!",
	"Just Play The Game!",
	"Select the Play option idiot!",
	"not until you play you noob!",
	"you need to play at least once",
	"find a way other than playing",
}

const (
	tauntStep = 50 * time.Millisecond
	tauntHold = 2 * time.Second
)

func newQuit(m *Manager) *quitScene {
	return &quitScene{base: base{m: m, name: Quit}}
}

func (s *quitScene) Reset() {
	s.enter()
	if s.svc().Globals.Bool(globals.FirstTimePlayed) {
		s.m.RequestExit()
		return
	}
	text := []rune(taunts[s.svc().Rand.Intn(len(taunts))])
	for i := 1; i <= len(text); i++ {
		d := tauntStep
		if i == len(text) {
			d = tauntHold
		}
		s.svc().Subtitles.Add(subtitle.Subtitle{Text: string(text[:i]), Duration: d})
	}
}

func (s *quitScene) Update(core.InputFrame) {
	if s.m.Exit() {
		return
	}
	if s.svc().Subtitles.Idle() {
		s.m.SwitchMode(Home, false, true)
	}
}

func (s *quitScene) Draw(r core.Renderer) {
	s.frame(r, s.name)
}

// contributor is one entry on the credits screen.
type contributor struct {
	name  string
	blurb string
	link  string
}

var contributors = []contributor{
	{"spooky", "He made amazing soundtracks!", "https://okno.itch.io"},
	{"mrpoly", "we used their cool soundtrack!", "https://opengameart.org/users/mrpoly"},
	{"captain", "programmed random stuff", ""},
	{"tank king", "programmed other random stuff", "https://tank-king.itch.io"},
	{"pygame", "obviously!", ""},
}

// Credits messages.
const (
	linkOpened = "Link opened in Browser"
	linkFailed = "An Error Occurred"
	linkNone   = "No contact info for this person"

	creditsHold = 99 * time.Second
)

// creditsScene lists contributors; Enter opens their page.
type creditsScene struct {
	base
	list menuList
}

func newCredits(m *Manager) *creditsScene {
	names := make([]string, len(contributors))
	for i, c := range contributors {
		names[i] = c.name
	}
	return &creditsScene{
		base: base{m: m, name: Credits},
		list: menuList{options: names, top: 200, gap: 60},
	}
}

func (s *creditsScene) Reset() {
	s.enter()
	s.svc().Transitions.Set(transition.Fade)
	s.list.selected = 0
	s.show(contributors[0].blurb)
}

// show replaces whatever is typed at the bottom of the screen.
func (s *creditsScene) show(text string) {
	f := s.field()
	s.svc().Subtitles.Clear()
	s.typed(text, creditsHold, core.V(f.X+f.W/2, f.Bottom()-50), nil)
}

func (s *creditsScene) Update(in core.InputFrame) {
	if s.list.move(in) {
		s.svc().Audio.PlaySound(audio.SoundPing)
		s.show(contributors[s.list.selected].blurb)
	}
	if in.Has(core.ActionConfirm) {
		s.svc().Transitions.Set(transition.Fade)
		s.open(contributors[s.list.selected])
	}
}

func (s *creditsScene) open(c contributor) {
	if c.link == "" {
		s.show(linkNone)
		return
	}
	if err := s.svc().Opener.Open(c.link); err != nil {
		s.svc().Logger.Error("failed to open link", "url", c.link, "err", err)
		s.show(linkFailed)
		return
	}
	s.svc().Logger.Info("opened link", "url", c.link)
	s.show(linkOpened)
}

func (s *creditsScene) Draw(r core.Renderer) {
	s.frame(r, s.name)
	s.list.draw(r, s.field())
}
