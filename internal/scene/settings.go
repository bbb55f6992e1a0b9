package scene

import (
	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/objects"
)

// Notice physics. The notice falls once every pin is pulled.
const (
	gravity   = 10
	fallStep  = 0.16
	pinRadius = 10
	pinBorder = 2
)

var thanks = []string{
	"You found the Easter Egg!",
	"Thank You for trying out the game!",
	"If you liked playing this",
	"Please Rate Us for the jam!",
}

type pinState int

const (
	pinIdle pinState = iota
	pinHover
	pinClicked
)

type pin struct {
	pos   core.Vec2
	state pinState
}

// settingsScene is a notice pinned over a hidden thank-you message.
type settingsScene struct {
	base
	noticeSize core.Vec2
	noticePos  core.Vec2
	noticeVel  core.Vec2
	pins       []pin
	pull       int // index of the pin clicked last frame, or -1
}

func newSettings(m *Manager) *settingsScene {
	return &settingsScene{base: base{m: m, name: Settings}, pull: -1}
}

func (s *settingsScene) Reset() {
	s.enter()
	f := s.field()
	s.noticeSize = core.V(2.2*f.W/3, 2.2*f.H/3)
	s.noticePos = f.Center()
	s.noticeVel = core.Vec2{}
	n := s.notice()
	s.pins = []pin{
		{pos: core.V(n.X, n.Y)},
		{pos: core.V(n.Right(), n.Y)},
		{pos: core.V(n.X, n.Bottom())},
		{pos: core.V(n.Right(), n.Bottom())},
	}
	s.pull = -1
}

func (s *settingsScene) notice() core.Box {
	return core.BoxAt(s.noticePos, s.noticeSize.X, s.noticeSize.Y)
}

// Pins returns how many pins still hold the notice.
func (s *settingsScene) Pins() int { return len(s.pins) }

// Falling reports whether the notice has come loose.
func (s *settingsScene) Falling() bool { return len(s.pins) == 0 }

// visible reports whether the notice is still on screen.
func (s *settingsScene) visible() bool {
	return s.notice().Y <= s.field().Bottom()
}

func (s *settingsScene) Update(in core.InputFrame) {
	if s.pull >= 0 {
		at := s.pins[s.pull].pos
		s.pins = append(s.pins[:s.pull], s.pins[s.pull+1:]...)
		s.pull = -1
		rt := s.svc().Runtime
		rt.Add(objects.NewClickRipple(rt.Env(), at))
	}

	if s.Falling() && s.visible() {
		s.noticeVel = s.noticeVel.Add(core.V(0, gravity).Scale(fallStep))
		s.noticePos = s.noticePos.Add(s.noticeVel.Scale(fallStep))
	}

	if in.Mouse == nil {
		return
	}
	for i := range s.pins {
		over := s.pins[i].pos.Dist(in.Mouse.Pos) <= pinRadius
		switch {
		case over && in.Mouse.Clicked:
			s.pins[i].state = pinClicked
			s.pull = i
		case over:
			s.pins[i].state = pinHover
		default:
			s.pins[i].state = pinIdle
		}
	}
}

func (s *settingsScene) Draw(r core.Renderer) {
	f := s.field()
	cx := f.X + f.W/2
	for i, line := range thanks {
		r.Blit(r.Text(line, 30, core.ColorWhite), core.V(cx, f.Y+150+40*float64(i)), core.AnchorCenter)
	}

	if s.visible() {
		n := s.notice()
		r.Rect(n, core.ColorBlack, 0)
		r.Rect(n, core.ColorWhite, 2)
		r.Blit(r.Text("Under Maintenance!", 35, core.ColorWhite), s.noticePos, core.AnchorCenter)
	}

	for _, p := range s.pins {
		r.Circle(p.pos, pinRadius+pinBorder, core.ColorWhite, 0)
		c := core.ColorBrown
		switch p.state {
		case pinHover:
			c = core.ColorBlue
		case pinClicked:
			c = core.ColorGreen
		}
		r.Circle(p.pos, pinRadius, c, 0)
	}
}
