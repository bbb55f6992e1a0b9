package objects

import (
	"math"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/schedule"
)

// Spreaders fly to a target and burst into burstCount children there.
const (
	burstStep  = 30
	burstCount = 360 / burstStep
	burstJig   = 15
	snapDist   = 3
)

// converger moves towards a target by a fixed fraction of the remaining
// distance per tick and snaps onto it once close enough.
type converger struct {
	pos    core.Vec2
	target core.Vec2
}

// approach advances one tick and reports whether the target is reached.
func (c *converger) approach() bool {
	d := c.target.Sub(c.pos)
	if d.Len() < snapDist {
		c.pos = c.target
	} else {
		c.pos = c.pos.Add(d.Scale(1.0 / 20))
	}
	return c.pos == c.target
}

// burstAngles returns the child headings around a random offset.
func burstAngles(env Env) []float64 {
	offset := float64(env.rng().Intn(2*burstJig+1) - burstJig)
	return schedule.Spread(burstStep, offset)
}

// PointSpreader converges on its target and bursts into small point bullets.
type PointSpreader struct {
	body
	converger
	r float64
}

func NewPointSpreader(env Env, pos, target core.Vec2) *PointSpreader {
	return &PointSpreader{body: body{env: env}, converger: converger{pos: pos, target: target}}
}

func (s *PointSpreader) Kind() Kind     { return KindPointSpreader }
func (s *PointSpreader) Pos() core.Vec2 { return s.pos }

func (s *PointSpreader) Update(core.InputFrame) {
	if s.dead {
		return
	}
	s.r = core.ClampF(s.r+0.15, 0, 10)
	if !s.approach() {
		return
	}
	kids := make([]Entity, 0, burstCount)
	for _, a := range burstAngles(s.env) {
		kids = append(kids, NewPointBullet(s.env, s.pos, core.Heading(a).Scale(3), 3))
	}
	s.spawn(kids...)
	s.Kill()
}

func (s *PointSpreader) Draw(r core.Renderer) {
	c := core.ColorWhite
	if s.env.rng().Intn(2) == 0 {
		c = core.ColorRed
	}
	r.Circle(s.pos, s.r, c, 0)
}

// LineSpreader converges on its target and bursts into line shards.
type LineSpreader struct {
	body
	converger
}

func NewLineSpreader(env Env, pos, target core.Vec2) *LineSpreader {
	return &LineSpreader{body: body{env: env}, converger: converger{pos: pos, target: target}}
}

func (s *LineSpreader) Kind() Kind     { return KindLineSpreader }
func (s *LineSpreader) Pos() core.Vec2 { return s.pos }

func (s *LineSpreader) Update(core.InputFrame) {
	if s.dead {
		return
	}
	if !s.approach() {
		return
	}
	kids := make([]Entity, 0, burstCount)
	for _, a := range burstAngles(s.env) {
		kids = append(kids, NewLineShard(s.env, s.pos, core.Heading(a).Scale(3), 3, 10))
	}
	s.spawn(kids...)
	s.Kill()
}

func (s *LineSpreader) Draw(r core.Renderer) {
	c := core.ColorWhite
	if s.env.rng().Intn(2) == 0 {
		c = core.ColorBlue
	}
	dir := s.target.Sub(s.pos).Normalize()
	if dir.Len() == 0 {
		r.Circle(s.pos, 1, c, 0)
		return
	}
	r.Line(s.pos, s.pos.Add(dir.Scale(10)), c, 2)
}

// TriangleLauncher spins towards its target and bursts into triangles.
type TriangleLauncher struct {
	body
	converger
	size  float64
	angle float64
}

func NewTriangleLauncher(env Env, pos, target core.Vec2, size float64) *TriangleLauncher {
	return &TriangleLauncher{
		body:      body{env: env},
		converger: converger{pos: pos, target: target},
		size:      size,
	}
}

func (l *TriangleLauncher) Kind() Kind     { return KindTriangleLauncher }
func (l *TriangleLauncher) Pos() core.Vec2 { return l.pos }

func (l *TriangleLauncher) Update(core.InputFrame) {
	if l.dead {
		return
	}
	l.angle = mod360(l.angle + 10)
	if !l.approach() {
		return
	}
	kids := make([]Entity, 0, burstCount)
	for _, a := range burstAngles(l.env) {
		kids = append(kids, NewTriangleBullet(l.env, l.pos, core.Heading(a).Scale(9), 10))
	}
	l.spawn(kids...)
	l.Kill()
}

func (l *TriangleLauncher) Draw(r core.Renderer) {
	c := core.ColorWhite
	if l.env.rng().Intn(2) == 0 {
		c = core.ColorRed
	}
	pts := core.Triangle(l.pos, l.size, l.angle)
	r.Polygon(pts[:], c, 0)
}

func mod360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
