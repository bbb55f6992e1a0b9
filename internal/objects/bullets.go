package objects

import (
	"math"
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
)

// PointBullet is a round bullet moving at constant velocity.
type PointBullet struct {
	body
	pos   core.Vec2
	vel   core.Vec2
	r     float64
	color core.Color
}

// pointBulletSpeed scales the velocity a point bullet is created with.
const pointBulletSpeed = 2

// NewPointBullet creates a bullet of radius r at pos.
func NewPointBullet(env Env, pos, vel core.Vec2, r float64) *PointBullet {
	return &PointBullet{body: body{env: env}, pos: pos, vel: vel, r: r, color: core.ColorRed}
}

func (b *PointBullet) Kind() Kind     { return KindPointBullet }
func (b *PointBullet) Pos() core.Vec2 { return b.pos }

func (b *PointBullet) Update(core.InputFrame) {
	b.pos = b.pos.Add(b.vel.Scale(pointBulletSpeed))
	if !b.env.Field.Contains(b.pos) {
		b.Kill()
	}
}

func (b *PointBullet) Collides(p *Player) bool {
	return p.Box().Inflate(-5, -5).IntersectsCircle(b.pos, b.r)
}

func (b *PointBullet) Draw(r core.Renderer) {
	r.Circle(b.pos, b.r, core.ColorWhite, 0)
	w := 1.0
	if b.r > 3 {
		w = 2
	}
	r.Circle(b.pos, b.r, b.color, w)
}

// LineBeam is a static beam across the field that lives for one second.
type LineBeam struct {
	body
	pos    core.Vec2
	dir    core.Vec2
	length float64
	life   *core.Timer
}

// NewLineBeam creates a beam from pos along the unit direction dir.
func NewLineBeam(env Env, pos, dir core.Vec2) *LineBeam {
	return &LineBeam{
		body:   body{env: env},
		pos:    pos,
		dir:    dir,
		length: env.Field.W,
		life:   core.NewTimer(time.Second, env.clock()),
	}
}

func (b *LineBeam) Kind() Kind { return KindLineBeam }

// Segment returns the beam's end points.
func (b *LineBeam) Segment() (core.Vec2, core.Vec2) {
	return b.pos, b.pos.Add(b.dir.Scale(b.length))
}

func (b *LineBeam) Update(core.InputFrame) {
	if b.life.Tick() {
		b.Kill()
	}
}

func (b *LineBeam) Collides(p *Player) bool {
	return p.Box().HitsSegment(b.Segment())
}

func (b *LineBeam) Draw(r core.Renderer) {
	a, c := b.Segment()
	r.Line(a, c, core.ColorWhite, 1)
}

// LineShard is a short moving segment.
type LineShard struct {
	body
	pos    core.Vec2
	vel    core.Vec2
	speed  float64
	length float64
}

// NewLineShard creates a shard at pos. The segment extends vel*length ahead
// of pos and moves vel*speed per tick.
func NewLineShard(env Env, pos, vel core.Vec2, speed, length float64) *LineShard {
	return &LineShard{body: body{env: env}, pos: pos, vel: vel, speed: speed, length: length}
}

func (s *LineShard) Kind() Kind { return KindLineShard }

// Segment returns the shard's end points.
func (s *LineShard) Segment() (core.Vec2, core.Vec2) {
	return s.pos, s.pos.Add(s.vel.Scale(s.length))
}

func (s *LineShard) Update(core.InputFrame) {
	s.pos = s.pos.Add(s.vel.Scale(s.speed))
	if !s.env.Field.Inflate(50, 50).Contains(s.pos) {
		s.Kill()
	}
}

func (s *LineShard) Collides(p *Player) bool {
	return p.Box().HitsSegment(s.Segment())
}

func (s *LineShard) Draw(r core.Renderer) {
	a, c := s.Segment()
	r.Line(a, c, core.ColorBlue, 5)
	r.Line(a, c, core.ColorBrightCyan, 2)
}

// TriangleBullet is a triangle flying point first along its velocity.
type TriangleBullet struct {
	body
	pos   core.Vec2
	vel   core.Vec2
	size  float64
	angle float64
}

// NewTriangleBullet creates a triangle of the given size at pos.
func NewTriangleBullet(env Env, pos, vel core.Vec2, size float64) *TriangleBullet {
	return &TriangleBullet{
		body:  body{env: env},
		pos:   pos,
		vel:   vel,
		size:  size,
		angle: core.Degrees(math.Atan2(vel.Y, vel.X)) + 90,
	}
}

func (b *TriangleBullet) Kind() Kind     { return KindTriangleBullet }
func (b *TriangleBullet) Pos() core.Vec2 { return b.pos }

func (b *TriangleBullet) Update(core.InputFrame) {
	b.pos = b.pos.Add(b.vel)
	if !b.env.Field.Inflate(2*b.size, 2*b.size).Contains(b.pos) {
		b.Kill()
	}
}

func (b *TriangleBullet) Collides(p *Player) bool {
	return triangleHits(p.Box(), core.Triangle(b.pos, b.size, b.angle))
}

func (b *TriangleBullet) Draw(r core.Renderer) {
	pts := core.Triangle(b.pos, b.size, b.angle)
	r.Polygon(pts[:], core.ColorWhite, 0)
	r.Polygon(pts[:], core.ColorRed, 2)
}

// triangleHits tests each triangle edge against the box.
func triangleHits(box core.Box, pts [3]core.Vec2) bool {
	for i := range pts {
		if box.HitsSegment(pts[i], pts[(i+1)%3]) {
			return true
		}
	}
	return false
}
