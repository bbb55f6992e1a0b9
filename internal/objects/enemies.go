package objects

import (
	"math"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/schedule"
)

// Plan is the choreography an enemy plays back against the soundtrack.
// Attacks fire bullets and control the enemy; Launches send spawners out.
type Plan struct {
	Attacks  schedule.Schedule
	Launches schedule.Schedule
}

// emitter is the scheduling half every enemy shares.
type emitter struct {
	body
	pos      core.Vec2
	attacks  *schedule.Sequencer
	launches *schedule.Sequencer
}

func newEmitter(env Env, pos core.Vec2, plan Plan) emitter {
	return emitter{
		body:     body{z: LayerActors, env: env},
		pos:      pos,
		attacks:  schedule.NewSequencer(plan.Attacks),
		launches: schedule.NewSequencer(plan.Launches),
	}
}

// Pos returns the enemy's center.
func (em *emitter) Pos() core.Vec2 { return em.pos }

// Cursors returns how far both schedules have advanced.
func (em *emitter) Cursors() (attacks, launches int) {
	return em.attacks.Cursor(), em.launches.Cursor()
}

// play realizes at most one attack and one launch for the current
// soundtrack position and queues whatever they spawn. It reports whether
// anything was spawned. A launch that had to skip missed entries is
// dropped rather than spawning a stale wave.
func (em *emitter) play(realize func(schedule.Action, *Player) []Entity, p *Player) bool {
	clock, ok := em.env.soundtrack()
	if !ok {
		return false
	}
	spawned := false
	if st, ok := em.attacks.Next(clock); ok {
		if kids := realize(st.Entry.Action, p); len(kids) > 0 {
			em.spawn(kids...)
			spawned = true
		}
	}
	if st, ok := em.launches.Next(clock); ok && st.Skipped == 0 {
		if kids := realize(st.Entry.Action, p); len(kids) > 0 {
			em.spawn(kids...)
			spawned = true
		}
	}
	return spawned
}

// wander offsets the position along a clock-driven sine curve.
func (em *emitter) wander(k, amp float64) {
	if amp == 0 {
		return
	}
	t := em.env.seconds()
	em.pos = em.pos.Add(core.V(math.Sin(t*k)*amp, math.Cos(t*k)*amp))
}

func speedOr1(s float64) float64 {
	if s == 0 {
		return 1
	}
	return s
}

// Drift parameters set by a Drift action.
const (
	driftRate = 5
	driftAmp  = 2
)

// PointEnemy fires round bullets and point spreaders.
type PointEnemy struct {
	emitter
	r     float64
	k, k1 float64
}

func NewPointEnemy(env Env, pos core.Vec2, plan Plan) *PointEnemy {
	return &PointEnemy{emitter: newEmitter(env, pos, plan), r: 10}
}

func (e *PointEnemy) Kind() Kind { return KindPointEnemy }

// Radius returns the current pulse radius.
func (e *PointEnemy) Radius() float64 { return e.r }

func (e *PointEnemy) UseAI(p *Player) {
	e.r *= 0.95
	e.wander(e.k, e.k1)
	e.r = core.ClampF(e.r, 10, 20)
	if e.play(e.realize, p) {
		e.r = 20
	}
}

func (e *PointEnemy) realize(a schedule.Action, _ *Player) []Entity {
	switch a := a.(type) {
	case schedule.Burst:
		kids := make([]Entity, 0, len(a.Angles))
		for _, deg := range a.Angles {
			kids = append(kids, NewPointBullet(e.env, e.pos, core.Heading(deg).Scale(speedOr1(a.Speed)), 5))
		}
		return kids
	case schedule.Volley:
		kids := make([]Entity, 0, burstCount)
		for _, deg := range schedule.Spread(burstStep, 0) {
			kids = append(kids, NewPointBullet(e.env, e.pos, core.Heading(deg).Scale(speedOr1(a.Speed)), 5))
		}
		return kids
	case schedule.Launch:
		kids := make([]Entity, 0, len(a.Targets))
		for _, t := range a.Targets {
			kids = append(kids, NewPointSpreader(e.env, e.pos, t))
		}
		return kids
	case schedule.Drift:
		e.k, e.k1 = driftRate, driftAmp
	}
	return nil
}

func (e *PointEnemy) Draw(r core.Renderer) {
	r.Circle(e.pos, e.r, core.ColorWhite, 0)
	r.Circle(e.pos, e.r, core.ColorRed, 2)
}

// LineEnemy fires line shards, line spreaders and rays.
type LineEnemy struct {
	emitter
	r     float64
	k, k1 float64
}

func NewLineEnemy(env Env, pos core.Vec2, plan Plan) *LineEnemy {
	return &LineEnemy{emitter: newEmitter(env, pos, plan), r: 10}
}

func (e *LineEnemy) Kind() Kind { return KindLineEnemy }

// Radius returns the current pulse radius.
func (e *LineEnemy) Radius() float64 { return e.r }

func (e *LineEnemy) UseAI(p *Player) {
	e.r *= 0.95
	e.wander(e.k, e.k1)
	e.r = core.ClampF(e.r, 10, 20)
	if e.play(e.realize, p) {
		e.r = 20
	}
}

func (e *LineEnemy) realize(a schedule.Action, p *Player) []Entity {
	switch a := a.(type) {
	case schedule.Burst:
		kids := make([]Entity, 0, len(a.Angles))
		for _, deg := range a.Angles {
			kids = append(kids, NewLineShard(e.env, e.pos, core.Heading(deg).Scale(speedOr1(a.Speed)), 1, 15))
		}
		return kids
	case schedule.Volley:
		kids := make([]Entity, 0, burstCount)
		for _, deg := range schedule.Spread(burstStep, 0) {
			kids = append(kids, NewLineShard(e.env, e.pos, core.Heading(deg).Scale(speedOr1(a.Speed)), 1, 15))
		}
		return kids
	case schedule.Launch:
		kids := make([]Entity, 0, len(a.Targets))
		for _, t := range a.Targets {
			kids = append(kids, NewLineSpreader(e.env, e.pos, t))
		}
		return kids
	case schedule.Ray:
		// rays do not make the enemy recoil
		if p != nil {
			e.spawn(NewLineRay(e.env, e.pos, p.Pos()))
		}
	case schedule.Drift:
		e.k, e.k1 = driftRate, driftAmp
	}
	return nil
}

func (e *LineEnemy) Draw(r core.Renderer) {
	r.Circle(e.pos, e.r, core.ColorWhite, 0)
	r.Circle(e.pos, e.r, core.ColorBlue, 2)
}

// Triangle enemy size bounds.
const (
	triangleMin = 25
	triangleMax = 50
)

// TriangleEnemy is a rotating triangle firing from its vertices.
// Its body is solid: touching it kills the player.
type TriangleEnemy struct {
	emitter
	size   float64
	angle  float64
	angleK float64
}

func NewTriangleEnemy(env Env, pos core.Vec2, plan Plan) *TriangleEnemy {
	return &TriangleEnemy{emitter: newEmitter(env, pos, plan), size: triangleMax}
}

func (e *TriangleEnemy) Kind() Kind { return KindTriangleEnemy }

// Size returns the current vertex distance.
func (e *TriangleEnemy) Size() float64 { return e.size }

// Angle returns the current rotation in degrees.
func (e *TriangleEnemy) Angle() float64 { return e.angle }

// Spin returns the rotation rate in degrees per tick.
func (e *TriangleEnemy) Spin() float64 { return e.angleK }

// Points returns the triangle's vertices.
func (e *TriangleEnemy) Points() [3]core.Vec2 {
	return core.Triangle(e.pos, e.size, e.angle)
}

func (e *TriangleEnemy) UseAI(p *Player) {
	e.size = core.ClampF(e.size*0.95, triangleMin, triangleMax)
	e.angle = mod360(e.angle + e.angleK)
	if e.play(e.realize, p) {
		e.size = triangleMax
	}
}

func (e *TriangleEnemy) realize(a schedule.Action, _ *Player) []Entity {
	switch a := a.(type) {
	case schedule.Burst:
		kids := make([]Entity, 0, len(a.Angles))
		for _, deg := range a.Angles {
			kids = append(kids, NewTriangleBullet(e.env, e.pos, core.Heading(deg).Scale(speedOr1(a.Speed)), 10))
		}
		return kids
	case schedule.Volley:
		kids := make([]Entity, 0, 3)
		for _, off := range [3]float64{0, 120, 240} {
			deg := off - 90 + e.angle
			kids = append(kids, NewTriangleBullet(e.env, e.pos, core.Heading(deg).Scale(speedOr1(a.Speed)), 15))
		}
		return kids
	case schedule.Launch:
		kids := make([]Entity, 0, len(a.Targets))
		for _, t := range a.Targets {
			kids = append(kids, NewTriangleLauncher(e.env, e.pos, t, 15))
		}
		return kids
	case schedule.Rotate:
		if a.Accelerate {
			e.angleK += 2
		} else {
			e.angleK = 1
		}
	}
	return nil
}

func (e *TriangleEnemy) Collides(p *Player) bool {
	return triangleHits(p.Box(), e.Points())
}

func (e *TriangleEnemy) Draw(r core.Renderer) {
	pts := e.Points()
	r.Polygon(pts[:], core.ColorWhite, 0)
	r.Polygon(pts[:], core.ColorRed, 3)
}
