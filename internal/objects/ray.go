package objects

import (
	"math"
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
)

const (
	rayGrowth   = 10 // guide line length change per tick
	raySpread   = 30 // half-angle between the guide lines, degrees
	raySweep    = 2  // firing angle change per tick, degrees
	rayLifetime = 3 * time.Second
	rayInterval = 10 * time.Millisecond
)

// LineRay draws two guide lines around the angle towards the player,
// then sweeps a stream of beams from one guide line to the other.
type LineRay struct {
	body
	origin  core.Vec2
	angle   float64 // towards the player
	length  float64
	reach   float64
	dir     float64 // sweep direction, +1 or -1
	firing  float64 // current beam angle
	start   float64
	done    bool
	life    *core.Timer
	cadence *core.Timer
}

// NewLineRay aims a ray from origin at target.
func NewLineRay(env Env, origin, target core.Vec2) *LineRay {
	dir := 1.0
	if env.rng().Intn(2) == 0 {
		dir = -1
	}
	angle := origin.AngleTo(target)
	r := &LineRay{
		body:    body{env: env},
		origin:  origin,
		angle:   angle,
		reach:   env.Field.W,
		dir:     dir,
		firing:  angle + raySpread*dir,
		life:    core.NewTimer(rayLifetime, env.clock()),
		cadence: core.NewTimer(rayInterval, env.clock()),
	}
	r.start = r.firing
	return r
}

func (r *LineRay) Kind() Kind { return KindLineRay }

// Retracting reports whether the ray has stopped firing.
func (r *LineRay) Retracting() bool { return r.done }

// Length returns the current guide line length.
func (r *LineRay) Length() float64 { return r.length }

func (r *LineRay) Update(core.InputFrame) {
	if r.done {
		r.length -= rayGrowth
	} else {
		r.length += rayGrowth
	}
	if r.length > r.reach {
		r.length = r.reach
	}
	if r.length < 0 {
		r.length = 0
		r.Kill()
	}

	if r.life.Tick() {
		r.done = true
	}
	if math.Abs(r.start-r.firing) >= raySpread*2 {
		r.done = true
	}

	if !r.done && r.length >= r.reach {
		r.firing -= r.dir * raySweep
		if r.cadence.Tick() {
			r.spawn(NewLineBeam(r.env, r.origin, core.Heading(r.firing)))
		}
	}
}

func (r *LineRay) Draw(rd core.Renderer) {
	for _, a := range [2]float64{r.angle - raySpread, r.angle + raySpread} {
		d := core.Heading(a)
		if !r.done {
			rd.Line(r.origin, r.origin.Add(d.Scale(r.length)), core.ColorRed, 5)
			continue
		}
		rd.Line(r.origin.Add(d.Scale(r.reach-r.length)), r.origin.Add(d.Scale(r.reach)), core.ColorRed, 3)
	}
}
