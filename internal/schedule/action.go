// Package schedule turns time-stamped attack choreography into a stream of
// actions driven by the soundtrack clock.
package schedule

import "github.com/vovakirdan/dimensions/internal/core"

// Action is one choreography step. The set of implementations is closed.
type Action interface {
	isAction()
}

// Burst fires one bullet along each listed angle (degrees).
type Burst struct {
	Angles []float64
	Speed  float64
}

// Volley fires along the emitter's own facing directions.
type Volley struct {
	Speed float64
}

// Launch sends one converge-then-burst spawner from the emitter's spawn
// point to each target.
type Launch struct {
	Targets []core.Vec2
}

// Drift enables the emitter's sinusoidal wander.
type Drift struct{}

// Rotate switches self-rotation on, or speeds it up when Accelerate is set.
type Rotate struct {
	Accelerate bool
}

// Ray fires a sweeping ray towards the player.
type Ray struct{}

func (Burst) isAction()  {}
func (Volley) isAction() {}
func (Launch) isAction() {}
func (Drift) isAction()  {}
func (Rotate) isAction() {}
func (Ray) isAction()    {}

// Spread returns the angles offset, offset+step, ... below 360+offset.
// A non-positive step yields no angles.
func Spread(step, offset float64) []float64 {
	if step <= 0 {
		return nil
	}
	n := int(360 / step)
	if float64(n)*step < 360 {
		n++
	}
	angles := make([]float64, 0, n)
	for a := offset; a < 360+offset; a += step {
		angles = append(angles, a)
	}
	return angles
}
