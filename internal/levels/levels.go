// Package levels holds the attack choreography of the three dimensions.
// Each level registers itself with the level registry on import.
package levels

import (
	"math/rand"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/schedule"
)

// Level IDs. They double as scene names.
const (
	Point    = "point"
	Line     = "line"
	Triangle = "triangle"
)

// rings fires a full circle every dt seconds, each rotated offset degrees
// further than the last.
func rings(at, dt, step, offset, speed float64, beats int) []schedule.Entry {
	out := make([]schedule.Entry, 0, beats)
	for i := 0; i < beats; i++ {
		out = append(out, schedule.Entry{
			At:     at + dt*float64(i),
			Action: schedule.Burst{Angles: schedule.Spread(step, offset*float64(i)), Speed: speed},
		})
	}
	return out
}

// sweep fires single bullets around the circle, one per angle, where each
// angle's delay is dt per degree.
func sweep(at, dt, step, offset, speed float64) []schedule.Entry {
	angles := schedule.Spread(step, offset)
	out := make([]schedule.Entry, 0, len(angles))
	for _, a := range angles {
		out = append(out, schedule.Entry{
			At:     at + dt*a,
			Action: schedule.Burst{Angles: []float64{a}, Speed: speed},
		})
	}
	return out
}

// stepping fires one bullet per beat, turning step degrees each time.
func stepping(at, dt, start, step, speed float64, beats int, wrap bool) []schedule.Entry {
	out := make([]schedule.Entry, 0, beats)
	for i := 0; i < beats; i++ {
		turn := step * float64(i)
		if wrap {
			turn = float64(int(turn) % 360)
		}
		out = append(out, schedule.Entry{
			At:     at + dt*float64(i),
			Action: schedule.Burst{Angles: []float64{start + turn}, Speed: speed},
		})
	}
	return out
}

func burst(at, speed float64, angles ...float64) schedule.Entry {
	return schedule.Entry{At: at, Action: schedule.Burst{Angles: angles, Speed: speed}}
}

func volley(at, speed float64) schedule.Entry {
	return schedule.Entry{At: at, Action: schedule.Volley{Speed: speed}}
}

func launch(at float64, targets ...core.Vec2) schedule.Entry {
	return schedule.Entry{At: at, Action: schedule.Launch{Targets: targets}}
}

// side names an edge of the playfield.
type side int

const (
	top side = iota
	bottom
	left
	right
)

// insets is how far from each edge an edge wave lands.
type insets [4]float64

// edgeWave sends count spawners one after another to evenly spaced points
// along one edge of the field.
func edgeWave(field core.Box, at, dt float64, s side, count int, in insets) []schedule.Entry {
	out := make([]schedule.Entry, 0, count)
	n := float64(count + 1)
	for i := 0; i < count; i++ {
		k := float64(i + 1)
		var target core.Vec2
		switch s {
		case top:
			target = core.V(field.W*k/n, in[top])
		case bottom:
			target = core.V(field.W*k/n, field.H-in[bottom])
		case left:
			target = core.V(in[left], field.H*k/n)
		case right:
			target = core.V(field.W-in[right], field.H*k/n)
		}
		out = append(out, launch(at+dt*float64(i), target.Add(core.V(field.X, field.Y))))
	}
	return out
}

// frac maps a fraction of the field to a world position.
func frac(field core.Box, fx, fy float64) core.Vec2 {
	return core.V(field.X+field.W*fx, field.Y+field.H*fy)
}

func center(field core.Box) core.Vec2 {
	return field.Center()
}

func randOr(rng *rand.Rand) *rand.Rand {
	if rng == nil {
		return rand.New(rand.NewSource(1))
	}
	return rng
}
