package levels

import (
	"math/rand"

	"github.com/vovakirdan/dimensions/internal/audio"
	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/objects"
	"github.com/vovakirdan/dimensions/internal/registry"
	"github.com/vovakirdan/dimensions/internal/schedule"
)

func init() {
	registry.Register(registry.Level{
		ID:        Triangle,
		Title:     "Triangle",
		Track:     audio.TrackTriangles,
		Order:     3,
		FadeEarly: 0.5,
		Theme:     core.ColorAzure,
		Spawn: func(env objects.Env) objects.Entity {
			return objects.NewTriangleEnemy(env, center(env.Field), TrianglePlan(env.Field, env.Rand))
		},
	})
}

// TrianglePlan is the choreography of the last level. The spiral waves
// start from a random angle drawn from rng.
func TrianglePlan(field core.Box, rng *rand.Rand) objects.Plan {
	rng = randOr(rng)

	// spiral fires one bullet per beat, each step degrees further round,
	// from a start jittered by up to jitter degrees.
	spiral := func(at, dt, step, speed float64, beats, jitter int) []schedule.Entry {
		start := 0.0
		if jitter > 0 {
			start = float64(rng.Intn(2*jitter+1) - jitter)
		}
		return stepping(at, dt, start, step, speed, beats, false)
	}

	groups := [][]schedule.Entry{
		rings(0, 0.9, 45, 30, 3, 2),
		rings(2, 0.9, 45, 30, 3, 2),
		rings(4, 0.9, 45, 30, 3, 2),
		rings(6, 0.9, 45, 30, 3, 2),
		rings(8, 0.9, 30, 30, 3, 2),
		rings(10, 0.9, 30, 30, 3, 2),
		rings(12, 0.9, 45, 30, 3, 2),
		rings(14, 0.9, 45, 30, 3, 2),
		{
			burst(16, 5, -90),
			burst(16.75, 6, 30),
			burst(16.9, 6, 150),
		},
		spiral(17.5, 0.05, 30, 3, 10, 0),
		{volley(19, 5)},
	}
	for t := 20.0; t <= 30; t += 2 {
		groups = append(groups, spiral(t, 0.02, 20, 7, 42, 15))
	}
	for t := 32.0; t <= 38; t += 2 {
		groups = append(groups, spiral(t, 0.02, -20, 7, 42, 15))
	}

	groups = append(groups, []schedule.Entry{{At: 48, Action: schedule.Rotate{}}})
	for _, t := range []float64{50, 52, 54, 56} {
		groups = append(groups, []schedule.Entry{volley(t, 5)})
	}
	groups = append(groups, []schedule.Entry{{At: 56.25, Action: schedule.Rotate{Accelerate: true}}})
	for _, t := range []float64{58, 60, 62, 64, 66} {
		groups = append(groups, []schedule.Entry{volley(t, 7)})
	}
	groups = append(groups,
		rings(68, 0.1, 120, 10, 5, 70),
		[]schedule.Entry{volley(76, 7), volley(77, 7)},
	)

	in := insets{top: 50, bottom: 50, left: 50, right: 50}
	launches := schedule.Concat(
		edgeWave(field, 40, 0.2, top, 5, in),
		edgeWave(field, 42, 0.2, bottom, 5, in),
		edgeWave(field, 44, 0.2, left, 5, in),
		edgeWave(field, 46, 0.2, right, 5, in),
	)

	return objects.Plan{Attacks: schedule.Concat(groups...), Launches: launches}
}
