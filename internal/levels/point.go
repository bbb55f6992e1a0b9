package levels

import (
	"github.com/vovakirdan/dimensions/internal/audio"
	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/objects"
	"github.com/vovakirdan/dimensions/internal/registry"
	"github.com/vovakirdan/dimensions/internal/schedule"
)

func init() {
	registry.Register(registry.Level{
		ID:    Point,
		Title: "Point",
		Track: audio.TrackPoints,
		Next:  Line,
		Order: 1,
		Theme: core.ColorSky,
		Spawn: func(env objects.Env) objects.Entity {
			return objects.NewPointEnemy(env, center(env.Field), PointPlan(env.Field))
		},
	})
}

// PointPlan is the choreography of the first level.
func PointPlan(field core.Box) objects.Plan {
	var attacks []schedule.Entry
	for i, t := range []float64{0.1, 2, 3.7, 5.3, 7.5, 9, 11, 13} {
		offset := 45.0
		if i%2 == 1 {
			offset = 0
		}
		attacks = append(attacks, burst(t, 0, schedule.Spread(90, offset)...))
	}

	groups := [][]schedule.Entry{
		attacks,
		sweep(14, 0.001, 8, 0, 3),
		rings(15, 0.9, 30, 5, 1, 8),
		rings(22, 1, 15, 5, 1, 7),
		rings(29.5, 0.4, 30, 0, 3, 1),
		sweep(30.5, 0.002, 20, 0, 2),
		rings(32, 0.4, 30, 0, 3, 1),
		sweep(32.5, 0.002, 20, 0, 2),
		rings(33.5, 0.4, 30, 0, 3, 1),
		sweep(34.5, 0.002, 20, 0, 2),
		rings(35, 0.4, 30, 10, 3, 6),
		rings(35.5, 1, 45, 25, 3, 9),
		rings(44, 0.1, 45, 5, 3, 60),
		rings(51.5, 0.1, 45, -5, 3, 60),
		{{At: 88, Action: schedule.Drift{}}},
		rings(88, 1, 90, 25, 2, 8),
	}

	// four call-and-response pairs, each answer a little faster
	for i, answer := range []float64{3, 3.25, 3.5, 4} {
		t := 96 + 1.75*float64(i)
		groups = append(groups,
			[]schedule.Entry{burst(t, 3, schedule.Spread(30, 10)...)},
			sweep(t+1, 0.002, 36, 5, answer),
		)
	}

	groups = append(groups,
		rings(118, 0.9, 30, 10, 3, 9),
		sweep(126.5, 0.002, 36, 5, 4),
	)
	for _, t := range []float64{127.5, 129.5, 131.5} {
		groups = append(groups,
			[]schedule.Entry{burst(t, 3, schedule.Spread(30, 10)...)},
			sweep(t+0.75, 0.002, 36, 5, 4),
		)
	}
	groups = append(groups,
		rings(133.5, 1.75, 30, 10, 5, 8),
		rings(147, 1, 45, 15, 3, 5),
		// past the end of the track; only reached when a track is skipped
		[]schedule.Entry{volley(1000, 0), volley(1000, 0)},
	)

	return objects.Plan{
		Attacks:  schedule.Concat(groups...),
		Launches: pointLaunches(field),
	}
}

func pointLaunches(field core.Box) schedule.Schedule {
	corners := []core.Vec2{
		frac(field, 0.25, 0.25), frac(field, 0.75, 0.25), frac(field, 0.75, 0.75), frac(field, 0.25, 0.75),
	}
	edges := []core.Vec2{
		frac(field, 0.5, 0.25), frac(field, 0.75, 0.5), frac(field, 0.5, 0.75), frac(field, 0.25, 0.5),
	}
	both := append(append([]core.Vec2{}, corners...), edges...)

	repeat := func(start, dt float64, beats int, targets []core.Vec2) []schedule.Entry {
		out := make([]schedule.Entry, 0, beats)
		for i := 0; i < beats; i++ {
			out = append(out, launch(start+dt*float64(i), targets...))
		}
		return out
	}

	in := insets{top: 50, bottom: 25, left: 25, right: 25}
	return schedule.Concat(
		repeat(59, 1.8, 4, corners),
		repeat(59+1.8*4+0.1, 1.8, 4, edges),
		repeat(74, 1.8, 8, both),
		[]schedule.Entry{
			launch(103, frac(field, 0.25, 0.25), frac(field, 0.5, 0.25), frac(field, 0.75, 0.25)),
			launch(105, frac(field, 0.25, 0.75), frac(field, 0.5, 0.75), frac(field, 0.75, 0.75)),
			launch(107, frac(field, 0.25, 0.25), frac(field, 0.25, 0.5), frac(field, 0.25, 0.75)),
			launch(109, frac(field, 0.75, 0.25), frac(field, 0.75, 0.5), frac(field, 0.75, 0.75)),
		},
		edgeWave(field, 112, 0.1, top, 7, in),
		edgeWave(field, 113.7, 0.1, bottom, 7, in),
		edgeWave(field, 115.4, 0.1, left, 7, in),
		edgeWave(field, 117.1, 0.1, right, 7, in),
	)
}
