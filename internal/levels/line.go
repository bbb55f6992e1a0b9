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
		ID:    Line,
		Title: "Line",
		Track: audio.TrackLines,
		Next:  Triangle,
		Order: 2,
		Theme: core.ColorAzure,
		Spawn: func(env objects.Env) objects.Entity {
			return objects.NewLineEnemy(env, center(env.Field), LinePlan(env.Field))
		},
	})
}

// LinePlan is the choreography of the second level.
func LinePlan(field core.Box) objects.Plan {
	ray := func(ts ...float64) []schedule.Entry {
		out := make([]schedule.Entry, 0, len(ts))
		for _, t := range ts {
			out = append(out, schedule.Entry{At: t, Action: schedule.Ray{}})
		}
		return out
	}
	chase := func(at, dt, start float64, beats int) []schedule.Entry {
		return stepping(at, dt, start, 20, 5, beats, true)
	}

	attacks := schedule.Concat(
		chase(0, 0.4, 0, 15),
		chase(6, 0.05, 0, 19),
		chase(7, 0.4, 0, 15),
		chase(13, 0.05, 0, 19),
		rings(13, 0.425, 30, 10, 5, 17),
		chase(19.5, 0.05, 0, 19),
		rings(17, 0.425, 30, 10, 5, 24),
		chase(26.5, 0.05, 0, 19),
		rings(34, 0.4, 30, 10, 5, 5),

		chase(36, 0.025, 0, 10),
		chase(37.5, 0.025, 180, 10),
		chase(42.5, 0.025, 0, 10),
		chase(44.5, 0.025, 180, 10),

		ray(47.75, 48, 49),
		chase(49.5, 0.025, 0, 10),
		ray(51),
		chase(51, 0.025, 180, 10),
		ray(52.5),

		rings(55, 0.4, 30, 10, 5, 15),
		ray(61.5, 63.5, 65, 66.75),
		rings(68.5, 0.4, 30, 10, 5, 4),

		[]schedule.Entry{{At: 75, Action: schedule.Drift{}}},

		rings(95.9, 0.425, 45, 10, 5, 15),
		rings(102.3, 0.425, 15, 10, 5, 1),
	)

	in := insets{top: 25, bottom: 25, left: 25, right: 25}
	launches := schedule.Concat(
		[]schedule.Entry{
			launch(27.5, core.V(field.X+150, field.Y+150)),
			launch(29, core.V(field.Right()-150, field.Y+150)),
		},
		edgeWave(field, 31, 0.1, top, 5, in),
		edgeWave(field, 38, 0.1, bottom, 5, in),
		edgeWave(field, 40, 0.1, left, 5, in),
		edgeWave(field, 42, 0.1, right, 5, in),
		edgeWave(field, 43.5, 0.1, top, 2, in),
		edgeWave(field, 44.5, 0.1, bottom, 2, in),
		edgeWave(field, 69.5, 0.1, bottom, 2, in),
		edgeWave(field, 71, 0.4, top, 7, in),
		edgeWave(field, 74, 0.4, bottom, 7, in),
		edgeWave(field, 77, 0.4, left, 7, in),
		edgeWave(field, 80, 0.4, right, 7, in),
		edgeWave(field, 83, 0.2, top, 10, in),
		edgeWave(field, 85.5, 0.2, bottom, 10, in),
		edgeWave(field, 88, 0.2, left, 10, in),
		edgeWave(field, 90.5, 0.2, right, 10, in),
	)

	return objects.Plan{Attacks: attacks, Launches: launches}
}
