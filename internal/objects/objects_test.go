package objects

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
	"github.com/vovakirdan/dimensions/internal/schedule"
)

// testTrack is a soundtrack position the test moves by hand.
type testTrack struct {
	pos     float64
	playing bool
}

func (t *testTrack) source() (float64, bool) { return t.pos, t.playing }

func newTestEnv() (Env, *core.ManualClock, *testTrack) {
	env := DefaultEnv()
	clk := core.NewManualClock(time.Unix(1_000_000, 0))
	track := &testTrack{playing: true}
	env.Clock = clk
	env.Rand = rand.New(rand.NewSource(7))
	env.Soundtrack = track.source
	return env, clk, track
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestRuntimeEmptyTick(t *testing.T) {
	env, _, _ := newTestEnv()
	rt := NewRuntime(env)
	p := rt.Initialize()
	before := p.Pos()

	rt.Tick(core.NewInputFrame())

	if rt.Len() != 0 || rt.Pending() != 0 {
		t.Errorf("population = %d committed, %d pending, expected none", rt.Len(), rt.Pending())
	}
	if rt.Player() != p || !p.Alive() {
		t.Error("player should be untouched")
	}
	if p.Pos() != before {
		t.Errorf("player moved to %v without input", p.Pos())
	}
}

func TestRuntimeDeferredAdd(t *testing.T) {
	env, _, _ := newTestEnv()
	rt := NewRuntime(env)

	rt.Add(NewPointBullet(env, core.V(100, 100), core.V(0, 0), 5))
	if rt.Len() != 0 || rt.Pending() != 1 {
		t.Fatalf("after Add: %d committed, %d pending, expected 0 and 1", rt.Len(), rt.Pending())
	}

	rt.Tick(core.NewInputFrame())
	if rt.Len() != 1 || rt.Pending() != 0 {
		t.Errorf("after Tick: %d committed, %d pending, expected 1 and 0", rt.Len(), rt.Pending())
	}
}

func TestRuntimePrunesOutOfBounds(t *testing.T) {
	env, _, _ := newTestEnv()
	rt := NewRuntime(env)
	b := NewPointBullet(env, core.V(-50, -50), core.V(0, 0), 5)
	rt.Add(b)

	rt.Tick(core.NewInputFrame())
	if b.Alive() {
		t.Fatal("bullet outside the field should die on its first tick")
	}

	rt.Tick(core.NewInputFrame())
	if rt.Len() != 0 {
		t.Errorf("Len() = %d, expected dead bullet to be pruned", rt.Len())
	}
}

func TestRuntimeCollision(t *testing.T) {
	tests := []struct {
		name       string
		collisions bool
		alive      bool
	}{
		{"collisions on", true, false},
		{"collisions off", false, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, _, _ := newTestEnv()
			rt := NewRuntime(env)
			rt.SetCollisions(tc.collisions)
			p := rt.Initialize()
			b := NewPointBullet(env, p.Pos(), core.V(0, 0), 5)
			rt.Add(b)

			rt.Tick(core.NewInputFrame())

			if p.Alive() != tc.alive {
				t.Errorf("player alive = %v, expected %v", p.Alive(), tc.alive)
			}
			if !b.Alive() || rt.Len() != 1 {
				t.Error("the bullet should stay in the population")
			}
		})
	}
}

func TestRuntimeToggleCollisions(t *testing.T) {
	env, _, _ := newTestEnv()
	rt := NewRuntime(env)
	if !rt.Collisions() {
		t.Fatal("collisions should start enabled")
	}
	if rt.ToggleCollisions() {
		t.Error("ToggleCollisions() = true, expected false")
	}
	if !rt.ToggleCollisions() {
		t.Error("ToggleCollisions() = false, expected true")
	}
}

func TestRuntimeZOrder(t *testing.T) {
	env, _, _ := newTestEnv()
	rt := NewRuntime(env)
	rt.Add(NewPointEnemy(env, core.V(400, 300), Plan{}))
	rt.Add(NewPointBullet(env, core.V(100, 100), core.V(0, 0), 5))
	rt.Add(NewLineEnemy(env, core.V(400, 300), Plan{}))

	rt.Tick(core.NewInputFrame())

	got := rt.Objects()
	expected := []Kind{KindPointBullet, KindPointEnemy, KindLineEnemy}
	if len(got) != len(expected) {
		t.Fatalf("Objects() has %d entries, expected %d", len(got), len(expected))
	}
	for i, k := range expected {
		if got[i].Kind() != k {
			t.Errorf("Objects()[%d] = %v, expected %v", i, got[i].Kind(), k)
		}
	}
}

func TestRuntimeClearRemembersPlayer(t *testing.T) {
	env, _, _ := newTestEnv()
	rt := NewRuntime(env)
	rt.InitializeAt(core.V(120, 130))
	rt.Add(NewPointBullet(env, core.V(100, 100), core.V(0, 0), 5))

	rt.Clear()

	if rt.Player() != nil || rt.Pending() != 0 {
		t.Error("Clear should drop the player and pending entities")
	}
	pos, ok := rt.RememberedPosition()
	if !ok || pos != core.V(120, 130) {
		t.Errorf("RememberedPosition() = %v, %v, expected (120, 130)", pos, ok)
	}
	if p := rt.InitializeAt(pos); p.Pos() != pos {
		t.Errorf("InitializeAt placed player at %v", p.Pos())
	}
}

func TestSpreaderEmitsOnce(t *testing.T) {
	env, _, _ := newTestEnv()
	rt := NewRuntime(env)
	s := NewPointSpreader(env, core.V(400, 300), core.V(401, 300))
	rt.Add(s)

	rt.Tick(core.NewInputFrame())
	if s.Alive() {
		t.Fatal("spreader should die on the tick it arrives")
	}
	if rt.Pending() != burstCount {
		t.Fatalf("Pending() = %d, expected %d children", rt.Pending(), burstCount)
	}

	for i := 0; i < 3; i++ {
		rt.Tick(core.NewInputFrame())
	}
	if n := rt.CountKind(KindPointBullet); n != burstCount {
		t.Errorf("CountKind(point-bullet) = %d, expected %d", n, burstCount)
	}
	if n := rt.CountKind(KindPointSpreader); n != 0 {
		t.Errorf("CountKind(point-spreader) = %d, expected 0", n)
	}
}

func TestSpreadersConverge(t *testing.T) {
	env, _, _ := newTestEnv()

	tests := []struct {
		name   string
		update func() (core.Vec2, bool)
	}{
		{"point", func() (core.Vec2, bool) {
			s := NewPointSpreader(env, core.V(0, 0), core.V(100, 0))
			s.Update(core.NewInputFrame())
			return s.Pos(), s.Alive()
		}},
		{"line", func() (core.Vec2, bool) {
			s := NewLineSpreader(env, core.V(0, 0), core.V(100, 0))
			s.Update(core.NewInputFrame())
			return s.Pos(), s.Alive()
		}},
		{"triangle", func() (core.Vec2, bool) {
			s := NewTriangleLauncher(env, core.V(0, 0), core.V(100, 0), 15)
			s.Update(core.NewInputFrame())
			return s.Pos(), s.Alive()
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos, alive := tc.update()
			if !near(pos.X, 5) || !near(pos.Y, 0) {
				t.Errorf("position after one tick = %v, expected (5, 0)", pos)
			}
			if !alive {
				t.Error("spawner should stay alive until it arrives")
			}
		})
	}
}

func TestPlayerMovement(t *testing.T) {
	diag := 7 / math.Sqrt2

	tests := []struct {
		name     string
		start    core.Vec2
		held     []core.Action
		expected core.Vec2
	}{
		{"no input", core.V(400, 450), nil, core.V(400, 450)},
		{"right", core.V(400, 450), []core.Action{core.ActionRight}, core.V(407, 450)},
		{"up left diagonal", core.V(400, 450), []core.Action{core.ActionUp, core.ActionLeft}, core.V(400-diag, 450-diag)},
		{"boost", core.V(400, 450), []core.Action{core.ActionDown, core.ActionFast}, core.V(400, 471)},
		{"opposite keys cancel", core.V(400, 450), []core.Action{core.ActionLeft, core.ActionRight}, core.V(400, 450)},
		{"clamped at left edge", core.V(14, 300), []core.Action{core.ActionLeft}, core.V(12, 300)},
		{"clamped at bottom edge", core.V(400, 590), []core.Action{core.ActionDown}, core.V(400, 588)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, _, _ := newTestEnv()
			p := NewPlayer(env, tc.start)
			in := core.NewInputFrame()
			for _, a := range tc.held {
				in.Hold(a)
			}
			p.Update(in)
			if !near(p.Pos().X, tc.expected.X) || !near(p.Pos().Y, tc.expected.Y) {
				t.Errorf("Pos() = %v, expected %v", p.Pos(), tc.expected)
			}
		})
	}
}

func TestPlayerTrailCap(t *testing.T) {
	env, _, _ := newTestEnv()
	env.Player.Trail = 3
	p := NewPlayer(env, core.V(100, 300))
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)

	for i := 0; i < 5; i++ {
		p.Update(in)
	}

	trail := p.Trail()
	if len(trail) != 3 {
		t.Fatalf("len(Trail()) = %d, expected 3", len(trail))
	}
	if trail[2].Pos != p.Pos() || trail[2].Alpha != 255 {
		t.Errorf("newest afterimage = %+v, expected current position at full opacity", trail[2])
	}
	if trail[0].Alpha != 255-2*trailFade {
		t.Errorf("oldest afterimage alpha = %v, expected %v", trail[0].Alpha, 255-2*trailFade)
	}

	idle := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		p.Update(idle)
	}
	if n := len(p.Trail()); n != 0 {
		t.Errorf("trail should fade out when standing still, %d left", n)
	}
}

func TestBulletCollisions(t *testing.T) {
	env, _, _ := newTestEnv()
	p := NewPlayer(env, core.V(400, 450))

	tests := []struct {
		name     string
		bullet   Collider
		expected bool
	}{
		{"point bullet on player", NewPointBullet(env, core.V(400, 450), core.Vec2{}, 5), true},
		{"point bullet beside player", NewPointBullet(env, core.V(420, 450), core.Vec2{}, 5), false},
		{"shard across player", NewLineShard(env, core.V(380, 450), core.V(1, 0), 1, 40), true},
		{"shard above player", NewLineShard(env, core.V(380, 400), core.V(1, 0), 1, 40), false},
		{"beam through player", NewLineBeam(env, core.V(0, 450), core.V(1, 0)), true},
		{"beam pointing away", NewLineBeam(env, core.V(0, 450), core.V(-1, 0)), false},
		{"triangle on player", NewTriangleBullet(env, core.V(400, 450), core.V(0, 1), 10), true},
		{"triangle far away", NewTriangleBullet(env, core.V(100, 100), core.V(0, 1), 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.bullet.Collides(p); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLineBeamLifetime(t *testing.T) {
	env, clk, _ := newTestEnv()
	b := NewLineBeam(env, core.V(0, 0), core.V(1, 0))

	clk.Advance(900 * time.Millisecond)
	b.Update(core.NewInputFrame())
	if !b.Alive() {
		t.Fatal("beam died before its lifetime")
	}

	clk.Advance(100 * time.Millisecond)
	b.Update(core.NewInputFrame())
	if b.Alive() {
		t.Error("beam should die after one second")
	}
}

func TestLineShardLeavesField(t *testing.T) {
	env, _, _ := newTestEnv()
	s := NewLineShard(env, core.V(810, 300), core.V(10, 0), 1, 10)

	s.Update(core.NewInputFrame())
	if !s.Alive() {
		t.Fatal("shard inside the margin should survive")
	}
	s.Update(core.NewInputFrame())
	s.Update(core.NewInputFrame())
	if s.Alive() {
		t.Error("shard beyond the margin should die")
	}
}

func TestEnemyPlaysSchedule(t *testing.T) {
	env, _, track := newTestEnv()
	rt := NewRuntime(env)
	e := NewPointEnemy(env, core.V(400, 300), Plan{
		Attacks: schedule.New(
			schedule.Entry{At: 1, Action: schedule.Burst{Angles: []float64{0, 90}, Speed: 1}},
			schedule.Entry{At: 2, Action: schedule.Drift{}},
		),
	})
	rt.Add(e)

	track.pos = 0.5
	rt.Tick(core.NewInputFrame())
	if rt.Pending() != 0 {
		t.Fatalf("Pending() = %d before the first entry, expected 0", rt.Pending())
	}

	track.pos = 1
	rt.Tick(core.NewInputFrame())
	if rt.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2 bullets", rt.Pending())
	}
	if e.Radius() != 20 {
		t.Errorf("Radius() = %v, expected recoil to 20", e.Radius())
	}

	track.pos = 2
	rt.Tick(core.NewInputFrame())
	if rt.Pending() != 0 {
		t.Errorf("Drift should not spawn, Pending() = %d", rt.Pending())
	}
	if !near(e.Radius(), 19) {
		t.Errorf("Radius() = %v, expected decay to 19", e.Radius())
	}
	if a, _ := e.Cursors(); a != 2 {
		t.Errorf("attack cursor = %d, expected 2", a)
	}
}

func TestEnemyWithoutSoundtrack(t *testing.T) {
	env, _, track := newTestEnv()
	track.playing = false
	e := NewPointEnemy(env, core.V(400, 300), Plan{
		Attacks: schedule.New(schedule.Entry{At: 0, Action: schedule.Volley{Speed: 1}}),
	})
	rt := NewRuntime(env)
	rt.Add(e)

	rt.Tick(core.NewInputFrame())

	if rt.Pending() != 0 {
		t.Errorf("Pending() = %d with no soundtrack, expected 0", rt.Pending())
	}
	if a, _ := e.Cursors(); a != 0 {
		t.Errorf("attack cursor = %d, expected 0", a)
	}
}

func TestEnemyDropsSkippedLaunches(t *testing.T) {
	env, _, track := newTestEnv()
	rt := NewRuntime(env)
	e := NewPointEnemy(env, core.V(400, 300), Plan{
		Launches: schedule.New(
			schedule.Entry{At: 1, Action: schedule.Launch{Targets: []core.Vec2{core.V(100, 100)}}},
			schedule.Entry{At: 2, Action: schedule.Launch{Targets: []core.Vec2{core.V(200, 100)}}},
			schedule.Entry{At: 3, Action: schedule.Launch{Targets: []core.Vec2{core.V(300, 100)}}},
		),
	})
	rt.Add(e)

	track.pos = 2.5
	rt.Tick(core.NewInputFrame())
	if rt.Pending() != 0 {
		t.Errorf("Pending() = %d after a jump, expected the stale wave to be dropped", rt.Pending())
	}
	if _, l := e.Cursors(); l != 2 {
		t.Errorf("launch cursor = %d, expected 2", l)
	}

	track.pos = 3
	rt.Tick(core.NewInputFrame())
	if rt.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1 spreader", rt.Pending())
	}
}

func TestLineEnemyRayNeedsPlayer(t *testing.T) {
	plan := Plan{Attacks: schedule.New(schedule.Entry{At: 0, Action: schedule.Ray{}})}

	tests := []struct {
		name       string
		withPlayer bool
		expected   int
	}{
		{"no player", false, 0},
		{"player present", true, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env, _, _ := newTestEnv()
			rt := NewRuntime(env)
			if tc.withPlayer {
				rt.Initialize()
			}
			e := NewLineEnemy(env, core.V(400, 300), plan)
			rt.Add(e)

			rt.Tick(core.NewInputFrame())

			if rt.Pending() != tc.expected {
				t.Errorf("Pending() = %d, expected %d", rt.Pending(), tc.expected)
			}
			if e.Radius() != 10 {
				t.Errorf("Radius() = %v, a ray should not recoil", e.Radius())
			}
		})
	}
}

func TestTriangleEnemyRotation(t *testing.T) {
	env, _, track := newTestEnv()
	e := NewTriangleEnemy(env, core.V(400, 300), Plan{
		Attacks: schedule.New(
			schedule.Entry{At: 1, Action: schedule.Rotate{}},
			schedule.Entry{At: 2, Action: schedule.Rotate{Accelerate: true}},
		),
	})

	track.pos = 1
	e.UseAI(nil)
	if e.Spin() != 1 {
		t.Errorf("Spin() = %v after Rotate, expected 1", e.Spin())
	}

	track.pos = 2
	e.UseAI(nil)
	if e.Spin() != 3 {
		t.Errorf("Spin() = %v after Rotate{Accelerate}, expected 3", e.Spin())
	}
	if e.Angle() != 1 {
		t.Errorf("Angle() = %v, expected 1", e.Angle())
	}
}

func TestTriangleEnemyVolley(t *testing.T) {
	env, _, track := newTestEnv()
	rt := NewRuntime(env)
	e := NewTriangleEnemy(env, core.V(400, 300), Plan{
		Attacks: schedule.New(schedule.Entry{At: 0, Action: schedule.Volley{Speed: 5}}),
	})
	rt.Add(e)
	track.pos = 0

	rt.Tick(core.NewInputFrame())
	if rt.Pending() != 3 {
		t.Fatalf("Pending() = %d, expected one bullet per vertex", rt.Pending())
	}
	if e.Size() != triangleMax {
		t.Errorf("Size() = %v, expected recoil to %v", e.Size(), triangleMax)
	}

	rt.Tick(core.NewInputFrame())
	var up bool
	for _, o := range rt.Objects() {
		if b, ok := o.(*TriangleBullet); ok && near(b.Pos().X, 400) && b.Pos().Y < 300 {
			up = true
		}
	}
	if !up {
		t.Error("expected one bullet heading out of the top vertex")
	}
}

func TestTriangleEnemyCollides(t *testing.T) {
	env, _, _ := newTestEnv()
	e := NewTriangleEnemy(env, core.V(400, 300), Plan{})

	tests := []struct {
		name     string
		pos      core.Vec2
		expected bool
	}{
		{"on the bottom edge", core.V(400, 325), true},
		{"far below", core.V(400, 450), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := e.Collides(NewPlayer(env, tc.pos)); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLineRayLifecycle(t *testing.T) {
	env, clk, _ := newTestEnv()
	rt := NewRuntime(env)
	ray := NewLineRay(env, core.V(400, 300), core.V(600, 300))
	rt.Add(ray)

	beams := 0
	sawRetract := false
	for i := 0; i < 400 && ray.Alive(); i++ {
		clk.Advance(10 * time.Millisecond)
		rt.Tick(core.NewInputFrame())
		beams += rt.Pending()
		if ray.Retracting() {
			sawRetract = true
		}
	}

	if ray.Alive() {
		t.Fatal("ray should retract and die")
	}
	if !sawRetract {
		t.Error("ray never entered its retract phase")
	}
	// 60 degrees of sweep at 2 degrees per tick
	if beams != 30 {
		t.Errorf("ray fired %d beams, expected 30", beams)
	}
}

func TestClickRipple(t *testing.T) {
	env, _, _ := newTestEnv()
	c := NewClickRipple(env, core.V(10, 10))

	for i := 0; i < 20; i++ {
		c.Update(core.NewInputFrame())
	}
	if !c.Alive() || c.Radius() != 100 {
		t.Fatalf("after 20 ticks: alive=%v radius=%v, expected alive at 100", c.Alive(), c.Radius())
	}

	c.Update(core.NewInputFrame())
	if c.Alive() {
		t.Error("ripple should die once it passes its maximum radius")
	}
}

func TestKindString(t *testing.T) {
	if s := KindTriangleLauncher.String(); s != "triangle-launcher" {
		t.Errorf("String() = %q, expected %q", s, "triangle-launcher")
	}
	if s := Kind(99).String(); s != "unknown" {
		t.Errorf("String() = %q, expected unknown", s)
	}
}
