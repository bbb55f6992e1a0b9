package objects

import (
	"sort"

	"github.com/vovakirdan/dimensions/internal/core"
)

// Runtime owns the entity population of the active scene.
//
// Entities added during a tick wait in a pending list and join the
// population at the start of the next tick. Entities leave by marking
// themselves dead; the next tick filters them out.
type Runtime struct {
	env        Env
	objects    []Entity
	pending    []Entity
	player     *Player
	lastPos    core.Vec2
	hasLastPos bool
	collisions bool
}

// NewRuntime creates an empty runtime with collisions enabled.
func NewRuntime(env Env) *Runtime {
	return &Runtime{env: env, collisions: true}
}

// Env returns the environment entities are built with.
func (rt *Runtime) Env() Env {
	return rt.env
}

// SetSoundtrack replaces the track position source.
func (rt *Runtime) SetSoundtrack(src func() (float64, bool)) {
	rt.env.Soundtrack = src
}

// Initialize clears the population and places a fresh player at the
// configured spawn point.
func (rt *Runtime) Initialize() *Player {
	return rt.InitializeAt(rt.env.Player.Spawn)
}

// InitializeAt clears the population and places a fresh player at pos.
func (rt *Runtime) InitializeAt(pos core.Vec2) *Player {
	rt.Clear()
	rt.player = NewPlayer(rt.env, pos)
	rt.player.attach(rt)
	return rt.player
}

// RememberedPosition returns where the player stood when Clear last ran.
func (rt *Runtime) RememberedPosition() (core.Vec2, bool) {
	return rt.lastPos, rt.hasLastPos
}

// Add queues an entity for the next tick.
func (rt *Runtime) Add(e Entity) {
	e.attach(rt)
	rt.pending = append(rt.pending, e)
}

// AddMultiple queues several entities for the next tick.
func (rt *Runtime) AddMultiple(es ...Entity) {
	for _, e := range es {
		rt.Add(e)
	}
}

// Clear drops every entity and the player, remembering its position.
func (rt *Runtime) Clear() {
	rt.ClearObjects()
	if rt.player != nil {
		rt.lastPos = rt.player.Pos()
		rt.hasLastPos = true
	}
	rt.player = nil
}

// ClearObjects drops every entity but keeps the player.
func (rt *Runtime) ClearObjects() {
	rt.objects = nil
	rt.pending = nil
}

// Player returns the player, or nil outside levels.
func (rt *Runtime) Player() *Player {
	return rt.player
}

// Objects returns the committed population, excluding the player.
func (rt *Runtime) Objects() []Entity {
	out := make([]Entity, len(rt.objects))
	copy(out, rt.objects)
	return out
}

// Len returns the committed population size.
func (rt *Runtime) Len() int {
	return len(rt.objects)
}

// Pending returns how many entities wait for the next tick.
func (rt *Runtime) Pending() int {
	return len(rt.pending)
}

// CountKind returns how many committed entities are of kind k.
func (rt *Runtime) CountKind(k Kind) int {
	n := 0
	for _, e := range rt.objects {
		if e.Kind() == k {
			n++
		}
	}
	return n
}

// Collisions reports whether hits kill the player.
func (rt *Runtime) Collisions() bool {
	return rt.collisions
}

// SetCollisions enables or disables hits.
func (rt *Runtime) SetCollisions(on bool) {
	rt.collisions = on
}

// ToggleCollisions flips collision handling and returns the new state.
func (rt *Runtime) ToggleCollisions() bool {
	rt.collisions = !rt.collisions
	return rt.collisions
}

// Tick advances the simulation by one frame.
func (rt *Runtime) Tick(in core.InputFrame) {
	if len(rt.pending) > 0 {
		rt.objects = append(rt.objects, rt.pending...)
		rt.pending = nil
	}

	live := rt.objects[:0]
	for _, e := range rt.objects {
		if e.Alive() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(rt.objects); i++ {
		rt.objects[i] = nil
	}
	rt.objects = live

	sort.SliceStable(rt.objects, func(i, j int) bool {
		return rt.objects[i].Z() < rt.objects[j].Z()
	})

	for _, e := range rt.objects {
		if rt.collisions && rt.player != nil {
			if c, ok := e.(Collider); ok && c.Collides(rt.player) {
				rt.player.Kill()
			}
		}
		if b, ok := e.(Brain); ok {
			b.UseAI(rt.player)
		} else {
			e.Update(in)
		}
	}

	if rt.player != nil {
		rt.player.Update(in)
	}
}

// Draw renders the population in update order, then the player on top.
func (rt *Runtime) Draw(r core.Renderer) {
	for _, e := range rt.objects {
		e.Draw(r)
	}
	if rt.player != nil {
		rt.player.Draw(r)
	}
}
