// Package objects owns the live entity population of a level: the player,
// enemies, bullets and effects, their update order and their collisions.
package objects

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/dimensions/internal/core"
)

// Kind identifies an entity variant.
type Kind int

const (
	KindPlayer Kind = iota
	KindPointBullet
	KindPointSpreader
	KindLineBeam
	KindLineShard
	KindLineSpreader
	KindLineRay
	KindTriangleBullet
	KindTriangleLauncher
	KindPointEnemy
	KindLineEnemy
	KindTriangleEnemy
	KindClickRipple
)

var kindNames = [...]string{
	KindPlayer:           "player",
	KindPointBullet:      "point-bullet",
	KindPointSpreader:    "point-spreader",
	KindLineBeam:         "line-beam",
	KindLineShard:        "line-shard",
	KindLineSpreader:     "line-spreader",
	KindLineRay:          "line-ray",
	KindTriangleBullet:   "triangle-bullet",
	KindTriangleLauncher: "triangle-launcher",
	KindPointEnemy:       "point-enemy",
	KindLineEnemy:        "line-enemy",
	KindTriangleEnemy:    "triangle-enemy",
	KindClickRipple:      "click-ripple",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Z-order layers. Lower layers update and draw first.
const (
	LayerBullets = 0
	LayerActors  = 1
)

// Entity is anything the runtime updates and draws.
type Entity interface {
	Kind() Kind
	Alive() bool
	Kill()
	Z() int
	Update(in core.InputFrame)
	Draw(r core.Renderer)

	attach(rt *Runtime)
}

// Collider is an entity that can hit the player.
type Collider interface {
	Collides(p *Player) bool
}

// Brain is an entity driven by AI instead of input. The runtime calls
// UseAI in place of Update. p may be nil.
type Brain interface {
	UseAI(p *Player)
}

// body carries the state every entity shares.
type body struct {
	dead bool
	z    int
	rt   *Runtime
	env  Env
}

func (b *body) Alive() bool            { return !b.dead }
func (b *body) Kill()                  { b.dead = true }
func (b *body) Z() int                 { return b.z }
func (b *body) Draw(core.Renderer)     {}
func (b *body) Update(core.InputFrame) {}
func (b *body) attach(rt *Runtime)     { b.rt = rt }

// spawn queues children on the owning runtime, if any.
func (b *body) spawn(es ...Entity) {
	if b.rt != nil {
		b.rt.AddMultiple(es...)
	}
}

// Env is what entities need from the outside world.
type Env struct {
	// Field is the playfield in world units.
	Field core.Box

	// Clock drives lifetimes and wander.
	Clock core.Clock

	// Soundtrack reports the elapsed track position in seconds.
	// ok is false while no track is running.
	Soundtrack func() (seconds float64, ok bool)

	// Rand supplies spread offsets.
	Rand *rand.Rand

	Player PlayerConfig
}

// PlayerConfig tunes the player square.
type PlayerConfig struct {
	Size  float64
	Speed float64
	Boost float64 // speed multiplier while the fast key is held
	Trail int     // afterimage capacity
	Spawn core.Vec2
}

// DefaultEnv returns an 800x600 playfield on the system clock.
func DefaultEnv() Env {
	return Env{
		Field: core.Box{W: 800, H: 600},
		Clock: core.SystemClock{},
		Rand:  rand.New(rand.NewSource(time.Now().UnixNano())),
		Player: PlayerConfig{
			Size:  15,
			Speed: 7,
			Boost: 3,
			Trail: 20,
			Spawn: core.V(400, 450),
		},
	}
}

func (e Env) clock() core.Clock {
	if e.Clock == nil {
		return core.SystemClock{}
	}
	return e.Clock
}

func (e Env) rng() *rand.Rand {
	if e.Rand == nil {
		return rand.New(rand.NewSource(1))
	}
	return e.Rand
}

// soundtrack returns the track position, treating a nil source as absent.
func (e Env) soundtrack() (float64, bool) {
	if e.Soundtrack == nil {
		return 0, false
	}
	return e.Soundtrack()
}

// seconds returns the clock as fractional Unix seconds.
func (e Env) seconds() float64 {
	return float64(e.clock().Now().UnixNano()) / 1e9
}
