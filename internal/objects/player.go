package objects

import (
	"math"

	"github.com/vovakirdan/dimensions/internal/core"
)

// trailFade is how much opacity an afterimage loses per tick.
const trailFade = 35

// Afterimage is one faded copy of the player left behind while moving.
type Afterimage struct {
	Pos   core.Vec2
	Alpha float64
}

// Player is the square the user steers. It dies when anything hits it.
type Player struct {
	body
	pos   core.Vec2
	trail []Afterimage
}

// NewPlayer creates a player centered on pos.
func NewPlayer(env Env, pos core.Vec2) *Player {
	return &Player{body: body{z: LayerActors, env: env}, pos: pos}
}

func (p *Player) Kind() Kind { return KindPlayer }

// Pos returns the player's center.
func (p *Player) Pos() core.Vec2 { return p.pos }

// Box returns the player's hit box.
func (p *Player) Box() core.Box {
	s := p.env.Player.Size
	return core.BoxAt(p.pos, s, s)
}

// Trail returns the live afterimages, oldest first.
func (p *Player) Trail() []Afterimage {
	out := make([]Afterimage, len(p.trail))
	copy(out, p.trail)
	return out
}

// Update moves the player from held directions. Diagonals are normalized
// and the fast action multiplies the speed by the boost factor.
func (p *Player) Update(in core.InputFrame) {
	p.fadeTrail()

	var dir core.Vec2
	if in.IsHeld(core.ActionLeft) {
		dir.X--
	}
	if in.IsHeld(core.ActionRight) {
		dir.X++
	}
	if in.IsHeld(core.ActionUp) {
		dir.Y--
	}
	if in.IsHeld(core.ActionDown) {
		dir.Y++
	}

	cfg := p.env.Player
	speed := cfg.Speed
	if in.IsHeld(core.ActionFast) && cfg.Boost > 0 {
		speed *= cfg.Boost
	}
	if dir.Len() > 0 {
		p.pos = p.pos.Add(dir.Normalize().Scale(speed))
		p.pushTrail(p.pos)
	}

	offset := 5 + math.Floor(cfg.Size/2)
	f := p.env.Field
	p.pos.X = core.ClampF(p.pos.X, f.X+offset, f.Right()-offset)
	p.pos.Y = core.ClampF(p.pos.Y, f.Y+offset, f.Bottom()-offset)
}

func (p *Player) pushTrail(at core.Vec2) {
	limit := p.env.Player.Trail
	if limit <= 0 {
		return
	}
	p.trail = append(p.trail, Afterimage{Pos: at, Alpha: 255})
	if over := len(p.trail) - limit; over > 0 {
		p.trail = append(p.trail[:0], p.trail[over:]...)
	}
}

func (p *Player) fadeTrail() {
	live := p.trail[:0]
	for _, a := range p.trail {
		a.Alpha = core.ClampF(a.Alpha-trailFade, 0, 255)
		if a.Alpha > 1 {
			live = append(live, a)
		}
	}
	p.trail = live
}

func (p *Player) Draw(r core.Renderer) {
	s := p.env.Player.Size
	for _, a := range p.trail {
		c := core.ColorGray
		if a.Alpha >= 128 {
			c = core.ColorBlue
		}
		r.Rect(core.BoxAt(a.Pos, s, s), c, 0)
	}
	r.Rect(p.Box(), core.ColorBrightBlue, 0)
}
