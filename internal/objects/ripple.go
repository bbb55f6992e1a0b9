package objects

import "github.com/vovakirdan/dimensions/internal/core"

// ClickRipple is an expanding ring left where the mouse clicked.
type ClickRipple struct {
	body
	pos core.Vec2
	r   float64
}

const rippleMax = 100

func NewClickRipple(env Env, pos core.Vec2) *ClickRipple {
	return &ClickRipple{body: body{env: env}, pos: pos}
}

func (c *ClickRipple) Kind() Kind { return KindClickRipple }

// Radius returns the current ring radius.
func (c *ClickRipple) Radius() float64 { return c.r }

func (c *ClickRipple) Update(core.InputFrame) {
	c.r += 5
	if c.r > rippleMax {
		c.r = rippleMax
		c.Kill()
	}
}

func (c *ClickRipple) Draw(r core.Renderer) {
	w := float64(10 - int(c.r)/10 + 1)
	r.Circle(c.pos, c.r, core.ColorWhite, w)
}
