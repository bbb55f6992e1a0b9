package core

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	glyphFill  = '█'
	bigTextMin = 80
)

// bayer4 is the ordered-dither threshold matrix used by Shade.
var bayer4 = [4][4]float64{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Canvas rasterizes world-space shapes onto a Screen of character cells.
type Canvas struct {
	screen *Screen
	world  Box
	sx, sy float64 // cells per world unit
}

// NewCanvas maps the world box onto the whole screen.
func NewCanvas(s *Screen, world Box) *Canvas {
	c := &Canvas{screen: s, world: world}
	if world.W > 0 {
		c.sx = float64(s.Width()) / world.W
	}
	if world.H > 0 {
		c.sy = float64(s.Height()) / world.H
	}
	return c
}

// Screen returns the underlying cell buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

// Bounds returns the world area covered by the canvas.
func (c *Canvas) Bounds() Box {
	return c.world
}

// ToCell converts a world position to cell coordinates.
func (c *Canvas) ToCell(p Vec2) (int, int) {
	return int(math.Floor((p.X - c.world.X) * c.sx)), int(math.Floor((p.Y - c.world.Y) * c.sy))
}

// ToWorld converts cell coordinates to the world position of the cell center.
func (c *Canvas) ToWorld(x, y int) Vec2 {
	if c.sx == 0 || c.sy == 0 {
		return c.world.Center()
	}
	return Vec2{
		X: c.world.X + (float64(x)+0.5)/c.sx,
		Y: c.world.Y + (float64(y)+0.5)/c.sy,
	}
}

// cellRange returns the cells covering a world box, clipped to the screen.
func (c *Canvas) cellRange(b Box) (x0, y0, x1, y1 int) {
	x0, y0 = c.ToCell(Vec2{b.X, b.Y})
	x1, y1 = c.ToCell(Vec2{b.Right(), b.Bottom()})
	x0 = Clamp(x0, 0, c.screen.Width()-1)
	y0 = Clamp(y0, 0, c.screen.Height()-1)
	x1 = Clamp(x1, 0, c.screen.Width()-1)
	y1 = Clamp(y1, 0, c.screen.Height()-1)
	return
}

func (c *Canvas) plot(p Vec2, r rune, col Color) {
	x, y := c.ToCell(p)
	c.screen.SetCell(x, y, r, col)
}

// fillWhere sets every cell in b whose center satisfies inside.
// When no cell qualifies, the cell under fallback is set instead so small
// shapes never vanish.
func (c *Canvas) fillWhere(b Box, col Color, fallback Vec2, inside func(Vec2) bool) {
	x0, y0, x1, y1 := c.cellRange(b)
	hit := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if inside(c.ToWorld(x, y)) {
				c.screen.SetCell(x, y, glyphFill, col)
				hit = true
			}
		}
	}
	if !hit {
		c.plot(fallback, glyphFill, col)
	}
}

// lineGlyph picks a box-drawing rune for a thin stroke of the given slope in cell space.
func lineGlyph(dx, dy float64, width float64) rune {
	if width >= 3 {
		return glyphFill
	}
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady*2 < adx:
		return '─'
	case adx*2 < ady:
		return '│'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// Line draws a segment.
func (c *Canvas) Line(a, b Vec2, col Color, width float64) {
	ax, ay := (a.X-c.world.X)*c.sx, (a.Y-c.world.Y)*c.sy
	bx, by := (b.X-c.world.X)*c.sx, (b.Y-c.world.Y)*c.sy
	dx, dy := bx-ax, by-ay
	glyph := lineGlyph(dx, dy, width)

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps > 4*(c.screen.Width()+c.screen.Height()) {
		// clip absurdly long segments to the visible area first
		if p0, p1, ok := c.world.Inflate(2/c.sx, 2/c.sy).ClipSegment(a, b); ok {
			c.Line(p0, p1, col, width)
		}
		return
	}
	if steps == 0 {
		c.screen.SetCell(int(math.Floor(ax)), int(math.Floor(ay)), glyph, col)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c.screen.SetCell(int(math.Floor(ax+dx*t)), int(math.Floor(ay+dy*t)), glyph, col)
	}
}

// Polygon draws a closed polygon.
func (c *Canvas) Polygon(pts []Vec2, col Color, width float64) {
	if len(pts) == 0 {
		return
	}
	if width > 0 {
		for i := range pts {
			c.Line(pts[i], pts[(i+1)%len(pts)], col, width)
		}
		return
	}

	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	var centroid Vec2
	for _, p := range pts {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		centroid = centroid.Add(p)
	}
	centroid = centroid.Scale(1 / float64(len(pts)))
	c.fillWhere(Box{minX, minY, maxX - minX, maxY - minY}, col, centroid, func(p Vec2) bool {
		return pointInPolygon(p, pts)
	})
}

// Circle draws a disc or a ring.
func (c *Canvas) Circle(center Vec2, r float64, col Color, width float64) {
	if r <= 0 {
		return
	}
	if width > 0 {
		n := int(math.Ceil(2*math.Pi*r*math.Max(c.sx, c.sy))) + 8
		for i := 0; i < n; i++ {
			p := center.Add(Heading(float64(i) * 360 / float64(n)).Scale(r))
			c.plot(p, glyphFill, col)
		}
		return
	}
	b := BoxAt(center, 2*r, 2*r)
	c.fillWhere(b, col, center, func(p Vec2) bool {
		return p.Dist(center) <= r
	})
}

// Rect draws a box.
func (c *Canvas) Rect(b Box, col Color, width float64) {
	if width > 0 {
		tl, tr := Vec2{b.X, b.Y}, Vec2{b.Right(), b.Y}
		bl, br := Vec2{b.X, b.Bottom()}, Vec2{b.Right(), b.Bottom()}
		c.Line(tl, tr, col, width)
		c.Line(bl, br, col, width)
		c.Line(tl, bl, col, width)
		c.Line(tr, br, col, width)
		return
	}
	c.fillWhere(b, col, b.Center(), b.Contains)
}

// Text renders s. Sizes from bigTextMin up are drawn as spaced capitals.
func (c *Canvas) Text(s string, size int, col Color) TextImage {
	if size >= bigTextMin {
		s = strings.Join(strings.Split(strings.ToUpper(s), ""), " ")
	}
	return TextImage{Text: s, Size: size, Color: col}
}

// Blit writes a text image at a world position.
func (c *Canvas) Blit(img TextImage, at Vec2, anchor Anchor) {
	x, y := c.ToCell(at)
	if anchor == AnchorCenter {
		x -= utf8.RuneCountInString(img.Text) / 2
	}
	c.screen.DrawText(x, y, img.Text, img.Color)
}

// Shade blanks a dithered share of the cells proportional to alpha.
func (c *Canvas) Shade(alpha float64) {
	if alpha <= 0 {
		return
	}
	for y := 0; y < c.screen.Height(); y++ {
		for x := 0; x < c.screen.Width(); x++ {
			if alpha >= (bayer4[y%4][x%4]+0.5)*16 {
				c.screen.SetCell(x, y, ' ', ColorBlack)
			}
		}
	}
}

// pointInPolygon is the even-odd ray casting test.
func pointInPolygon(p Vec2, pts []Vec2) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				in = !in
			}
		}
		j = i
	}
	return in
}
