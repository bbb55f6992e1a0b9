// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in world space.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector stays zero.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Dist returns the distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// Rotate returns v rotated by deg degrees (clockwise on screen, y points down).
func (v Vec2) Rotate(deg float64) Vec2 {
	s, c := math.Sincos(Radians(deg))
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Heading returns the unit direction for an angle in degrees.
func Heading(deg float64) Vec2 {
	s, c := math.Sincos(Radians(deg))
	return Vec2{c, s}
}

// AngleTo returns the angle in degrees from v towards o.
func (v Vec2) AngleTo(o Vec2) float64 {
	d := o.Sub(v)
	return Degrees(math.Atan2(d.Y, d.X))
}

// Box is an axis-aligned rectangle in world space.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// BoxAt returns a box of the given size centered on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{b.X + b.W/2, b.Y + b.H/2}
}

// Inflate grows the box by dw, dh in total, keeping its center.
// Negative values shrink it.
func (b Box) Inflate(dw, dh float64) Box {
	return Box{X: b.X - dw/2, Y: b.Y - dh/2, W: b.W + dw, H: b.H + dh}
}

// Contains reports whether p lies inside the box, edges included.
func (b Box) Contains(p Vec2) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// Intersects reports whether two boxes overlap.
func (b Box) Intersects(o Box) bool {
	if b.X >= o.Right() || o.X >= b.Right() {
		return false
	}
	if b.Y >= o.Bottom() || o.Y >= b.Bottom() {
		return false
	}
	return true
}

// IntersectsCircle reports whether a circle overlaps the box.
func (b Box) IntersectsCircle(c Vec2, r float64) bool {
	nx := ClampF(c.X, b.X, b.Right())
	ny := ClampF(c.Y, b.Y, b.Bottom())
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= r*r
}

// ClipSegment clips the segment a-b against the box (Liang-Barsky).
// It reports whether any part of the segment lies inside the box.
func (b Box) ClipSegment(a, c Vec2) (Vec2, Vec2, bool) {
	d := c.Sub(a)
	t0, t1 := 0.0, 1.0
	p := [4]float64{-d.X, d.X, -d.Y, d.Y}
	q := [4]float64{a.X - b.X, b.Right() - a.X, a.Y - b.Y, b.Bottom() - a.Y}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return a, c, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return a, c, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return a, c, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return a.Add(d.Scale(t0)), a.Add(d.Scale(t1)), true
}

// HitsSegment reports whether the segment a-c touches the box.
func (b Box) HitsSegment(a, c Vec2) bool {
	_, _, ok := b.ClipSegment(a, c)
	return ok
}

// Triangle returns the vertices of an equilateral triangle whose vertices
// lie at distance size from center, rotated by angle degrees.
// The first vertex points up at angle 0.
func Triangle(center Vec2, size, angle float64) [3]Vec2 {
	top := Vec2{0, -size}
	var pts [3]Vec2
	for i := range pts {
		pts[i] = top.Rotate(float64(i)*120 + angle).Add(center)
	}
	return pts
}

// MapToRange maps value from [fromLo, fromHi] to [toLo, toHi], clamped to the
// target range. A degenerate source range yields toLo.
func MapToRange(value, fromLo, fromHi, toLo, toHi float64) float64 {
	span := fromHi - fromLo
	if span == 0 {
		return toLo
	}
	return ClampF(toLo+(value-fromLo)*(toHi-toLo)/span, toLo, toHi)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
