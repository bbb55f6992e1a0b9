package core

// Anchor selects which point of a text image Blit positions.
type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorLeft          // vertical center of the left edge
)

// TextImage is a rendered line of text, ready to blit.
type TextImage struct {
	Text  string
	Size  int
	Color Color
}

// Renderer is the drawing surface the simulation issues its shapes to.
// Coordinates are world units. A width of 0 draws the shape filled.
type Renderer interface {
	Polygon(pts []Vec2, c Color, width float64)
	Line(a, b Vec2, c Color, width float64)
	Circle(center Vec2, r float64, c Color, width float64)
	Rect(b Box, c Color, width float64)

	// Text renders s at a nominal point size. Large sizes may be drawn
	// differently by surfaces with a fixed glyph size.
	Text(s string, size int, c Color) TextImage
	Blit(img TextImage, at Vec2, anchor Anchor)

	// Shade darkens the whole surface. 0 leaves it untouched, 255 blacks it out.
	Shade(alpha float64)

	// Bounds returns the world area covered by the surface.
	Bounds() Box
}
