package layout

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectAt creates a Rect at the given point with the given size.
func RectAt(p Point, s Size) Rect {
	return Rect{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Location returns the top-left corner.
func (r Rect) Location() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset returns a new Rect shrunk by the given Edges.
// Width and height saturate at 0.
func (r Rect) Inset(edges Edges) Rect {
	return Rect{
		X:      r.X + edges.Left,
		Y:      r.Y + edges.Top,
		Width:  max(0, r.Width-edges.Horizontal()),
		Height: max(0, r.Height-edges.Vertical()),
	}
}

// Outset returns a new Rect expanded outward by the given Edges.
// Width and height saturate at 0.
func (r Rect) Outset(edges Edges) Rect {
	return Rect{
		X:      r.X - edges.Left,
		Y:      r.Y - edges.Top,
		Width:  max(0, r.Width+edges.Horizontal()),
		Height: max(0, r.Height+edges.Vertical()),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Carve removes a strip of the given thickness from one side of the
// rectangle. It returns the strip and what is left. The thickness is clamped
// to [0, extent] so neither result can be negative.
func (r Rect) Carve(side Side, thickness int) (strip, rest Rect) {
	r = r.normalized()
	switch side {
	case SideTop:
		t := clamp(thickness, 0, r.Height)
		strip = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: t}
		rest = Rect{X: r.X, Y: r.Y + t, Width: r.Width, Height: r.Height - t}
	case SideBottom:
		t := clamp(thickness, 0, r.Height)
		strip = Rect{X: r.X, Y: r.Bottom() - t, Width: r.Width, Height: t}
		rest = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height - t}
	case SideLeft:
		t := clamp(thickness, 0, r.Width)
		strip = Rect{X: r.X, Y: r.Y, Width: t, Height: r.Height}
		rest = Rect{X: r.X + t, Y: r.Y, Width: r.Width - t, Height: r.Height}
	case SideRight:
		t := clamp(thickness, 0, r.Width)
		strip = Rect{X: r.Right() - t, Y: r.Y, Width: t, Height: r.Height}
		rest = Rect{X: r.X, Y: r.Y, Width: r.Width - t, Height: r.Height}
	default:
		rest = r
	}
	return strip, rest
}

// normalized clamps negative dimensions to 0.
func (r Rect) normalized() Rect {
	r.Width = max(0, r.Width)
	r.Height = max(0, r.Height)
	return r
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins.
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
