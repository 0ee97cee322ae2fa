package layout

import "math"

// Unbounded marks a proposed dimension with no constraint. Measuring against
// an unbounded width never wraps a flow and sizes Percent tracks to content.
const Unbounded = math.MaxInt32

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// NewSize creates a Size with the given dimensions.
func NewSize(width, height int) Size {
	return Size{Width: width, Height: height}
}

// Max returns the per-dimension maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{Width: max(s.Width, other.Width), Height: max(s.Height, other.Height)}
}

// Add returns s grown by the given Edges.
func (s Size) Add(edges Edges) Size {
	return Size{Width: grow(s.Width, edges.Horizontal()), Height: grow(s.Height, edges.Vertical())}
}

// Sub returns s shrunk by the given Edges, saturating at 0.
func (s Size) Sub(edges Edges) Size {
	return Size{Width: shrink(s.Width, edges.Horizontal()), Height: shrink(s.Height, edges.Vertical())}
}

func (s Size) normalized() Size {
	return Size{Width: max(0, s.Width), Height: max(0, s.Height)}
}

// shrink subtracts by from v, leaving Unbounded untouched.
func shrink(v, by int) int {
	if v >= Unbounded {
		return Unbounded
	}
	return max(0, v-by)
}

// grow adds by to v, leaving Unbounded untouched.
func grow(v, by int) int {
	if v >= Unbounded {
		return Unbounded
	}
	return max(0, v+by)
}
