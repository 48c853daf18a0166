package gamemath

import "math"

// Rect is an axis-aligned rectangle. W may be negative when it describes a
// mirrored sprite source region.
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether two rectangles share any area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Mirrored reports whether the rectangle has a negative width.
func (r Rect) Mirrored() bool {
	return r.W < 0
}

// Abs returns the rectangle covering the same pixels with positive extents.
func (r Rect) Abs() Rect {
	return Rect{X: r.X, Y: r.Y, W: math.Abs(r.W), H: math.Abs(r.H)}
}
