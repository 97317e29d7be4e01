package vmath

// Rect is an axis-aligned bounding box in playfield units
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Intersects reports strict overlap on both axes; touching edges do not overlap
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && r.Right() > o.X &&
		r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Clamp restricts v to [lo, hi]; hi wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
