package reveal

import "math"

// Rect represents a rectangle in page pixel coordinates using left, top,
// right, bottom edges.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Area returns the area of the rectangle, or 0 for an empty rectangle.
func (r Rect) Area() float64 {
	if r.IsEmpty() {
		return 0
	}
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the overlap of two rectangles and whether they touch at
// all. Edge-adjacent rectangles touch but produce an empty overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	left := math.Max(r.Left, other.Left)
	top := math.Max(r.Top, other.Top)
	right := math.Min(r.Right, other.Right)
	bottom := math.Min(r.Bottom, other.Bottom)
	if left > right || top > bottom {
		return Rect{}, false
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}, true
}

// Expand grows the rectangle by the given edge insets. Negative insets shrink
// it.
func (r Rect) Expand(top, right, bottom, left float64) Rect {
	return Rect{
		Left:   r.Left - left,
		Top:    r.Top - top,
		Right:  r.Right + right,
		Bottom: r.Bottom + bottom,
	}
}

// intersectionRatio computes the fraction of target's area that overlaps
// root. Zero-area targets report 1 when they touch the root.
func intersectionRatio(target, root Rect) (float64, bool) {
	overlap, touching := target.Intersect(root)
	if !touching {
		return 0, false
	}
	area := target.Area()
	if area == 0 {
		return 1, true
	}
	ratio := overlap.Area() / area
	if ratio > 1 {
		ratio = 1
	}
	return ratio, true
}
