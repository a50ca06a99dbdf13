package sprig

// Rectangle is an axis-aligned box whose top-left corner is a reference to a
// position owned elsewhere. A Sprite's bounds point at the sprite's own
// Position, so moving the sprite moves its bounds with no bookkeeping.
//
// The zero value has no position; use NewRectangle or a Sprite's Bounds.
type Rectangle struct {
	Position *Vec2
	Width    float64
	Height   float64
}

// NewRectangle returns a rectangle that owns a freshly allocated corner at
// (x, y). Used for texture regions, which are independent of any sprite.
func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{Position: &Vec2{X: x, Y: y}, Width: width, Height: height}
}

// SetSize updates the width and height.
func (r *Rectangle) SetSize(width, height float64) {
	r.Width = width
	r.Height = height
}

// Left returns the x coordinate of the left edge.
func (r Rectangle) Left() float64 { return r.Position.X }

// Right returns the x coordinate of the right edge.
func (r Rectangle) Right() float64 { return r.Position.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rectangle) Top() float64 { return r.Position.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rectangle) Bottom() float64 { return r.Position.Y + r.Height }

// Center returns the center point.
func (r Rectangle) Center() Vec2 {
	return Vec2{X: r.Position.X + r.Width/2, Y: r.Position.Y + r.Height/2}
}

// Rect returns a value snapshot of the rectangle.
func (r Rectangle) Rect() Rect {
	return Rect{X: r.Position.X, Y: r.Position.Y, Width: r.Width, Height: r.Height}
}

// Overlaps reports whether r and other intersect on both axes.
// Comparisons are strict: rectangles that only share an edge do not overlap.
func (r Rectangle) Overlaps(other Rectangle) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}

// MinimumTranslationVector returns the smallest axis-aligned offset that,
// added to r's position, moves r out of other. Candidates are checked in the
// order left, right, up, down and the first smallest one wins.
//
// Returns the zero vector when the rectangles do not overlap.
func (r Rectangle) MinimumTranslationVector(other Rectangle) Vec2 {
	if !r.Overlaps(other) {
		return Vec2{}
	}
	candidates := [4]Vec2{
		{X: other.Left() - r.Right()},
		{X: other.Right() - r.Left()},
		{Y: other.Top() - r.Bottom()},
		{Y: other.Bottom() - r.Top()},
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Length() < best.Length() {
			best = c
		}
	}
	return best
}
