package sprig

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// spriteTransform computes the affine matrix a sprite is drawn with.
// Returns [a, b, c, d, tx, ty].
//
// Composition order, applied to a point in sprite-local space whose origin
// is the sprite's center:
//
//	Scale(±1, ±1) -> Rotate(angle) -> Translate(center)
func spriteTransform(s *Sprite) [6]float64 {
	sx, sy := 1.0, 1.0
	if s.Mirrored {
		sx = -1
	}
	if s.Flipped {
		sy = -1
	}
	sin, cos := math.Sincos(s.Angle * math.Pi / 180)
	c := s.Center()
	return [6]float64{
		sx * cos, sx * sin,
		sy * -sin, sy * cos,
		c.X, c.Y,
	}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Transform returns the affine matrix Draw hands to the surface,
// as [a, b, c, d, tx, ty].
func (s *Sprite) Transform() [6]float64 {
	return spriteTransform(s)
}

// WorldToLocal converts a world-space point to the sprite's local space,
// whose origin is the sprite's center and whose axes follow its rotation
// and flips.
func (s *Sprite) WorldToLocal(wx, wy float64) (lx, ly float64) {
	return transformPoint(invertAffine(spriteTransform(s)), wx, wy)
}

// LocalToWorld converts a local-space point to world space.
func (s *Sprite) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(spriteTransform(s), lx, ly)
}

// ContainsPoint reports whether the world-space point lies inside the
// sprite's drawn quad, taking rotation into account. Edges count as inside.
func (s *Sprite) ContainsPoint(x, y float64) bool {
	lx, ly := s.WorldToLocal(x, y)
	return math.Abs(lx) <= s.bounds.Width/2 && math.Abs(ly) <= s.bounds.Height/2
}

// worldAABB computes the axis-aligned bounding box for a rectangle of size (w, h)
// centered on the origin and transformed by the given affine matrix.
func worldAABB(transform [6]float64, w, h float64) Rect {
	hw, hh := w/2, h/2
	x0, y0 := transformPoint(transform, -hw, -hh)
	x1, y1 := transformPoint(transform, hw, -hh)
	x2, y2 := transformPoint(transform, hw, hh)
	x3, y3 := transformPoint(transform, -hw, hh)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// DrawBounds returns the axis-aligned box covering the rotated quad the
// sprite draws.
func (s *Sprite) DrawBounds() Rect {
	return worldAABB(spriteTransform(s), s.bounds.Width, s.bounds.Height)
}
