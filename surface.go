package sprig

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is the rendering collaborator a Sprite draws onto.
//
// The transform uses the column-vector convention
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
//
// and, together with the global alpha, applies to subsequent DrawImage calls
// until it is set again. Sprite.Draw sets both before every draw.
type Surface interface {
	SetTransform(a, b, c, d, tx, ty float64)
	SetGlobalAlpha(alpha float64)
	DrawImage(img *ebiten.Image, sx, sy, sw, sh, dx, dy, dw, dh float64)
}

// Draw issues the sprite's single draw call: the texture is stretched to a
// width×height quad centered on the sprite's center, rotated and flipped
// about that center, at the sprite's opacity. Trimmed textures keep their
// offset inside the untrimmed frame and rotated atlas regions are turned
// back upright. No-op if the sprite is hidden or has no texture.
func (s *Sprite) Draw(surface Surface) {
	if !s.Visible || s.Texture == nil {
		return
	}
	tex := s.Texture
	r := tex.Region
	w, h := s.bounds.Width, s.bounds.Height

	// Native texture pixels to sprite size.
	kx, ky := 1.0, 1.0
	if tw := tex.Width(); tw > 0 {
		kx = w / tw
	}
	if th := tex.Height(); th > 0 {
		ky = h / th
	}
	dx := -w/2 + tex.Offset.X*kx
	dy := -h/2 + tex.Offset.Y*ky

	m := spriteTransform(s)
	if !tex.Rotated {
		surface.SetTransform(m[0], m[1], m[2], m[3], m[4], m[5])
		surface.SetGlobalAlpha(s.Opacity)
		surface.DrawImage(tex.Image,
			r.Position.X, r.Position.Y, r.Width, r.Height,
			dx, dy, r.Width*kx, r.Height*ky)
		return
	}

	// Stored clockwise: stored pixel (u, v) is visual pixel (v, height-u).
	unrotate := [6]float64{0, -1, 1, 0, 0, r.Height}
	place := [6]float64{kx, 0, 0, ky, dx, dy}
	m = multiplyAffine(m, multiplyAffine(place, unrotate))
	surface.SetTransform(m[0], m[1], m[2], m[3], m[4], m[5])
	surface.SetGlobalAlpha(s.Opacity)
	surface.DrawImage(tex.Image,
		r.Position.X, r.Position.Y, r.Height, r.Width,
		0, 0, r.Height, r.Width)
}

// ImageSurface draws onto an *ebiten.Image. An optional view matrix (for
// example from a Camera) is applied after each transform.
type ImageSurface struct {
	target    *ebiten.Image
	view      [6]float64
	transform [6]float64
	alpha     float64
	op        ebiten.DrawImageOptions
}

// NewImageSurface returns a surface targeting img with an identity view.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{
		target:    img,
		view:      identityTransform,
		transform: identityTransform,
		alpha:     1,
	}
}

// Target returns the image being drawn onto.
func (s *ImageSurface) Target() *ebiten.Image {
	return s.target
}

// SetView sets the matrix applied after every sprite transform.
func (s *ImageSurface) SetView(m [6]float64) {
	s.view = m
}

// SetTransform implements Surface.
func (s *ImageSurface) SetTransform(a, b, c, d, tx, ty float64) {
	s.transform = [6]float64{a, b, c, d, tx, ty}
}

// SetGlobalAlpha implements Surface.
func (s *ImageSurface) SetGlobalAlpha(alpha float64) {
	s.alpha = alpha
}

// DrawImage implements Surface. The source rectangle is snapped to whole
// pixels, taken as a SubImage and scaled to the destination rectangle in
// transform space.
func (s *ImageSurface) DrawImage(img *ebiten.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	if img == nil || sw <= 0 || sh <= 0 {
		return
	}
	rect := subImageRect(sx, sy, sw, sh)
	if rect.Empty() {
		return
	}
	src := img.SubImage(rect).(*ebiten.Image)

	s.op.GeoM = drawGeoM(multiplyAffine(s.view, s.transform),
		float64(rect.Dx()), float64(rect.Dy()), dx, dy, dw, dh)
	s.op.ColorScale.Reset()
	s.op.ColorScale.ScaleAlpha(float32(s.alpha))
	s.target.DrawImage(src, &s.op)
}

// subImageRect rounds both edges of a source rectangle, so cells of a sheet
// whose size is not a multiple of the cell count tile without gaps.
func subImageRect(sx, sy, sw, sh float64) image.Rectangle {
	return image.Rect(
		int(math.Round(sx)), int(math.Round(sy)),
		int(math.Round(sx+sw)), int(math.Round(sy+sh)),
	)
}

// drawGeoM maps a sw×sh source image onto the destination rectangle
// (dx, dy, dw, dh) and then through m.
func drawGeoM(m [6]float64, sw, sh, dx, dy, dw, dh float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(dw/sw, dh/sh)
	g.Translate(dx, dy)
	g.Concat(affineGeoM(m))
	return g
}

// affineGeoM converts a [6]float64 transform into an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
