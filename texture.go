package sprig

import "github.com/hajimehoshi/ebiten/v2"

// Texture is an image handle plus the sub-rectangle of it that is drawn.
// Textures are immutable once constructed; SubTexture derives new ones.
//
// Atlas textures may be trimmed or rotated. Region always holds the visual
// (unrotated) size of the stored pixels; a rotated region is stored 90
// degrees clockwise, occupying Region.Height×Region.Width in the image.
// A trimmed region sits at Offset inside an untrimmed frame of
// SourceWidth×SourceHeight.
type Texture struct {
	Image  *ebiten.Image
	Region Rectangle

	Rotated bool
	Offset  Vec2

	// SourceWidth and SourceHeight are the untrimmed size. Zero means the
	// region is not trimmed.
	SourceWidth, SourceHeight float64
}

// LoadTexture loads source through loader and returns a texture whose region
// covers the whole image. Failures are returned as *LoadError.
func LoadTexture(loader ImageLoader, source string) (*Texture, error) {
	img, w, h, err := loader.Load(source)
	if err != nil {
		return nil, &LoadError{Source: source, Err: err}
	}
	return &Texture{Image: img, Region: NewRectangle(0, 0, float64(w), float64(h))}, nil
}

// NewTextureFromImage wraps an already decoded image. The region covers the
// whole image.
func NewTextureFromImage(img *ebiten.Image) *Texture {
	b := img.Bounds()
	return &Texture{
		Image:  img,
		Region: NewRectangle(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())),
	}
}

// SubTexture returns a texture sharing t's image whose region is the given
// rectangle, relative to t's region. The result is a plain region: t's
// rotation and trim are not carried over.
func (t *Texture) SubTexture(x, y, width, height float64) *Texture {
	return &Texture{
		Image:  t.Image,
		Region: NewRectangle(t.Region.Position.X+x, t.Region.Position.Y+y, width, height),
	}
}

// Width returns the native width: the untrimmed width when trimmed,
// otherwise the region's.
func (t *Texture) Width() float64 {
	if t.SourceWidth > 0 {
		return t.SourceWidth
	}
	return t.Region.Width
}

// Height returns the native height: the untrimmed height when trimmed,
// otherwise the region's.
func (t *Texture) Height() float64 {
	if t.SourceHeight > 0 {
		return t.SourceHeight
	}
	return t.Region.Height
}
