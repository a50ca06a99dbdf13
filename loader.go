package sprig

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageLoader decodes an image source into a drawable handle and its native
// pixel dimensions. Implementations return ErrResourceNotFound (wrapped) for
// sources that do not exist.
type ImageLoader interface {
	Load(source string) (img *ebiten.Image, width, height int, err error)
}

// FSLoader decodes PNG, JPEG and GIF files from a file system. A nil FS reads
// from the working directory.
type FSLoader struct {
	FS fs.FS
}

// Load implements ImageLoader.
func (l FSLoader) Load(source string) (*ebiten.Image, int, int, error) {
	fsys := l.FS
	if fsys == nil {
		fsys = os.DirFS(".")
	}
	f, err := fsys.Open(source)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, 0, 0, fmt.Errorf("%w: %s", ErrResourceNotFound, source)
		}
		return nil, 0, 0, err
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode: %w", err)
	}
	b := decoded.Bounds()
	return ebiten.NewImageFromImage(decoded), b.Dx(), b.Dy(), nil
}

type cachedImage struct {
	img  *ebiten.Image
	w, h int
}

// CachedLoader memoizes successful loads of another ImageLoader by source, so
// every texture built from the same source shares one decoded image.
// Failed loads are not cached.
type CachedLoader struct {
	next   ImageLoader
	images map[string]cachedImage
}

// NewCachedLoader wraps next with a per-source cache.
func NewCachedLoader(next ImageLoader) *CachedLoader {
	return &CachedLoader{next: next, images: make(map[string]cachedImage)}
}

// Load implements ImageLoader.
func (c *CachedLoader) Load(source string) (*ebiten.Image, int, int, error) {
	if ci, ok := c.images[source]; ok {
		return ci.img, ci.w, ci.h, nil
	}
	img, w, h, err := c.next.Load(source)
	if err != nil {
		return nil, 0, 0, err
	}
	c.images[source] = cachedImage{img: img, w: w, h: h}
	return img, w, h, nil
}

// Len returns the number of cached sources.
func (c *CachedLoader) Len() int {
	return len(c.images)
}
