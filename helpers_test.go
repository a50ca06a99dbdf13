package sprig

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertNearTol(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (±%v)", name, got, want, tol)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// drawCall records one DrawImage together with the state set before it.
type drawCall struct {
	transform      [6]float64
	alpha          float64
	img            *ebiten.Image
	sx, sy, sw, sh float64
	dx, dy, dw, dh float64
}

// recordingSurface is a Surface that records every call.
type recordingSurface struct {
	transform [6]float64
	alpha     float64
	calls     []drawCall
}

func (r *recordingSurface) SetTransform(a, b, c, d, tx, ty float64) {
	r.transform = [6]float64{a, b, c, d, tx, ty}
}

func (r *recordingSurface) SetGlobalAlpha(alpha float64) {
	r.alpha = alpha
}

func (r *recordingSurface) DrawImage(img *ebiten.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	r.calls = append(r.calls, drawCall{
		transform: r.transform, alpha: r.alpha, img: img,
		sx: sx, sy: sy, sw: sw, sh: sh,
		dx: dx, dy: dy, dw: dw, dh: dh,
	})
}

// fakeLoader serves fixed dimensions per source without decoding anything.
type fakeLoader struct {
	sizes map[string][2]int
	errs  map[string]error
	loads int
}

func (f *fakeLoader) Load(source string) (*ebiten.Image, int, int, error) {
	f.loads++
	if err, ok := f.errs[source]; ok {
		return nil, 0, 0, err
	}
	sz, ok := f.sizes[source]
	if !ok {
		return nil, 0, 0, ErrResourceNotFound
	}
	return nil, sz[0], sz[1], nil
}

// fakeTexture returns an imageless texture with a region at (x, y).
func fakeTexture(x, y, w, h float64) *Texture {
	return &Texture{Region: NewRectangle(x, y, w, h)}
}
