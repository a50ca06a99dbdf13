package sprig

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsInterval is how often the overlay text is refreshed, in seconds.
const fpsInterval = 0.5

// fpsOverlay displays the current FPS and TPS in the top-left corner.
// It redraws its own small image every fpsInterval seconds.
type fpsOverlay struct {
	img       *ebiten.Image
	sinceDraw float64
	needsDraw bool
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), needsDraw: true}
}

func (f *fpsOverlay) update(dt float64) {
	f.sinceDraw += dt
	if f.sinceDraw >= fpsInterval {
		f.sinceDraw = 0
		f.needsDraw = true
	}
}

func (f *fpsOverlay) draw(screen *ebiten.Image) {
	if f.needsDraw {
		f.needsDraw = false
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	screen.DrawImage(f.img, nil)
}
