package sprig

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input holds the keyboard state for the current frame. Game samples it once
// per Update before calling the user's update hook.
type Input struct {
	down         map[ebiten.Key]bool
	justPressed  map[ebiten.Key]bool
	justReleased map[ebiten.Key]bool
	keyBuf       []ebiten.Key
}

// NewInput returns an Input with no keys held.
func NewInput() *Input {
	return &Input{
		down:         make(map[ebiten.Key]bool),
		justPressed:  make(map[ebiten.Key]bool),
		justReleased: make(map[ebiten.Key]bool),
	}
}

// Sample reads the keys currently held from Ebitengine.
func (in *Input) Sample() {
	in.keyBuf = inpututil.AppendPressedKeys(in.keyBuf[:0])
	in.update(in.keyBuf)
}

// update replaces the held set with pressed and derives the per-frame
// transitions from the previous held set.
func (in *Input) update(pressed []ebiten.Key) {
	clear(in.justPressed)
	clear(in.justReleased)

	for k := range in.down {
		in.justReleased[k] = true
	}
	for _, k := range pressed {
		if in.justReleased[k] {
			delete(in.justReleased, k)
		} else {
			in.justPressed[k] = true
		}
	}

	clear(in.down)
	for _, k := range pressed {
		in.down[k] = true
	}
}

// IsKeyPressing reports whether k is held this frame.
func (in *Input) IsKeyPressing(k ebiten.Key) bool {
	return in.down[k]
}

// IsKeyPressed reports whether k went down this frame.
func (in *Input) IsKeyPressed(k ebiten.Key) bool {
	return in.justPressed[k]
}

// IsKeyReleased reports whether k went up this frame.
func (in *Input) IsKeyReleased(k ebiten.Key) bool {
	return in.justReleased[k]
}
