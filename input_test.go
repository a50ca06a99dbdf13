package sprig

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestInputTransitions(t *testing.T) {
	in := NewInput()

	in.update([]ebiten.Key{ebiten.KeySpace})
	if !in.IsKeyPressing(ebiten.KeySpace) || !in.IsKeyPressed(ebiten.KeySpace) {
		t.Fatal("space should be held and just pressed")
	}
	if in.IsKeyReleased(ebiten.KeySpace) {
		t.Fatal("space should not be released")
	}

	in.update([]ebiten.Key{ebiten.KeySpace, ebiten.KeyLeft})
	if in.IsKeyPressed(ebiten.KeySpace) {
		t.Error("held key reported as just pressed on the second frame")
	}
	if !in.IsKeyPressing(ebiten.KeySpace) || !in.IsKeyPressed(ebiten.KeyLeft) {
		t.Error("expected space held and left just pressed")
	}

	in.update([]ebiten.Key{ebiten.KeyLeft})
	if in.IsKeyPressing(ebiten.KeySpace) || !in.IsKeyReleased(ebiten.KeySpace) {
		t.Error("space should be just released")
	}
	if in.IsKeyReleased(ebiten.KeyLeft) {
		t.Error("left is still held")
	}

	in.update(nil)
	if in.IsKeyReleased(ebiten.KeySpace) {
		t.Error("release should only be reported for one frame")
	}
	if !in.IsKeyReleased(ebiten.KeyLeft) || in.IsKeyPressing(ebiten.KeyLeft) {
		t.Error("left should be just released")
	}
}

func TestInputRepress(t *testing.T) {
	in := NewInput()
	in.update([]ebiten.Key{ebiten.KeyA})
	in.update(nil)
	in.update([]ebiten.Key{ebiten.KeyA})
	if !in.IsKeyPressed(ebiten.KeyA) || in.IsKeyReleased(ebiten.KeyA) {
		t.Error("re-pressed key should be just pressed and not released")
	}
}
