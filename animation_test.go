package sprig

import "testing"

func threeFrames() []*Texture {
	return []*Texture{
		fakeTexture(0, 0, 10, 10),
		fakeTexture(10, 0, 10, 10),
		fakeTexture(20, 0, 10, 10),
	}
}

func TestAnimationAdvanceSkipsMultipleFrames(t *testing.T) {
	a := NewAnimation(threeFrames(), 0.1, true)
	a.Advance(0.25)
	if a.Index() != 2 {
		t.Errorf("Index = %d, want 2", a.Index())
	}
	assertNearTol(t, "Elapsed", a.Elapsed(), 0.05, 1e-9)
	if a.CurrentTexture().Region.Left() != 20 {
		t.Errorf("CurrentTexture is not frame 2")
	}
}

func TestAnimationLoopWraps(t *testing.T) {
	a := NewAnimation(threeFrames(), 0.1, true)
	a.Advance(0.25)
	a.Advance(0.1)
	if a.Index() != 0 {
		t.Errorf("Index = %d, want 0 after wrapping", a.Index())
	}
	// 7 more steps: (0+7) mod 3 = 1
	a.Advance(0.7)
	if a.Index() != 1 {
		t.Errorf("Index = %d, want 1", a.Index())
	}
	if a.Finished() {
		t.Error("looping animation should never finish")
	}
}

func TestAnimationNonLoopingClampsAndFinishes(t *testing.T) {
	a := NewAnimation(threeFrames(), 0.1, false)
	a.Advance(0.25)
	if a.Index() != 2 || a.Finished() {
		t.Fatalf("Index = %d Finished = %v, want 2 false", a.Index(), a.Finished())
	}
	a.Advance(0.1)
	if a.Index() != 2 {
		t.Errorf("Index = %d, want clamped at 2", a.Index())
	}
	if !a.Finished() {
		t.Error("expected Finished after the last frame was shown for a full duration")
	}
	a.Advance(5)
	if a.Index() != 2 {
		t.Errorf("Index = %d after finishing, want 2", a.Index())
	}
}

func TestAnimationSmallStepsAccumulate(t *testing.T) {
	a := NewAnimation(threeFrames(), 0.5, true)
	a.Advance(0.25)
	if a.Index() != 0 {
		t.Fatalf("Index = %d, want 0", a.Index())
	}
	a.Advance(0.25)
	if a.Index() != 1 {
		t.Errorf("Index = %d, want 1", a.Index())
	}
}

func TestAnimationRestartAndClone(t *testing.T) {
	a := NewAnimation(threeFrames(), 0.1, false)
	a.Advance(1)
	c := a.Clone()
	if c.Index() != 0 || c.Finished() || c.Elapsed() != 0 {
		t.Error("Clone should be rewound")
	}
	if c.NumFrames() != 3 || c.FrameDuration() != 0.1 || c.Looping() {
		t.Error("Clone should keep frames and settings")
	}
	a.Restart()
	if a.Index() != 0 || a.Finished() {
		t.Error("Restart should rewind")
	}
	assertNear(t, "Duration", a.Duration(), 0.30000000000000004)
}

func TestNewAnimationPanics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"no frames", func() { NewAnimation(nil, 0.1, true) }},
		{"zero duration", func() { NewAnimation(threeFrames(), 0, true) }},
		{"negative duration", func() { NewAnimation(threeFrames(), -1, true) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tt.fn()
		})
	}
}

func TestNewAnimationFromSheet(t *testing.T) {
	sheet := fakeTexture(0, 0, 40, 20)
	a := NewAnimationFromSheet(sheet, 2, 4, 0.125, true)
	if a.NumFrames() != 8 {
		t.Fatalf("NumFrames = %d, want 8", a.NumFrames())
	}
	// Frame 5 is row 1, column 1.
	a.Advance(0.625)
	r := a.CurrentTexture().Region
	if r.Left() != 10 || r.Top() != 10 || r.Width != 10 || r.Height != 10 {
		t.Errorf("frame 5 region = %v, want {10 10 10 10}", r.Rect())
	}
}
