package sprig

// Animation steps through a sequence of texture frames, each shown for
// FrameDuration seconds. Call Advance(dt) each frame, or attach it to a
// Sprite with SetAnimation and let Sprite.Update drive it.
//
// Animations carry playback state; share frames between sprites with Clone.
type Animation struct {
	frames        []*Texture
	frameDuration float64
	elapsed       float64
	index         int
	loop          bool
	finished      bool
}

// NewAnimation creates an animation over frames. Panics if frames is empty
// or frameDuration is not positive.
func NewAnimation(frames []*Texture, frameDuration float64, loop bool) *Animation {
	if len(frames) == 0 {
		panic("sprig: animation needs at least one frame")
	}
	if frameDuration <= 0 {
		panic("sprig: animation frame duration must be positive")
	}
	return &Animation{
		frames:        frames,
		frameDuration: frameDuration,
		loop:          loop,
	}
}

// NewAnimationFromSheet slices tex into a rows×cols grid of equally sized
// cells and uses them as frames, left to right, top to bottom.
func NewAnimationFromSheet(tex *Texture, rows, cols int, frameDuration float64, loop bool) *Animation {
	if rows <= 0 || cols <= 0 {
		panic("sprig: sprite sheet needs at least one row and column")
	}
	cellW := tex.Region.Width / float64(cols)
	cellH := tex.Region.Height / float64(rows)
	frames := make([]*Texture, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			frames = append(frames, tex.SubTexture(float64(c)*cellW, float64(r)*cellH, cellW, cellH))
		}
	}
	return NewAnimation(frames, frameDuration, loop)
}

// NewAnimationFromAtlas builds an animation from named atlas regions, in the
// order given.
func NewAnimationFromAtlas(atlas *Atlas, names []string, frameDuration float64, loop bool) (*Animation, error) {
	frames := make([]*Texture, 0, len(names))
	for _, name := range names {
		tex, err := atlas.Texture(name)
		if err != nil {
			return nil, err
		}
		frames = append(frames, tex)
	}
	return NewAnimation(frames, frameDuration, loop), nil
}

// Advance adds dt seconds to the timeline and steps forward once per full
// frameDuration accumulated, so a large dt can skip several frames. Looping
// animations wrap to the first frame; others stop on the last frame and are
// Finished once it has been shown for a full frameDuration.
func (a *Animation) Advance(dt float64) {
	if a.finished {
		return
	}
	a.elapsed += dt
	for a.elapsed >= a.frameDuration {
		a.elapsed -= a.frameDuration
		switch {
		case a.index+1 < len(a.frames):
			a.index++
		case a.loop:
			a.index = 0
		default:
			a.finished = true
			a.elapsed = 0
			return
		}
	}
}

// CurrentTexture returns the frame at the current index.
func (a *Animation) CurrentTexture() *Texture {
	return a.frames[a.index]
}

// Index returns the current frame index.
func (a *Animation) Index() int { return a.index }

// Elapsed returns the time carried toward the next frame step.
func (a *Animation) Elapsed() float64 { return a.elapsed }

// FrameDuration returns the time each frame is shown.
func (a *Animation) FrameDuration() float64 { return a.frameDuration }

// NumFrames returns the number of frames.
func (a *Animation) NumFrames() int { return len(a.frames) }

// Looping reports whether the animation wraps around.
func (a *Animation) Looping() bool { return a.loop }

// Duration returns the time needed to show every frame once.
func (a *Animation) Duration() float64 {
	return a.frameDuration * float64(len(a.frames))
}

// Finished reports whether a non-looping animation has played through.
// Always false for looping animations.
func (a *Animation) Finished() bool { return a.finished }

// Restart rewinds to the first frame.
func (a *Animation) Restart() {
	a.index = 0
	a.elapsed = 0
	a.finished = false
}

// Clone returns a rewound copy that shares frames but not playback state.
func (a *Animation) Clone() *Animation {
	return &Animation{
		frames:        a.frames,
		frameDuration: a.frameDuration,
		loop:          a.loop,
	}
}
