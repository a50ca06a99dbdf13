package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// --- Tween actions ---

// tweenAction eases a progress value from 0 to 1 over its duration and
// hands each frame's previous and new progress to step. Relative actions
// apply the difference, so several of them compose additively; absolute
// actions interpolate from the state captured by start.
type tweenAction struct {
	tween    *gween.Tween
	duration float32
	progress float64
	started  bool
	start    func(s *Sprite)
	step     func(s *Sprite, from, to float64)
}

func newTweenAction(duration float64, fn ease.TweenFunc, start func(*Sprite), step func(*Sprite, float64, float64)) *tweenAction {
	if fn == nil {
		fn = ease.Linear
	}
	d := float32(duration)
	return &tweenAction{
		tween:    gween.New(0, 1, d, fn),
		duration: d,
		start:    start,
		step:     step,
	}
}

// Apply implements Action.
func (t *tweenAction) Apply(s *Sprite, dt float64) bool {
	if !t.started {
		t.started = true
		if t.start != nil {
			t.start(s)
		}
	}
	next := 1.0
	finished := true
	if t.duration > 0 {
		val, done := t.tween.Update(float32(dt))
		if !done {
			next = float64(val)
			finished = false
		}
	}
	t.step(s, t.progress, next)
	t.progress = next
	return finished
}

// Reset implements Resetter.
func (t *tweenAction) Reset() {
	t.tween.Reset()
	t.progress = 0
	t.started = false
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// MoveBy moves the sprite by (dx, dy) over duration seconds. A nil easing
// function is linear.
func MoveBy(dx, dy, duration float64, fn ease.TweenFunc) Action {
	return newTweenAction(duration, fn, nil, func(s *Sprite, from, to float64) {
		s.MoveBy(dx*(to-from), dy*(to-from))
	})
}

// MoveTo moves the sprite's top-left corner to (x, y) over duration seconds,
// starting from wherever it is when the action first runs.
func MoveTo(x, y, duration float64, fn ease.TweenFunc) Action {
	var origin Vec2
	return newTweenAction(duration, fn,
		func(s *Sprite) { origin = s.Position },
		func(s *Sprite, _, to float64) {
			s.SetPosition(lerp(origin.X, x, to), lerp(origin.Y, y, to))
		})
}

// RotateBy rotates the sprite by degrees over duration seconds.
func RotateBy(degrees, duration float64, fn ease.TweenFunc) Action {
	return newTweenAction(duration, fn, nil, func(s *Sprite, from, to float64) {
		s.RotateBy(degrees * (to - from))
	})
}

// RotateTo rotates the sprite to degrees over duration seconds.
func RotateTo(degrees, duration float64, fn ease.TweenFunc) Action {
	var origin float64
	return newTweenAction(duration, fn,
		func(s *Sprite) { origin = s.Angle },
		func(s *Sprite, _, to float64) { s.SetAngle(lerp(origin, degrees, to)) })
}

// FadeTo changes the sprite's opacity to opacity over duration seconds.
func FadeTo(opacity, duration float64, fn ease.TweenFunc) Action {
	var origin float64
	return newTweenAction(duration, fn,
		func(s *Sprite) { origin = s.Opacity },
		func(s *Sprite, _, to float64) { s.Opacity = lerp(origin, opacity, to) })
}

// FadeOut fades the sprite to fully transparent over duration seconds.
func FadeOut(duration float64) Action {
	return FadeTo(0, duration, ease.Linear)
}

// ResizeTo changes the sprite's size to width×height over duration seconds.
func ResizeTo(width, height, duration float64, fn ease.TweenFunc) Action {
	var w0, h0 float64
	return newTweenAction(duration, fn,
		func(s *Sprite) { w0, h0 = s.Size() },
		func(s *Sprite, _, to float64) { s.SetSize(lerp(w0, width, to), lerp(h0, height, to)) })
}

// --- Instant and waiting actions ---

type doAction struct {
	fn func(*Sprite)
}

func (a doAction) Apply(s *Sprite, _ float64) bool {
	a.fn(s)
	return true
}

func (doAction) Reset() {}

// Do calls fn once and finishes in the same frame.
func Do(fn func(s *Sprite)) Action {
	return doAction{fn: fn}
}

// Show makes the sprite visible.
func Show() Action { return Do(func(s *Sprite) { s.SetVisible(true) }) }

// Hide makes the sprite invisible.
func Hide() Action { return Do(func(s *Sprite) { s.SetVisible(false) }) }

// Destroy raises the sprite's destroy flag.
func Destroy() Action { return Do((*Sprite).Destroy) }

type delayAction struct {
	duration float64
	elapsed  float64
}

func (a *delayAction) Apply(_ *Sprite, dt float64) bool {
	a.elapsed += dt
	return a.elapsed >= a.duration
}

func (a *delayAction) Reset() { a.elapsed = 0 }

// Delay does nothing for duration seconds.
func Delay(duration float64) Action {
	return &delayAction{duration: duration}
}

type animateOnceAction struct{}

func (animateOnceAction) Apply(s *Sprite, _ float64) bool {
	return s.animation == nil || s.animation.Finished()
}

func (animateOnceAction) Reset() {}

// AnimateOnce waits until the sprite's animation has finished. Finishes
// immediately if the sprite has no animation. Pair with a non-looping
// animation and Sequence to act when it ends.
func AnimateOnce() Action {
	return animateOnceAction{}
}

// --- Composite actions ---

type sequenceAction struct {
	actions []Action
	index   int
}

func (a *sequenceAction) Apply(s *Sprite, dt float64) bool {
	if a.index >= len(a.actions) {
		return true
	}
	if a.actions[a.index].Apply(s, dt) {
		a.index++
	}
	return a.index >= len(a.actions)
}

func (a *sequenceAction) Reset() {
	a.index = 0
	for _, inner := range a.actions {
		resetAction(inner)
	}
}

// Sequence runs actions one after another. At most one inner action runs
// per frame; when it finishes, the next one starts on the following frame.
func Sequence(actions ...Action) Action {
	return &sequenceAction{actions: actions}
}

type parallelAction struct {
	actions []Action
	done    []bool
}

func (a *parallelAction) Apply(s *Sprite, dt float64) bool {
	all := true
	for i, inner := range a.actions {
		if a.done[i] {
			continue
		}
		if inner.Apply(s, dt) {
			a.done[i] = true
		} else {
			all = false
		}
	}
	return all
}

func (a *parallelAction) Reset() {
	for i, inner := range a.actions {
		a.done[i] = false
		resetAction(inner)
	}
}

// Parallel runs actions together and finishes once all of them have.
func Parallel(actions ...Action) Action {
	return &parallelAction{actions: actions, done: make([]bool, len(actions))}
}

type repeatAction struct {
	action Action
	times  int // <= 0 repeats forever
	count  int
}

func (a *repeatAction) Apply(s *Sprite, dt float64) bool {
	if !a.action.Apply(s, dt) {
		return false
	}
	a.count++
	if a.times > 0 && a.count >= a.times {
		return true
	}
	resetAction(a.action)
	return false
}

func (a *repeatAction) Reset() {
	a.count = 0
	resetAction(a.action)
}

// Repeat runs action times times, rewinding it between runs. The action
// should implement Resetter; every built-in action does.
func Repeat(action Action, times int) Action {
	if times <= 0 {
		panic("sprig: repeat count must be positive")
	}
	return &repeatAction{action: action, times: times}
}

// Forever runs action again each time it finishes and never finishes itself.
func Forever(action Action) Action {
	return &repeatAction{action: action}
}

func resetAction(a Action) {
	if r, ok := a.(Resetter); ok {
		r.Reset()
	}
}
