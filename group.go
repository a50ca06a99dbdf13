package sprig

import "time"

// Group owns an ordered collection of sprites. It updates and draws them in
// insertion order and evicts sprites whose destroy flag is set; sprites never
// remove themselves.
type Group struct {
	// OnEvict, if set, is called for each destroyed sprite as it is removed.
	// It must not add or remove sprites.
	OnEvict func(s *Sprite)

	sprites []*Sprite
	buf     []*Sprite // reused snapshot buffer for Update

	cullBounds Rect
	cullActive bool

	debug bool
	stats debugStats
}

// NewGroup creates a group holding sprites.
func NewGroup(sprites ...*Sprite) *Group {
	g := &Group{}
	g.Add(sprites...)
	return g
}

// Add appends sprites to the group. Panics on nil.
func (g *Group) Add(sprites ...*Sprite) {
	for _, s := range sprites {
		if s == nil {
			panic("sprig: cannot add nil sprite to group")
		}
		g.sprites = append(g.sprites, s)
	}
	if g.debug {
		debugCheckGroupSize(g)
	}
}

// Remove takes s out of the group. Reports whether it was present.
func (g *Group) Remove(s *Sprite) bool {
	for i, c := range g.sprites {
		if c == s {
			copy(g.sprites[i:], g.sprites[i+1:])
			g.sprites[len(g.sprites)-1] = nil
			g.sprites = g.sprites[:len(g.sprites)-1]
			return true
		}
	}
	return false
}

// Contains reports whether s is in the group.
func (g *Group) Contains(s *Sprite) bool {
	for _, c := range g.sprites {
		if c == s {
			return true
		}
	}
	return false
}

// Len returns the number of sprites.
func (g *Group) Len() int {
	return len(g.sprites)
}

// Sprites returns the sprite list. The returned slice MUST NOT be mutated by the caller.
func (g *Group) Sprites() []*Sprite {
	return g.sprites
}

// Clear removes every sprite without destroying them.
func (g *Group) Clear() {
	clear(g.sprites)
	g.sprites = g.sprites[:0]
}

// SetCullBounds makes Draw skip sprites whose drawn quad lies outside
// bounds. Game sets this from its camera every frame.
func (g *Group) SetCullBounds(bounds Rect) {
	g.cullBounds = bounds
	g.cullActive = true
}

// ClearCullBounds disables culling.
func (g *Group) ClearCullBounds() {
	g.cullActive = false
}

// SetDebugMode enables or disables per-frame timing and count logging to
// stderr.
func (g *Group) SetDebugMode(enabled bool) {
	g.debug = enabled
}

// Update updates every live sprite once, over a snapshot of the group so
// sprites added during the frame first update on the next one, then evicts
// every destroyed sprite.
func (g *Group) Update(dt float64) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	// Detached while iterating so a nested Update gets its own snapshot.
	snapshot := append(g.buf[:0], g.sprites...)
	g.buf = nil
	for _, s := range snapshot {
		if !s.Destroyed() {
			s.Update(dt)
		}
	}
	clear(snapshot)
	g.buf = snapshot[:0]

	evicted := g.evictDestroyed()

	if g.debug {
		g.stats.updateTime = time.Since(t0)
		g.stats.spriteCount = len(g.sprites)
		g.stats.evictedCount = evicted
	}
}

// evictDestroyed compacts the sprite list in place, keeping order.
func (g *Group) evictDestroyed() int {
	kept := g.sprites[:0]
	for _, s := range g.sprites {
		if s.Destroyed() {
			if g.OnEvict != nil {
				g.OnEvict(s)
			}
			continue
		}
		kept = append(kept, s)
	}
	n := len(g.sprites) - len(kept)
	clear(g.sprites[len(kept):])
	g.sprites = kept
	return n
}

// Draw draws every live sprite in order.
func (g *Group) Draw(surface Surface) {
	var t0 time.Time
	if g.debug {
		t0 = time.Now()
	}

	drawn, culled := 0, 0
	for _, s := range g.sprites {
		if s.Destroyed() || !s.Visible {
			continue
		}
		if g.cullActive && !s.DrawBounds().Intersects(g.cullBounds) {
			culled++
			continue
		}
		s.Draw(surface)
		drawn++
	}

	if g.debug {
		g.stats.drawTime = time.Since(t0)
		g.stats.drawCount = drawn
		g.stats.culledCount = culled
		g.debugLog(g.stats)
	}
}

// Wrap wraps every sprite around a screenW×screenH screen.
func (g *Group) Wrap(screenW, screenH float64) {
	for _, s := range g.sprites {
		s.Wrap(screenW, screenH)
	}
}

// Overlapping returns the live sprites, other than s, whose bounds overlap s.
func (g *Group) Overlapping(s *Sprite) []*Sprite {
	var out []*Sprite
	for _, c := range g.sprites {
		if c == s || c.Destroyed() {
			continue
		}
		if s.Overlaps(c) {
			out = append(out, c)
		}
	}
	return out
}

// SpriteAt returns the topmost (last drawn) visible sprite whose drawn quad
// contains the point, or nil.
func (g *Group) SpriteAt(x, y float64) *Sprite {
	for i := len(g.sprites) - 1; i >= 0; i-- {
		s := g.sprites[i]
		if s.Destroyed() || !s.Visible {
			continue
		}
		if s.ContainsPoint(x, y) {
			return s
		}
	}
	return nil
}
