package sprig

// Sprite is a positioned, rotated, optionally textured and animated object.
// Sprites must be used through the pointer returned by NewSprite: the bounds
// and an attached Physics refer back to this sprite's Position field.
//
// A sprite never removes itself from any collection. Destroy only raises a
// flag that the owner of the collection (for example a Group) polls.
type Sprite struct {
	// Position is the top-left corner of the sprite's bounds.
	Position Vec2
	// Texture is drawn stretched to the sprite's size. Nil draws nothing.
	Texture *Texture
	// Visible controls whether Draw emits anything.
	Visible bool
	// Opacity is the global alpha used when drawing. Not clamped.
	Opacity float64
	// Angle is the rotation about the sprite's center, in degrees.
	Angle float64
	// Mirrored flips the sprite horizontally.
	Mirrored bool
	// Flipped flips the sprite vertically.
	Flipped bool

	// UserData is free for the application.
	UserData any

	bounds    Rectangle
	animation *Animation
	physics   *Physics
	destroyed bool

	actions   []*ActionHandle
	actionBuf []*ActionHandle // reused snapshot buffer for Update
}

// NewSprite creates a visible, fully opaque sprite at (x, y) with zero size.
func NewSprite(x, y float64) *Sprite {
	s := &Sprite{
		Position: Vec2{X: x, Y: y},
		Visible:  true,
		Opacity:  1,
	}
	s.bounds.Position = &s.Position
	return s
}

// --- Transform ---

// SetPosition moves the top-left corner to (x, y).
func (s *Sprite) SetPosition(x, y float64) {
	s.Position.Set(x, y)
}

// MoveBy offsets the position.
func (s *Sprite) MoveBy(dx, dy float64) {
	s.Position.Add(dx, dy)
}

// SetSize sets the drawn width and height. The texture is stretched to fit.
func (s *Sprite) SetSize(width, height float64) {
	s.bounds.SetSize(width, height)
}

// Size returns the drawn width and height.
func (s *Sprite) Size() (width, height float64) {
	return s.bounds.Width, s.bounds.Height
}

// Bounds returns the sprite's bounding rectangle. Its Position points at the
// sprite's own Position.
func (s *Sprite) Bounds() Rectangle {
	return s.bounds
}

// Center returns the center of the bounds.
func (s *Sprite) Center() Vec2 {
	return s.bounds.Center()
}

// SetAngle sets the rotation in degrees.
func (s *Sprite) SetAngle(degrees float64) {
	s.Angle = degrees
}

// RotateBy adds degrees to the rotation.
func (s *Sprite) RotateBy(degrees float64) {
	s.Angle += degrees
}

// SetVisible shows or hides the sprite.
func (s *Sprite) SetVisible(visible bool) {
	s.Visible = visible
}

// --- Components ---

// SetTexture assigns tex and resets the size to the texture's native size.
// A nil tex clears the texture and keeps the current size.
func (s *Sprite) SetTexture(tex *Texture) {
	s.Texture = tex
	if tex == nil {
		return
	}
	s.SetSize(tex.Width(), tex.Height())
}

// SetAnimation attaches anim, shows its current frame immediately and
// resets the size to that frame's native size. A nil anim detaches the
// current animation and keeps the last shown texture.
func (s *Sprite) SetAnimation(anim *Animation) {
	s.animation = anim
	if anim == nil {
		return
	}
	s.SetTexture(anim.CurrentTexture())
}

// Animation returns the attached animation, or nil.
func (s *Sprite) Animation() *Animation {
	return s.animation
}

// SetPhysics attaches p so that it moves this sprite. If p was attached to
// another sprite it is detached from it first; a Physics previously attached
// here is detached. A nil p removes physics.
func (s *Sprite) SetPhysics(p *Physics) {
	if s.physics != nil && s.physics != p {
		s.physics.owner = nil
	}
	if p != nil && p.owner != nil && p.owner != s {
		p.owner.physics = nil
	}
	s.physics = p
	if p != nil {
		p.owner = s
	}
}

// Physics returns the attached physics, or nil.
func (s *Sprite) Physics() *Physics {
	return s.physics
}

// --- Frame ---

// Update advances the sprite by dt seconds: physics integrates first, then
// the animation advances and its frame becomes the texture, then every
// action attached when the call began is applied once, in insertion order.
// Actions reporting completion are removed.
func (s *Sprite) Update(dt float64) {
	if s.physics != nil {
		s.physics.Integrate(dt)
	}
	if s.animation != nil {
		s.animation.Advance(dt)
		s.Texture = s.animation.CurrentTexture()
	}
	if len(s.actions) == 0 {
		return
	}

	// The buffer is detached while iterating so an action that calls
	// Update on its own sprite builds a separate snapshot.
	snapshot := append(s.actionBuf[:0], s.actions...)
	s.actionBuf = nil
	for _, h := range snapshot {
		if h.action.Apply(s, dt) {
			h.Remove()
		}
	}
	clear(snapshot)
	s.actionBuf = snapshot[:0]
}

// --- Actions ---

// AddAction attaches a to the end of the action list. The returned handle
// detaches it early.
func (s *Sprite) AddAction(a Action) *ActionHandle {
	if a == nil {
		panic("sprig: cannot add nil action")
	}
	h := &ActionHandle{action: a, sprite: s}
	s.actions = append(s.actions, h)
	return h
}

// NumActions returns the number of attached actions.
func (s *Sprite) NumActions() int {
	return len(s.actions)
}

// ClearActions detaches every action.
func (s *Sprite) ClearActions() {
	for _, h := range s.actions {
		h.sprite = nil
	}
	clear(s.actions)
	s.actions = s.actions[:0]
}

// removeAction removes h from the live action list.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (s *Sprite) removeAction(h *ActionHandle) {
	for i, e := range s.actions {
		if e == h {
			copy(s.actions[i:], s.actions[i+1:])
			s.actions[len(s.actions)-1] = nil
			s.actions = s.actions[:len(s.actions)-1]
			return
		}
	}
}

// --- Lifecycle ---

// Destroy raises the destroy flag. The sprite keeps working; the owner of
// whatever collection holds it is expected to stop using it.
func (s *Sprite) Destroy() {
	s.destroyed = true
}

// Destroyed reports whether Destroy has been called.
func (s *Sprite) Destroyed() bool {
	return s.destroyed
}

// --- Geometry ---

// Wrap teleports the sprite to the opposite edge of a screenW×screenH
// screen once it has moved completely past one edge. Each axis and
// direction is checked independently.
func (s *Sprite) Wrap(screenW, screenH float64) {
	w, h := s.bounds.Width, s.bounds.Height
	if s.Position.X+w < 0 {
		s.Position.X = screenW
	}
	if s.Position.X > screenW {
		s.Position.X = -w
	}
	if s.Position.Y+h < 0 {
		s.Position.Y = screenH
	}
	if s.Position.Y > screenH {
		s.Position.Y = -h
	}
}

// BoundToScreen clamps the sprite so that it stays fully inside a
// screenW×screenH screen.
func (s *Sprite) BoundToScreen(screenW, screenH float64) {
	w, h := s.bounds.Width, s.bounds.Height
	s.Position.X = max(0, min(s.Position.X, screenW-w))
	s.Position.Y = max(0, min(s.Position.Y, screenH-h))
}

// Overlaps reports whether the two sprites' bounds overlap.
// Sprites that only touch along an edge do not overlap.
func (s *Sprite) Overlaps(other *Sprite) bool {
	return s.bounds.Overlaps(other.bounds)
}

// MinimumTranslationVector returns the smallest offset that moves s out of
// other, or the zero vector when they do not overlap.
func (s *Sprite) MinimumTranslationVector(other *Sprite) Vec2 {
	return s.bounds.MinimumTranslationVector(other.bounds)
}

// PreventOverlap moves s (never other) by the minimum translation vector
// when the two overlap. This is a one-sided positional correction, not a
// collision response.
func (s *Sprite) PreventOverlap(other *Sprite) {
	if !s.Overlaps(other) {
		return
	}
	mtv := s.MinimumTranslationVector(other)
	s.MoveBy(mtv.X, mtv.Y)
}

// AlignToSprite centers s on other and copies other's angle. Size, flip,
// opacity and texture are left unchanged.
func (s *Sprite) AlignToSprite(other *Sprite) {
	c := other.Center()
	s.SetPosition(c.X-s.bounds.Width/2, c.Y-s.bounds.Height/2)
	s.SetAngle(other.Angle)
}
