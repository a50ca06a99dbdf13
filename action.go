package sprig

// Action mutates a sprite once per frame until it reports that it is
// finished. Sprite.Update applies every attached action in the order they
// were added and drops the ones that return true.
//
// Apply may add actions to the sprite or remove them through their
// handles; actions added during a frame first run on the next frame.
type Action interface {
	Apply(s *Sprite, dt float64) (finished bool)
}

// ActionFunc adapts a function to the Action interface.
type ActionFunc func(s *Sprite, dt float64) bool

// Apply calls f(s, dt).
func (f ActionFunc) Apply(s *Sprite, dt float64) bool {
	return f(s, dt)
}

// Resetter is implemented by actions that can be rewound to their initial
// state. Repeat and Forever rewind their inner action through it.
type Resetter interface {
	Reset()
}

// ActionHandle identifies one attachment of an action to a sprite.
type ActionHandle struct {
	action Action
	sprite *Sprite
}

// Action returns the attached action.
func (h *ActionHandle) Action() Action {
	return h.action
}

// Attached reports whether the action is still on its sprite.
func (h *ActionHandle) Attached() bool {
	if h.sprite == nil {
		return false
	}
	for _, e := range h.sprite.actions {
		if e == h {
			return true
		}
	}
	return false
}

// Remove detaches the action. An action removed by another action during
// Sprite.Update still runs in that frame, because every action attached when
// the frame began is applied once. No-op if already removed.
func (h *ActionHandle) Remove() {
	if h.sprite == nil {
		return
	}
	h.sprite.removeAction(h)
	h.sprite = nil
}
