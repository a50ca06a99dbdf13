package sprig

// Physics integrates velocity and acceleration into the position of the
// Sprite it is attached to. A Physics belongs to at most one sprite; attach
// it with Sprite.SetPhysics.
type Physics struct {
	Velocity     Vec2
	Acceleration Vec2

	owner *Sprite
}

// NewPhysics returns a detached Physics with the given acceleration.
func NewPhysics(ax, ay float64) *Physics {
	return &Physics{Acceleration: Vec2{X: ax, Y: ay}}
}

// Integrate advances one step of semi-implicit Euler:
//
//	velocity += acceleration * dt
//	position += velocity * dt
//
// The velocity is updated first and the new velocity moves the position.
// A detached Physics still updates its velocity.
//
// Products are rounded before they are added (no fused multiply-add), so a
// fixed dt and update order give the same trajectory on every platform.
func (p *Physics) Integrate(dt float64) {
	p.Velocity.Add(float64(p.Acceleration.X*dt), float64(p.Acceleration.Y*dt))
	if p.owner != nil {
		p.owner.Position.Add(float64(p.Velocity.X*dt), float64(p.Velocity.Y*dt))
	}
}

// Owner returns the sprite this Physics moves, or nil.
func (p *Physics) Owner() *Sprite { return p.owner }

// Position returns the owner's position, or the zero vector when detached.
func (p *Physics) Position() Vec2 {
	if p.owner == nil {
		return Vec2{}
	}
	return p.owner.Position
}

// Speed returns the length of the velocity.
func (p *Physics) Speed() float64 { return p.Velocity.Length() }

// SetSpeed rescales the velocity, keeping its direction.
func (p *Physics) SetSpeed(speed float64) { p.Velocity.SetLength(speed) }

// MotionAngle returns the direction of the velocity in degrees.
func (p *Physics) MotionAngle() float64 { return p.Velocity.Angle() }

// SetMotionAngle points the velocity at degrees, keeping the speed.
func (p *Physics) SetMotionAngle(degrees float64) { p.Velocity.SetAngle(degrees) }

// AccelerateAtAngle sets the acceleration to amount in the given direction.
func (p *Physics) AccelerateAtAngle(amount, degrees float64) {
	p.Acceleration = NewVec2FromAngle(amount, degrees)
}
