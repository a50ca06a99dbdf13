package sprig

import "testing"

func TestPhysicsSemiImplicitEuler(t *testing.T) {
	s := NewSprite(0, 0)
	p := NewPhysics(0, -10)
	s.SetPhysics(p)

	dt, ay := 0.1, -10.0
	for i := 0; i < 10; i++ {
		s.Update(dt)
	}

	// Reference trajectory: velocity first, then position with the new velocity.
	var vy, y float64
	for i := 0; i < 10; i++ {
		vy += float64(ay * dt)
		y += float64(vy * dt)
	}

	if s.Position.Y != y {
		t.Errorf("Y = %.17g, want exactly %.17g", s.Position.Y, y)
	}
	if p.Velocity.Y != vy {
		t.Errorf("VY = %.17g, want exactly %.17g", p.Velocity.Y, vy)
	}
	// Closed form: v_n = a*n*dt, y_n = a*dt²*n(n+1)/2.
	assertNearTol(t, "Y closed form", s.Position.Y, -5.5, 1e-9)
	assertNearTol(t, "VY closed form", p.Velocity.Y, -10, 1e-9)
	assertNear(t, "X", s.Position.X, 0)
}

func TestPhysicsDeterministicAcrossSprites(t *testing.T) {
	a, b := NewSprite(3, 4), NewSprite(3, 4)
	a.SetPhysics(&Physics{Velocity: Vec2{1.5, -2}, Acceleration: Vec2{0.3, 9.81}})
	b.SetPhysics(&Physics{Velocity: Vec2{1.5, -2}, Acceleration: Vec2{0.3, 9.81}})
	for i := 0; i < 120; i++ {
		a.Update(1.0 / 60)
		b.Update(1.0 / 60)
	}
	if a.Position != b.Position {
		t.Errorf("positions diverged: %v vs %v", a.Position, b.Position)
	}
}

func TestPhysicsDetachedKeepsVelocity(t *testing.T) {
	p := NewPhysics(2, 0)
	p.Integrate(0.5)
	assertNear(t, "VX", p.Velocity.X, 1)
	if p.Position() != (Vec2{}) {
		t.Errorf("detached Position = %v, want zero", p.Position())
	}
}

func TestPhysicsSpeedAndAngle(t *testing.T) {
	p := &Physics{Velocity: Vec2{3, 4}}
	assertNear(t, "Speed", p.Speed(), 5)
	p.SetSpeed(10)
	assertNearTol(t, "Speed after SetSpeed", p.Speed(), 10, 1e-9)
	p.SetMotionAngle(90)
	assertNearTol(t, "MotionAngle", p.MotionAngle(), 90, 1e-9)
	assertNearTol(t, "Speed after SetMotionAngle", p.Speed(), 10, 1e-9)

	p.AccelerateAtAngle(4, 180)
	assertNearTol(t, "AX", p.Acceleration.X, -4, 1e-9)
	assertNearTol(t, "AY", p.Acceleration.Y, 0, 1e-9)
}
