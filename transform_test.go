package bramble

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got *Vec2, wantX, wantY float64) {
	t.Helper()
	if math.Abs(got.X-wantX) > epsilon || math.Abs(got.Y-wantY) > epsilon {
		t.Errorf("%s = (%v, %v), want (%v, %v)", name, got.X, got.Y, wantX, wantY)
	}
}

// newTestScene builds a scene with a headless 256x128 texture "blocks"
// carrying a 40x20 frame "block".
func newTestScene() *Scene {
	s := NewScene(800, 600)
	tex := NewTexture("blocks", nil, 256, 128)
	tex.AddFrame("block", 0, 0, 40, 20)
	s.Textures().Add(tex)
	return s
}

// newTestObject builds a bare game object bound to the "block" frame.
func newTestObject(s *Scene) *GameObject {
	g := NewGameObject(s, "test")
	g.SetTexture("blocks", "block")
	return g
}

// --- Position ---

func TestSetPosition(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	g.SetPosition(10, 20)
	if g.X != 10 || g.Y != 20 {
		t.Errorf("position = (%v, %v), want (10, 20)", g.X, g.Y)
	}
	g.SetX(5).SetY(6)
	if g.X != 5 || g.Y != 6 {
		t.Errorf("position = (%v, %v), want (5, 6)", g.X, g.Y)
	}
}

func TestSetRandomPositionWithinRect(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	for i := 0; i < 100; i++ {
		g.SetRandomPosition(50, 60, 10, 20)
		if g.X < 50 || g.X >= 60 {
			t.Fatalf("X = %v, want in [50, 60)", g.X)
		}
		if g.Y < 60 || g.Y >= 80 {
			t.Fatalf("Y = %v, want in [60, 80)", g.Y)
		}
	}
}

func TestSetRandomPositionDefaultsToViewport(t *testing.T) {
	s := newTestScene() // 800x600 viewport
	g := NewGameObject(s, "test")
	for i := 0; i < 100; i++ {
		g.SetRandomPosition(0, 0, 0, 0)
		if g.X < 0 || g.X >= 800 {
			t.Fatalf("X = %v, want in [0, 800)", g.X)
		}
		if g.Y < 0 || g.Y >= 600 {
			t.Fatalf("Y = %v, want in [0, 600)", g.Y)
		}
	}
}

func TestSetRandomPositionViewportDefaultFromOffset(t *testing.T) {
	s := newTestScene() // 800x600 viewport
	g := NewGameObject(s, "test")
	// Omitted dimensions default to the full viewport size measured from
	// the minimum, not to the remaining distance to the viewport edge.
	for i := 0; i < 100; i++ {
		g.SetRandomPosition(100, 50, 0, 0)
		if g.X < 100 || g.X >= 900 {
			t.Fatalf("X = %v, want in [100, 900)", g.X)
		}
		if g.Y < 50 || g.Y >= 650 {
			t.Fatalf("Y = %v, want in [50, 650)", g.Y)
		}
	}
}

// --- Rotation ---

func TestSetRotationNormalizes(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")

	cases := []struct{ in, want float64 }{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{-math.Pi / 2, -math.Pi / 2},
		{5 * math.Pi / 2, math.Pi / 2},
	}
	for _, c := range cases {
		g.SetRotation(c.in)
		assertNear(t, "rotation", g.Rotation(), c.want)
	}
}

func TestRotationAlwaysInRange(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	for r := -25.0; r <= 25.0; r += 0.173 {
		g.SetRotation(r)
		got := g.Rotation()
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("SetRotation(%v): rotation %v outside (-π, π]", r, got)
		}
		// Congruent modulo 2π: sin and cos must match the input angle.
		if math.Abs(math.Sin(got)-math.Sin(r)) > 1e-9 || math.Abs(math.Cos(got)-math.Cos(r)) > 1e-9 {
			t.Fatalf("SetRotation(%v): rotation %v not congruent mod 2π", r, got)
		}
	}
}

func TestAngleDegrees(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	g.SetAngle(90)
	assertNear(t, "rotation", g.Rotation(), math.Pi/2)
	assertNear(t, "angle", g.Angle(), 90)

	g.SetAngle(270)
	assertNear(t, "angle wrapped", g.Angle(), -90)
}

// --- Scale ---

func TestScaleAverage(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	if g.Scale() != 1 {
		t.Errorf("default Scale = %v, want 1", g.Scale())
	}
	g.SetScale(2, 4)
	assertNear(t, "scale", g.Scale(), 3)
}

// --- Chaining ---

func TestSetterChaining(t *testing.T) {
	g := newTestObject(newTestScene())
	got := g.SetPosition(1, 2).SetRotation(0.5).SetScale(2, 2).SetOrigin(0, 0).SetAlpha(0.5)
	if got != g {
		t.Error("setters should return the receiver")
	}
}

// --- Local transform matrix ---

func TestLocalTransformMatrixIdentity(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	m := g.GetLocalTransformMatrix(nil)
	assertNear(t, "A", m.A, 1)
	assertNear(t, "B", m.B, 0)
	assertNear(t, "C", m.C, 0)
	assertNear(t, "D", m.D, 1)
	assertNear(t, "TX", m.TX, 0)
	assertNear(t, "TY", m.TY, 0)
}

func TestLocalTransformMatrixComposed(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	g.SetPosition(50, 100)
	g.SetScale(2, 2)
	g.SetRotation(math.Pi / 2)

	m := g.GetLocalTransformMatrix(nil)
	// cos=0, sin=1: A=0, B=2, C=-2, D=0, translation carried directly.
	assertNear(t, "A", m.A, 0)
	assertNear(t, "B", m.B, 2)
	assertNear(t, "C", m.C, -2)
	assertNear(t, "D", m.D, 0)
	assertNear(t, "TX", m.TX, 50)
	assertNear(t, "TY", m.TY, 100)
}

func TestLocalTransformMatrixReusesOut(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	g.SetPosition(7, 9)
	out := NewTransformMatrix()
	m := g.GetLocalTransformMatrix(out)
	if m != out {
		t.Error("should return the provided matrix")
	}
	assertNear(t, "TX", out.TX, 7)
}

func TestWorldTransformMatrixMatchesLocal(t *testing.T) {
	g := NewGameObject(newTestScene(), "test")
	g.SetPosition(3, 4).SetRotation(1).SetScale(2, 3)

	local := g.GetLocalTransformMatrix(nil)
	world := g.GetWorldTransformMatrix(nil)
	if *local != *world {
		t.Errorf("world %+v != local %+v (base object has no parent)", world, local)
	}
}
