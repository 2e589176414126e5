package bramble

import (
	"math"
	"testing"
)

func assertMatrix(t *testing.T, name string, got *TransformMatrix, a, b, c, d, tx, ty float64) {
	t.Helper()
	vals := [6]float64{got.A, got.B, got.C, got.D, got.TX, got.TY}
	want := [6]float64{a, b, c, d, tx, ty}
	for i := range vals {
		if math.Abs(vals[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, vals[i], want[i], vals, want)
		}
	}
}

// --- ApplyITRS ---

func TestApplyITRSIdentity(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(0, 0, 0, 1, 1)
	assertMatrix(t, "identity", m, 1, 0, 0, 1, 0, 0)
}

func TestApplyITRSTranslation(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(10, 20, 0, 1, 1)
	assertMatrix(t, "translation", m, 1, 0, 0, 1, 10, 20)
}

func TestApplyITRSScale(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(0, 0, 0, 2, 3)
	assertMatrix(t, "scale", m, 2, 0, 0, 3, 0, 0)
}

func TestApplyITRSRotation90(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(0, 0, math.Pi/2, 1, 1)
	// cos(90)=0, sin(90)=1 → A=0, B=1, C=-1, D=0
	assertMatrix(t, "rot90", m, 0, 1, -1, 0, 0, 0)
}

func TestApplyITRSCombined(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(50, 100, math.Pi/2, 2, 2)
	// Rotation applied before scale: A=cos*sx=0, B=sin*sx=2, C=-sin*sy=-2, D=cos*sy=0.
	assertMatrix(t, "combined", m, 0, 2, -2, 0, 50, 100)
}

// --- Translate / Rotate / Scale ---

func TestMatrixTranslate(t *testing.T) {
	m := NewTransformMatrix().Translate(10, 20).Translate(5, 3)
	assertMatrix(t, "translate", m, 1, 0, 0, 1, 15, 23)
}

func TestMatrixTranslateAfterScale(t *testing.T) {
	m := NewTransformMatrix().Scale(2, 3).Translate(10, 10)
	assertMatrix(t, "scale-then-translate", m, 2, 0, 0, 3, 20, 30)
}

func TestMatrixRotateMatchesITRS(t *testing.T) {
	a := NewTransformMatrix().Translate(5, 6).Rotate(0.7).Scale(2, 3)
	b := NewTransformMatrix().ApplyITRS(5, 6, 0.7, 2, 3)
	assertMatrix(t, "chain vs ITRS", a, b.A, b.B, b.C, b.D, b.TX, b.TY)
}

// --- Multiply ---

func TestMultiplyIdentity(t *testing.T) {
	m := &TransformMatrix{A: 2, B: 1, C: 3, D: 4, TX: 5, TY: 6}
	got := *NewTransformMatrix().Multiply(m)
	if got != *m {
		t.Errorf("id * m = %+v, want %+v", got, *m)
	}
}

func TestMultiplyTranslations(t *testing.T) {
	a := &TransformMatrix{A: 1, D: 1, TX: 10, TY: 20}
	b := &TransformMatrix{A: 1, D: 1, TX: 5, TY: 3}
	a.Multiply(b)
	assertMatrix(t, "translations", a, 1, 0, 0, 1, 15, 23)
}

// --- Invert ---

func TestInvertRoundTrip(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(10, 20, math.Pi/3, 2, 1)
	inv := *m
	inv.Invert()
	m.Multiply(&inv)
	assertMatrix(t, "m*inv", m, 1, 0, 0, 1, 0, 0)
}

func TestInvertSingularReturnsIdentity(t *testing.T) {
	m := &TransformMatrix{A: 0, B: 0, C: 0, D: 1, TX: 10, TY: 20}
	m.Invert()
	assertMatrix(t, "singular", m, 1, 0, 0, 1, 0, 0)
}

// --- TransformPoint ---

func TestTransformPoint(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(100, 50, math.Pi/2, 1, 1)
	x, y := m.TransformPoint(10, 0)
	assertNear(t, "x", x, 100)
	assertNear(t, "y", y, 60)
}

// --- Decomposition ---

func TestMatrixDecompose(t *testing.T) {
	m := NewTransformMatrix().ApplyITRS(0, 0, 0.5, 2, 3)
	assertNear(t, "rotation", m.Rotation(), 0.5)
	assertNear(t, "scaleX", m.ScaleX(), 2)
	assertNear(t, "scaleY", m.ScaleY(), 3)
}

// --- Benchmarks ---

func BenchmarkApplyITRS(b *testing.B) {
	m := NewTransformMatrix()
	b.ReportAllocs()
	for b.Loop() {
		m.ApplyITRS(100, 200, 0.5, 2, 3)
	}
}

func BenchmarkMultiply(b *testing.B) {
	m := NewTransformMatrix().ApplyITRS(100, 200, 0.5, 2, 3)
	rhs := NewTransformMatrix().ApplyITRS(50, 30, 0.2, 1.5, 2.5)
	b.ReportAllocs()
	for b.Loop() {
		m.Multiply(rhs)
	}
}
