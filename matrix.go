package bramble

import "math"

// TransformMatrix is a 2D affine transformation matrix.
//
//	Matrix layout: [A, B, C, D, TX, TY]
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0   1 |
type TransformMatrix struct {
	A, B, C, D, TX, TY float64
}

// NewTransformMatrix returns an identity matrix.
func NewTransformMatrix() *TransformMatrix {
	return &TransformMatrix{A: 1, D: 1}
}

// LoadIdentity resets the matrix to identity and returns it.
func (m *TransformMatrix) LoadIdentity() *TransformMatrix {
	m.A, m.B, m.C, m.D, m.TX, m.TY = 1, 0, 0, 1, 0, 0
	return m
}

// Translate applies a translation and returns the matrix.
func (m *TransformMatrix) Translate(x, y float64) *TransformMatrix {
	m.TX += m.A*x + m.C*y
	m.TY += m.B*x + m.D*y
	return m
}

// Rotate applies a rotation in radians and returns the matrix.
func (m *TransformMatrix) Rotate(angle float64) *TransformMatrix {
	sin, cos := math.Sincos(angle)
	a, b, c, d := m.A, m.B, m.C, m.D
	m.A = a*cos + c*sin
	m.B = b*cos + d*sin
	m.C = -a*sin + c*cos
	m.D = -b*sin + d*cos
	return m
}

// Scale applies a scale and returns the matrix.
func (m *TransformMatrix) Scale(x, y float64) *TransformMatrix {
	m.A *= x
	m.B *= x
	m.C *= y
	m.D *= y
	return m
}

// ApplyITRS sets this matrix from the given position, rotation, and scale,
// composed in Identity -> Translate -> Rotate -> Scale order.
func (m *TransformMatrix) ApplyITRS(x, y, rotation, scaleX, scaleY float64) *TransformMatrix {
	sin, cos := math.Sincos(rotation)
	m.A = cos * scaleX
	m.B = sin * scaleX
	m.C = -sin * scaleY
	m.D = cos * scaleY
	m.TX = x
	m.TY = y
	return m
}

// Multiply sets this matrix to m * rhs and returns it.
func (m *TransformMatrix) Multiply(rhs *TransformMatrix) *TransformMatrix {
	a := m.A*rhs.A + m.C*rhs.B
	b := m.B*rhs.A + m.D*rhs.B
	c := m.A*rhs.C + m.C*rhs.D
	d := m.B*rhs.C + m.D*rhs.D
	tx := m.A*rhs.TX + m.C*rhs.TY + m.TX
	ty := m.B*rhs.TX + m.D*rhs.TY + m.TY
	m.A, m.B, m.C, m.D, m.TX, m.TY = a, b, c, d, tx, ty
	return m
}

// Invert inverts the matrix in place and returns it.
// A singular matrix (determinant ≈ 0) is reset to identity instead.
func (m *TransformMatrix) Invert() *TransformMatrix {
	det := m.A*m.D - m.C*m.B
	if det > -1e-12 && det < 1e-12 {
		return m.LoadIdentity()
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	tx := -(a*m.TX + c*m.TY)
	ty := -(b*m.TX + d*m.TY)
	m.A, m.B, m.C, m.D, m.TX, m.TY = a, b, c, d, tx, ty
	return m
}

// TransformPoint applies the matrix to a point.
func (m *TransformMatrix) TransformPoint(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.TX, m.B*x + m.D*y + m.TY
}

// Rotation extracts the rotation component in radians.
func (m *TransformMatrix) Rotation() float64 {
	return math.Atan2(m.B, m.A)
}

// ScaleX extracts the horizontal scale component.
func (m *TransformMatrix) ScaleX() float64 {
	return math.Hypot(m.A, m.B)
}

// ScaleY extracts the vertical scale component.
func (m *TransformMatrix) ScaleY() float64 {
	return math.Hypot(m.C, m.D)
}
