package bramble

import "math/rand/v2"

// SetPosition sets the object's local position.
func (g *GameObject) SetPosition(x, y float64) *GameObject {
	g.X = x
	g.Y = y
	return g
}

// SetX sets the horizontal position.
func (g *GameObject) SetX(x float64) *GameObject {
	g.X = x
	return g
}

// SetY sets the vertical position.
func (g *GameObject) SetY(y float64) *GameObject {
	g.Y = y
	return g
}

// SetRandomPosition places the object uniformly at random within the given
// rectangle. A zero width or height falls back to the owning scene's
// viewport dimension, so the draw spans [min, min+viewport).
func (g *GameObject) SetRandomPosition(minX, minY, width, height float64) *GameObject {
	if width == 0 {
		width = g.scene.Width()
	}
	if height == 0 {
		height = g.scene.Height()
	}
	g.X = minX + rand.Float64()*width
	g.Y = minY + rand.Float64()*height
	return g
}

// Rotation returns the object's rotation in radians, always normalized to
// the interval (-π, π].
func (g *GameObject) Rotation() float64 {
	return g.rotation
}

// SetRotation sets the rotation in radians. The stored value is wrapped
// into (-π, π]; congruent inputs produce the same stored rotation.
func (g *GameObject) SetRotation(radians float64) *GameObject {
	g.rotation = WrapAngle(radians)
	return g
}

// SetAngle sets the rotation in degrees. Stored as wrapped radians; the
// engine's native unit is radians throughout.
func (g *GameObject) SetAngle(degrees float64) *GameObject {
	return g.SetRotation(degrees * DegToRad)
}

// Angle returns the rotation in degrees, in (-180, 180].
func (g *GameObject) Angle() float64 {
	return g.rotation * RadToDeg
}

// Scale returns the average of the horizontal and vertical scale factors.
func (g *GameObject) Scale() float64 {
	return (g.ScaleX + g.ScaleY) / 2
}

// SetScale sets both scale factors. Pass the same value twice for a
// uniform scale.
func (g *GameObject) SetScale(x, y float64) *GameObject {
	g.ScaleX = x
	g.ScaleY = y
	return g
}

// GetLocalTransformMatrix composes the object's local affine matrix from
// position, rotation, and scale (ITRS order). Pass a matrix to reuse it, or
// nil to allocate one.
func (g *GameObject) GetLocalTransformMatrix(out *TransformMatrix) *TransformMatrix {
	if out == nil {
		out = NewTransformMatrix()
	}
	return out.ApplyITRS(g.X, g.Y, g.rotation, g.ScaleX, g.ScaleY)
}

// GetWorldTransformMatrix is GetLocalTransformMatrix for the base object:
// parent composition belongs to container types built on top of this one.
func (g *GameObject) GetWorldTransformMatrix(out *TransformMatrix) *TransformMatrix {
	return g.GetLocalTransformMatrix(out)
}
