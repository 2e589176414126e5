package bramble

import "math"

// Width returns the native (unscaled) width.
func (g *GameObject) Width() float64 { return g.width }

// Height returns the native (unscaled) height.
func (g *GameObject) Height() float64 { return g.height }

// SetSize sets the native size directly. The display-origin cache is
// recomputed so it is never observed stale.
func (g *GameObject) SetSize(width, height float64) *GameObject {
	g.width = width
	g.height = height
	return g.UpdateDisplayOrigin()
}

// SetSizeToFrame sets the native size from the given frame's untrimmed
// dimensions. Pass nil to use the currently bound frame.
func (g *GameObject) SetSizeToFrame(frame *Frame) *GameObject {
	if frame == nil {
		frame = g.frame
	}
	g.width = frame.RealWidth
	g.height = frame.RealHeight
	return g.UpdateDisplayOrigin()
}

// DisplayWidth returns the rendered width: |ScaleX| times the bound frame's
// untrimmed width. A frame must be bound first; calling this without one is
// a programmer error and panics on the nil frame.
func (g *GameObject) DisplayWidth() float64 {
	return math.Abs(g.ScaleX * g.frame.RealWidth)
}

// SetDisplayWidth sets the rendered width by back-solving ScaleX against
// the bound frame's untrimmed width.
func (g *GameObject) SetDisplayWidth(value float64) *GameObject {
	g.ScaleX = value / g.frame.RealWidth
	return g
}

// DisplayHeight returns the rendered height: |ScaleY| times the bound
// frame's untrimmed height. Requires a bound frame, like DisplayWidth.
func (g *GameObject) DisplayHeight() float64 {
	return math.Abs(g.ScaleY * g.frame.RealHeight)
}

// SetDisplayHeight sets the rendered height by back-solving ScaleY against
// the bound frame's untrimmed height.
func (g *GameObject) SetDisplayHeight(value float64) *GameObject {
	g.ScaleY = value / g.frame.RealHeight
	return g
}

// SetDisplaySize sets both rendered dimensions, implicitly mutating scale.
func (g *GameObject) SetDisplaySize(width, height float64) *GameObject {
	return g.SetDisplayWidth(width).SetDisplayHeight(height)
}

// OriginX returns the normalized horizontal anchor in [0, 1].
func (g *GameObject) OriginX() float64 { return g.originX }

// OriginY returns the normalized vertical anchor in [0, 1].
func (g *GameObject) OriginY() float64 { return g.originY }

// SetOrigin sets the normalized anchor and recomputes the pixel-space
// display-origin cache. (0, 0) is the top-left, (0.5, 0.5) the center,
// (1, 1) the bottom-right.
func (g *GameObject) SetOrigin(x, y float64) *GameObject {
	g.originX = x
	g.originY = y
	return g.UpdateDisplayOrigin()
}

// SetOriginFromFrame takes the origin from the bound frame's custom pivot,
// if it declares one, and falls back to the default center origin otherwise.
func (g *GameObject) SetOriginFromFrame() *GameObject {
	if g.frame == nil || !g.frame.CustomPivot {
		return g.SetOrigin(0.5, 0.5)
	}
	g.originX = g.frame.PivotX
	g.originY = g.frame.PivotY
	return g.UpdateDisplayOrigin()
}

// DisplayOriginX returns the horizontal anchor in unscaled pixels.
func (g *GameObject) DisplayOriginX() float64 { return g.displayOriginX }

// DisplayOriginY returns the vertical anchor in unscaled pixels.
func (g *GameObject) DisplayOriginY() float64 { return g.displayOriginY }

// SetDisplayOrigin sets the anchor in unscaled pixels and back-computes the
// normalized origin. The native size must already be non-zero: dividing by
// a zero width or height yields a non-finite origin, so sequence SetSize or
// a frame bind before this call.
func (g *GameObject) SetDisplayOrigin(x, y float64) *GameObject {
	g.displayOriginX = x
	g.displayOriginY = y
	g.originX = x / g.width
	g.originY = y / g.height
	return g
}

// UpdateDisplayOrigin recomputes the pixel-space origin cache from the
// normalized origin and native size. Every operation that changes size,
// origin, or frame routes through this, keeping the cache exact.
func (g *GameObject) UpdateDisplayOrigin() *GameObject {
	g.displayOriginX = g.originX * g.width
	g.displayOriginY = g.originY * g.height
	return g
}
