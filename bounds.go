package bramble

// Bounds queries return a corner, edge midpoint, or center of the object's
// display rectangle in local space, derived from position, display size,
// and origin, with the object's rotation applied around its position.
//
// Each query takes an optional output vector (nil allocates) and an
// includeParent flag. The flag is accepted for interface compatibility with
// container types but never branches here: the base object has no ancestor
// transforms, so results are always local-space.

// prepareBoundsOutput rotates the computed point around the object's
// position when the object is rotated.
func (g *GameObject) prepareBoundsOutput(out *Vec2) *Vec2 {
	if g.rotation != 0 {
		RotateAround(out, g.X, g.Y, g.rotation)
	}
	return out
}

// GetCenter returns the center of the display rectangle.
func (g *GameObject) GetCenter(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX + g.DisplayWidth()/2
	out.Y = g.Y - g.DisplayHeight()*g.originY + g.DisplayHeight()/2
	return g.prepareBoundsOutput(out)
}

// GetTopLeft returns the top-left corner of the display rectangle.
func (g *GameObject) GetTopLeft(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX
	out.Y = g.Y - g.DisplayHeight()*g.originY
	return g.prepareBoundsOutput(out)
}

// GetTopCenter returns the midpoint of the top edge.
func (g *GameObject) GetTopCenter(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX + g.DisplayWidth()/2
	out.Y = g.Y - g.DisplayHeight()*g.originY
	return g.prepareBoundsOutput(out)
}

// GetTopRight returns the top-right corner of the display rectangle.
func (g *GameObject) GetTopRight(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX + g.DisplayWidth()
	out.Y = g.Y - g.DisplayHeight()*g.originY
	return g.prepareBoundsOutput(out)
}

// GetLeftCenter returns the midpoint of the left edge.
func (g *GameObject) GetLeftCenter(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX
	out.Y = g.Y - g.DisplayHeight()*g.originY + g.DisplayHeight()/2
	return g.prepareBoundsOutput(out)
}

// GetRightCenter returns the midpoint of the right edge.
func (g *GameObject) GetRightCenter(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX + g.DisplayWidth()
	out.Y = g.Y - g.DisplayHeight()*g.originY + g.DisplayHeight()/2
	return g.prepareBoundsOutput(out)
}

// GetBottomLeft returns the bottom-left corner of the display rectangle.
func (g *GameObject) GetBottomLeft(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX
	out.Y = g.Y - g.DisplayHeight()*g.originY + g.DisplayHeight()
	return g.prepareBoundsOutput(out)
}

// GetBottomCenter returns the midpoint of the bottom edge.
func (g *GameObject) GetBottomCenter(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX + g.DisplayWidth()/2
	out.Y = g.Y - g.DisplayHeight()*g.originY + g.DisplayHeight()
	return g.prepareBoundsOutput(out)
}

// GetBottomRight returns the bottom-right corner of the display rectangle.
func (g *GameObject) GetBottomRight(out *Vec2, includeParent bool) *Vec2 {
	if out == nil {
		out = &Vec2{}
	}
	out.X = g.X - g.DisplayWidth()*g.originX + g.DisplayWidth()
	out.Y = g.Y - g.DisplayHeight()*g.originY + g.DisplayHeight()
	return g.prepareBoundsOutput(out)
}

// GetBounds returns the axis-aligned rectangle containing the four rotated
// corners of the display rectangle.
func (g *GameObject) GetBounds() Rect {
	var tl, tr, bl, br Vec2
	g.GetTopLeft(&tl, false)
	g.GetTopRight(&tr, false)
	g.GetBottomLeft(&bl, false)
	g.GetBottomRight(&br, false)

	minX := min(min(tl.X, tr.X), min(bl.X, br.X))
	minY := min(min(tl.Y, tr.Y), min(bl.Y, br.Y))
	maxX := max(max(tl.X, tr.X), max(bl.X, br.X))
	maxY := max(max(tl.Y, tr.Y), max(bl.Y, br.Y))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
