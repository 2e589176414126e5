package bramble

// SetAlpha sets the object's opacity. Values are not clamped: anything
// outside [0, 1] is stored as-is and only the render gate's zero check and
// downstream blending ever interpret it.
func (g *GameObject) SetAlpha(alpha float64) *GameObject {
	g.Alpha = alpha
	return g
}

// Visible reports whether the object passes the render gate. Visibility
// never affects the update pass; see SetActive for that.
func (g *GameObject) Visible() bool {
	return g.visible
}

// SetVisible shows or hides the object.
func (g *GameObject) SetVisible(visible bool) *GameObject {
	g.visible = visible
	return g
}

// SetFlipX mirrors rendering horizontally. Purely a rendering directive:
// position, scale, and bounds are unaffected. An active crop is recomputed
// since its texture window depends on the flip flags.
func (g *GameObject) SetFlipX(flip bool) *GameObject {
	g.FlipX = flip
	g.refreshCrop()
	return g
}

// SetFlipY mirrors rendering vertically.
func (g *GameObject) SetFlipY(flip bool) *GameObject {
	g.FlipY = flip
	g.refreshCrop()
	return g
}

// SetFlip sets both flip flags at once.
func (g *GameObject) SetFlip(x, y bool) *GameObject {
	g.FlipX = x
	g.FlipY = y
	g.refreshCrop()
	return g
}

// ToggleFlipX inverts the horizontal flip flag.
func (g *GameObject) ToggleFlipX() *GameObject {
	g.FlipX = !g.FlipX
	g.refreshCrop()
	return g
}

// ToggleFlipY inverts the vertical flip flag.
func (g *GameObject) ToggleFlipY() *GameObject {
	g.FlipY = !g.FlipY
	g.refreshCrop()
	return g
}

// ResetFlip clears both flip flags.
func (g *GameObject) ResetFlip() *GameObject {
	g.FlipX = false
	g.FlipY = false
	g.refreshCrop()
	return g
}

// Depth returns the z-order key. Higher depths render later (on top).
func (g *GameObject) Depth() int {
	return g.depth
}

// SetDepth sets the z-order key and queues a scene depth sort. Every write
// queues, even when the value is unchanged; the scene coalesces repeated
// requests into a single sort.
func (g *GameObject) SetDepth(value int) *GameObject {
	if g.scene != nil {
		g.scene.QueueDepthSort()
	}
	g.depth = value
	return g
}

// SetScrollFactor sets how much camera scroll affects this object's
// rendered position. 1 tracks the camera fully; 0 pins the object to the
// screen. Consumed by the renderer only; the object's actual position
// never changes.
func (g *GameObject) SetScrollFactor(x, y float64) *GameObject {
	g.ScrollFactorX = x
	g.ScrollFactorY = y
	return g
}

// SetTint multiplies the rendered pixels by the given color.
func (g *GameObject) SetTint(tint Color) *GameObject {
	g.Tint = tint
	return g
}

// ClearTint restores the default white (no-op) tint.
func (g *GameObject) ClearTint() *GameObject {
	g.Tint = ColorWhite
	return g
}
