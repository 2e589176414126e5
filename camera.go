package bramble

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for camera scroll X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is a view into the scene. Each camera carries a single identity
// bit; a game object whose CameraFilter has that bit set is excluded from
// this camera's render pass.
type Camera struct {
	// ScrollX and ScrollY are the world-space offset of the view's top-left
	// corner. Objects with a scroll factor below 1 follow scroll partially.
	ScrollX, ScrollY float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians, applied around the
	// viewport center.
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	id uint32

	// Cached view matrix plus the inputs it was built from. ViewMatrix
	// compares the inputs directly, so writes to the public fields are
	// picked up without a dirty flag.
	viewMatrix     *TransformMatrix
	viewBuilt      bool
	viewRotation   float64
	viewZoom       float64
	viewCX, viewCY float64

	scrollTween *scrollAnim
	zoomTween   *gween.Tween
	zoomDone    bool
}

// newCamera creates a camera with the given identity bit and viewport.
func newCamera(id uint32, viewport Rect) *Camera {
	return &Camera{
		id:         id,
		Zoom:       1.0,
		Viewport:   viewport,
		viewMatrix: NewTransformMatrix(),
	}
}

// ID returns the camera's identity bit, assigned when the scene added it.
func (c *Camera) ID() uint32 {
	return c.id
}

// SetScroll sets the scroll offset directly.
func (c *Camera) SetScroll(x, y float64) *Camera {
	c.ScrollX = x
	c.ScrollY = y
	return c
}

// CenterOn scrolls so the given world point sits at the viewport center.
func (c *Camera) CenterOn(x, y float64) *Camera {
	return c.SetScroll(x-c.Viewport.Width/2, y-c.Viewport.Height/2)
}

// SetZoom sets the zoom factor directly.
func (c *Camera) SetZoom(zoom float64) *Camera {
	c.Zoom = zoom
	return c
}

// SetRotation sets the camera rotation in radians, applied around the
// viewport center.
func (c *Camera) SetRotation(radians float64) *Camera {
	c.Rotation = radians
	return c
}

// ScrollTo animates the scroll offset to the given values over duration
// seconds using the given easing function.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.ScrollX), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.ScrollY), float32(y), duration, easeFn),
	}
}

// ZoomTo animates the zoom factor to the given value over duration seconds.
func (c *Camera) ZoomTo(zoom float64, duration float32, easeFn ease.TweenFunc) {
	c.zoomTween = gween.New(float32(c.Zoom), float32(zoom), duration, easeFn)
	c.zoomDone = false
}

// update advances scroll and zoom tweens. Called from Scene.Update.
func (c *Camera) update(dt float32) {
	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.ScrollX = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.ScrollY = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.zoomTween != nil && !c.zoomDone {
		val, done := c.zoomTween.Update(dt)
		c.Zoom = float64(val)
		c.zoomDone = done
		if done {
			c.zoomTween = nil
		}
	}
}

// ViewMatrix returns the camera's view transform: zoom and rotation applied
// around the viewport center. Scroll is NOT part of the matrix; the renderer
// subtracts scroll per object, weighted by the object's scroll factor.
//
// The matrix is rebuilt whenever rotation, zoom, or the viewport center
// differ from the last call, so direct writes to the public fields take
// effect on the next draw.
func (c *Camera) ViewMatrix() *TransformMatrix {
	cx := c.Viewport.X + c.Viewport.Width/2
	cy := c.Viewport.Y + c.Viewport.Height/2

	if c.viewBuilt && c.Rotation == c.viewRotation && c.Zoom == c.viewZoom &&
		cx == c.viewCX && cy == c.viewCY {
		return c.viewMatrix
	}
	c.viewBuilt = true
	c.viewRotation = c.Rotation
	c.viewZoom = c.Zoom
	c.viewCX, c.viewCY = cx, cy

	c.viewMatrix.LoadIdentity().
		Translate(cx, cy).
		Rotate(c.Rotation).
		Scale(c.Zoom, c.Zoom).
		Translate(-cx, -cy)
	return c.viewMatrix
}

// WorldView returns the axis-aligned world-space rectangle the camera can
// see, ignoring rotation.
func (c *Camera) WorldView() Rect {
	w := c.Viewport.Width / c.Zoom
	h := c.Viewport.Height / c.Zoom
	return Rect{
		X:      c.ScrollX + (c.Viewport.Width-w)/2,
		Y:      c.ScrollY + (c.Viewport.Height-h)/2,
		Width:  w,
		Height: h,
	}
}
