package bramble

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer submits game object draw calls to an ebiten target image.
// Concrete game object types call BatchImage (or an equivalent per-type
// submission) from their render hook; the scene sets the target each frame.
type Renderer struct {
	target *ebiten.Image

	// submitted counts draw calls since construction. Diagnostic only.
	submitted int
}

// NewRenderer creates a renderer with no target. The scene assigns the
// frame's screen image before drawing.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetTarget assigns the image draws are submitted to.
func (r *Renderer) SetTarget(target *ebiten.Image) {
	r.target = target
}

// Submitted returns the number of draw calls submitted so far.
func (r *Renderer) Submitted() int {
	return r.submitted
}

// BatchImage draws one textured quad for the given object and frame through
// the given camera: crop selects the source rect, flip mirrors it, then the
// object's origin, scale, rotation, and scroll-factor-weighted position are
// applied, followed by the camera's zoom/rotation view matrix.
//
// Sourceless (headless) textures and empty source rects are skipped.
func (r *Renderer) BatchImage(g *GameObject, frame *Frame, cam *Camera) {
	if r.target == nil || frame == nil {
		return
	}
	src := frame.texture.source
	if src == nil {
		return
	}

	// Source rect in texture space, and its top-left in untrimmed sprite
	// space. A crop replaces both with the crop record's sample rect.
	sx, sy := frame.CutX, frame.CutY
	sw, sh := frame.CutWidth, frame.CutHeight
	dx, dy := frame.X, frame.Y
	if g.isCropped {
		sx, sy = g.crop.CX, g.crop.CY
		sw, sh = g.crop.CW, g.crop.CH
		dx, dy = g.crop.X, g.crop.Y
	}
	if sw <= 0 || sh <= 0 {
		return
	}
	sub := src.SubImage(image.Rect(int(sx), int(sy), int(sx+sw), int(sy+sh))).(*ebiten.Image)

	var op ebiten.DrawImageOptions

	// Mirror the sampled pixels in place, then reposition the drawn block
	// within the untrimmed sprite rect so the sprite flips about itself.
	if g.FlipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(sw, 0)
		dx = frame.RealWidth - dx - sw
	}
	if g.FlipY {
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, sh)
		dy = frame.RealHeight - dy - sh
	}

	// Anchor at the display origin, then ITRS.
	op.GeoM.Translate(dx-g.displayOriginX, dy-g.displayOriginY)
	op.GeoM.Scale(g.ScaleX, g.ScaleY)
	op.GeoM.Rotate(g.rotation)
	op.GeoM.Translate(
		g.X-cam.ScrollX*g.ScrollFactorX,
		g.Y-cam.ScrollY*g.ScrollFactorY,
	)

	// Camera zoom/rotation around the viewport center.
	v := cam.ViewMatrix()
	var view ebiten.GeoM
	view.SetElement(0, 0, v.A)
	view.SetElement(1, 0, v.B)
	view.SetElement(0, 1, v.C)
	view.SetElement(1, 1, v.D)
	view.SetElement(0, 2, v.TX)
	view.SetElement(1, 2, v.TY)
	op.GeoM.Concat(view)

	// Premultiplied tint * alpha.
	a := float32(g.Alpha)
	op.ColorScale.Scale(
		float32(g.Tint.R)*a,
		float32(g.Tint.G)*a,
		float32(g.Tint.B)*a,
		float32(g.Tint.A)*a,
	)

	r.target.DrawImage(sub, &op)
	r.submitted++
}
