package bramble

// CropRecord is the fixed-shape crop state computed by Frame.SetCropUVs:
// the crop rectangle in unscaled sprite pixels (X, Y, Width, Height), the
// texture-space sample rect (CX, CY, CW, CH), its normalized UVs, and the
// flip flags the rect was computed for. The zero value is the canonical
// "no crop" state.
type CropRecord struct {
	U0, V0, U1, V1 float64

	X, Y float64

	CX, CY, CW, CH float64

	Width, Height float64

	FlipX, FlipY bool
}

// IsCropped reports whether a crop rectangle is currently applied.
func (g *GameObject) IsCropped() bool {
	return g.isCropped
}

// Crop returns a copy of the current crop record. The record keeps its last
// computed values even after ResetCrop; check IsCropped for whether it is
// in effect.
func (g *GameObject) Crop() CropRecord {
	return g.crop
}

// SetCrop restricts rendering to the given rectangle of the frame, in
// unscaled sprite coordinates. The frame computes the UV and pixel sample
// rect, honoring the object's current flip flags; rendering applies the
// object's scale on top.
//
// Calling with no frame bound is a benign no-op: the crop is silently not
// applied.
func (g *GameObject) SetCrop(x, y, width, height float64) *GameObject {
	if g.frame == nil {
		return g
	}
	g.frame.SetCropUVs(&g.crop, x, y, width, height, g.FlipX, g.FlipY)
	g.isCropped = true
	return g
}

// ResetCrop disables cropping. The crop record retains its last computed
// values; only the flag is cleared.
func (g *GameObject) ResetCrop() *GameObject {
	g.isCropped = false
	return g
}

// refreshCrop recomputes the crop rect after a flip or frame change while a
// crop is active.
func (g *GameObject) refreshCrop() {
	if g.isCropped && g.frame != nil {
		g.frame.SetCropUVs(&g.crop, g.crop.X, g.crop.Y, g.crop.Width, g.crop.Height, g.FlipX, g.FlipY)
	}
}

// SetTexture binds the texture registered under key in the scene's texture
// manager, then binds the named frame from it (empty frameKey selects the
// texture's default frame). The key must exist: an unknown key leaves a nil
// texture behind and the frame bind panics.
func (g *GameObject) SetTexture(key, frameKey string) *GameObject {
	g.texture = g.scene.Textures().Get(key)
	return g.SetFrame(frameKey, true, true)
}

// SetFrame binds a frame from the currently bound texture. When updateSize
// is set the object's native size is taken from the frame; when
// updateOrigin is set the origin follows the frame's custom pivot if it has
// one, otherwise the display-origin cache is refreshed against the new
// size. An active crop is recomputed against the new frame.
func (g *GameObject) SetFrame(frameKey string, updateSize, updateOrigin bool) *GameObject {
	g.frame = g.texture.Get(frameKey)

	if updateSize {
		g.SetSizeToFrame(g.frame)
	}
	if updateOrigin {
		if g.frame.CustomPivot {
			g.SetOrigin(g.frame.PivotX, g.frame.PivotY)
		} else {
			g.UpdateDisplayOrigin()
		}
	}
	g.refreshCrop()
	return g
}
