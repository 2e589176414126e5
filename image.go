package bramble

// Image is the simplest renderable: a game object with the full transform,
// origin, size, flip, crop, and tint capability set that draws a single
// texture frame. Use it for anything static; animation belongs to richer
// types built the same way.
type Image struct {
	*GameObject
}

// NewImage creates an image at (x, y) bound to the named texture and frame
// (empty frame selects the texture's default), sized and anchored from the
// frame, and adds it to the scene's lists.
//
// The texture key must already be registered with the scene's texture
// manager.
func NewImage(scene *Scene, x, y float64, textureKey, frameKey string) *Image {
	img := &Image{GameObject: NewGameObject(scene, "Image")}

	img.SetPosition(x, y)
	img.SetTexture(textureKey, frameKey)
	img.SetOriginFromFrame()

	img.renderFn = img.render
	scene.Add(img.GameObject)
	return img
}

// render delegates drawing to the renderer.
func (i *Image) render(r *Renderer, cam *Camera) {
	r.BatchImage(i.GameObject, i.frame, cam)
}
