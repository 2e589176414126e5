// Package bramble is a retained-mode 2D game object model for [Ebitengine].
//
// Bramble provides the base entity every drawable is built from: a
// [GameObject] with position, rotation, scale, origin, size, flip, depth,
// alpha, crop, and texture-frame binding, plus the [Scene] display list
// that depth-sorts and renders it through [Camera] views.
//
// # Quick start
//
//	scene := bramble.NewScene(640, 480)
//	scene.Textures().AddImage("hero", heroImage)
//
//	hero := bramble.NewImage(scene, 100, 100, "hero", "")
//	hero.SetDepth(2)
//
//	bramble.Run(scene, bramble.RunConfig{Title: "My Game", Width: 640, Height: 480})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Game objects
//
// [GameObject] is a single flat struct carrying every capability, so
// concrete types compose by wrapping it rather than by inheritance.
// [Image] is the canonical renderable; richer types follow the same shape:
// embed the base object and install a render hook.
//
// Setters return the object for chaining:
//
//	img.SetPosition(32, 48).SetOrigin(0, 0).SetFlipX(true).SetAlpha(0.5)
//
// Depth ordering is deferred: every SetDepth queues a scene-level re-sort,
// and all queued requests coalesce into one stable sort before the next
// draw.
//
// # Textures and frames
//
// Textures are shared, non-owning references resolved by key through the
// scene's [TextureManager]. A [Frame] is a named sub-region carrying the
// geometry objects size and anchor themselves from; [Frame.SetCropUVs]
// computes crop rectangles against it.
//
// # Loading
//
// [Loader] fetches JSON assets into a [JSONCache], and [AssetWatcher]
// reports file changes for hot reloading. [LoadRunConfig] reads window
// settings from TOML.
//
// Bramble is single-threaded: scenes, objects, and caches must only be
// touched from the game loop's goroutine.
//
// [Ebitengine]: https://ebitengine.org
package bramble
