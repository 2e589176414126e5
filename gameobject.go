package bramble

// objectIDCounter is a plain counter; bramble is single-threaded so no atomic.
var objectIDCounter uint32

func nextObjectID() uint32 {
	objectIDCounter++
	return objectIDCounter
}

// GameObject is the base unit of the display list: a positionable, scalable,
// rotatable entity bound to a texture frame. A single flat struct carries
// every capability (transform, origin, size, flip, depth, alpha, crop) to
// avoid interface dispatch on the hot path; concrete types such as [Image]
// wrap it and supply a render hook.
//
// A game object belongs to exactly one Scene from construction until
// Destroy, which severs the link permanently.
type GameObject struct {
	EventEmitter

	// Identity
	ID   uint32
	Name string

	scene   *Scene
	objType string
	state   any

	// Spatial. X and Y are plain fields: writing them has no side effects.
	// Rotation, origin, and size are behind accessors because writes must
	// keep derived caches consistent.
	X, Y           float64
	ScaleX, ScaleY float64
	rotation       float64

	originX, originY               float64
	displayOriginX, displayOriginY float64

	width, height float64

	// Visual
	Alpha          float64
	FlipX, FlipY   bool
	visible        bool
	depth          int
	CameraFilter   uint32
	ScrollFactorX  float64
	ScrollFactorY  float64
	Tint           Color

	// Texture binding
	texture   *Texture
	frame     *Frame
	isCropped bool
	crop      CropRecord

	// Lifecycle
	Active        bool
	IgnoreDestroy bool

	// Per-object hooks (nil by default; zero cost when unused)
	OnPreUpdate        func(time, delta float64)
	OnPreDestroy       func()
	OnAddedToScene     func()
	OnRemovedFromScene func()

	// renderFn is set by concrete types to submit draw calls.
	renderFn func(*Renderer, *Camera)
}

// NewGameObject creates a base game object owned by the given scene.
// Concrete types normally construct it for you; use this directly only when
// building a custom renderable.
func NewGameObject(scene *Scene, objType string) *GameObject {
	return &GameObject{
		ID:            nextObjectID(),
		scene:         scene,
		objType:       objType,
		ScaleX:        1,
		ScaleY:        1,
		originX:       0.5,
		originY:       0.5,
		Alpha:         1,
		visible:       true,
		ScrollFactorX: 1,
		ScrollFactorY: 1,
		Tint:          ColorWhite,
		Active:        true,
	}
}

// Scene returns the owning scene, or nil after Destroy.
func (g *GameObject) Scene() *Scene {
	return g.scene
}

// Type returns the type tag the object was constructed with (e.g. "Image").
func (g *GameObject) Type() string {
	return g.objType
}

// SetName sets the object's free-form name.
func (g *GameObject) SetName(name string) *GameObject {
	g.Name = name
	return g
}

// State returns the free-form state tag previously set with SetState.
func (g *GameObject) State() any {
	return g.state
}

// SetState sets a free-form state tag. The engine never interprets it;
// it exists for game-level state machines ("idle", "walking", 404, ...).
func (g *GameObject) SetState(state any) *GameObject {
	g.state = state
	return g
}

// SetActive sets whether the object participates in the scene's update pass.
// Rendering is unaffected; see SetVisible for that.
func (g *GameObject) SetActive(active bool) *GameObject {
	g.Active = active
	return g
}

// SetIgnoreDestroy makes subsequent Destroy calls no-ops until cleared.
func (g *GameObject) SetIgnoreDestroy(ignore bool) *GameObject {
	g.IgnoreDestroy = ignore
	return g
}

// Texture returns the bound texture, or nil if none was set.
func (g *GameObject) Texture() *Texture {
	return g.texture
}

// Frame returns the bound frame, or nil if none was set.
func (g *GameObject) Frame() *Frame {
	return g.frame
}

// WillRender reports whether the object should be drawn for the given
// camera this frame: it must be visible, have non-zero alpha, and not be
// excluded by the camera filter bitmask. Pure predicate, no side effects.
func (g *GameObject) WillRender(cam *Camera) bool {
	return g.visible && g.Alpha != 0 && g.CameraFilter&cam.id == 0
}

// Render submits the object's draw call. The base object draws nothing;
// concrete types install a render hook at construction.
func (g *GameObject) Render(r *Renderer, cam *Camera) {
	if g.renderFn != nil {
		g.renderFn(r, cam)
	}
}

// Update runs the per-frame hook. The scene calls this from its update pass
// only while the object is active.
func (g *GameObject) Update(time, delta float64) {
	if g.OnPreUpdate != nil {
		g.OnPreUpdate(time, delta)
	}
}

// addedToScene is invoked by the display list when the object joins it.
func (g *GameObject) addedToScene() {
	if g.OnAddedToScene != nil {
		g.OnAddedToScene()
	}
	g.Emit(EventAddedToScene, g)
}

// removedFromScene is invoked by the display list when the object leaves it.
func (g *GameObject) removedFromScene() {
	if g.OnRemovedFromScene != nil {
		g.OnRemovedFromScene()
	}
	g.Emit(EventRemovedFromScene, g)
}

// Destroy tears the object down: it runs the pre-destroy hook, emits
// EventDestroy (listeners can still query Scene at that point), removes the
// object from the scene's lists, deactivates it, severs the scene link, and
// drops all listeners.
//
// Idempotent: destroying an already-destroyed object is a no-op, as is any
// call while IgnoreDestroy is set.
func (g *GameObject) Destroy() {
	g.destroy(false)
}

// destroy implements Destroy. fromScene is true when the scene's own
// teardown is driving the call, in which case list removal is skipped
// because the scene is already dismantling its lists.
func (g *GameObject) destroy(fromScene bool) {
	if g.scene == nil || g.IgnoreDestroy {
		return
	}

	if g.OnPreDestroy != nil {
		g.OnPreDestroy()
	}

	// Emit before detaching so listeners can still reach the scene.
	g.Emit(EventDestroy, g, fromScene)

	scene := g.scene
	if !fromScene {
		scene.displayList.Remove(g)
		scene.removeFromUpdateList(g)
		scene.QueueDepthSort()
	}

	g.Active = false
	g.visible = false
	g.scene = nil
	g.renderFn = nil
	g.RemoveAllListeners()
}
