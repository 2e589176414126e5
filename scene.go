package bramble

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DisplayList is a scene's ordered list of renderables. Order is draw
// order: later entries draw on top. A depth sort reorders the list by each
// object's depth key while preserving insertion order within equal depths.
type DisplayList struct {
	items []*GameObject
}

// Add appends the object to the end of the list. Adding an object that is
// already present is a no-op.
func (d *DisplayList) Add(g *GameObject) {
	if d.GetIndex(g) >= 0 {
		return
	}
	d.items = append(d.items, g)
	g.addedToScene()
}

// Remove detaches the object from the list. Removing an absent object is a
// no-op.
func (d *DisplayList) Remove(g *GameObject) {
	for i, item := range d.items {
		if item == g {
			copy(d.items[i:], d.items[i+1:])
			d.items[len(d.items)-1] = nil
			d.items = d.items[:len(d.items)-1]
			g.removedFromScene()
			return
		}
	}
}

// GetIndex returns the object's position in draw order, or -1 if absent.
func (d *DisplayList) GetIndex(g *GameObject) int {
	for i, item := range d.items {
		if item == g {
			return i
		}
	}
	return -1
}

// Len returns the number of objects in the list.
func (d *DisplayList) Len() int {
	return len(d.items)
}

// At returns the object at the given draw-order position.
func (d *DisplayList) At(index int) *GameObject {
	return d.items[index]
}

// BringToTop moves the object to the end of the list so it draws last.
// Note a pending depth sort will reorder by depth keys regardless.
func (d *DisplayList) BringToTop(g *GameObject) {
	i := d.GetIndex(g)
	if i < 0 || i == len(d.items)-1 {
		return
	}
	copy(d.items[i:], d.items[i+1:])
	d.items[len(d.items)-1] = g
}

// SendToBack moves the object to the front of the list so it draws first.
func (d *DisplayList) SendToBack(g *GameObject) {
	i := d.GetIndex(g)
	if i <= 0 {
		return
	}
	copy(d.items[1:], d.items[:i])
	d.items[0] = g
}

// sortByDepth stably reorders the list by depth key. Insertion sort keeps
// equal depths in insertion order without allocating.
func (d *DisplayList) sortByDepth() {
	items := d.items
	for i := 1; i < len(items); i++ {
		key := items[i]
		j := i - 1
		for j >= 0 && items[j].depth > key.depth {
			items[j+1] = items[j]
			j--
		}
		items[j+1] = key
	}
}

// Scene owns the display list, update list, cameras, and texture registry,
// and drives the per-frame update and draw passes. All operations are
// single-threaded: the scene runs update and draw sequentially, once per
// frame, on the caller's goroutine.
type Scene struct {
	textures    *TextureManager
	displayList *DisplayList
	updateList  []*GameObject
	cameras     []*Camera

	width, height float64

	renderer *Renderer

	// Depth sorting is the one deferred operation in the core: every depth
	// write queues a request, and all requests pending at draw time coalesce
	// into a single stable sort.
	depthSortPending  bool
	depthSortRequests int

	debug bool
	now   float64
}

// NewScene creates a scene with the given viewport dimensions and a single
// main camera covering it.
func NewScene(width, height float64) *Scene {
	s := &Scene{
		textures:    NewTextureManager(),
		displayList: &DisplayList{},
		width:       width,
		height:      height,
		renderer:    NewRenderer(),
	}
	s.AddCamera(Rect{Width: width, Height: height})
	return s
}

// Width returns the viewport width.
func (s *Scene) Width() float64 { return s.width }

// Height returns the viewport height.
func (s *Scene) Height() float64 { return s.height }

// Textures returns the scene's texture registry.
func (s *Scene) Textures() *TextureManager {
	return s.textures
}

// DisplayList returns the scene's display list.
func (s *Scene) DisplayList() *DisplayList {
	return s.displayList
}

// MainCamera returns the first camera.
func (s *Scene) MainCamera() *Camera {
	return s.cameras[0]
}

// Cameras returns the camera list. The returned slice MUST NOT be mutated.
func (s *Scene) Cameras() []*Camera {
	return s.cameras
}

// AddCamera creates a camera with the given viewport, assigns it the next
// free identity bit, and adds it to the scene. Camera identity bits pair
// with GameObject.CameraFilter to exclude objects per camera.
func (s *Scene) AddCamera(viewport Rect) *Camera {
	cam := newCamera(1<<uint32(len(s.cameras)), viewport)
	s.cameras = append(s.cameras, cam)
	return cam
}

// Add places the object on the display and update lists and queues a depth
// sort so it slots into z-order before the next draw.
func (s *Scene) Add(g *GameObject) *GameObject {
	s.displayList.Add(g)
	s.updateList = append(s.updateList, g)
	s.QueueDepthSort()
	return g
}

// Remove detaches the object from the scene's lists without destroying it.
func (s *Scene) Remove(g *GameObject) {
	s.displayList.Remove(g)
	s.removeFromUpdateList(g)
	s.QueueDepthSort()
}

func (s *Scene) removeFromUpdateList(g *GameObject) {
	for i, item := range s.updateList {
		if item == g {
			copy(s.updateList[i:], s.updateList[i+1:])
			s.updateList[len(s.updateList)-1] = nil
			s.updateList = s.updateList[:len(s.updateList)-1]
			return
		}
	}
}

// QueueDepthSort requests a depth re-sort of the display list before the
// next draw. Requests coalesce: any number of calls between draws produce
// one sort.
func (s *Scene) QueueDepthSort() {
	s.depthSortPending = true
	s.depthSortRequests++
}

// DepthSortRequests returns the number of sort requests received since the
// scene was created. Diagnostic counter; the pending flag is what drives
// the actual sort.
func (s *Scene) DepthSortRequests() int {
	return s.depthSortRequests
}

// DepthSort runs a pending depth sort immediately instead of waiting for
// the next draw. No-op when nothing is pending.
func (s *Scene) DepthSort() {
	if !s.depthSortPending {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	s.displayList.sortByDepth()
	s.depthSortPending = false
	if s.debug {
		logger.Debug("depth sort", "objects", s.displayList.Len(), "took", time.Since(t0))
	}
}

// Update advances the scene one tick: camera effects first (so follow-style
// logic sees settled cameras), then every active object's update hook.
// time is the absolute clock in seconds, delta the elapsed seconds since
// the previous tick.
func (s *Scene) Update(time, delta float64) {
	s.now = time

	for _, cam := range s.cameras {
		cam.update(float32(delta))
	}

	// Objects may destroy themselves (or others) mid-pass; iterate a
	// snapshot so removal doesn't skip entries.
	for _, g := range append([]*GameObject(nil), s.updateList...) {
		if g.Active && g.scene != nil {
			g.Update(time, delta)
		}
	}
}

// Draw renders the scene to the given target: a pending depth sort runs
// first, then every object passing the render gate is submitted once per
// camera, in display-list order.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.DepthSort()
	s.renderer.target = screen

	for _, cam := range s.cameras {
		for _, g := range s.displayList.items {
			if g.WillRender(cam) {
				g.Render(s.renderer, cam)
			}
		}
	}
}

// SetDebugMode enables or disables debug diagnostics: frame-lookup
// fallbacks and depth-sort timing are logged while enabled.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// Destroy tears down every object in the scene. Objects are destroyed via
// the fromScene path, so they skip individual list removal; the lists are
// dropped wholesale afterwards.
func (s *Scene) Destroy() {
	for _, g := range append([]*GameObject(nil), s.displayList.items...) {
		g.destroy(true)
	}
	s.displayList.items = nil
	s.updateList = nil
}
