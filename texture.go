package bramble

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// BaseFrameName is the frame every texture gets at creation, covering the
// whole source image.
const BaseFrameName = "__BASE"

// Texture is a shared, non-owning wrapper around a source image plus a set of
// named frames. Game objects hold references to textures; the manager owns
// the underlying image data.
type Texture struct {
	// Key is the unique name the texture was registered under.
	Key string

	source        *ebiten.Image
	width, height float64
	frames        map[string]*Frame
	firstFrame    string
}

// NewTexture creates a texture with a single base frame covering the full
// source size. The source image may be nil for headless use (frame geometry
// and crop math work without pixels; rendering skips sourceless textures).
func NewTexture(key string, source *ebiten.Image, width, height int) *Texture {
	if source != nil {
		b := source.Bounds()
		width, height = b.Dx(), b.Dy()
	}
	t := &Texture{
		Key:    key,
		source: source,
		width:  float64(width),
		height: float64(height),
		frames: make(map[string]*Frame),
	}
	t.AddFrame(BaseFrameName, 0, 0, float64(width), float64(height))
	return t
}

// Source returns the underlying image, or nil for a headless texture.
func (t *Texture) Source() *ebiten.Image {
	return t.source
}

// Width returns the source image width in pixels.
func (t *Texture) Width() float64 { return t.width }

// Height returns the source image height in pixels.
func (t *Texture) Height() float64 { return t.height }

// AddFrame registers a named sub-region of the source image and returns it.
// Re-adding an existing name replaces the previous frame.
func (t *Texture) AddFrame(name string, x, y, width, height float64) *Frame {
	f := &Frame{
		Name:       name,
		CutX:       x,
		CutY:       y,
		CutWidth:   width,
		CutHeight:  height,
		Width:      width,
		Height:     height,
		RealWidth:  width,
		RealHeight: height,
		texture:    t,
	}
	f.updateUVs()
	if _, exists := t.frames[name]; !exists && t.firstFrame == "" && name != BaseFrameName {
		t.firstFrame = name
	}
	t.frames[name] = f
	return f
}

// Has reports whether a frame with the given name exists.
func (t *Texture) Has(name string) bool {
	_, ok := t.frames[name]
	return ok
}

// Get returns the named frame. An empty name resolves to the first non-base
// frame added, or the base frame if none were. An unknown name logs a debug
// warning and falls back to the base frame rather than failing.
func (t *Texture) Get(name string) *Frame {
	if name == "" {
		if t.firstFrame != "" {
			name = t.firstFrame
		} else {
			name = BaseFrameName
		}
	}
	if f, ok := t.frames[name]; ok {
		return f
	}
	if globalDebug {
		logger.Warn("frame not found, using base frame", "texture", t.Key, "frame", name)
	}
	return t.frames[BaseFrameName]
}

// FrameNames returns the names of all registered frames, in no particular order.
func (t *Texture) FrameNames() []string {
	names := make([]string, 0, len(t.frames))
	for name := range t.frames {
		names = append(names, name)
	}
	return names
}

// --- Frame ---

// Frame describes a rectangular sub-region of a texture, plus the geometry a
// game object needs to size and anchor itself: the untrimmed ("real") size,
// trim offsets, and an optional custom pivot.
type Frame struct {
	// Name is the frame's key within its texture.
	Name string

	// CutX, CutY, CutWidth, CutHeight locate the frame's pixels within the
	// texture source.
	CutX, CutY          float64
	CutWidth, CutHeight float64

	// X and Y are the trim offset: where the cut rect sits within the
	// untrimmed sprite. Zero unless the frame is trimmed.
	X, Y float64

	// Width and Height are the frame size as drawn (equal to the cut size).
	Width, Height float64

	// RealWidth and RealHeight are the untrimmed sprite size as authored.
	// Game objects take their native size from these.
	RealWidth, RealHeight float64

	// Trimmed is true when transparent padding was stripped by the packer.
	Trimmed bool

	// CustomPivot declares that PivotX and PivotY carry a normalized origin
	// authored in the texture data.
	CustomPivot    bool
	PivotX, PivotY float64

	// U0, V0, U1, V1 are the cut rect in normalized texture coordinates.
	U0, V0, U1, V1 float64

	texture *Texture
}

// Texture returns the texture this frame belongs to.
func (f *Frame) Texture() *Texture {
	return f.texture
}

// SetTrim records that the packer stripped transparent padding: the sprite
// was authored at actualWidth x actualHeight, and the surviving pixels sit at
// (destX, destY) with size destWidth x destHeight.
func (f *Frame) SetTrim(actualWidth, actualHeight, destX, destY, destWidth, destHeight float64) *Frame {
	f.Trimmed = true
	f.RealWidth = actualWidth
	f.RealHeight = actualHeight
	f.X = destX
	f.Y = destY
	f.Width = destWidth
	f.Height = destHeight
	return f
}

// SetPivot declares a custom normalized origin for this frame.
func (f *Frame) SetPivot(x, y float64) *Frame {
	f.CustomPivot = true
	f.PivotX = x
	f.PivotY = y
	return f
}

// updateUVs recomputes the normalized texture coordinates from the cut rect.
func (f *Frame) updateUVs() {
	tw := f.texture.width
	th := f.texture.height
	if tw == 0 || th == 0 {
		return
	}
	f.U0 = f.CutX / tw
	f.V0 = f.CutY / th
	f.U1 = (f.CutX + f.CutWidth) / tw
	f.V1 = (f.CutY + f.CutHeight) / th
}

// SetCropUVs fills the caller-owned crop record with the UV and pixel-space
// rectangle for cropping this frame to (x, y, width, height), given in
// unscaled sprite coordinates. Flip flags mirror the sampled region so the
// crop stays anchored to the same visual corner.
//
// Pure geometry: the frame is not mutated.
func (f *Frame) SetCropUVs(crop *CropRecord, x, y, width, height float64, flipX, flipY bool) *CropRecord {
	cx := f.CutX
	cy := f.CutY
	cw := f.CutWidth
	ch := f.CutHeight
	rw := f.RealWidth
	rh := f.RealHeight

	x = clamp(x, 0, rw)
	y = clamp(y, 0, rh)
	width = clamp(width, 0, rw-x)
	height = clamp(height, 0, rh-y)

	ox := cx + x
	oy := cy + y
	ow := width
	oh := height

	if f.Trimmed {
		// The crop rect is in untrimmed sprite space; intersect it with the
		// surviving pixels. No overlap means an empty sample rect.
		ssRight := f.X + cw
		ssBottom := f.Y + ch
		cropRight := x + width
		cropBottom := y + height

		if ssRight < x || ssBottom < y || f.X > cropRight || f.Y > cropBottom {
			ox, oy, ow, oh = 0, 0, 0, 0
		} else {
			ix := math.Max(f.X, x)
			iy := math.Max(f.Y, y)
			iw := math.Min(ssRight, cropRight) - ix
			ih := math.Min(ssBottom, cropBottom) - iy

			ow = iw
			oh = ih
			if flipX {
				ox = cx + (cw - (ix - f.X) - iw)
			} else {
				ox = cx + (ix - f.X)
			}
			if flipY {
				oy = cy + (ch - (iy - f.Y) - ih)
			} else {
				oy = cy + (iy - f.Y)
			}
			x = ix
			y = iy
			width = iw
			height = ih
		}
	} else {
		if flipX {
			ox = cx + (rw - x - width)
		}
		if flipY {
			oy = cy + (rh - y - height)
		}
	}

	tw := f.texture.width
	th := f.texture.height

	crop.U0 = math.Max(0, ox/tw)
	crop.V0 = math.Max(0, oy/th)
	crop.U1 = math.Min(1, (ox+ow)/tw)
	crop.V1 = math.Min(1, (oy+oh)/th)

	crop.X = x
	crop.Y = y
	crop.CX = ox
	crop.CY = oy
	crop.CW = ow
	crop.CH = oh
	crop.Width = width
	crop.Height = height
	crop.FlipX = flipX
	crop.FlipY = flipY

	return crop
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// --- TextureManager ---

// TextureManager is the scene's texture registry: a flat key -> Texture map.
// It owns nothing beyond the map; image lifetime belongs to the caller.
type TextureManager struct {
	textures map[string]*Texture
}

// NewTextureManager creates an empty texture registry.
func NewTextureManager() *TextureManager {
	return &TextureManager{textures: make(map[string]*Texture)}
}

// AddImage registers an image under the given key and returns its texture.
// Re-using a key replaces the previous texture.
func (m *TextureManager) AddImage(key string, img *ebiten.Image) *Texture {
	t := NewTexture(key, img, 0, 0)
	m.textures[key] = t
	return t
}

// Add registers an already-constructed texture under its key.
func (m *TextureManager) Add(t *Texture) *Texture {
	m.textures[t.Key] = t
	return t
}

// Has reports whether a texture with the given key exists.
func (m *TextureManager) Has(key string) bool {
	_, ok := m.textures[key]
	return ok
}

// Get returns the texture registered under key, or nil if the key is
// unknown. Callers binding a texture to a game object must ensure the key
// exists; a nil result dereferenced downstream is a programmer error.
func (m *TextureManager) Get(key string) *Texture {
	return m.textures[key]
}

// Remove deletes the texture registered under key.
// Images referenced by live game objects are unaffected.
func (m *TextureManager) Remove(key string) {
	delete(m.textures, key)
}
