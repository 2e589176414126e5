package bramble

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// globalDebug mirrors the most recently set Scene debug flag so that game
// object operations (which may run before a Scene exists) can check it
// cheaply. Only valid with a single Scene; multiple Scenes with differing
// debug modes will reflect whichever called SetDebugMode last.
var globalDebug bool

// logger is the package-wide structured logger. The loader and scene debug
// stats write through it; everything else stays silent.
var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.RFC3339,
	Prefix:          "bramble",
})

// SetLogLevel adjusts the verbosity of the package logger.
// The default level hides debug output; pass log.DebugLevel to see
// loader and depth-sort diagnostics.
func SetLogLevel(level log.Level) {
	logger.SetLevel(level)
}
