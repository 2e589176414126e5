package bramble

import "math"

// RadToDeg converts radians to degrees when multiplied.
const RadToDeg = 180 / math.Pi

// DegToRad converts degrees to radians when multiplied.
const DegToRad = math.Pi / 180

// WrapAngle normalizes an angle in radians into the half-open interval
// (-π, π]. The result is congruent to the input modulo 2π.
func WrapAngle(radians float64) float64 {
	r := math.Mod(radians+math.Pi, 2*math.Pi)
	if r <= 0 {
		r += 2 * math.Pi
	}
	return r - math.Pi
}

// WrapDegrees normalizes an angle in degrees into (-180, 180].
func WrapDegrees(degrees float64) float64 {
	d := math.Mod(degrees+180, 360)
	if d <= 0 {
		d += 360
	}
	return d - 180
}

// RotateAround rotates the point in place around (cx, cy) by the given angle
// in radians and returns it.
func RotateAround(point *Vec2, cx, cy, angle float64) *Vec2 {
	sin, cos := math.Sincos(angle)
	tx := point.X - cx
	ty := point.Y - cy
	point.X = tx*cos - ty*sin + cx
	point.Y = tx*sin + ty*cos + cy
	return point
}
