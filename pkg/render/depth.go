package render

import "math"

// DepthBuffer stores one depth value per pixel. Larger values are closer to
// the viewer; a cleared buffer holds negative infinity everywhere.
type DepthBuffer struct {
	width, height int
	values        []float64
}

// NewDepthBuffer creates a cleared depth buffer.
func NewDepthBuffer(width, height int) *DepthBuffer {
	d := &DepthBuffer{
		width:  width,
		height: height,
		values: make([]float64, width*height),
	}
	d.Clear()
	return d
}

// Clear resets every entry to negative infinity (call before each frame).
func (d *DepthBuffer) Clear() {
	n := len(d.values)
	if n == 0 {
		return
	}
	d.values[0] = math.Inf(-1)
	for i := 1; i < n; i *= 2 {
		copy(d.values[i:], d.values[:i])
	}
}

// Size returns the buffer dimensions.
func (d *DepthBuffer) Size() (int, int) {
	return d.width, d.height
}

// At returns the depth at (x, y), or negative infinity out of range.
func (d *DepthBuffer) At(x, y int) float64 {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return math.Inf(-1)
	}
	return d.values[x+y*d.width]
}

// TestAndSet stores z at (x, y) if it is strictly greater than the current
// value and reports whether it did.
func (d *DepthBuffer) TestAndSet(x, y int, z float64) bool {
	if x < 0 || x >= d.width || y < 0 || y >= d.height {
		return false
	}
	i := x + y*d.width
	if d.values[i] < z {
		d.values[i] = z
		return true
	}
	return false
}
