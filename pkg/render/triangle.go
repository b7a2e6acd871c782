package render

import (
	"math"
	"math/rand/v2"

	"github.com/taigrr/softrender/pkg/math3d"
)

// BBox is an inclusive pixel rectangle.
type BBox struct {
	Min, Max math3d.Vec2i
}

// Empty reports whether the box contains no pixels.
func (b BBox) Empty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// BoundingBox returns the screen-space bounds of pts clamped to a
// width x height surface. Coordinates are truncated toward zero. A triangle
// that misses the surface entirely yields an empty box.
func BoundingBox(pts [3]math3d.Vec3, width, height int) BBox {
	lo := math3d.V2i(int(pts[0].X), int(pts[0].Y))
	hi := lo
	for _, p := range pts[1:] {
		x, y := int(p.X), int(p.Y)
		lo = math3d.V2i(min(lo.X, x), min(lo.Y, y))
		hi = math3d.V2i(max(hi.X, x), max(hi.Y, y))
	}
	if hi.X < 0 || hi.Y < 0 || lo.X > width-1 || lo.Y > height-1 {
		return BBox{Min: math3d.V2i(0, 0), Max: math3d.V2i(-1, -1)}
	}
	return BBox{
		Min: math3d.V2i(max(lo.X, 0), max(lo.Y, 0)),
		Max: math3d.V2i(min(hi.X, width-1), min(hi.Y, height-1)),
	}
}

// Barycentric returns the barycentric coordinates of p with respect to the
// screen-space triangle pts (only X and Y are used). Coordinates are ordered
// so that the first weights pts[0]. For a degenerate triangle, whose doubled
// area is below one pixel, it returns (-1, 1, 1), which every inside test
// rejects.
func Barycentric(pts [3]math3d.Vec3, p math3d.Vec2) math3d.Vec3 {
	a, b, c := pts[0], pts[1], pts[2]
	u := math3d.V3(c.X-a.X, b.X-a.X, a.X-p.X).Cross(math3d.V3(c.Y-a.Y, b.Y-a.Y, a.Y-p.Y))
	if math.Abs(u.Z) < 1 {
		return math3d.V3(-1, 1, 1)
	}
	return math3d.V3(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z)
}

// FillTriangle rasterizes a screen-space triangle with a depth test. Depth
// is interpolated from the Z of pts and a pixel is written only when its
// depth is strictly greater than the stored value. The returned count is the
// number of pixels written.
//
// rng is consulted once for RandomPerTriangle shading; if nil the global
// source is used.
func FillTriangle(s Surface, depth *DepthBuffer, pts [3]math3d.Vec3, sh Shading, rng *rand.Rand) int {
	width, height := s.Size()
	box := BoundingBox(pts, width, height)
	if box.Empty() {
		return 0
	}

	flat := sh.Color
	if sh.Kind == ShadeRandom {
		flat = randomColor(rng)
	}

	written := 0
	for x := box.Min.X; x <= box.Max.X; x++ {
		for y := box.Min.Y; y <= box.Max.Y; y++ {
			bc := Barycentric(pts, math3d.V2(float64(x), float64(y)))
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}
			z := pts[0].Z*bc.X + pts[1].Z*bc.Y + pts[2].Z*bc.Z
			if !depth.TestAndSet(x, y, z) {
				continue
			}
			if sh.Kind == ShadeGradient {
				s.Set(x, y, gradientColor(x, y, width, height))
			} else {
				s.Set(x, y, flat)
			}
			written++
		}
	}
	return written
}
