package render

import (
	"math/rand/v2"

	"github.com/taigrr/softrender/pkg/math3d"
)

// ShadingKind selects how FillTriangle colors its pixels.
type ShadingKind int

const (
	// ShadeFlat uses a single literal color.
	ShadeFlat ShadingKind = iota
	// ShadeGradient colors each pixel by its screen position.
	ShadeGradient
	// ShadeRandom picks one random color per triangle.
	ShadeRandom
)

// Shading describes the coloring of a filled triangle. Color is only
// meaningful for ShadeFlat.
type Shading struct {
	Kind  ShadingKind
	Color Color
}

// Flat returns a shading that paints every pixel with c.
func Flat(c Color) Shading {
	return Shading{Kind: ShadeFlat, Color: c}
}

// ScreenGradient returns a shading where red grows with x and green with y
// across the whole surface.
func ScreenGradient() Shading {
	return Shading{Kind: ShadeGradient}
}

// RandomPerTriangle returns a shading that picks one random opaque color
// per triangle.
func RandomPerTriangle() Shading {
	return Shading{Kind: ShadeRandom}
}

// DefaultLight is the light direction used when none is configured: along
// -Z, into the screen.
var DefaultLight = math3d.V3(0, 0, -1)

// FaceIntensity returns the flat lighting term for a face given its
// object-space vertices. The normal is (v2-v0) x (v1-v0); a degenerate face
// has a zero normal and zero intensity. Values <= 0 mean the face points away
// from the light.
func FaceIntensity(v0, v1, v2, light math3d.Vec3) float64 {
	n := v2.Sub(v0).Cross(v1.Sub(v0)).Normalize()
	return n.Dot(light)
}

// Greyscale maps an intensity in [0, 1] to an opaque grey.
func Greyscale(intensity float64) Color {
	intensity = min(max(intensity, 0), 1)
	v := uint8(255 * intensity)
	return RGB(v, v, v)
}

// gradientColor maps a pixel position to (255*x/(w-1), 255*y/(h-1), 0).
func gradientColor(x, y, width, height int) Color {
	return RGB(gradientChannel(x, width), gradientChannel(y, height), 0)
}

func gradientChannel(v, size int) uint8 {
	d := max(size-1, 1)
	v = min(max(v, 0), d)
	return uint8(255 * v / d)
}

func randomColor(rng *rand.Rand) Color {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}
	return RGB(uint8(intN(255)), uint8(intN(255)), uint8(intN(255)))
}
