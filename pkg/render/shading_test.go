package render

import (
	"math"
	"testing"

	"github.com/taigrr/softrender/pkg/math3d"
)

func TestFaceIntensity(t *testing.T) {
	tests := []struct {
		name       string
		v0, v1, v2 math3d.Vec3
		want       float64
	}{
		{"facing light", math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, 0), 1},
		{"facing away", math3d.V3(0, 0, 0), math3d.V3(0, 1, 0), math3d.V3(1, 0, 0), -1},
		{"edge on", math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 0, 1), 0},
		{"degenerate", math3d.V3(0, 0, 0), math3d.V3(1, 1, 1), math3d.V3(2, 2, 2), 0},
		{"tilted", math3d.V3(0, 0, 0), math3d.V3(1, 0, 0), math3d.V3(0, 1, -1), math.Sqrt2 / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FaceIntensity(tc.v0, tc.v1, tc.v2, DefaultLight)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Errorf("FaceIntensity = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestGreyscale(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{0.5, 127},
		{1, 255},
		{1.5, 255},
		{-1, 0},
	}
	for _, tc := range tests {
		got := Greyscale(tc.in)
		if got != RGB(tc.want, tc.want, tc.want) {
			t.Errorf("Greyscale(%v) = %v, want grey %d", tc.in, got, tc.want)
		}
	}
}

func TestGradientColor(t *testing.T) {
	tests := []struct {
		name       string
		x, y, w, h int
		want       Color
	}{
		{"origin", 0, 0, 800, 800, RGB(0, 0, 0)},
		{"far corner", 799, 799, 800, 800, RGB(255, 255, 0)},
		{"middle", 400, 0, 801, 800, RGB(127, 0, 0)},
		{"single pixel", 0, 0, 1, 1, RGB(0, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := gradientColor(tc.x, tc.y, tc.w, tc.h); got != tc.want {
				t.Errorf("gradientColor = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestShadingConstructors(t *testing.T) {
	if s := Flat(ColorBlue); s.Kind != ShadeFlat || s.Color != ColorBlue {
		t.Errorf("Flat = %+v", s)
	}
	if s := ScreenGradient(); s.Kind != ShadeGradient {
		t.Errorf("ScreenGradient = %+v", s)
	}
	if s := RandomPerTriangle(); s.Kind != ShadeRandom {
		t.Errorf("RandomPerTriangle = %+v", s)
	}
}
