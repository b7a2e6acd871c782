package math3d

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecNear(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3
		want Vec3
	}{
		{"x cross y", V3(1, 0, 0), V3(0, 1, 0), V3(0, 0, 1)},
		{"y cross x", V3(0, 1, 0), V3(1, 0, 0), V3(0, 0, -1)},
		{"parallel", V3(2, 2, 2), V3(1, 1, 1), V3(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); !vecNear(got, tt.want) {
				t.Errorf("Cross = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	if !vecNear(n, V3(0.6, 0, 0.8)) {
		t.Errorf("Normalize = %v", n)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector normalized to %v", got)
	}
}

func TestVec3MinMax(t *testing.T) {
	a, b := V3(1, 5, -2), V3(3, -1, 0)
	if got := a.Min(b); got != V3(1, -1, -2) {
		t.Errorf("Min = %v", got)
	}
	if got := a.Max(b); got != V3(3, 5, 0) {
		t.Errorf("Max = %v", got)
	}
}

func TestVec2iScaleTrunc(t *testing.T) {
	v := V2i(7, -7)
	if got := v.ScaleTrunc(0.5); got != V2i(3, -3) {
		t.Errorf("ScaleTrunc = %v, want (3,-3)", got)
	}
	if got := v.Add(V2i(1, 1)).Sub(V2i(8, -6)); got != V2i(0, 0) {
		t.Errorf("Add/Sub = %v", got)
	}
}

func TestMat4Transforms(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vec3
		want Vec3
	}{
		{"identity", Identity(), V3(1, 2, 3), V3(1, 2, 3)},
		{"translate", Translate(V3(1, -1, 2)), V3(1, 1, 1), V3(2, 0, 3)},
		{"scale", ScaleUniform(2), V3(1, 2, 3), V3(2, 4, 6)},
		{"rotate y quarter", RotateY(math.Pi / 2), V3(1, 0, 0), V3(0, 0, -1)},
		{"rotate x quarter", RotateX(math.Pi / 2), V3(0, 1, 0), V3(0, 0, 1)},
		{"rotate z quarter", RotateZ(math.Pi / 2), V3(1, 0, 0), V3(0, 1, 0)},
		{"scale then translate", Translate(V3(1, 0, 0)).Mul(Scale(V3(2, 1, 1))), V3(1, 1, 1), V3(3, 1, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.MulVec3(tt.in); !vecNear(got, tt.want) {
				t.Errorf("MulVec3 = %v, want %v", got, tt.want)
			}
		})
	}
}

func BenchmarkMat4MulVec3(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}
