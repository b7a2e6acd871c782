package models

import (
	"math"
	"testing"

	"github.com/taigrr/softrender/pkg/math3d"
)

func near(a, b math3d.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func testMesh() *Mesh {
	m := NewMesh("box")
	m.Vertices = []math3d.Vec3{{X: 2, Y: 2, Z: 2}, {X: 6, Y: 4, Z: 3}, {X: 4, Y: 6, Z: 2}}
	m.AddFace(0, 1, 2)
	m.CalculateBounds()
	return m
}

func TestMeshBounds(t *testing.T) {
	m := testMesh()
	if m.BoundsMin != math3d.V3(2, 2, 2) || m.BoundsMax != math3d.V3(6, 6, 3) {
		t.Errorf("bounds = %v..%v", m.BoundsMin, m.BoundsMax)
	}
	if m.Center() != math3d.V3(4, 4, 2.5) {
		t.Errorf("Center = %v", m.Center())
	}
	if m.Size() != math3d.V3(4, 4, 1) {
		t.Errorf("Size = %v", m.Size())
	}
}

func TestMeshFitUnitCube(t *testing.T) {
	m := testMesh()
	m.FitUnitCube()

	if !near(m.BoundsMin, math3d.V3(-1, -1, -0.25)) || !near(m.BoundsMax, math3d.V3(1, 1, 0.25)) {
		t.Errorf("bounds after fit = %v..%v", m.BoundsMin, m.BoundsMax)
	}
}

func TestMeshFitUnitCubeDegenerate(t *testing.T) {
	m := NewMesh("point")
	m.Vertices = []math3d.Vec3{{X: 3, Y: 3, Z: 3}}
	m.FitUnitCube()
	if m.Vertices[0] != math3d.V3(3, 3, 3) {
		t.Errorf("single vertex moved to %v", m.Vertices[0])
	}
}

func TestMeshCloneIsDeep(t *testing.T) {
	m := testMesh()
	c := m.Clone()

	c.Vertices[0] = math3d.V3(9, 9, 9)
	c.Faces[0].V[0] = 2
	c.Transform(math3d.Translate(math3d.V3(1, 0, 0)))

	if m.Vertices[0] != math3d.V3(2, 2, 2) {
		t.Error("clone shares vertices with original")
	}
	if m.Faces[0].V[0] != 0 {
		t.Error("clone shares face indices with original")
	}
	if m.BoundsMax != math3d.V3(6, 6, 3) {
		t.Error("transforming the clone changed the original bounds")
	}
}
