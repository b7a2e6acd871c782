// Package models provides loading and representation of triangle meshes.
package models

import (
	"errors"

	"github.com/taigrr/softrender/pkg/math3d"
)

// ErrNoGeometry is returned by loaders when a file yields no faces.
var ErrNoGeometry = errors.New("no geometry")

// Mesh is an indexed polygon mesh. Faces may have more than three
// vertices; the rasterizer decides how to fill them.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face holds zero-based indices into Mesh.Vertices.
type Face struct {
	V []int
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// AddFace appends a face with the given vertex indices.
func (m *Mesh) AddFace(indices ...int) {
	m.Faces = append(m.Faces, Face{V: indices})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// GetVertex returns the position of vertex i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// GetFace returns the vertex indices of face i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetFace(i int) []int {
	return m.Faces[i].V
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (min, max math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// FitUnitCube centers the mesh on the origin and scales it uniformly so
// that its largest dimension spans [-1, 1].
func (m *Mesh) FitUnitCube() {
	m.CalculateBounds()
	size := m.Size()
	maxDim := max(size.X, size.Y, size.Z)
	if maxDim == 0 {
		return
	}
	center := m.Center()
	m.Transform(math3d.ScaleUniform(2 / maxDim).Mul(math3d.Translate(center.Scale(-1))))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	for i, f := range m.Faces {
		clone.Faces[i] = Face{V: append([]int(nil), f.V...)}
	}
	return clone
}
