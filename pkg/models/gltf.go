package models

import (
	"encoding/binary"
	"fmt"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/taigrr/softrender/pkg/math3d"
)

// LoadGLB loads a binary glTF (.glb) file, or a .gltf file with embedded
// buffers. All triangle primitives of all meshes are merged into one Mesh.
func LoadGLB(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return MeshFromDocument(doc, filepath.Base(path))
}

// MeshFromDocument extracts triangle geometry from a decoded glTF document.
func MeshFromDocument(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	for _, m := range doc.Meshes {
		if err := processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Faces) == 0 {
		return nil, ErrNoGeometry
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// processMesh appends the triangles of every primitive in m.
func processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles {
			// Lines and points have no area to fill.
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		baseVertex := len(mesh.Vertices)
		mesh.Vertices = append(mesh.Vertices, positions...)

		if prim.Indices != nil {
			indices, err := readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
			for i := 0; i+2 < len(indices); i += 3 {
				mesh.AddFace(baseVertex+indices[i], baseVertex+indices[i+1], baseVertex+indices[i+2])
			}
		} else {
			// No indices, assume sequential triangles
			for i := 0; i+2 < len(positions); i += 3 {
				mesh.AddFace(baseVertex+i, baseVertex+i+1, baseVertex+i+2)
			}
		}
	}

	return nil
}

// readVec3Accessor reads float VEC3 data from a glTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v / %v", accessor.Type, accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		b := data[i*stride:]
		result[i] = math3d.V3(readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]))
	}
	return result, nil
}

// readIndices reads scalar index data from a glTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR indices, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		b := data[i*stride:]
		switch size {
		case 1:
			result[i] = int(b[0])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(b))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(b))
		}
	}
	return result, nil
}

// accessorBytes returns the bytes backing accessor, starting at its first
// element, and the element stride.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	buffer := doc.Buffers[bufferView.Buffer]
	if buffer.Data == nil {
		return nil, 0, fmt.Errorf("buffer has no data")
	}

	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	start := bufferView.ByteOffset + accessor.ByteOffset
	if accessor.Count == 0 {
		return nil, stride, nil
	}
	end := start + (accessor.Count-1)*stride + elemSize
	if end > len(buffer.Data) {
		return nil, 0, fmt.Errorf("accessor reads past end of buffer (%d > %d)", end, len(buffer.Data))
	}
	return buffer.Data[start:end], stride, nil
}

// readFloat32 reads a little-endian float32 as float64.
func readFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}
