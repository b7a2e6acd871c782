package models

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/softrender/pkg/math3d"
)

// LoadOBJ loads a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mesh, nil
}

// ParseOBJ reads vertex positions ("v") and faces ("f") from r. Face
// entries may use the v, v/vt, v//vn or v/vt/vn forms; only the position
// index is kept. Negative indices are relative to the vertices read so far.
// Other statements are ignored.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	sc := bufio.NewScanner(r)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Vertices = append(mesh.Vertices, v)
		case "f":
			face, err := parseFace(fields[1:], len(mesh.Vertices))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}
	if len(mesh.Faces) == 0 {
		return nil, ErrNoGeometry
	}
	// Faces may reference vertices declared later in the file.
	for i, f := range mesh.Faces {
		for _, idx := range f.V {
			if idx >= len(mesh.Vertices) {
				return nil, fmt.Errorf("face %d: index %d out of range (%d vertices)", i, idx+1, len(mesh.Vertices))
			}
		}
	}

	mesh.CalculateBounds()
	return mesh, nil
}

func parseVertex(fields []string) (math3d.Vec3, error) {
	if len(fields) < 3 {
		return math3d.Vec3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return math3d.Vec3{}, fmt.Errorf("parse vertex: %w", err)
		}
		c[i] = f
	}
	return math3d.V3(c[0], c[1], c[2]), nil
}

func parseFace(fields []string, vertexCount int) (Face, error) {
	if len(fields) < 3 {
		return Face{}, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}
	face := Face{V: make([]int, 0, len(fields))}
	for _, field := range fields {
		ref, _, _ := strings.Cut(field, "/")
		idx, err := strconv.Atoi(ref)
		if err != nil {
			return Face{}, fmt.Errorf("parse face index: %w", err)
		}
		switch {
		case idx > 0:
			idx--
		case idx < 0:
			idx += vertexCount
		default:
			return Face{}, fmt.Errorf("face index 0 is invalid")
		}
		if idx < 0 {
			return Face{}, fmt.Errorf("relative face index %s out of range (%d vertices)", ref, vertexCount)
		}
		face.V = append(face.V, idx)
	}
	return face, nil
}
