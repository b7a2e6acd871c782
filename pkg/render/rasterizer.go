package render

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/taigrr/softrender/pkg/math3d"
)

// MeshRenderer is the read-only view of a model the frame driver needs.
// It is declared here so render does not import the models package.
type MeshRenderer interface {
	VertexCount() int
	GetVertex(i int) math3d.Vec3
	FaceCount() int
	GetFace(i int) []int
}

// RenderMode selects how DrawMesh turns faces into pixels.
type RenderMode int

const (
	// ModeLit shades each face by its flat light intensity in greyscale.
	ModeLit RenderMode = iota
	// ModeRandom fills every face with a random color, without lighting.
	ModeRandom
	// ModeGradient fills every face with the screen-position gradient.
	ModeGradient
	// ModeWireframe draws the outline of every face.
	ModeWireframe
)

var renderModeNames = map[RenderMode]string{
	ModeLit:       "lit",
	ModeRandom:    "random",
	ModeGradient:  "gradient",
	ModeWireframe: "wireframe",
}

func (m RenderMode) String() string {
	if s, ok := renderModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("RenderMode(%d)", int(m))
}

// ParseRenderMode parses a mode name as printed by RenderMode.String.
func ParseRenderMode(s string) (RenderMode, error) {
	for m, name := range renderModeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("unknown render mode %q", s)
}

// PolygonMode selects how faces with more than three vertices are filled.
type PolygonMode int

const (
	// PolygonFirstTriangle fills only the triangle of the first three
	// indices.
	PolygonFirstTriangle PolygonMode = iota
	// PolygonFan fills the triangle fan (v0, vi, vi+1).
	PolygonFan
)

// ParsePolygonMode parses "first" or "fan".
func ParsePolygonMode(s string) (PolygonMode, error) {
	switch strings.ToLower(s) {
	case "first", "":
		return PolygonFirstTriangle, nil
	case "fan":
		return PolygonFan, nil
	}
	return 0, fmt.Errorf("unknown polygon mode %q", s)
}

// FrameStats counts what happened to faces during DrawMesh.
type FrameStats struct {
	Faces   int // Faces visited
	Drawn   int // Triangles handed to the fill routine
	Culled  int // Triangles skipped because they face away from the light
	Skipped int // Faces with too few or invalid indices
	Empty   int // Triangles that wrote no pixels: degenerate, off-surface or hidden
	Pixels  int // Pixels written
}

func (s FrameStats) sub(o FrameStats) FrameStats {
	return FrameStats{
		Faces:   s.Faces - o.Faces,
		Drawn:   s.Drawn - o.Drawn,
		Culled:  s.Culled - o.Culled,
		Skipped: s.Skipped - o.Skipped,
		Empty:   s.Empty - o.Empty,
		Pixels:  s.Pixels - o.Pixels,
	}
}

// Rasterizer is the render context for one surface: it owns the depth
// buffer, the light direction and the random source for one frame at a
// time. It is not safe for concurrent use.
type Rasterizer struct {
	surface Surface
	depth   *DepthBuffer
	rng     *rand.Rand

	Light   math3d.Vec3 // Light direction used by ModeLit
	Polygon PolygonMode // Handling of faces with more than three vertices
	Stats   FrameStats  // Statistics of the last DrawMesh calls since ResetStats
}

// NewRasterizer creates a rasterizer drawing into s. seed feeds the random
// source used by ModeRandom.
func NewRasterizer(s Surface, seed uint64) *Rasterizer {
	w, h := s.Size()
	return &Rasterizer{
		surface: s,
		depth:   NewDepthBuffer(w, h),
		rng:     rand.New(rand.NewPCG(seed, seed)),
		Light:   DefaultLight,
	}
}

// Surface returns the target surface.
func (r *Rasterizer) Surface() Surface {
	return r.surface
}

// Depth returns the depth buffer.
func (r *Rasterizer) Depth() *DepthBuffer {
	return r.depth
}

// ClearDepth clears the depth buffer (call before each frame).
func (r *Rasterizer) ClearDepth() {
	r.depth.Clear()
}

// ResetStats zeroes the frame statistics.
func (r *Rasterizer) ResetStats() {
	r.Stats = FrameStats{}
}

// BeginFrame clears depth and statistics.
func (r *Rasterizer) BeginFrame() {
	r.ClearDepth()
	r.ResetStats()
}

// ToScreen maps a normalized object-space position in [-1, 1] to the
// surface. X and Y are truncated to whole pixels; Z is carried through as
// depth.
func (r *Rasterizer) ToScreen(v math3d.Vec3) math3d.Vec3 {
	w, h := r.surface.Size()
	x := int((v.X + 1) * float64(w) / 2)
	y := int((v.Y + 1) * float64(h) / 2)
	return math3d.V3(float64(x), float64(y), v.Z)
}

// DrawTriangle fills one screen-space triangle against the depth buffer.
func (r *Rasterizer) DrawTriangle(pts [3]math3d.Vec3, sh Shading) int {
	n := FillTriangle(r.surface, r.depth, pts, sh, r.rng)
	r.Stats.Drawn++
	r.Stats.Pixels += n
	if n == 0 {
		r.Stats.Empty++
	}
	return n
}

// DrawMesh renders every face of mesh in the given mode.
func (r *Rasterizer) DrawMesh(mesh MeshRenderer, mode RenderMode) {
	log := Logger()
	nv := mesh.VertexCount()
	before := r.Stats

	for i := range mesh.FaceCount() {
		face := mesh.GetFace(i)
		r.Stats.Faces++
		if !validFace(face, nv) {
			r.Stats.Skipped++
			log.Warn("skipping face", slog.Int("face", i), slog.Int("indices", len(face)))
			continue
		}

		if mode == ModeWireframe {
			r.drawFaceOutline(mesh, face)
			continue
		}

		for _, tri := range r.faceTriangles(face) {
			obj := [3]math3d.Vec3{mesh.GetVertex(tri[0]), mesh.GetVertex(tri[1]), mesh.GetVertex(tri[2])}
			pts := [3]math3d.Vec3{r.ToScreen(obj[0]), r.ToScreen(obj[1]), r.ToScreen(obj[2])}

			var sh Shading
			switch mode {
			case ModeRandom:
				sh = RandomPerTriangle()
			case ModeGradient:
				sh = ScreenGradient()
			default:
				intensity := FaceIntensity(obj[0], obj[1], obj[2], r.Light)
				if intensity <= 0 {
					r.Stats.Culled++
					continue
				}
				sh = Flat(Greyscale(intensity))
			}
			r.DrawTriangle(pts, sh)
		}
	}

	d := r.Stats.sub(before)
	log.Debug("mesh drawn",
		slog.String("mode", mode.String()),
		slog.Int("faces", d.Faces),
		slog.Int("drawn", d.Drawn),
		slog.Int("culled", d.Culled),
		slog.Int("skipped", d.Skipped),
		slog.Int("empty", d.Empty),
		slog.Int("pixels", d.Pixels),
	)
}

// faceTriangles splits a face into index triples according to r.Polygon.
func (r *Rasterizer) faceTriangles(face []int) [][3]int {
	if r.Polygon != PolygonFan || len(face) == 3 {
		return [][3]int{{face[0], face[1], face[2]}}
	}
	tris := make([][3]int, 0, len(face)-2)
	for j := 1; j+1 < len(face); j++ {
		tris = append(tris, [3]int{face[0], face[j], face[j+1]})
	}
	return tris
}

func validFace(face []int, vertexCount int) bool {
	if len(face) < 3 {
		return false
	}
	for _, idx := range face {
		if idx < 0 || idx >= vertexCount {
			return false
		}
	}
	return true
}

// DrawScanlineDemo fills the three reference triangles (red, green, white)
// with the scanline routine.
func DrawScanlineDemo(s Surface) {
	tris := [3][3]math3d.Vec2i{
		{{X: 10, Y: 70}, {X: 50, Y: 160}, {X: 70, Y: 80}},
		{{X: 180, Y: 50}, {X: 150, Y: 1}, {X: 70, Y: 180}},
		{{X: 180, Y: 150}, {X: 120, Y: 160}, {X: 130, Y: 180}},
	}
	colors := [3]Color{ColorRed, ColorGreen, ColorWhite}
	for i, t := range tris {
		FillTriangleScanline(s, t[0].ScaleTrunc(4), t[1].ScaleTrunc(4), t[2].ScaleTrunc(4), colors[i])
	}
}
