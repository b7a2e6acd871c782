package render

// WireframeColor is the outline color used by ModeWireframe.
var WireframeColor = ColorWhite

// drawFaceOutline draws every edge of a face, closing the loop back to the
// first vertex. Depth is ignored.
func (r *Rasterizer) drawFaceOutline(mesh MeshRenderer, face []int) {
	for j := range face {
		a := r.ToScreen(mesh.GetVertex(face[j]))
		b := r.ToScreen(mesh.GetVertex(face[(j+1)%len(face)]))
		r.Stats.Pixels += len(DrawLine(r.surface, int(a.X), int(a.Y), int(b.X), int(b.Y), WireframeColor))
	}
	r.Stats.Drawn++
}
