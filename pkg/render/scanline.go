package render

import "github.com/taigrr/softrender/pkg/math3d"

// FillTriangleScanline fills a triangle with a flat color by sweeping
// horizontal spans from the lowest vertex to the highest. It does not touch
// any depth buffer.
func FillTriangleScanline(s Surface, t0, t1, t2 math3d.Vec2i, c Color) {
	if t0.Y > t1.Y {
		t0, t1 = t1, t0
	}
	if t0.Y > t2.Y {
		t0, t2 = t2, t0
	}
	if t1.Y > t2.Y {
		t1, t2 = t2, t1
	}

	totalHeight := t2.Y - t0.Y
	if totalHeight == 0 {
		lo := min(t0.X, t1.X, t2.X)
		hi := max(t0.X, t1.X, t2.X)
		fillSpan(s, lo, hi, t0.Y, c)
		return
	}

	// Lower half: long edge t0-t2 against t0-t1.
	for y := t0.Y; y <= t1.Y; y++ {
		segmentHeight := t1.Y - t0.Y + 1
		alpha := float64(y-t0.Y) / float64(totalHeight)
		beta := float64(y-t0.Y) / float64(segmentHeight)
		a := t0.Add(t2.Sub(t0).ScaleTrunc(alpha))
		b := t0.Add(t1.Sub(t0).ScaleTrunc(beta))
		fillSpan(s, a.X, b.X, y, c)
	}
	// Upper half: long edge t0-t2 against t1-t2.
	for y := t1.Y; y <= t2.Y; y++ {
		segmentHeight := t2.Y - t1.Y + 1
		alpha := float64(y-t0.Y) / float64(totalHeight)
		beta := float64(y-t1.Y) / float64(segmentHeight)
		a := t0.Add(t2.Sub(t0).ScaleTrunc(alpha))
		b := t1.Add(t2.Sub(t1).ScaleTrunc(beta))
		fillSpan(s, a.X, b.X, y, c)
	}
}

// fillSpan writes every pixel between x0 and x1 inclusive on row y.
func fillSpan(s Surface, x0, x1, y int, c Color) {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	for x := x0; x <= x1; x++ {
		s.Set(x, y, c)
	}
}
