package render

import "github.com/taigrr/softrender/pkg/math3d"

// DrawLine draws a line from (x0, y0) to (x1, y1) using integer Bresenham
// and returns the visited pixels in walk order. Steep lines are walked along
// y; the walk always proceeds in increasing order of the major axis, so the
// returned slice may start at either endpoint.
func DrawLine(s Surface, x0, y0, x1, y1 int, c Color) []math3d.Vec2i {
	steep := false
	if abs(x0-x1) < abs(y0-y1) {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		steep = true
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	derror2 := abs(dy) * 2
	error2 := 0
	ystep := 1
	if y1 < y0 {
		ystep = -1
	}

	points := make([]math3d.Vec2i, 0, dx+1)
	y := y0
	for x := x0; x <= x1; x++ {
		p := math3d.V2i(x, y)
		if steep {
			p = math3d.V2i(y, x)
		}
		points = append(points, p)
		s.Set(p.X, p.Y, c)

		error2 += derror2
		if error2 > dx {
			y += ystep
			error2 -= dx * 2
		}
	}
	return points
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
