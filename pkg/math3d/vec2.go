package math3d

// Vec2 is a 2D vector with float components.
type Vec2 struct {
	X, Y float64
}

// V2 creates a new Vec2.
func V2(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Vec2i is an integer screen coordinate.
type Vec2i struct {
	X, Y int
}

// V2i creates a new Vec2i.
func V2i(x, y int) Vec2i {
	return Vec2i{x, y}
}

// Add returns a + b.
func (a Vec2i) Add(b Vec2i) Vec2i {
	return Vec2i{a.X + b.X, a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2i) Sub(b Vec2i) Vec2i {
	return Vec2i{a.X - b.X, a.Y - b.Y}
}

// ScaleTrunc multiplies both components by s and truncates toward zero.
func (a Vec2i) ScaleTrunc(s float64) Vec2i {
	return Vec2i{int(float64(a.X) * s), int(float64(a.Y) * s)}
}
