package vmath

// Circle is a bounding circle used for overlap tests
type Circle struct {
	Center Vec2
	Radius float64
}

// Intersects reports whether the circles touch or overlap
// Collision is distance(centers) <= rA + rB, compared squared to avoid sqrt
func (c Circle) Intersects(o Circle) bool {
	r := c.Radius + o.Radius
	return c.Center.Sub(o.Center).LenSq() <= r*r
}

// Contains reports whether p lies inside or on the circle
func (c Circle) Contains(p Vec2) bool {
	return c.Center.Sub(p).LenSq() <= c.Radius*c.Radius
}
