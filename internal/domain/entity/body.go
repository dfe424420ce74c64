package entity

// Rect is an axis-aligned rectangle in pixels. X, Y is the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the right edge
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the bottom edge
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Overlaps reports whether two rectangles intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(px, py float64) bool {
	return px >= r.X && px < r.Right() && py >= r.Y && py < r.Bottom()
}

// Body is a moving box. Position is the centre of the box, matching
// sprites drawn around their origin.
type Body struct {
	X, Y   float64 // centre, pixels
	VX, VY float64 // pixels per second
	W, H   float64

	// Bounce is the fraction of velocity kept when hitting world bounds.
	// 1 is a perfectly elastic bounce.
	Bounce float64
}

// Bounds returns the box in world coordinates
func (b *Body) Bounds() Rect {
	return Rect{X: b.X - b.W/2, Y: b.Y - b.H/2, W: b.W, H: b.H}
}

// SetVelocity sets both velocity components
func (b *Body) SetVelocity(vx, vy float64) {
	b.VX = vx
	b.VY = vy
}

// Step integrates the velocity over dt seconds
func (b *Body) Step(dt float64) {
	b.X += b.VX * dt
	b.Y += b.VY * dt
}

// Overlaps reports whether two bodies intersect
func (b *Body) Overlaps(o *Body) bool {
	return b.Bounds().Overlaps(o.Bounds())
}
