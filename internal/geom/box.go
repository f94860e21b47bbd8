package geom

// Box is an axis-aligned box. Walls and doors are boxes: a footprint rect
// extruded to the configured wall height.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
	W int `json:"w"`
	H int `json:"h"`
	D int `json:"d"`
}

// Footprint projects the box back onto the X/Z plane.
func (b Box) Footprint() Rect {
	return Rect{X: b.X, Z: b.Z, W: b.W, D: b.D}
}

// MaxX returns the exclusive right edge of the box.
func (b Box) MaxX() int { return b.X + b.W }

// MaxY returns the exclusive top edge of the box.
func (b Box) MaxY() int { return b.Y + b.H }

// MaxZ returns the exclusive far edge of the box.
func (b Box) MaxZ() int { return b.Z + b.D }

// ContainsXZ reports whether the unit column at (x, z) lies within the box
// footprint, ignoring height.
func (b Box) ContainsXZ(x, z int) bool {
	return b.Footprint().ContainsPoint(x, z)
}

// Intersects reports whether the two boxes overlap in all three axes.
func (b Box) Intersects(o Box) bool {
	if _, ok := b.Footprint().Intersect(o.Footprint()); !ok {
		return false
	}
	return b.Y < o.MaxY() && o.Y < b.MaxY()
}
