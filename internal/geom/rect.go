// Package geom provides the axis-aligned rectangle and box primitives used
// by the dungeon generator. The ground plane is X/Z; Y is up.
package geom

// Rect is an axis-aligned rectangle on the X/Z plane.
type Rect struct {
	X int `json:"x"`
	Z int `json:"z"`
	W int `json:"w"`
	D int `json:"d"`
}

// MaxX returns the exclusive right edge of the rect.
func (r Rect) MaxX() int { return r.X + r.W }

// MaxZ returns the exclusive far edge of the rect.
func (r Rect) MaxZ() int { return r.Z + r.D }

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.D <= 0 }

// Intersect returns the overlap of r and o. The second return is false when
// the rects do not overlap (edge-to-edge contact does not count).
func (r Rect) Intersect(o Rect) (Rect, bool) {
	x := max(r.X, o.X)
	z := max(r.Z, o.Z)
	mx := min(r.MaxX(), o.MaxX())
	mz := min(r.MaxZ(), o.MaxZ())
	if mx <= x || mz <= z {
		return Rect{}, false
	}
	return Rect{X: x, Z: z, W: mx - x, D: mz - z}, true
}

// Contains reports whether o lies fully within r.
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Z >= r.Z && o.MaxX() <= r.MaxX() && o.MaxZ() <= r.MaxZ()
}

// ContainsPoint reports whether the unit cell at (x, z) lies within r.
func (r Rect) ContainsPoint(x, z int) bool {
	return x >= r.X && x < r.MaxX() && z >= r.Z && z < r.MaxZ()
}

// CenterX returns the X coordinate of the rect center.
func (r Rect) CenterX() float64 { return float64(r.X) + float64(r.W)/2 }

// CenterZ returns the Z coordinate of the rect center.
func (r Rect) CenterZ() float64 { return float64(r.Z) + float64(r.D)/2 }

// Thickness returns the shorter of the rect's two extents. Seam rects
// between adjacent rooms are classified by this value.
func (r Rect) Thickness() int {
	return min(r.W, r.D)
}

// ExtrudeY lifts the rect into a box spanning [y, y+h) vertically.
func (r Rect) ExtrudeY(y, h int) Box {
	return Box{X: r.X, Y: y, Z: r.Z, W: r.W, H: h, D: r.D}
}
