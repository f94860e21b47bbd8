package dungeon

// Category names the kind of renderable tile a placement request asks for.
// Picking a concrete visual asset for a category is the placement sink's
// business, not ours.
type Category string

// Tile categories, one per silhouette family.
const (
	CategoryCross     Category = "cross"
	CategoryTee       Category = "tee"
	CategoryCorner    Category = "corner"
	CategoryWall      Category = "wall"
	CategoryShortWall Category = "short_wall"
	CategoryPillar    Category = "pillar"
)

// pattern is one fixed wall silhouette: the occupied cells of its canonical
// shape relative to the scan anchor, the bounding size, the spawn offset
// from the anchor to the tile's world position, and the rotation handed to
// the placement sink.
type pattern struct {
	category Category
	cells    []Cell
	w, d     int
	offsetX  float64
	offsetZ  float64
	rotation int
}

// matches reports an exact silhouette hit at grid anchor (cx, cz): every
// cell of the shape must be an unconsumed wall cell.
func (p *pattern) matches(g *grid, cx, cz int) bool {
	for _, c := range p.cells {
		if g.at(cx+c.X, cz+c.Z) != cellWall {
			return false
		}
	}
	return true
}

// patternLibrary is scanned in order, most specific silhouette first, so an
// intersection is never eaten cell-by-cell by the generic runs and the
// pillar only sweeps up what nothing else claimed. Order matters: this is a
// greedy cover, not an optimal one.
var patternLibrary = []pattern{
	{
		category: CategoryCross,
		cells:    []Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}},
		w:        3, d: 3,
		offsetX: 1.5, offsetZ: 1.5,
	},
	{
		category: CategoryTee,
		cells:    []Cell{{0, 0}, {1, 0}, {2, 0}, {1, 1}},
		w:        3, d: 2,
		offsetX: 1.5, offsetZ: 0.5,
	},
	{
		category: CategoryTee,
		cells:    []Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		w:        3, d: 2,
		offsetX: 1.5, offsetZ: 1.5,
		rotation: 180,
	},
	{
		category: CategoryTee,
		cells:    []Cell{{0, 0}, {0, 1}, {1, 1}, {0, 2}},
		w:        2, d: 3,
		offsetX: 0.5, offsetZ: 1.5,
		rotation: 90,
	},
	{
		category: CategoryTee,
		cells:    []Cell{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		w:        2, d: 3,
		offsetX: 1.5, offsetZ: 1.5,
		rotation: 270,
	},
	{
		category: CategoryCorner,
		cells:    []Cell{{0, 0}, {1, 0}, {0, 1}},
		w:        2, d: 2,
		offsetX: 0.5, offsetZ: 0.5,
	},
	{
		category: CategoryCorner,
		cells:    []Cell{{0, 0}, {1, 0}, {1, 1}},
		w:        2, d: 2,
		offsetX: 1.5, offsetZ: 0.5,
		rotation: 90,
	},
	{
		category: CategoryCorner,
		cells:    []Cell{{1, 0}, {0, 1}, {1, 1}},
		w:        2, d: 2,
		offsetX: 1.5, offsetZ: 1.5,
		rotation: 180,
	},
	{
		category: CategoryCorner,
		cells:    []Cell{{0, 0}, {0, 1}, {1, 1}},
		w:        2, d: 2,
		offsetX: 0.5, offsetZ: 1.5,
		rotation: 270,
	},
	{
		category: CategoryWall,
		cells:    []Cell{{0, 0}, {1, 0}, {2, 0}},
		w:        3, d: 1,
		offsetX: 1.5, offsetZ: 0.5,
	},
	{
		category: CategoryWall,
		cells:    []Cell{{0, 0}, {0, 1}, {0, 2}},
		w:        1, d: 3,
		offsetX: 0.5, offsetZ: 1.5,
		rotation: 90,
	},
	{
		category: CategoryShortWall,
		cells:    []Cell{{0, 0}, {1, 0}},
		w:        2, d: 1,
		offsetX: 1.0, offsetZ: 0.5,
	},
	{
		category: CategoryShortWall,
		cells:    []Cell{{0, 0}, {0, 1}},
		w:        1, d: 2,
		offsetX: 0.5, offsetZ: 1.0,
		rotation: 90,
	},
	{
		category: CategoryPillar,
		cells:    []Cell{{0, 0}},
		w:        1, d: 1,
		offsetX: 0.5, offsetZ: 0.5,
	},
}
