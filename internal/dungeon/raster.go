package dungeon

import (
	"github.com/KirkDiggler/dungeon-api/internal/geom"
)

// cellState is the per-cell marker of the transient occupancy grid.
type cellState uint8

const (
	cellEmpty cellState = iota
	cellWall            // covered by an enabled wall
	cellConsumed        // wall cell claimed by a matched pattern
	cellFloor           // reached by the interior flood fill
)

// grid is the dense occupancy raster of the dungeon footprint. Transient:
// rebuilt on every planning pass and discarded with it.
type grid struct {
	x, z  int // world coordinates of cell (0, 0)
	w, d  int
	cells []cellState
}

func newGrid(bounds geom.Rect) *grid {
	return &grid{
		x:     bounds.X,
		z:     bounds.Z,
		w:     bounds.W,
		d:     bounds.D,
		cells: make([]cellState, bounds.W*bounds.D),
	}
}

func (g *grid) in(cx, cz int) bool {
	return cx >= 0 && cx < g.w && cz >= 0 && cz < g.d
}

func (g *grid) at(cx, cz int) cellState {
	return g.cells[cz*g.w+cx]
}

func (g *grid) set(cx, cz int, s cellState) {
	g.cells[cz*g.w+cx] = s
}

// TilePlacement asks the placement sink for one renderable wall tile of the
// given category at a world position, rotated clockwise in degrees.
type TilePlacement struct {
	Category Category `json:"category"`
	X        float64  `json:"x"`
	Z        float64  `json:"z"`
	Rotation int      `json:"rotation"`
}

// FloorPlacement asks the placement sink for one floor tile.
type FloorPlacement struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Cell is a world-space grid cell reference.
type Cell struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// Plan is the rasterizer's output: the placement requests for the surviving
// geometry plus the uncovered-cell diagnostic. The fixed pattern library is
// a greedy, order-dependent cover with no completeness proof, so wall cells
// no pattern matched are surfaced rather than dropped.
type Plan struct {
	Tiles     []TilePlacement  `json:"tiles"`
	Floors    []FloorPlacement `json:"floors"`
	Uncovered []Cell           `json:"uncovered"`
}

// rasterize builds the occupancy grid from the enabled walls and runs the
// pattern scan over it. The grid is returned so the floor fill can continue
// on the same raster.
func (l *Layout) rasterize() *grid {
	g := newGrid(l.Bounds())
	l.markWalls(g)
	l.Plan = &Plan{}
	l.matchPatterns(g)
	return g
}

// markWalls sets a cell occupied when any enabled wall covers it, except
// cells inside that wall's own enabled door opening: door gaps stay empty.
// A cell marked by one wall stays marked even if another wall's door covers
// it.
func (l *Layout) markWalls(g *grid) {
	for id := range l.Walls {
		if !l.WallEnabled(WallID(id)) {
			continue
		}
		w := l.Walls[id]
		var doorBox geom.Box
		hasGap := false
		if w.Door != NoDoor && l.Doors[w.Door].Enabled {
			doorBox = l.Doors[w.Door].Box
			hasGap = true
		}

		foot := w.Box.Footprint()
		for z := foot.Z; z < foot.MaxZ(); z++ {
			for x := foot.X; x < foot.MaxX(); x++ {
				cx, cz := x-g.x, z-g.z
				if !g.in(cx, cz) {
					continue
				}
				if hasGap && doorBox.ContainsXZ(x, z) {
					continue
				}
				g.set(cx, cz, cellWall)
			}
		}
	}
}

// matchPatterns scans the grid once per library entry, left-to-right and
// top-to-bottom, emitting a placement request for every exact silhouette
// match and consuming the matched cells so later, more generic patterns
// cannot reuse them. Whatever wall cells remain afterwards go into the
// uncovered diagnostic.
func (l *Layout) matchPatterns(g *grid) {
	for _, p := range patternLibrary {
		for cz := 0; cz <= g.d-p.d; cz++ {
			for cx := 0; cx <= g.w-p.w; cx++ {
				if !p.matches(g, cx, cz) {
					continue
				}
				for _, c := range p.cells {
					g.set(cx+c.X, cz+c.Z, cellConsumed)
				}
				l.Plan.Tiles = append(l.Plan.Tiles, TilePlacement{
					Category: p.category,
					X:        float64(g.x+cx) + p.offsetX,
					Z:        float64(g.z+cz) + p.offsetZ,
					Rotation: p.rotation,
				})
			}
		}
	}

	for cz := 0; cz < g.d; cz++ {
		for cx := 0; cx < g.w; cx++ {
			if g.at(cx, cz) == cellWall {
				l.Plan.Uncovered = append(l.Plan.Uncovered, Cell{X: g.x + cx, Z: g.z + cz})
			}
		}
	}
}

// fillFloor flood-fills the interior from the center of the first enabled
// room, emitting one floor placement per visited empty cell. The fill is
// 8-directional and marks cells as it goes so none is visited twice.
func (l *Layout) fillFloor(g *grid) {
	start := l.FirstEnabledRoom()
	if start == NoRoom {
		return
	}
	room := l.Rooms[start]
	sx := room.Rect.X + room.Rect.W/2 - g.x
	sz := room.Rect.Z + room.Rect.D/2 - g.z
	if !g.in(sx, sz) || g.at(sx, sz) != cellEmpty {
		return
	}

	queue := []Cell{{X: sx, Z: sz}}
	g.set(sx, sz, cellFloor)

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		l.Plan.Floors = append(l.Plan.Floors, FloorPlacement{
			X: float64(g.x+c.X) + 0.5,
			Z: float64(g.z+c.Z) + 0.5,
		})

		for dz := -1; dz <= 1; dz++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dz == 0 {
					continue
				}
				nx, nz := c.X+dx, c.Z+dz
				if !g.in(nx, nz) || g.at(nx, nz) != cellEmpty {
					continue
				}
				g.set(nx, nz, cellFloor)
				queue = append(queue, Cell{X: nx, Z: nz})
			}
		}
	}
}
