package dungeon

import (
	"math"
	"strings"
)

// Render draws the layout as ASCII, one rune per grid cell: '#' for wall,
// '.' for floor, ' ' for dead space. Debug output for the CLI preview; the
// raster is rebuilt from the enabled walls so Render works on any finished
// layout, stored or fresh.
func (l *Layout) Render() string {
	g := newGrid(l.Bounds())
	l.markWalls(g)

	floors := make(map[Cell]bool, len(l.plannedFloors()))
	for _, f := range l.plannedFloors() {
		floors[Cell{X: int(math.Floor(f.X)), Z: int(math.Floor(f.Z))}] = true
	}

	var b strings.Builder
	b.Grow((g.w + 1) * g.d)
	for cz := 0; cz < g.d; cz++ {
		for cx := 0; cx < g.w; cx++ {
			switch {
			case g.at(cx, cz) != cellEmpty:
				b.WriteByte('#')
			case floors[Cell{X: g.x + cx, Z: g.z + cz}]:
				b.WriteByte('.')
			default:
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (l *Layout) plannedFloors() []FloorPlacement {
	if l.Plan == nil {
		return nil
	}
	return l.Plan.Floors
}
