package dungeon

import (
	"math/rand"

	"github.com/KirkDiggler/dungeon-api/internal/geom"
)

// synthesizeWalls derives the wall set from pairwise room intersections and
// appends the four doorless boundary walls. Interior candidates survive only
// when the seam convention holds: the overlap's thickness must be exactly
// WallWidth (siblings of one split) or twice that (seams stacked by two
// independent splits). Anything else is a diagonal or degenerate contact and
// is silently discarded.
func (l *Layout) synthesizeWalls() {
	cfg := l.Config
	need := cfg.DoorWidth + 2*cfg.WallWidth

	for i := range l.Rooms {
		for j := i + 1; j < len(l.Rooms); j++ {
			seam, ok := l.Rooms[i].Rect.Intersect(l.Rooms[j].Rect)
			if !ok {
				continue
			}
			th := seam.Thickness()
			if th != cfg.WallWidth && th != 2*cfg.WallWidth {
				continue
			}

			// A wall is doorable in exactly one axis: the first axis whose
			// span leaves room for the door plus clearance on both sides.
			axis := DoorAxisNone
			if seam.W > need {
				axis = DoorAxisX
			} else if seam.D > need {
				axis = DoorAxisZ
			}

			wid := WallID(len(l.Walls))
			l.Walls = append(l.Walls, Wall{
				Box:   seam.ExtrudeY(0, cfg.WallHeight),
				Axis:  axis,
				Door:  NoDoor,
				Rooms: [2]RoomID{RoomID(i), RoomID(j)},
			})
			l.Rooms[i].Walls = append(l.Rooms[i].Walls, wid)
			l.Rooms[j].Walls = append(l.Rooms[j].Walls, wid)
		}
	}

	l.appendBoundaryWalls()
}

// appendBoundaryWalls closes the dungeon with four walls spanning the full
// extent at each edge. Boundary walls never receive doors.
func (l *Layout) appendBoundaryWalls() {
	cfg := l.Config
	ww := cfg.WallWidth
	bounds := l.Bounds()

	edges := []geom.Rect{
		{X: bounds.X, Z: bounds.Z, W: bounds.W, D: ww},              // near
		{X: bounds.X, Z: bounds.MaxZ() - ww, W: bounds.W, D: ww},    // far
		{X: bounds.X, Z: bounds.Z, W: ww, D: bounds.D},              // west
		{X: bounds.MaxX() - ww, Z: bounds.Z, W: ww, D: bounds.D},    // east
	}
	for _, e := range edges {
		l.Walls = append(l.Walls, Wall{
			Box:      e.ExtrudeY(0, cfg.WallHeight),
			Axis:     DoorAxisNone,
			Door:     NoDoor,
			Rooms:    [2]RoomID{NoRoom, NoRoom},
			Boundary: true,
		})
	}
}

// placeDoors carves one door into every doorable wall, in wall creation
// order. The door's position along the wall is a uniform draw bounded so
// the opening keeps WallWidth clearance on both sides; across the wall the
// door box extends DoorOffset beyond the wall thickness so the opening
// punches fully through.
func (l *Layout) placeDoors(rng *rand.Rand) {
	cfg := l.Config
	ww := cfg.WallWidth
	dw := cfg.DoorWidth

	for i := range l.Walls {
		w := &l.Walls[i]
		if w.Axis == DoorAxisNone {
			continue
		}

		var box geom.Box
		switch w.Axis {
		case DoorAxisX:
			span := w.Box.W
			off := ww + rng.Intn(span-dw-2*ww+1)
			box = geom.Box{
				X: w.Box.X + off,
				Y: w.Box.Y,
				Z: w.Box.Z - cfg.DoorOffset,
				W: dw,
				H: w.Box.H,
				D: w.Box.D + 2*cfg.DoorOffset,
			}
		case DoorAxisZ:
			span := w.Box.D
			off := ww + rng.Intn(span-dw-2*ww+1)
			box = geom.Box{
				X: w.Box.X - cfg.DoorOffset,
				Y: w.Box.Y,
				Z: w.Box.Z + off,
				W: w.Box.W + 2*cfg.DoorOffset,
				H: w.Box.H,
				D: dw,
			}
		}

		did := DoorID(len(l.Doors))
		l.Doors = append(l.Doors, Door{Box: box, Wall: WallID(i), Enabled: true})
		w.Door = did
	}
}
