package dungeon

import (
	"github.com/KirkDiggler/dungeon-api/internal/geom"
)

// RoomID, WallID and DoorID are stable indices into the layout arena.
// Rooms, walls and doors form reference cycles in the abstract model (a wall
// knows its two rooms, a room knows its walls, a wall owns its door); the
// arena keeps every link as an index so the whole layout is a plain value.
type (
	// RoomID indexes Layout.Rooms.
	RoomID int
	// WallID indexes Layout.Walls.
	WallID int
	// DoorID indexes Layout.Doors.
	DoorID int
)

// Sentinel indices for absent links.
const (
	NoRoom RoomID = -1
	NoDoor DoorID = -1
)

// DoorAxis is the axis a door slides along within its wall. A wall is
// doorable in at most one axis.
type DoorAxis uint8

// Door axis values.
const (
	DoorAxisNone DoorAxis = iota
	DoorAxisX
	DoorAxisZ
)

// String returns a readable axis name.
func (a DoorAxis) String() string {
	switch a {
	case DoorAxisX:
		return "x"
	case DoorAxisZ:
		return "z"
	default:
		return "none"
	}
}

// Room is a final partition cell. Walls are shared with the adjacent room,
// so a room only holds wall indices, never the walls themselves.
type Room struct {
	Rect    geom.Rect `json:"rect"`
	Enabled bool      `json:"enabled"`
	Walls   []WallID  `json:"walls"`
}

// Perimeter is the size metric the room pruner sorts by.
func (r Room) Perimeter() int {
	return 2 * (r.Rect.W + r.Rect.D)
}

// Wall separates exactly two rooms, or no rooms when it is one of the four
// dungeon boundary walls. The door axis is fixed at synthesis time; the
// door's enabled flag is the only mutable passage state.
type Wall struct {
	Box      geom.Box  `json:"box"`
	Axis     DoorAxis  `json:"axis"`
	Door     DoorID    `json:"door"`
	Rooms    [2]RoomID `json:"rooms"`
	Boundary bool      `json:"boundary"`
}

// Door is a sub-box carved out of its owning wall's span. Doors are never
// deleted once placed, only disabled.
type Door struct {
	Box     geom.Box `json:"box"`
	Wall    WallID   `json:"wall"`
	Enabled bool     `json:"enabled"`
}

// Layout is the arena holding one generation run's rooms, walls, doors and
// connectivity graph. A layout is owned by a single run; nothing mutates it
// concurrently.
type Layout struct {
	Config Config `json:"config"`
	Seed   int64  `json:"seed"`

	Rooms []Room `json:"rooms"`
	Walls []Wall `json:"walls"`
	Doors []Door `json:"doors"`

	Graph *Graph `json:"graph"`

	// SpawnRoom and the spawn coordinates are chosen from the enabled rooms
	// after pruning, using the run's generator.
	SpawnRoom RoomID  `json:"spawnRoom"`
	SpawnX    float64 `json:"spawnX"`
	SpawnZ    float64 `json:"spawnZ"`

	Plan *Plan `json:"plan"`
}

// Bounds returns the dungeon footprint.
func (l *Layout) Bounds() geom.Rect {
	return geom.Rect{X: l.Config.StartX, Z: l.Config.StartZ, W: l.Config.Width, D: l.Config.Depth}
}

// DisableRoom turns a room off and cascades onto its walls: every adjoining
// door closes, turning the wall solid.
func (l *Layout) DisableRoom(id RoomID) {
	room := &l.Rooms[id]
	room.Enabled = false
	for _, wid := range room.Walls {
		w := l.Walls[wid]
		if w.Door != NoDoor {
			l.Doors[w.Door].Enabled = false
		}
	}
}

// EnableRoom turns a room back on and reopens doors on walls whose other
// room is also enabled. This exactly reverts a DisableRoom of the same id
// when it was the most recent mutation.
func (l *Layout) EnableRoom(id RoomID) {
	room := &l.Rooms[id]
	room.Enabled = true
	for _, wid := range room.Walls {
		w := l.Walls[wid]
		if w.Door == NoDoor {
			continue
		}
		if l.Rooms[w.Rooms[0]].Enabled && l.Rooms[w.Rooms[1]].Enabled {
			l.Doors[w.Door].Enabled = true
		}
	}
}

// WallEnabled reports whether a wall still bounds live space: boundary
// walls always do, interior walls while at least one of their rooms is
// enabled.
func (l *Layout) WallEnabled(id WallID) bool {
	w := l.Walls[id]
	if w.Boundary {
		return true
	}
	return l.Rooms[w.Rooms[0]].Enabled || l.Rooms[w.Rooms[1]].Enabled
}

// EnabledRoomCount returns the number of rooms still enabled.
func (l *Layout) EnabledRoomCount() int {
	n := 0
	for i := range l.Rooms {
		if l.Rooms[i].Enabled {
			n++
		}
	}
	return n
}

// FirstEnabledRoom returns the lowest-indexed enabled room, or NoRoom.
func (l *Layout) FirstEnabledRoom() RoomID {
	for i := range l.Rooms {
		if l.Rooms[i].Enabled {
			return RoomID(i)
		}
	}
	return NoRoom
}

// Connected reports whether every enabled room is reachable from an
// arbitrary enabled room through enabled doors. A layout with no enabled
// rooms is not connected.
func (l *Layout) Connected() bool {
	start := l.FirstEnabledRoom()
	if start == NoRoom {
		return false
	}
	return l.Graph.Reachable(l, start)
}
