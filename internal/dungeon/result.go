package dungeon

import (
	"github.com/KirkDiggler/dungeon-api/internal/geom"
)

// RoomView is the read-only room surface handed to visualization and debug
// layers.
type RoomView struct {
	ID        RoomID    `json:"id"`
	Rect      geom.Rect `json:"rect"`
	Perimeter int       `json:"perimeter"`
}

// WallView is the read-only wall surface: its box and whether an open door
// pierces it.
type WallView struct {
	ID      WallID   `json:"id"`
	Box     geom.Box `json:"box"`
	HasDoor bool     `json:"hasDoor"`
}

// DoorView is the read-only door surface.
type DoorView struct {
	ID   DoorID   `json:"id"`
	Box  geom.Box `json:"box"`
	Wall WallID   `json:"wall"`
}

// EnabledRooms returns the rooms that survived pruning, in creation order.
func (l *Layout) EnabledRooms() []RoomView {
	out := make([]RoomView, 0, len(l.Rooms))
	for i := range l.Rooms {
		if !l.Rooms[i].Enabled {
			continue
		}
		out = append(out, RoomView{
			ID:        RoomID(i),
			Rect:      l.Rooms[i].Rect,
			Perimeter: l.Rooms[i].Perimeter(),
		})
	}
	return out
}

// EnabledWalls returns the walls that still bound live space.
func (l *Layout) EnabledWalls() []WallView {
	out := make([]WallView, 0, len(l.Walls))
	for i := range l.Walls {
		if !l.WallEnabled(WallID(i)) {
			continue
		}
		w := l.Walls[i]
		out = append(out, WallView{
			ID:      WallID(i),
			Box:     w.Box,
			HasDoor: w.Door != NoDoor && l.Doors[w.Door].Enabled,
		})
	}
	return out
}

// EnabledDoors returns the doors still open after pruning.
func (l *Layout) EnabledDoors() []DoorView {
	out := make([]DoorView, 0, len(l.Doors))
	for i := range l.Doors {
		if !l.Doors[i].Enabled {
			continue
		}
		out = append(out, DoorView{
			ID:   DoorID(i),
			Box:  l.Doors[i].Box,
			Wall: l.Doors[i].Wall,
		})
	}
	return out
}
