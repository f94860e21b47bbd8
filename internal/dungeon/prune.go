package dungeon

import "sort"

// pruneRooms thins the room set down to the configured density. Rooms are
// tried smallest-perimeter first; each removal must keep the enabled
// subgraph fully connected. The first refused removal is reverted and ends
// the pass immediately — a hard early exit, not best-effort skipping.
func (l *Layout) pruneRooms() {
	total := len(l.Rooms)
	target := total - total*l.Config.SubtractedPercent/100

	order := make([]RoomID, total)
	for i := range order {
		order[i] = RoomID(i)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return l.Rooms[order[a]].Perimeter() < l.Rooms[order[b]].Perimeter()
	})

	for l.EnabledRoomCount() > target {
		var pick = NoRoom
		for _, id := range order {
			if l.Rooms[id].Enabled {
				pick = id
				break
			}
		}
		if pick == NoRoom {
			return
		}

		l.DisableRoom(pick)
		if !l.Connected() {
			l.EnableRoom(pick)
			return
		}
	}
}

// pruneDoors tries every door exactly once, in creation order: close it,
// and keep it closed unless that disconnects the enabled rooms. No early
// termination — the result is a maximal removable set, dependent on
// processing order, not a minimal door set.
func (l *Layout) pruneDoors() {
	for i := range l.Doors {
		was := l.Doors[i].Enabled
		l.Doors[i].Enabled = false
		if !l.Connected() {
			l.Doors[i].Enabled = was
		}
	}
}
