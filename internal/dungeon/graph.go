package dungeon

// Connection is one directed edge of the connectivity graph: passage to a
// neighboring room through a specific door. Each physical door contributes
// an edge in both directions.
type Connection struct {
	To  RoomID `json:"to"`
	Via DoorID `json:"via"`
}

// Graph is the room adjacency structure, stored as dense neighbor lists
// indexed by room index. Rebuilt from scratch on every generation run.
type Graph struct {
	Nodes []bool         `json:"nodes"`
	Adj   [][]Connection `json:"adj"`
}

// NewGraph allocates a graph able to hold n rooms.
func NewGraph(n int) *Graph {
	return &Graph{
		Nodes: make([]bool, n),
		Adj:   make([][]Connection, n),
	}
}

// AddNode registers a room. Idempotent.
func (g *Graph) AddNode(id RoomID) {
	g.Nodes[id] = true
}

// AddEdge appends a directed edge. Edges are additive, never deduplicated;
// two doors between the same pair of rooms yield two parallel edges.
func (g *Graph) AddEdge(from, to RoomID, via DoorID) {
	g.AddNode(from)
	g.AddNode(to)
	g.Adj[from] = append(g.Adj[from], Connection{To: to, Via: via})
}

// Neighbors returns the outgoing edges of a room. The returned slice is the
// graph's own storage; callers must not mutate it.
func (g *Graph) Neighbors(id RoomID) []Connection {
	return g.Adj[id]
}

// Reachable runs a breadth-first traversal from start and reports whether
// it covers every enabled room. An edge is traversable only while both its
// target room and its door are enabled. Trivially false when start itself
// is disabled.
func (g *Graph) Reachable(l *Layout, start RoomID) bool {
	if start == NoRoom || !l.Rooms[start].Enabled {
		return false
	}

	visited := make([]bool, len(g.Nodes))
	queue := []RoomID{start}
	visited[start] = true
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++

		for _, conn := range g.Adj[cur] {
			if visited[conn.To] {
				continue
			}
			if !l.Doors[conn.Via].Enabled || !l.Rooms[conn.To].Enabled {
				continue
			}
			visited[conn.To] = true
			queue = append(queue, conn.To)
		}
	}

	return count == l.EnabledRoomCount()
}

// buildGraph registers every room and a bidirectional edge pair per
// door-bearing interior wall.
func (l *Layout) buildGraph() {
	g := NewGraph(len(l.Rooms))
	for i := range l.Rooms {
		g.AddNode(RoomID(i))
	}
	for _, w := range l.Walls {
		if w.Boundary || w.Door == NoDoor {
			continue
		}
		g.AddEdge(w.Rooms[0], w.Rooms[1], w.Door)
		g.AddEdge(w.Rooms[1], w.Rooms[0], w.Door)
	}
	l.Graph = g
}
