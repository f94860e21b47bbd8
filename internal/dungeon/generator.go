package dungeon

import (
	"math/rand"
)

// Phase is the generation state machine's position. Every transition is
// unconditional except Partitioning, which can end early on the failure
// streak; no phase re-enters without a fresh Generator.
type Phase int

// Generation phases, in execution order.
const (
	PhaseIdle Phase = iota
	PhasePartitioning
	PhaseWallSynthesis
	PhaseDoorSynthesis
	PhaseGraphBuild
	PhaseRoomPruning
	PhaseDoorPruning
	PhaseRasterizing
	PhaseFloorFilling
	PhaseDone
)

var phaseNames = map[Phase]string{
	PhaseIdle:          "idle",
	PhasePartitioning:  "partitioning",
	PhaseWallSynthesis: "wall_synthesis",
	PhaseDoorSynthesis: "door_synthesis",
	PhaseGraphBuild:    "graph_build",
	PhaseRoomPruning:   "room_pruning",
	PhaseDoorPruning:   "door_pruning",
	PhaseRasterizing:   "rasterizing",
	PhaseFloorFilling:  "floor_filling",
	PhaseDone:          "done",
}

// String returns the snake_case phase name used in logs and checkpoints.
func (p Phase) String() string {
	if s, ok := phaseNames[p]; ok {
		return s
	}
	return "unknown"
}

// Checkpoint is the snapshot yielded at every suspension point: each phase
// boundary, and each successful split inside partitioning. Suspension only
// paces external visualization; it never changes the outcome.
type Checkpoint struct {
	Phase        Phase `json:"phase"`
	Splits       int   `json:"splits"`
	Rooms        int   `json:"rooms"`
	Walls        int   `json:"walls"`
	Doors        int   `json:"doors"`
	EnabledRooms int   `json:"enabledRooms"`
	EnabledDoors int   `json:"enabledDoors"`
}

// Generator runs one layout generation. The atomic path (Run) and the
// step-wise path (repeated Step calls) drive the exact same phase code, so
// both produce bit-identical layouts for the same seed and config.
//
// A Generator is single-use and single-threaded. Abandoning it mid-run
// leaves the layout partial; there is no resume, only a fresh Generator.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	layout *Layout
	phase  Phase
	part   *partitioner
	splits int
	grid   *grid
}

// New validates the config and prepares a generator in the Idle phase.
// All randomness of the run comes from one generator seeded here, consumed
// in a fixed order: split draws, door offsets, spawn room.
func New(seed int64, cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
		layout: &Layout{
			Config:    cfg,
			Seed:      seed,
			SpawnRoom: NoRoom,
		},
		phase: PhaseIdle,
	}, nil
}

// Phase returns the generator's current phase.
func (g *Generator) Phase() Phase {
	return g.phase
}

// Layout returns the layout under construction. Only valid as a finished
// result once Phase() reports PhaseDone.
func (g *Generator) Layout() *Layout {
	return g.layout
}

// Step advances to the next suspension point and returns its checkpoint.
// The second return is false once the run is already done and no further
// work remains.
func (g *Generator) Step() (Checkpoint, bool) {
	if g.phase == PhaseDone {
		return g.checkpoint(), false
	}

	switch g.phase {
	case PhaseIdle:
		g.part = newPartitioner(g.cfg, g.rng)
		g.phase = PhasePartitioning

	case PhasePartitioning:
		for {
			split, done := g.part.step()
			if done {
				g.layout.Rooms = g.part.rooms()
				g.part = nil
				g.phase = PhaseWallSynthesis
				break
			}
			if split {
				g.splits++
				break
			}
		}

	case PhaseWallSynthesis:
		g.layout.synthesizeWalls()
		g.phase = PhaseDoorSynthesis

	case PhaseDoorSynthesis:
		g.layout.placeDoors(g.rng)
		g.phase = PhaseGraphBuild

	case PhaseGraphBuild:
		g.layout.buildGraph()
		g.phase = PhaseRoomPruning

	case PhaseRoomPruning:
		g.layout.pruneRooms()
		g.phase = PhaseDoorPruning

	case PhaseDoorPruning:
		g.layout.pruneDoors()
		g.phase = PhaseRasterizing

	case PhaseRasterizing:
		g.grid = g.layout.rasterize()
		g.phase = PhaseFloorFilling

	case PhaseFloorFilling:
		g.layout.fillFloor(g.grid)
		g.grid = nil
		g.layout.pickSpawn(g.rng)
		g.phase = PhaseDone
	}

	return g.checkpoint(), true
}

// Run executes every remaining phase back-to-back and returns the finished
// layout.
func (g *Generator) Run() *Layout {
	for {
		if _, more := g.Step(); !more {
			return g.layout
		}
	}
}

func (g *Generator) checkpoint() Checkpoint {
	cp := Checkpoint{
		Phase:  g.phase,
		Splits: g.splits,
		Rooms:  len(g.layout.Rooms),
		Walls:  len(g.layout.Walls),
		Doors:  len(g.layout.Doors),
	}
	if g.part != nil {
		cp.Rooms = len(g.part.queue)
	}
	for i := range g.layout.Rooms {
		if g.layout.Rooms[i].Enabled {
			cp.EnabledRooms++
		}
	}
	for i := range g.layout.Doors {
		if g.layout.Doors[i].Enabled {
			cp.EnabledDoors++
		}
	}
	return cp
}

// Generate runs a complete generation atomically. Identical arguments
// reproduce the identical layout, surviving rooms and doors included.
func Generate(seed int64, cfg Config) (*Layout, error) {
	g, err := New(seed, cfg)
	if err != nil {
		return nil, err
	}
	return g.Run(), nil
}

// pickSpawn draws one enabled room from the run's generator and records its
// center as the spawn location.
func (l *Layout) pickSpawn(rng *rand.Rand) {
	enabled := make([]RoomID, 0, len(l.Rooms))
	for i := range l.Rooms {
		if l.Rooms[i].Enabled {
			enabled = append(enabled, RoomID(i))
		}
	}
	if len(enabled) == 0 {
		return
	}
	id := enabled[rng.Intn(len(enabled))]
	l.SpawnRoom = id
	l.SpawnX = l.Rooms[id].Rect.CenterX()
	l.SpawnZ = l.Rooms[id].Rect.CenterZ()
}
