// Package dungeon implements procedural generation of rectangular dungeon
// layouts: recursive partitioning of a bounded area into rooms, wall and
// door synthesis from rectangle intersections, a room connectivity graph,
// greedy density pruning that preserves connectivity, and rasterization of
// the surviving geometry into tile placement requests.
package dungeon

import (
	"github.com/KirkDiggler/dungeon-api/internal/errors"
)

// Config holds every knob of a generation run. All distances are in world
// units on the X/Z plane; one occupancy-grid cell is one unit.
type Config struct {
	// StartX, StartZ anchor the dungeon's near corner in world space.
	StartX int `json:"startX"`
	StartZ int `json:"startZ"`

	// Width and Depth are the dungeon footprint.
	Width int `json:"width"`
	Depth int `json:"depth"`

	// Divisions bounds the number of partition iterations. Ignored when
	// Endless is set, in which case partitioning runs until no region in
	// the queue can split.
	Divisions int  `json:"divisions"`
	Endless   bool `json:"endless"`

	// SizeConstrain is the minimum room extent. A region only splits while
	// both children keep at least this much on the cut axis.
	SizeConstrain int `json:"sizeConstrain"`

	// AcceptableRatio is the aspect ratio above which a region is forced to
	// split along its long axis even when one dimension is already small.
	AcceptableRatio float64 `json:"acceptableRatio"`

	WallWidth  int `json:"wallWidth"`
	WallHeight int `json:"wallHeight"`

	DoorWidth  int `json:"doorWidth"`
	DoorOffset int `json:"doorOffset"`

	// SubtractedPercent of rooms is disabled by the pruner, connectivity
	// permitting.
	SubtractedPercent int `json:"subtractedPercent"`
}

// Validate rejects configurations that cannot produce a valid layout.
// Pathological-but-consistent configs (for example a root region too small
// to ever split) are accepted and yield a minimal layout instead.
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.Width <= 0 {
		vb.InvalidField("Width", "must be positive")
	}
	if c.Depth <= 0 {
		vb.InvalidField("Depth", "must be positive")
	}
	if c.Divisions < 0 {
		vb.InvalidField("Divisions", "must not be negative")
	}
	if c.WallWidth < 1 {
		vb.InvalidField("WallWidth", "must be at least 1")
	}
	if c.WallHeight < 1 {
		vb.InvalidField("WallHeight", "must be at least 1")
	}
	if c.DoorWidth < 1 {
		vb.InvalidField("DoorWidth", "must be at least 1")
	}
	if c.DoorOffset < 0 {
		vb.InvalidField("DoorOffset", "must not be negative")
	}
	if c.AcceptableRatio < 1 {
		vb.InvalidField("AcceptableRatio", "must be at least 1")
	}
	if c.SubtractedPercent < 0 || c.SubtractedPercent > 100 {
		vb.InvalidField("SubtractedPercent", "must be between 0 and 100")
	}

	if c.Width > 0 && c.Depth > 0 {
		short := min(c.Width, c.Depth)
		if c.SizeConstrain < c.WallWidth+1 {
			vb.Fieldf("SizeConstrain", "must exceed WallWidth (%d)", c.WallWidth)
		}
		if c.SizeConstrain >= short {
			vb.Fieldf("SizeConstrain", "leaves no room for a single room in a %dx%d dungeon", c.Width, c.Depth)
		}
		if c.DoorWidth+2*c.WallWidth >= short {
			vb.Fieldf("DoorWidth", "no wall in a %dx%d dungeon could host a %d-wide door with %d clearance", c.Width, c.Depth, c.DoorWidth, c.WallWidth)
		}
	}

	return vb.Build()
}
