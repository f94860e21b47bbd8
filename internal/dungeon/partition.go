package dungeon

import (
	"math/rand"

	"github.com/KirkDiggler/dungeon-api/internal/geom"
)

// splitAxis is the pending cut orientation of a queued region. A horizontal
// cut divides the depth, a vertical cut divides the width; children always
// flip to the orthogonal axis.
type splitAxis uint8

const (
	splitHorizontal splitAxis = iota
	splitVertical
)

// region is a partition cell still in play. Ephemeral: regions exist only
// inside the partitioner queue.
type region struct {
	rect geom.Rect
	axis splitAxis
}

// partitioner runs the FIFO splitting loop one iteration at a time so the
// atomic and step-wise generation paths share the same code.
type partitioner struct {
	cfg   Config
	rng   *rand.Rand
	queue []region

	remaining int
	fails     int
	finished  bool
}

func newPartitioner(cfg Config, rng *rand.Rand) *partitioner {
	root := region{
		rect: geom.Rect{X: cfg.StartX, Z: cfg.StartZ, W: cfg.Width, D: cfg.Depth},
		axis: splitHorizontal,
	}
	return &partitioner{
		cfg:       cfg,
		rng:       rng,
		queue:     []region{root},
		remaining: cfg.Divisions,
	}
}

// step consumes one division iteration: it pops the front region and either
// splits it (returning split=true) or pushes it back and counts the failure.
// done is true once the budget is spent or the failure streak shows that no
// region in the queue can split anymore; the surviving queue is the final
// room set.
func (p *partitioner) step() (split, done bool) {
	if p.finished {
		return false, true
	}
	if p.cfg.Endless {
		p.remaining = 1
	}
	if p.remaining <= 0 || len(p.queue) == 0 {
		p.finished = true
		return false, true
	}
	p.remaining--

	r := p.queue[0]
	p.queue = p.queue[1:]

	axis, ok := p.chooseAxis(r)
	if !ok {
		p.queue = append(p.queue, r)
		p.fails++
		// Once every queued region has cycled through twice without a
		// split, nothing left can split. Sole terminator in endless mode;
		// must fire deterministically for a fixed seed.
		if p.fails >= 2*len(p.queue) {
			p.finished = true
			return false, true
		}
		return false, false
	}

	p.fails = 0
	a, b := p.split(r.rect, axis)
	next := splitVertical
	if axis == splitVertical {
		next = splitHorizontal
	}
	p.queue = append(p.queue, region{rect: a, axis: next}, region{rect: b, axis: next})
	return true, false
}

// chooseAxis decides splittability. Regions comfortably large on both axes
// keep their queued orientation; regions small on one axis are still forced
// to split when their aspect ratio is unacceptable; anything else is final.
func (p *partitioner) chooseAxis(r region) (splitAxis, bool) {
	threshold := 2 * p.cfg.SizeConstrain
	wide := r.rect.W > threshold
	deep := r.rect.D > threshold

	switch {
	case wide && deep:
		return r.axis, true
	case !wide && deep && float64(r.rect.W)*p.cfg.AcceptableRatio < float64(r.rect.D):
		return splitHorizontal, true
	case !deep && wide && float64(r.rect.D)*p.cfg.AcceptableRatio < float64(r.rect.W):
		return splitVertical, true
	default:
		return 0, false
	}
}

// split cuts the rect at a uniformly drawn coordinate, leaving the two
// children overlapping by exactly WallWidth along the cut. The overlap strip
// is the seam a wall is later synthesized from.
func (p *partitioner) split(r geom.Rect, axis splitAxis) (geom.Rect, geom.Rect) {
	sc := p.cfg.SizeConstrain
	ww := p.cfg.WallWidth

	if axis == splitHorizontal {
		c := sc + p.rng.Intn(r.D-2*sc)
		a := geom.Rect{X: r.X, Z: r.Z, W: r.W, D: c}
		b := geom.Rect{X: r.X, Z: r.Z + c - ww, W: r.W, D: r.D - c + ww}
		return a, b
	}

	c := sc + p.rng.Intn(r.W-2*sc)
	a := geom.Rect{X: r.X, Z: r.Z, W: c, D: r.D}
	b := geom.Rect{X: r.X + c - ww, Z: r.Z, W: r.W - c + ww, D: r.D}
	return a, b
}

// rooms converts the surviving queue into the layout's room set, in queue
// order.
func (p *partitioner) rooms() []Room {
	out := make([]Room, 0, len(p.queue))
	for _, r := range p.queue {
		out = append(out, Room{Rect: r.rect, Enabled: true})
	}
	return out
}
