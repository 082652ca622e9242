package sim

import (
	"fmt"
	"math/rand"

	"github.com/mpetrenko/skyflap/internal/config"
)

// Field owns the ordered collection of obstacles: spawning on the spacing
// rule, recycling off-screen ones, and aggregating per-tick collision and
// scoring results. Obstacles are kept in creation order, which is also
// x-descending since they all scroll at the same speed.
type Field struct {
	obstacles []*Obstacle
	rng       *rand.Rand
	worldW    float64
	worldH    float64
	obs       config.ObstaclesConfig
}

// NewField creates an empty field. Degenerate geometry that could not produce
// a traversable gap is rejected here rather than surfacing later as an
// unplayable obstacle.
func NewField(cfg config.Config, seed int64) (*Field, error) {
	if cfg.Obstacles.GapHeight+2*cfg.Obstacles.Margin > cfg.World.Height {
		return nil, fmt.Errorf("sim: world height %g cannot fit gap %g with margins %g",
			cfg.World.Height, cfg.Obstacles.GapHeight, cfg.Obstacles.Margin)
	}
	// Same clearance rule the config layer validates; callers constructing a
	// field directly get the same rejection.
	if cfg.Obstacles.Spacing < cfg.Obstacles.Width+cfg.Obstacles.GapHeight {
		return nil, fmt.Errorf("sim: spawn spacing %g too small for width %g and gap %g",
			cfg.Obstacles.Spacing, cfg.Obstacles.Width, cfg.Obstacles.GapHeight)
	}

	return &Field{
		obstacles: make([]*Obstacle, 0, 8),
		rng:       rand.New(rand.NewSource(seed)),
		worldW:    cfg.World.Width,
		worldH:    cfg.World.Height,
		obs:       cfg.Obstacles,
	}, nil
}

// Reset clears all obstacles and reseeds the RNG for a new round.
// Starting a round must synchronously discard pending obstacle state.
func (f *Field) Reset(seed int64) {
	f.obstacles = f.obstacles[:0]
	f.rng = rand.New(rand.NewSource(seed))
}

// Update advances all obstacles by one tick and aggregates the results.
//
// Every obstacle is evaluated against the same actor snapshot before it
// moves, so results cannot depend on iteration order and a pass cannot be
// double counted. Obstacles that scrolled fully past the left edge are
// removed. At most one obstacle is spawned per call: when the field is empty
// or the most recently created obstacle has travelled a full spacing interval
// from the right edge.
func (f *Field) Update(speed float64, a *Actor) (collision, scored bool) {
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Intersects(a) {
			collision = true
		}
		if o.CheckPassed(a) {
			scored = true
		}
		if !o.Advance(speed) {
			kept = append(kept, o)
		}
	}
	// Drop references past the new length so removed obstacles can be collected
	for i := len(kept); i < len(f.obstacles); i++ {
		f.obstacles[i] = nil
	}
	f.obstacles = kept

	if len(f.obstacles) == 0 || f.obstacles[len(f.obstacles)-1].X < f.worldW-f.obs.Spacing {
		f.spawn()
	}

	return collision, scored
}

// spawn creates one obstacle at the right world edge with a uniformly
// randomized gap that keeps the configured margin from both edges.
func (f *Field) spawn() {
	gapTop := f.obs.Margin + f.rng.Float64()*(f.worldH-f.obs.GapHeight-2*f.obs.Margin)

	f.obstacles = append(f.obstacles, &Obstacle{
		X:         f.worldW,
		GapTop:    gapTop,
		GapBottom: gapTop + f.obs.GapHeight,
		Width:     f.obs.Width,
	})
}

// Obstacles returns the current obstacles in creation order.
// The slice is owned by the field; callers must not mutate it.
func (f *Field) Obstacles() []*Obstacle {
	return f.obstacles
}
