package sim

// Obstacle is a vertical barrier with a traversable gap, scrolling
// right-to-left. The gap window is randomized once at creation and never
// moves; only x changes.
type Obstacle struct {
	X         float64 // Left edge, decreases every tick
	GapTop    float64
	GapBottom float64 // GapBottom - GapTop is the fixed gap height
	Width     float64
	Passed    bool // Flips true exactly once when the actor clears the right edge
}

// Advance moves the obstacle left by the current scroll speed.
// Returns true once the obstacle is fully past the left world edge.
func (o *Obstacle) Advance(speed float64) (offscreen bool) {
	o.X -= speed
	return o.X+o.Width < 0
}

// Intersects reports whether the actor collides with this obstacle.
// The test is exact with no tolerance: the actor's horizontal extent must
// overlap the obstacle's, and the actor's vertical extent must escape the
// gap. An actor whose extent exactly touches the gap boundaries is still
// inside the gap and does not collide.
func (o *Obstacle) Intersects(a *Actor) bool {
	if a.X+a.Radius <= o.X || a.X-a.Radius >= o.X+o.Width {
		return false
	}
	return a.Y-a.Radius < o.GapTop || a.Y+a.Radius > o.GapBottom
}

// CheckPassed reports, exactly once, that the actor has passed this obstacle.
// The first call with the actor beyond the right edge returns true and flips
// Passed permanently; every later call returns false.
func (o *Obstacle) CheckPassed(a *Actor) bool {
	if o.Passed || a.X <= o.X+o.Width {
		return false
	}
	o.Passed = true
	return true
}
