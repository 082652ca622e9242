package sim

import (
	"testing"

	"github.com/mpetrenko/skyflap/internal/config"
)

// actorAt builds an actor positioned for collision tests.
func actorAt(t *testing.T, x, y, radius float64) *Actor {
	t.Helper()
	cfg := config.Default()
	a := NewActor(cfg)
	a.X = x
	a.Y = y
	a.Radius = radius
	return a
}

func TestObstacleIntersects(t *testing.T) {
	o := &Obstacle{X: 170, GapTop: 250, GapBottom: 420, Width: 64}

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"centered in gap", 180, 300, false},
		{"above gap", 180, 240, true},
		{"below gap", 180, 440, true},
		{"touching gap top exactly", 180, 265, false},
		{"touching gap bottom exactly", 180, 405, false},
		{"one unit past gap top", 180, 264, true},
		{"one unit past gap bottom", 180, 406, true},
		{"left of obstacle", 100, 100, false},
		{"touching left edge", 155, 100, false},
		{"right of obstacle", 300, 100, false},
		{"touching right edge", 249, 100, false},
		{"just overlapping left edge", 156, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := actorAt(t, tt.x, tt.y, 15)
			if got := o.Intersects(a); got != tt.want {
				t.Errorf("Intersects(actor at %g,%g) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestObstacleAdvance(t *testing.T) {
	o := &Obstacle{X: 10, Width: 64}

	if o.Advance(5) {
		t.Error("Obstacle at x=5 should still be on screen")
	}
	if o.X != 5 {
		t.Errorf("X after advance = %g, want 5", o.X)
	}

	// Still visible while any part remains right of the left edge
	if o.Advance(68) {
		t.Error("Obstacle with right edge at 1 should still be on screen")
	}
	if !o.Advance(2) {
		t.Error("Obstacle fully past the left edge should report offscreen")
	}
}

func TestObstacleCheckPassedOnce(t *testing.T) {
	o := &Obstacle{X: 100, GapTop: 250, GapBottom: 420, Width: 64}
	a := actorAt(t, 180, 300, 15)

	// Actor center is at 180, obstacle right edge at 164: passed
	if !o.CheckPassed(a) {
		t.Fatal("First check past the right edge should score")
	}
	for i := 0; i < 3; i++ {
		if o.CheckPassed(a) {
			t.Fatal("Pass must be reported exactly once")
		}
	}
}

func TestObstacleNotPassedWhileOverlapping(t *testing.T) {
	o := &Obstacle{X: 150, GapTop: 250, GapBottom: 420, Width: 64}
	a := actorAt(t, 180, 300, 15)

	// Right edge at 214, actor center at 180: not yet past
	if o.CheckPassed(a) {
		t.Error("Actor short of the right edge should not score yet")
	}
	if o.Passed {
		t.Error("Passed flag must not flip before the actor clears the edge")
	}
}

func TestFieldSpawnsAtRightEdge(t *testing.T) {
	cfg := config.Default()
	f, err := NewField(cfg, 1)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	a := NewActor(cfg)

	f.Update(cfg.Physics.BaseSpeed, a)

	obs := f.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("Expected exactly one obstacle after first update, got %d", len(obs))
	}
	if obs[0].X != cfg.World.Width {
		t.Errorf("Spawn x = %g, want %g", obs[0].X, cfg.World.Width)
	}
}

func TestFieldSpawnRespectsMargins(t *testing.T) {
	cfg := config.Default()
	f, err := NewField(cfg, 99)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	a := NewActor(cfg)

	// Let the field spawn a good sample of obstacles
	for i := 0; i < 5000; i++ {
		f.Update(cfg.Physics.BaseSpeed, a)
		for _, o := range f.Obstacles() {
			if o.GapTop < cfg.Obstacles.Margin {
				t.Fatalf("Gap top %g violates margin %g", o.GapTop, cfg.Obstacles.Margin)
			}
			if o.GapBottom > cfg.World.Height-cfg.Obstacles.Margin {
				t.Fatalf("Gap bottom %g violates margin %g", o.GapBottom, cfg.Obstacles.Margin)
			}
			if o.GapBottom-o.GapTop != cfg.Obstacles.GapHeight {
				t.Fatalf("Gap height %g, want %g", o.GapBottom-o.GapTop, cfg.Obstacles.GapHeight)
			}
		}
	}
}

func TestFieldSpawnSpacing(t *testing.T) {
	cfg := config.Default()
	f, err := NewField(cfg, 7)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	a := NewActor(cfg)

	for i := 0; i < 2000; i++ {
		f.Update(cfg.Physics.BaseSpeed, a)

		obs := f.Obstacles()
		for j := 1; j < len(obs); j++ {
			gap := obs[j].X - obs[j-1].X
			if gap < cfg.Obstacles.Spacing {
				t.Fatalf("Obstacles %d and %d only %g apart, want >= %g", j-1, j, gap, cfg.Obstacles.Spacing)
			}
		}
	}
}

func TestFieldRemovesOffscreenObstacles(t *testing.T) {
	cfg := config.Default()
	f, err := NewField(cfg, 3)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	a := NewActor(cfg)
	a.Y = -1000 // Keep the actor out of every gap check's way
	a.X = -1000

	// Enough ticks for the first spawn to cross the whole world
	ticks := int(cfg.World.Width/cfg.Physics.BaseSpeed) * 3
	for i := 0; i < ticks; i++ {
		f.Update(cfg.Physics.BaseSpeed, a)
		for _, o := range f.Obstacles() {
			if o.X+o.Width < 0 {
				t.Fatalf("Offscreen obstacle at x=%g was not removed", o.X)
			}
		}
	}
}

func TestFieldAggregatesResults(t *testing.T) {
	cfg := config.Default()
	f, err := NewField(cfg, 1)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}

	// Hand-placed obstacles: one being passed this tick, one colliding
	f.obstacles = append(f.obstacles,
		&Obstacle{X: 50, GapTop: 250, GapBottom: 420, Width: 64},
		&Obstacle{X: 170, GapTop: 250, GapBottom: 420, Width: 64},
	)

	a := actorAt(t, 180, 100, 15) // Above the second obstacle's gap
	collision, scored := f.Update(cfg.Physics.BaseSpeed, a)

	if !collision {
		t.Error("Expected collision with the overlapping obstacle")
	}
	if !scored {
		t.Error("Expected a pass on the obstacle behind the actor")
	}
}

func TestFieldReset(t *testing.T) {
	cfg := config.Default()
	f, err := NewField(cfg, 1)
	if err != nil {
		t.Fatalf("NewField: %v", err)
	}
	a := NewActor(cfg)

	for i := 0; i < 100; i++ {
		f.Update(cfg.Physics.BaseSpeed, a)
	}
	if len(f.Obstacles()) == 0 {
		t.Fatal("Expected obstacles before reset")
	}

	f.Reset(2)
	if len(f.Obstacles()) != 0 {
		t.Errorf("Expected no obstacles after reset, got %d", len(f.Obstacles()))
	}
}

func TestNewFieldRejectsDegenerateGeometry(t *testing.T) {
	cfg := config.Default()
	cfg.Obstacles.GapHeight = cfg.World.Height
	if _, err := NewField(cfg, 1); err == nil {
		t.Error("Expected error for gap taller than the world")
	}

	// Spacing follows the same clearance rule as config validation: at least
	// one obstacle width plus a full gap height.
	cfg = config.Default()
	cfg.Obstacles.Spacing = cfg.Obstacles.Width + cfg.Obstacles.GapHeight - 1
	if _, err := NewField(cfg, 1); err == nil {
		t.Error("Expected error for spacing below width plus gap height")
	}

	cfg = config.Default()
	cfg.Obstacles.Spacing = cfg.Obstacles.Width + cfg.Obstacles.GapHeight
	if _, err := NewField(cfg, 1); err != nil {
		t.Errorf("Spacing exactly at the clearance bound should be accepted: %v", err)
	}
}
