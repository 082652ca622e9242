package fx

import (
	"math/rand"

	"github.com/mpetrenko/skyflap/internal/core"
)

// Starfield is the parallax background: layers of stars drifting left at a
// fraction of the world scroll speed. It animates in every phase, including
// the title screen and pause, and has no gameplay effect.
type Starfield struct {
	stars  []star
	worldW float64
	worldH float64
}

type star struct {
	x, y  float64
	depth float64 // (0,1]; deeper stars scroll slower and render dimmer
}

// NewStarfield scatters count stars uniformly over the world.
func NewStarfield(worldW, worldH float64, count int, seed int64) *Starfield {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]star, count)
	for i := range stars {
		stars[i] = star{
			x:     rng.Float64() * worldW,
			y:     rng.Float64() * worldH,
			depth: 0.2 + rng.Float64()*0.8,
		}
	}
	return &Starfield{stars: stars, worldW: worldW, worldH: worldH}
}

// Advance scrolls the field left by dx world units, scaled per star by its
// depth. Stars leaving the left edge wrap to the right.
func (f *Starfield) Advance(dx float64) {
	for i := range f.stars {
		f.stars[i].x -= dx * f.stars[i].depth
		if f.stars[i].x < 0 {
			f.stars[i].x += f.worldW
		}
	}
}

// Draw renders the stars through the world-to-screen projection.
func (f *Starfield) Draw(dst *core.Screen, project func(core.Vec2) (int, int)) {
	for i := range f.stars {
		s := f.stars[i]
		x, y := project(core.Vec2{X: s.x, Y: s.y})

		switch {
		case s.depth > 0.75:
			dst.SetCell(x, y, '*', core.ColorWhite)
		case s.depth > 0.45:
			dst.SetCell(x, y, '·', core.ColorGray)
		default:
			dst.SetCell(x, y, '.', core.ColorGray)
		}
	}
}
