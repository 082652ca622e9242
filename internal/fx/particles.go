package fx

import (
	"math"
	"math/rand"

	"github.com/mpetrenko/skyflap/internal/core"
)

// Particle tuning. Velocities are world units per second since particles are
// advanced with real dt, unlike the tick-based simulation.
const (
	maxParticles    = 256
	particleGravity = 120.0
	particleDrag    = 0.98
	minBurstSpeed   = 30.0
	maxBurstSpeed   = 110.0
	minLife         = 0.35
	maxLife         = 0.9
)

var particleRunes = []rune{'·', '•', '+', '*'}

// Particle is a single cosmetic spark.
type Particle struct {
	Pos   core.Vec2
	Vel   core.Vec2
	Life  float64 // Remaining lifetime in seconds
	Char  rune
	Color core.Color
}

// System is a fixed-capacity particle pool. Bursts past capacity overwrite
// the oldest particles rather than allocating.
type System struct {
	particles []Particle
	rng       *rand.Rand
}

// NewSystem creates an empty particle system.
func NewSystem(seed int64) *System {
	return &System{
		particles: make([]Particle, 0, maxParticles),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

// Burst emits count particles radially from pos.
func (s *System) Burst(pos core.Vec2, color core.Color, count int) {
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		speed := minBurstSpeed + s.rng.Float64()*(maxBurstSpeed-minBurstSpeed)

		p := Particle{
			Pos:   pos,
			Vel:   core.Vec2{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:  minLife + s.rng.Float64()*(maxLife-minLife),
			Char:  particleRunes[s.rng.Intn(len(particleRunes))],
			Color: color,
		}

		if len(s.particles) < maxParticles {
			s.particles = append(s.particles, p)
		} else {
			s.particles[s.oldest()] = p
		}
	}
}

// oldest returns the index of the particle closest to expiring.
func (s *System) oldest() int {
	idx := 0
	for i := 1; i < len(s.particles); i++ {
		if s.particles[i].Life < s.particles[idx].Life {
			idx = i
		}
	}
	return idx
}

// Update advances all particles by dt seconds and culls expired ones.
func (s *System) Update(dt float64) {
	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Vel.Y += particleGravity * dt
		p.Vel = p.Vel.Scale(particleDrag)
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, p)
	}
	s.particles = alive
}

// Draw renders all particles through the world-to-screen projection.
func (s *System) Draw(dst *core.Screen, project func(core.Vec2) (int, int)) {
	for i := range s.particles {
		x, y := project(s.particles[i].Pos)
		dst.SetCell(x, y, s.particles[i].Char, s.particles[i].Color)
	}
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}

// Clear removes all live particles.
func (s *System) Clear() {
	s.particles = s.particles[:0]
}
