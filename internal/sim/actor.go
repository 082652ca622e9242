// Package sim implements the real-time game simulation: actor physics,
// obstacle lifecycle, the round state machine, and the loop that ties them
// together. It is pure logic with no terminal or timing dependencies.
package sim

import (
	"github.com/mpetrenko/skyflap/internal/config"
	"github.com/mpetrenko/skyflap/internal/core"
)

// Rotation is a smoothed presentation attribute derived from velocity.
// It has no effect on collision or scoring.
const (
	rotationScale     = 0.08 // Radians of target tilt per unit of velocity
	rotationMin       = -0.6
	rotationMax       = 1.4
	rotationSmoothing = 0.15
)

// Actor is the single player-controlled entity. Only its vertical position is
// simulated; x is fixed for the whole session.
type Actor struct {
	X        float64 // Fixed horizontal position
	Y        float64 // Vertical position, mutated every tick
	Vel      float64 // Vertical velocity, clamped to terminal fall speed
	Radius   float64 // Collision radius
	Rotation float64 // Visual tilt, smoothed from velocity

	worldH float64
	phys   config.PhysicsConfig
}

// NewActor creates the actor at its canonical spawn position.
// The actor is created once per session and reused across rounds.
func NewActor(cfg config.Config) *Actor {
	a := &Actor{
		X:      cfg.Actor.X,
		Radius: cfg.Actor.Radius,
		worldH: cfg.World.Height,
		phys:   cfg.Physics,
	}
	a.Reset()
	return a
}

// Reset restores the canonical spawn position, velocity and rotation.
// Called on every round start.
func (a *Actor) Reset() {
	a.Y = a.worldH / 2
	a.Vel = 0
	a.Rotation = 0
}

// Update advances the actor by one simulation tick.
//
// Gravity is a per-tick velocity increment, not scaled by wall-clock time:
// the constants are tuned for a 1/60s tick and the loop feeds this method at
// that fixed cadence. Velocity is clamped to the terminal fall speed before
// integrating position.
//
// The ceiling is a soft boundary: position is clamped and velocity zeroed.
// The floor is terminal: position is clamped to rest on the floor and
// hitFloor reports true; reacting to it is the caller's responsibility.
func (a *Actor) Update() (hitFloor bool) {
	a.Vel += a.phys.Gravity
	if a.Vel > a.phys.MaxFallSpeed {
		a.Vel = a.phys.MaxFallSpeed
	}
	a.Y += a.Vel

	if a.Y-a.Radius < 0 {
		a.Y = a.Radius
		a.Vel = 0
	}
	if a.Y+a.Radius > a.worldH {
		a.Y = a.worldH - a.Radius
		hitFloor = true
	}

	target := core.ClampF(a.Vel*rotationScale, rotationMin, rotationMax)
	a.Rotation += (target - a.Rotation) * rotationSmoothing

	return hitFloor
}

// Jump overwrites the current velocity with the flap impulse. Setting rather
// than adding cancels any downward momentum, which is what makes the control
// feel responsive.
func (a *Actor) Jump() {
	a.Vel = a.phys.JumpImpulse
}

// Position returns the actor's current world position.
func (a *Actor) Position() core.Vec2 {
	return core.Vec2{X: a.X, Y: a.Y}
}
