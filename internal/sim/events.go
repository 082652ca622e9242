package sim

import (
	"github.com/mpetrenko/skyflap/internal/core"
)

// Events receives push notifications from the simulation loop. Consumers are
// presentation collaborators (particles, HUD, background); they must never
// feed state back into the simulation from a callback. All callbacks happen
// synchronously inside the frame that produced them.
type Events interface {
	// RoundStarted fires when a round begins from the title or game-over screen.
	RoundStarted()

	// RoundEnded fires on the terminal collision, after the high score is settled.
	RoundEnded(score, highScore int)

	// Jumped fires on every flap while the round is running.
	Jumped(pos core.Vec2, color core.Color)

	// Scored fires once per obstacle passed.
	Scored(pos core.Vec2)

	// Collided fires on the collision that ended the round.
	Collided(pos core.Vec2, color core.Color)

	// PauseToggled fires when the round pauses or resumes.
	PauseToggled(paused bool)
}

// NopEvents is an Events implementation that ignores everything.
// Used when no presentation layer is attached, e.g. in tests.
type NopEvents struct{}

func (NopEvents) RoundStarted()                        {}
func (NopEvents) RoundEnded(score, highScore int)      {}
func (NopEvents) Jumped(pos core.Vec2, c core.Color)   {}
func (NopEvents) Scored(pos core.Vec2)                 {}
func (NopEvents) Collided(pos core.Vec2, c core.Color) {}
func (NopEvents) PauseToggled(paused bool)             {}
