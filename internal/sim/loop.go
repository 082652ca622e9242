package sim

import (
	"math/rand"

	"github.com/mpetrenko/skyflap/internal/config"
	"github.com/mpetrenko/skyflap/internal/core"
)

// MaxFrameDelta is the upper bound on a single frame's wall-clock delta, in
// seconds. After a stall (suspended terminal, debugger, heavy load) the
// elapsed time can be huge; integrating it in one go would tunnel the actor
// through an obstacle or the floor. Clamping is a correctness requirement,
// not a cosmetic smoothing.
const MaxFrameDelta = 0.1

// Event colors for presentation collaborators.
const (
	actorColor = core.ColorBrightYellow
	crashColor = core.ColorBrightRed
)

// Loop orchestrates the simulation: it turns variable wall-clock frame deltas
// into fixed ticks, applies frame commands, advances the actor and obstacle
// field, drives the run state machine from their results, and emits
// presentation events. All methods must be called from a single goroutine.
type Loop struct {
	cfg    config.Config
	actor  *Actor
	field  *Field
	run    *RunState
	events Events

	rng          *rand.Rand // Per-round seeds, deterministic from the session seed
	tickInterval float64    // Seconds per fixed tick
	accum        float64    // Unconsumed frame time
}

// NewLoop validates the configuration and assembles a simulation session.
// The seed makes the whole session deterministic; events may be nil.
func NewLoop(cfg config.Config, seed int64, tickRate int, store HighScoreStore, events Events) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if events == nil {
		events = NopEvents{}
	}
	if tickRate <= 0 {
		tickRate = 60
	}

	rng := rand.New(rand.NewSource(seed))
	field, err := NewField(cfg, rng.Int63())
	if err != nil {
		return nil, err
	}

	return &Loop{
		cfg:          cfg,
		actor:        NewActor(cfg),
		field:        field,
		run:          NewRunState(cfg, store),
		events:       events,
		rng:          rng,
		tickInterval: 1.0 / float64(tickRate),
	}, nil
}

// Advance runs one frame: applies the frame's commands, then consumes the
// clamped wall-clock delta in fixed ticks. While the round is not running
// (title, paused, game over) the accumulator is drained so that resuming
// does not replay the idle time as a burst of ticks.
func (l *Loop) Advance(dt float64, cmds core.CommandSet) {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}

	l.applyCommands(cmds)

	if !l.run.Running() {
		l.accum = 0
		return
	}

	l.accum += dt
	for l.accum >= l.tickInterval && l.run.Running() {
		l.accum -= l.tickInterval
		l.step()
	}
}

// applyCommands dispatches the frame's commands onto the state machine.
// Commands inconsistent with the current phase fall through as no-ops; the
// input layer is responsible for remapping jump to start on the title and
// game-over screens.
func (l *Loop) applyCommands(cmds core.CommandSet) {
	if cmds.Has(core.CommandStart) {
		if l.run.Start() {
			l.field.Reset(l.rng.Int63())
			l.actor.Reset()
			l.accum = 0
			l.events.RoundStarted()
		}
	}

	if cmds.Has(core.CommandTogglePause) {
		if l.run.TogglePause() {
			l.events.PauseToggled(l.run.Paused())
		}
	}

	if cmds.Has(core.CommandMenu) {
		if l.run.ReturnToTitle() {
			l.field.Reset(l.rng.Int63())
			l.actor.Reset()
		}
	}

	if cmds.Has(core.CommandJump) && l.run.Running() {
		l.actor.Jump()
		l.events.Jumped(l.actor.Position(), actorColor)
	}
}

// step runs exactly one fixed simulation tick.
func (l *Loop) step() {
	hitFloor := l.actor.Update()
	collision, scored := l.field.Update(l.run.Speed(), l.actor)

	if scored {
		l.run.RecordScore()
		l.events.Scored(l.actor.Position())
	}

	if collision || hitFloor {
		l.run.RecordCollision()
		l.events.Collided(l.actor.Position(), crashColor)
		l.events.RoundEnded(l.run.Score(), l.run.HighScore())
	}
}

// Actor returns the simulated actor for rendering.
func (l *Loop) Actor() *Actor {
	return l.actor
}

// Obstacles returns the live obstacles for rendering.
func (l *Loop) Obstacles() []*Obstacle {
	return l.field.Obstacles()
}

// Run returns the round state machine.
func (l *Loop) Run() *RunState {
	return l.run
}

// Config returns the configuration the session was built with.
func (l *Loop) Config() config.Config {
	return l.cfg
}
