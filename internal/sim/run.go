package sim

import (
	"github.com/mpetrenko/skyflap/internal/config"
)

// Phase is the state of the round state machine.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "Title"
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// HighScoreStore persists the single high-score integer across sessions.
// Implementations are injected; the simulation never touches storage
// concerns directly.
type HighScoreStore interface {
	HighScore() (int, error)
	SetHighScore(score int) error
}

// RunState owns score, scroll speed, the difficulty ramp and the
// title/playing/paused/game-over state machine. Transitions not listed in
// the table below are rejected as no-ops:
//
//	Title    --Start-->           Playing
//	Playing  --RecordScore-->     Playing (score and speed updated)
//	Playing  --RecordCollision--> GameOver (high score persisted if beaten)
//	Playing  --TogglePause-->     Paused
//	Paused   --TogglePause-->     Playing
//	GameOver --Start-->           Playing
//	GameOver --ReturnToTitle-->   Title
type RunState struct {
	phase            Phase
	score            int
	highScore        int
	baseSpeed        float64
	speed            float64
	difficultyFactor float64
	diff             config.DifficultyConfig
	store            HighScoreStore
}

// NewRunState creates the state machine in the Title phase and loads the
// persisted high score. A nil or failing store degrades to a zero high score;
// persistence problems never interrupt the simulation.
func NewRunState(cfg config.Config, store HighScoreStore) *RunState {
	r := &RunState{
		phase:            PhaseTitle,
		baseSpeed:        cfg.Physics.BaseSpeed,
		speed:            cfg.Physics.BaseSpeed,
		difficultyFactor: 1.0,
		diff:             cfg.Difficulty,
		store:            store,
	}
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			r.highScore = hs
		}
	}
	return r
}

// Start begins a round from the title or game-over screen, resetting score,
// speed and difficulty to their initial constants. Returns false (no-op) in
// any other phase.
func (r *RunState) Start() bool {
	if r.phase != PhaseTitle && r.phase != PhaseGameOver {
		return false
	}
	r.phase = PhasePlaying
	r.score = 0
	r.speed = r.baseSpeed
	r.difficultyFactor = 1.0
	return true
}

// RecordScore awards one point. Every diff.Every points the difficulty
// factor grows by diff.Step and the scroll speed is recomputed as
// baseSpeed + difficultyFactor, so speed is a monotonic non-decreasing step
// function of score within a round. Returns whether the difficulty stepped.
func (r *RunState) RecordScore() (stepped bool) {
	if r.phase != PhasePlaying {
		return false
	}
	r.score++
	if r.score%r.diff.Every == 0 && r.diff.Step > 0 {
		r.difficultyFactor += r.diff.Step
		r.speed = r.baseSpeed + r.difficultyFactor
		return true
	}
	return false
}

// RecordCollision ends the round. The high score is updated and written back
// exactly once, and only when the final score beats it; a failed write is
// dropped silently (the in-memory value is still updated for this session).
// Returns whether a new high score was set.
func (r *RunState) RecordCollision() (newHigh bool) {
	if r.phase != PhasePlaying {
		return false
	}
	r.phase = PhaseGameOver
	if r.score > r.highScore {
		r.highScore = r.score
		if r.store != nil {
			//nolint:errcheck // Best-effort write, simulation continues regardless
			r.store.SetHighScore(r.highScore)
		}
		return true
	}
	return false
}

// TogglePause flips between Playing and Paused. No-op in any other phase.
// Returns whether the phase changed.
func (r *RunState) TogglePause() bool {
	switch r.phase {
	case PhasePlaying:
		r.phase = PhasePaused
		return true
	case PhasePaused:
		r.phase = PhasePlaying
		return true
	default:
		return false
	}
}

// ReturnToTitle leaves the game-over screen for the title screen.
// Returns false (no-op) in any other phase.
func (r *RunState) ReturnToTitle() bool {
	if r.phase != PhaseGameOver {
		return false
	}
	r.phase = PhaseTitle
	return true
}

// Phase returns the current phase.
func (r *RunState) Phase() Phase {
	return r.phase
}

// Running reports whether the simulation should advance this frame.
func (r *RunState) Running() bool {
	return r.phase == PhasePlaying
}

// Paused reports whether the round is paused.
func (r *RunState) Paused() bool {
	return r.phase == PhasePaused
}

// Score returns the current round score.
func (r *RunState) Score() int {
	return r.score
}

// HighScore returns the best score seen, including the current round.
func (r *RunState) HighScore() int {
	return r.highScore
}

// Speed returns the current world scroll speed in units per tick.
func (r *RunState) Speed() float64 {
	return r.speed
}

// DifficultyFactor returns the current difficulty multiplier.
func (r *RunState) DifficultyFactor() float64 {
	return r.difficultyFactor
}
