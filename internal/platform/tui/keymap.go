package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrenko/skyflap/internal/core"
	"github.com/mpetrenko/skyflap/internal/sim"
)

// KeyMapper translates Bubble Tea key messages to game commands.
// This layer owns the documented remap: flap keys deliver a start command on
// the title and game-over screens, so the simulation core never has to
// special-case jumps outside a running round.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a command for the current phase.
// Returns the command (may be CommandNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, phase sim.Phase) (core.Command, bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.CommandQuit, true
	}

	onMenuScreen := phase == sim.PhaseTitle || phase == sim.PhaseGameOver

	switch key {
	case " ", "up", "w":
		if onMenuScreen {
			return core.CommandStart, false
		}
		return core.CommandJump, false
	case "enter":
		return core.CommandStart, false
	case "r":
		if phase == sim.PhaseGameOver {
			return core.CommandStart, false
		}
	case "p", "esc":
		return core.CommandTogglePause, false
	case "m", "b":
		if phase == sim.PhaseGameOver {
			return core.CommandMenu, false
		}
	}

	return core.CommandNone, false
}
