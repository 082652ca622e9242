package core

// Command represents a semantic game command, abstracted from physical key
// presses. The input layer translates raw keys into commands; the simulation
// consumes commands without knowing their source.
type Command int

const (
	CommandNone        Command = iota
	CommandJump                // Flap upward while a round is running
	CommandStart               // Begin a round from the title or game-over screen
	CommandTogglePause         // Pause/resume the running round
	CommandMenu                // Return to the title screen after game over
	CommandQuit                // Exit the program
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandJump:
		return "Jump"
	case CommandStart:
		return "Start"
	case CommandTogglePause:
		return "TogglePause"
	case CommandMenu:
		return "Menu"
	case CommandQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// CommandSet holds the commands issued during one frame.
// Using a map allows checking multiple commands without order dependency.
type CommandSet struct {
	commands map[Command]bool
}

// NewCommandSet creates an empty command set.
func NewCommandSet() CommandSet {
	return CommandSet{
		commands: make(map[Command]bool),
	}
}

// Set marks a command as issued for this frame.
func (s *CommandSet) Set(c Command) {
	if s.commands == nil {
		s.commands = make(map[Command]bool)
	}
	s.commands[c] = true
}

// Has returns true if the given command was issued this frame.
func (s CommandSet) Has(c Command) bool {
	if s.commands == nil {
		return false
	}
	return s.commands[c]
}

// Clear resets all commands for the next frame.
func (s *CommandSet) Clear() {
	for k := range s.commands {
		delete(s.commands, k)
	}
}
