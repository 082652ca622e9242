package core

import "testing"

func TestCommandSet(t *testing.T) {
	s := NewCommandSet()

	if s.Has(CommandJump) {
		t.Error("Fresh set should be empty")
	}

	s.Set(CommandJump)
	s.Set(CommandTogglePause)
	if !s.Has(CommandJump) || !s.Has(CommandTogglePause) {
		t.Error("Set commands not reported")
	}
	if s.Has(CommandStart) {
		t.Error("Unset command reported")
	}

	s.Clear()
	if s.Has(CommandJump) || s.Has(CommandTogglePause) {
		t.Error("Clear did not empty the set")
	}
}

func TestCommandSetZeroValue(t *testing.T) {
	var s CommandSet

	if s.Has(CommandJump) {
		t.Error("Zero-value set should report nothing")
	}
	s.Set(CommandJump) // Must not panic
	if !s.Has(CommandJump) {
		t.Error("Set on zero value lost the command")
	}
}

func TestCommandString(t *testing.T) {
	names := map[Command]string{
		CommandNone:        "None",
		CommandJump:        "Jump",
		CommandStart:       "Start",
		CommandTogglePause: "TogglePause",
		CommandMenu:        "Menu",
		CommandQuit:        "Quit",
		Command(99):        "Unknown",
	}
	for c, want := range names {
		if c.String() != want {
			t.Errorf("Command(%d).String() = %q, want %q", int(c), c.String(), want)
		}
	}
}
