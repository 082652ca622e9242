package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrenko/skyflap/internal/config"
	"github.com/mpetrenko/skyflap/internal/core"
	"github.com/mpetrenko/skyflap/internal/sim"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	m, err := NewModel(config.Default(), rt, nil)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

// step feeds one key and one tick through the model.
func step(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func TestModelTitleScreen(t *testing.T) {
	m := newTestModel(t)
	m = step(m, TickMsg(time.Now()))

	view := m.View()
	if !strings.Contains(view, "S K Y F L A P") {
		t.Error("Title screen does not show the game title")
	}
	if m.loop.Run().Phase() != sim.PhaseTitle {
		t.Errorf("Phase = %v, want Title", m.loop.Run().Phase())
	}
}

func TestModelStartsRoundOnSpace(t *testing.T) {
	m := newTestModel(t)

	now := time.Now()
	m = step(m,
		keyMsg(" "),
		TickMsg(now),
	)

	if !m.loop.Run().Running() {
		t.Errorf("Phase after space = %v, want Playing", m.loop.Run().Phase())
	}
}

func TestModelPauseOverlay(t *testing.T) {
	m := newTestModel(t)

	now := time.Now()
	m = step(m,
		keyMsg(" "),
		TickMsg(now),
		keyMsg("p"),
		TickMsg(now.Add(16*time.Millisecond)),
	)

	if !m.loop.Run().Paused() {
		t.Fatalf("Phase = %v, want Paused", m.loop.Run().Phase())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("Pause overlay missing from the view")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := newTestModel(t)

	next, cmd := m.Update(keyMsg("q"))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if m.View() != "" {
		t.Error("View after quit should be empty")
	}
}

func TestModelResizeKeepsWorld(t *testing.T) {
	m := newTestModel(t)
	world := m.loop.Config().World

	m = step(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("Screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
	if m.loop.Config().World != world {
		t.Error("Resize must not change the logical world size")
	}
}

func TestModelRunsWithoutStore(t *testing.T) {
	// The play command continues with a nil store when the database cannot be
	// opened; the whole session must work, it just loses persistence.
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
	m, err := NewModel(config.Default(), rt, nil)
	if err != nil {
		t.Fatalf("NewModel without store: %v", err)
	}

	if high := m.loop.Run().HighScore(); high != 0 {
		t.Errorf("High score without store = %d, want 0", high)
	}

	// Play a full round to the terminal collision; nothing here may panic
	m = step(m, keyMsg(" "))
	now := time.Now()
	for i := 0; i < 600 && m.loop.Run().Phase() != sim.PhaseGameOver; i++ {
		now = now.Add(16 * time.Millisecond)
		m = step(m, TickMsg(now))
	}
	if m.loop.Run().Phase() != sim.PhaseGameOver {
		t.Fatal("Round did not end within 600 frames")
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("Game-over overlay missing from the view")
	}
}

func TestModelHUDShowsScore(t *testing.T) {
	m := newTestModel(t)
	m = step(m, TickMsg(time.Now()))

	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("HUD does not show the score")
	}
}
