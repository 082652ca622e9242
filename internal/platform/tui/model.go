package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrenko/skyflap/internal/config"
	"github.com/mpetrenko/skyflap/internal/core"
	"github.com/mpetrenko/skyflap/internal/fx"
	"github.com/mpetrenko/skyflap/internal/sim"
	"github.com/mpetrenko/skyflap/internal/storage"
)

const starCount = 64

// Model is the Bubble Tea model driving the game.
// It owns the frame clock: every TickMsg it computes the wall-clock delta,
// feeds the simulation loop, and advances the decorative layers (which
// animate in every phase, including title and pause).
type Model struct {
	loop      *sim.Loop
	screen    *core.Screen
	store     *storage.Store
	cfg       config.Config
	runtime   core.RuntimeConfig
	keymap    *KeyMapper
	cmds      core.CommandSet
	stars     *fx.Starfield
	particles *fx.System
	sched     *fx.Scheduler
	sink      *fxSink
	lastTick  time.Time
	quitting  bool
}

// NewModel assembles a game session. Fails only on an invalid configuration.
// store may be nil; the game then runs without persistence.
func NewModel(cfg config.Config, rt core.RuntimeConfig, store *storage.Store) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultRuntimeConfig().TickRate
	}

	particles := fx.NewSystem(rt.Seed + 1)
	sched := fx.NewScheduler()
	sink := &fxSink{
		particles: particles,
		sched:     sched,
		store:     store,
		every:     cfg.Difficulty.Every,
	}

	// A nil *storage.Store wrapped in the interface would not be a nil
	// interface; convert only when there is a real store behind it.
	var highScores sim.HighScoreStore
	if store != nil {
		highScores = store
	}

	loop, err := sim.NewLoop(cfg, rt.Seed, rt.TickRate, highScores, sink)
	if err != nil {
		return Model{}, err
	}
	sink.run = loop.Run()

	return Model{
		loop:      loop,
		screen:    core.NewScreen(rt.ScreenW, rt.ScreenH),
		store:     store,
		cfg:       cfg,
		runtime:   rt,
		keymap:    NewKeyMapper(),
		cmds:      core.NewCommandSet(),
		stars:     fx.NewStarfield(cfg.World.Width, cfg.World.Height, starCount, rt.Seed+2),
		particles: particles,
		sched:     sched,
		sink:      sink,
	}, nil
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world keeps its logical size; only the projection changes.
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey maps keyboard input to commands for the next frame.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd, quit := m.keymap.MapKey(msg, m.loop.Run().Phase())
	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd != core.CommandNone {
		m.cmds.Set(cmd)
	}
	return m, nil
}

// handleTick runs one frame: simulation first, then decorative layers.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.runtime.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.loop.Advance(dt, m.cmds)
	m.cmds.Clear()

	// Background and particles animate regardless of run state. The star
	// scroll tracks the current world speed, converted from per-tick units.
	frameDt := dt
	if frameDt > sim.MaxFrameDelta {
		frameDt = sim.MaxFrameDelta
	}
	m.stars.Advance(m.loop.Run().Speed() * frameDt * float64(m.runtime.TickRate))
	m.sched.Advance(frameDt)
	m.particles.Update(frameDt)

	return m, tickCmd(m.runtime.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(cfg config.Config, rt core.RuntimeConfig, store *storage.Store) error {
	model, err := NewModel(cfg, rt, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}

// fxSink fans simulation events out to the cosmetic collaborators and the
// run-history recorder. It only reads from the simulation; nothing here may
// mutate simulation state.
type fxSink struct {
	particles *fx.System
	sched     *fx.Scheduler
	store     *storage.Store
	run       *sim.RunState
	every     int
	started   time.Time
}

func (s *fxSink) RoundStarted() {
	s.particles.Clear()
	s.sched.Clear()
	s.started = time.Now()
}

func (s *fxSink) RoundEnded(score, highScore int) {
	if s.store == nil || score <= 0 {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	s.store.RecordRun(score, time.Since(s.started))
}

func (s *fxSink) Jumped(pos core.Vec2, c core.Color) {
	s.particles.Burst(pos, c, 6)
}

func (s *fxSink) Scored(pos core.Vec2) {
	s.particles.Burst(pos, core.ColorBrightGreen, 10)

	// Celebrate every difficulty step with staggered follow-up bursts.
	// Scheduled through the frame-polled queue so they fire harmlessly even
	// if the round ends first.
	if s.run != nil && s.every > 0 && s.run.Score()%s.every == 0 {
		for i := 1; i <= 3; i++ {
			delay := 0.15 * float64(i)
			s.sched.After(delay, func() {
				s.particles.Burst(pos, core.ColorBrightCyan, 8)
			})
		}
	}
}

func (s *fxSink) Collided(pos core.Vec2, c core.Color) {
	s.particles.Burst(pos, c, 24)
}

func (s *fxSink) PauseToggled(paused bool) {}
