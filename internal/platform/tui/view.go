package tui

import (
	"fmt"

	"github.com/mpetrenko/skyflap/internal/core"
	"github.com/mpetrenko/skyflap/internal/sim"
)

// Visual characters for rendering
const (
	actorChar     = '◆'
	actorRiseChar = '▲'
	actorDiveChar = '▼'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// Tilt thresholds (radians) for switching the actor glyph.
const (
	riseTilt = -0.25
	diveTilt = 0.8
)

// project converts world coordinates to screen cells.
func (m Model) project(p core.Vec2) (int, int) {
	x := int(p.X / m.cfg.World.Width * float64(m.screen.Width()))
	y := int(p.Y / m.cfg.World.Height * float64(m.screen.Height()))
	return x, y
}

// draw renders the whole frame into the screen buffer.
// Layer order: background, obstacles, actor, particles, HUD, overlays.
func (m Model) draw() {
	m.screen.Clear()

	m.stars.Draw(m.screen, m.project)

	groundY := m.screen.Height() - 1
	m.screen.DrawHLine(0, groundY, m.screen.Width(), groundChar)

	for _, o := range m.loop.Obstacles() {
		m.drawObstacle(o)
	}

	phase := m.loop.Run().Phase()
	if phase != sim.PhaseTitle {
		m.drawActor()
	}

	m.particles.Draw(m.screen, m.project)

	m.drawHUD()

	switch phase {
	case sim.PhaseTitle:
		m.drawCenteredMessage("S K Y F L A P", "Press Space to start")
	case sim.PhasePaused:
		m.drawCenteredMessage("PAUSED", "Press P to resume")
	case sim.PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  Best: %d  |  Space to retry, M for menu",
			m.loop.Run().Score(), m.loop.Run().HighScore())
		m.drawCenteredMessage("GAME OVER", sub)
	}
}

// drawObstacle renders one pipe pair with its gap.
func (m Model) drawObstacle(o *sim.Obstacle) {
	left, _ := m.project(core.Vec2{X: o.X})
	right, _ := m.project(core.Vec2{X: o.X + o.Width})
	if right <= left {
		right = left + 1
	}

	_, gapTopY := m.project(core.Vec2{Y: o.GapTop})
	_, gapBottomY := m.project(core.Vec2{Y: o.GapBottom})
	groundY := m.screen.Height() - 1

	for x := left; x < right; x++ {
		// Top section down to the gap, capped
		m.screen.DrawVLineColored(x, 0, gapTopY, pipeChar, core.ColorGreen)
		if gapTopY > 0 {
			m.screen.SetCell(x, gapTopY-1, pipeCapTop, core.ColorGreen)
		}

		// Bottom section from below the gap to the ground, capped
		m.screen.DrawVLineColored(x, gapBottomY, groundY-gapBottomY, pipeChar, core.ColorGreen)
		if gapBottomY < groundY {
			m.screen.SetCell(x, gapBottomY, pipeCapBottom, core.ColorGreen)
		}
	}
}

// drawActor renders the actor with a glyph picked from its visual tilt.
func (m Model) drawActor() {
	a := m.loop.Actor()
	x, y := m.project(a.Position())

	ch := actorChar
	switch {
	case a.Rotation < riseTilt:
		ch = actorRiseChar
	case a.Rotation > diveTilt:
		ch = actorDiveChar
	}

	m.screen.SetCell(x, y, ch, core.ColorBrightYellow)
}

// drawHUD renders the score line.
func (m Model) drawHUD() {
	run := m.loop.Run()
	hud := fmt.Sprintf(" Score: %d  Best: %d  Speed: %.1f ",
		run.Score(), run.HighScore(), run.Speed())
	m.screen.DrawTextColored(2, 0, hud, core.ColorBrightWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (m Model) drawCenteredMessage(title, subtitle string) {
	w := m.screen.Width()
	h := m.screen.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)

	titleX := boxX + (boxW-len(title))/2
	m.screen.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	m.screen.DrawText(subtitleX, boxY+3, subtitle)
}
