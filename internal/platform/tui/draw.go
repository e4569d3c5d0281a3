package tui

import (
	"fmt"

	"github.com/vmordasov/flappy-tui/internal/config"
	"github.com/vmordasov/flappy-tui/internal/core"
	"github.com/vmordasov/flappy-tui/internal/game"
)

// Visual characters for rendering
const (
	birdRising    = '◓'
	birdFalling   = '◒'
	pipeChar      = '█'
	pipeCapTop    = '▄'
	pipeCapBottom = '▀'
	groundChar    = '═'
)

// Projection maps virtual simulation units to terminal cells. The virtual
// field is fixed; only the projection changes when the terminal resizes.
type Projection struct {
	scaleX float64
	scaleY float64
}

// NewProjection builds a projection from the virtual field onto a cell grid.
func NewProjection(cfg config.ScreenConfig, cellsW, cellsH int) Projection {
	return Projection{
		scaleX: float64(cellsW) / cfg.Width,
		scaleY: float64(cellsH) / cfg.Height,
	}
}

// CellX converts a virtual x coordinate to a cell column.
func (p Projection) CellX(x float64) int {
	return int(x * p.scaleX)
}

// CellY converts a virtual y coordinate to a cell row.
func (p Projection) CellY(y float64) int {
	return int(y * p.scaleY)
}

// drawSnapshot renders a settled simulation snapshot onto the screen buffer.
func drawSnapshot(dst *core.Screen, snap game.Snapshot, proj Projection, cfg config.Config) {
	dst.Clear()

	drawGround(dst, proj, cfg)
	for _, ob := range snap.Obstacles {
		drawPipe(dst, ob, proj, cfg)
	}
	drawBird(dst, snap, proj, cfg)

	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightYellow)

	switch snap.State {
	case game.StateIdle:
		drawCenteredMessage(dst, "FLAPPY", "Press Space to start")
	case game.StateOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R to restart", snap.Score))
	}
}

// drawGround fills the ground strip below the playable field.
func drawGround(dst *core.Screen, proj Projection, cfg config.Config) {
	groundY := proj.CellY(cfg.Screen.PlayableHeight())
	dst.DrawHLine(0, groundY, dst.Width(), groundChar, core.ColorYellow)
	for y := groundY + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), '░', core.ColorGray)
	}
}

// drawPipe renders one pipe pair with caps at the gap edges.
func drawPipe(dst *core.Screen, ob game.ObstacleView, proj Projection, cfg config.Config) {
	left := proj.CellX(ob.X)
	right := proj.CellX(ob.X + cfg.Pipes.Width)
	if right <= left {
		right = left + 1 // Thin terminals still get a visible pipe
	}

	gapTop := proj.CellY(ob.TopHeight)
	gapBottom := proj.CellY(cfg.Screen.PlayableHeight() - ob.BottomHeight)
	groundY := proj.CellY(cfg.Screen.PlayableHeight())

	for x := left; x < right; x++ {
		for y := 0; y < gapTop-1; y++ {
			dst.SetColor(x, y, pipeChar, core.ColorGreen)
		}
		if gapTop > 0 {
			dst.SetColor(x, gapTop-1, pipeCapTop, core.ColorBrightGreen)
		}

		if gapBottom < groundY {
			dst.SetColor(x, gapBottom, pipeCapBottom, core.ColorBrightGreen)
		}
		for y := gapBottom + 1; y < groundY; y++ {
			dst.SetColor(x, y, pipeChar, core.ColorGreen)
		}
	}
}

// drawBird renders the player, glyph picked by vertical velocity.
func drawBird(dst *core.Screen, snap game.Snapshot, proj Projection, cfg config.Config) {
	glyph := birdFalling
	if snap.PlayerVel < 0 {
		glyph = birdRising
	}
	dst.SetColor(proj.CellX(cfg.Player.X), proj.CellY(snap.PlayerY), glyph, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
