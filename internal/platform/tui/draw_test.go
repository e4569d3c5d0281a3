package tui

import (
	"strings"
	"testing"

	"github.com/vmordasov/flappy-tui/internal/config"
	"github.com/vmordasov/flappy-tui/internal/core"
	"github.com/vmordasov/flappy-tui/internal/game"
)

func TestProjection(t *testing.T) {
	cfg := config.Default() // 432x768 virtual field
	proj := NewProjection(cfg.Screen, 108, 24)

	if got := proj.CellX(432); got != 108 {
		t.Errorf("CellX(432) = %d, expected 108", got)
	}
	if got := proj.CellX(216); got != 54 {
		t.Errorf("CellX(216) = %d, expected 54", got)
	}
	if got := proj.CellY(768); got != 24 {
		t.Errorf("CellY(768) = %d, expected 24", got)
	}
	if got := proj.CellY(0); got != 0 {
		t.Errorf("CellY(0) = %d, expected 0", got)
	}
}

func TestDrawSnapshot(t *testing.T) {
	cfg := config.Default()
	g := game.New(cfg, 42)
	g.OnTap()
	snap := g.Tick(1000.0 / 60.0)

	screen := core.NewScreen(80, 24)
	proj := NewProjection(cfg.Screen, 80, 24)
	drawSnapshot(screen, snap, proj, cfg)

	out := screen.String()
	if !strings.Contains(out, "Score: 0") {
		t.Error("HUD should show the score")
	}

	// Ground line sits at the projected playable height
	groundY := proj.CellY(cfg.Screen.PlayableHeight())
	if screen.Get(0, groundY) != groundChar {
		t.Errorf("expected ground rune at row %d, got %q", groundY, screen.Get(0, groundY))
	}

	// Bird is drawn at the player's fixed column
	birdX := proj.CellX(cfg.Player.X)
	birdY := proj.CellY(snap.PlayerY)
	if r := screen.Get(birdX, birdY); r != birdRising && r != birdFalling {
		t.Errorf("expected bird glyph at (%d, %d), got %q", birdX, birdY, r)
	}
}

func TestDrawSnapshotOverlays(t *testing.T) {
	cfg := config.Default()
	g := game.New(cfg, 1)

	screen := core.NewScreen(80, 24)
	proj := NewProjection(cfg.Screen, 80, 24)

	// Idle shows the start prompt
	drawSnapshot(screen, g.Snapshot(), proj, cfg)
	if !strings.Contains(screen.String(), "FLAPPY") {
		t.Error("idle overlay missing")
	}

	// Drive to game over and check the overlay
	g.OnTap()
	for g.State() == game.StateRunning {
		g.Tick(1000.0 / 60.0)
	}
	drawSnapshot(screen, g.Snapshot(), proj, cfg)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over overlay missing")
	}
}

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawTextColor(0, 1, "hi", core.ColorOrange)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen produced %d lines, expected 3", len(lines))
	}
	if !strings.Contains(out, "hi") {
		t.Error("RenderScreen lost buffer content")
	}
}
