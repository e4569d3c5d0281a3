// Package game implements the flappy simulation core: player physics,
// procedural pipe generation, collision detection, and the run state
// machine. The package is presentation-free and single-threaded; a host
// drives it with Tick, OnTap, and Restart and renders Snapshots.
package game

import (
	"github.com/vmordasov/flappy-tui/internal/config"
)

const (
	// refFrameMillis normalizes integration to a 60 Hz reference frame so
	// physics behaves the same at any tick rate.
	refFrameMillis = 1000.0 / 60.0

	// maxFrameMillis caps the frame delta. A long stall (suspended host,
	// debugger pause) must not turn into one giant tunneling step.
	maxFrameMillis = 50.0
)

// State is the run lifecycle state.
type State int

const (
	StateIdle    State = iota // Waiting for the starting tap
	StateRunning              // Simulation active
	StateOver                 // Terminal collision happened
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Game ties the player, the world, and the state machine together.
type Game struct {
	cfg    config.Config
	player Player
	world  *World
	state  State
	seed   int64
	seeded bool // Initial pipes placed for the current run
}

// New creates a game in the idle state.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{
		cfg:   cfg,
		world: NewWorld(cfg, seed),
		seed:  seed,
	}
	g.resetRun()
	return g
}

// Reseed sets the seed used for the next run's pipe heights. Called by the
// platform before a restart so every run gets fresh pipes; tests keep the
// seed fixed for reproducibility.
func (g *Game) Reseed(seed int64) {
	g.seed = seed
}

// State returns the current lifecycle state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current run's score.
func (g *Game) Score() int {
	return g.world.Score()
}

// OnTap handles a tap. In Idle it arms a fresh run without jumping (the
// starting tap only starts); in Running it applies the jump impulse; in
// Over it is ignored, restart being a separate explicit action.
func (g *Game) OnTap() {
	switch g.state {
	case StateIdle:
		g.resetRun()
		g.state = StateRunning
	case StateRunning:
		g.player.Jump(g.cfg.Physics)
	case StateOver:
		// Ignored. No tap-to-restart.
	}
}

// Restart returns from Over to Idle with a fully reset player and world.
// It does not start the next run; the next tap does.
func (g *Game) Restart() {
	if g.state != StateOver {
		return
	}
	g.resetRun()
	g.state = StateIdle
}

// resetRun puts the player at the start pose and clears the world.
func (g *Game) resetRun() {
	g.player = Player{Y: g.cfg.Screen.Height / 2, Vel: 0}
	g.world.Reset(g.seed)
	g.seeded = false
}

// Tick advances the simulation by one frame and returns the settled
// snapshot. Idle and Over freeze: the snapshot is returned unchanged.
//
// Within one running tick the order is fixed: seed (first tick of a run),
// gravity integration and boundary handling, then obstacle advancement
// with scoring, then pipe collision. A terminal collision short-circuits
// the rest of the tick.
func (g *Game) Tick(dtMillis float64) Snapshot {
	if g.state != StateRunning {
		return g.Snapshot()
	}

	if dtMillis > maxFrameMillis {
		dtMillis = maxFrameMillis
	}
	if dtMillis < 0 {
		dtMillis = 0
	}
	step := dtMillis / refFrameMillis

	if !g.seeded {
		g.world.SeedObstacles()
		g.seeded = true
	}

	half := g.cfg.Player.CollisionHalf()

	g.player.ApplyGravity(g.cfg.Physics, step)
	g.player.ClampCeiling(half)

	// Ground contact ends the run without clamping: the final frame shows
	// the bird where physics left it.
	if g.player.HitGround(g.cfg.Screen.PlayableHeight(), half) {
		g.state = StateOver
		return g.Snapshot()
	}

	g.world.Advance(step)

	if g.world.CheckCollision(&g.player) {
		g.state = StateOver
	}

	return g.Snapshot()
}
