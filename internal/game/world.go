package game

import (
	"math/rand"

	"github.com/vmordasov/flappy-tui/internal/config"
	"github.com/vmordasov/flappy-tui/internal/core"
)

// Obstacle is a pipe pair: a top and bottom blocking segment with a gap
// between them. IDs are unique and monotonically increasing so the renderer
// can track pipes across frames.
type Obstacle struct {
	ID           int
	X            float64 // Left edge
	TopHeight    float64
	BottomHeight float64
	Passed       bool // Set once when the trailing edge crosses the player
}

// TopRect returns the collision rectangle of the upper segment.
func (o Obstacle) TopRect(width float64) core.RectF {
	return core.NewRectF(o.X, 0, width, o.TopHeight)
}

// BottomRect returns the collision rectangle of the lower segment.
// playable is the field height above the ground.
func (o Obstacle) BottomRect(width, playable float64) core.RectF {
	return core.NewRectF(o.X, playable-o.BottomHeight, width, o.BottomHeight)
}

// World owns the obstacle list, the score, and the obstacle RNG. All
// mutation happens inside Advance and the seeding helpers; there is no
// shared state outside this aggregate.
type World struct {
	cfg       config.Config
	obstacles []Obstacle
	score     int
	nextID    int
	rng       *rand.Rand
}

// NewWorld creates an empty world with the given RNG seed.
func NewWorld(cfg config.Config, seed int64) *World {
	w := &World{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 8),
	}
	w.Reset(seed)
	return w
}

// Reset clears all obstacles and the score and reseeds the RNG, so a run
// restarted with the same seed replays the same pipe heights.
func (w *World) Reset(seed int64) {
	w.obstacles = w.obstacles[:0]
	w.score = 0
	w.nextID = 0
	w.rng = rand.New(rand.NewSource(seed))
}

// SeedObstacles places the initial rolling window of pipes. The first pipe
// sits a grace offset beyond the right edge so the player has a moment to
// find the rhythm before the first gap arrives.
func (w *World) SeedObstacles() {
	first := w.cfg.Screen.Width + w.cfg.Pipes.GraceOffset
	for i := 0; i < w.cfg.Pipes.SeedCount; i++ {
		w.spawn(first + float64(i)*w.cfg.Pipes.SpawnThreshold)
	}
}

// spawn appends a pipe at x with a uniformly random top height. The column
// invariant holds by construction: top + gap + bottom == playable height.
func (w *World) spawn(x float64) {
	playable := w.cfg.Screen.PlayableHeight()
	minTop := w.cfg.Pipes.TopMargin
	maxTop := playable - w.cfg.Pipes.GapHeight - w.cfg.Pipes.BottomMargin
	if maxTop < minTop {
		maxTop = minTop // degenerate tuning, keep the pipe valid
	}

	top := minTop + w.rng.Float64()*(maxTop-minTop)

	w.obstacles = append(w.obstacles, Obstacle{
		ID:           w.nextID,
		X:            x,
		TopHeight:    top,
		BottomHeight: playable - w.cfg.Pipes.GapHeight - top,
	})
	w.nextID++
}

// Advance moves the window one step: shift pipes left, score freshly passed
// ones, prune fully off-screen ones, and spawn a replacement when the
// rightmost pipe has traveled a full spacing. Scoring runs before the
// caller's collision check; a pipe scored this tick is already behind the
// player and can no longer hit it.
func (w *World) Advance(step float64) {
	dx := w.cfg.Pipes.Speed * step
	width := w.cfg.Pipes.Width

	for i := range w.obstacles {
		w.obstacles[i].X -= dx
	}

	for i := range w.obstacles {
		ob := &w.obstacles[i]
		if !ob.Passed && ob.X+width < w.cfg.Player.X {
			ob.Passed = true
			w.score++
		}
	}

	// Prune in place, same tick, so off-screen pipes never reach a snapshot.
	alive := w.obstacles[:0]
	for _, ob := range w.obstacles {
		if ob.X+width >= 0 {
			alive = append(alive, ob)
		}
	}
	w.obstacles = alive

	if len(w.obstacles) == 0 ||
		w.obstacles[len(w.obstacles)-1].X < w.cfg.Screen.Width-w.cfg.Pipes.SpawnThreshold {
		w.spawn(w.cfg.Screen.Width)
	}
}

// CheckCollision tests the player's collision box against the pipe window.
// Pipes whose horizontal span (minus tolerance) does not overlap the player
// are skipped before any vertical work. The tolerance insets the pipe
// rectangles, forgiving near-miss grazes. At most one collision is
// reported; the first hit wins.
func (w *World) CheckCollision(p *Player) bool {
	width := w.cfg.Pipes.Width
	tol := w.cfg.Player.Tolerance
	playable := w.cfg.Screen.PlayableHeight()
	box := p.Box(w.cfg.Player)

	for _, ob := range w.obstacles {
		if ob.X+tol >= box.Right() || ob.X+width-tol <= box.X {
			continue
		}
		if box.Intersects(ob.TopRect(width).Inset(tol)) ||
			box.Intersects(ob.BottomRect(width, playable).Inset(tol)) {
			return true
		}
	}
	return false
}

// Obstacles returns the current pipe window, ordered left to right.
func (w *World) Obstacles() []Obstacle {
	return w.obstacles
}

// Score returns the number of pipes passed this run.
func (w *World) Score() int {
	return w.score
}
