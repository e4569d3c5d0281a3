package game

import (
	"testing"

	"github.com/vmordasov/flappy-tui/internal/config"
)

const frameMillis = 1000.0 / 60.0

func newTestGame(seed int64) *Game {
	return New(config.Default(), seed)
}

func TestStartTapSeedsWorld(t *testing.T) {
	g := newTestGame(42)

	if g.State() != StateIdle {
		t.Fatalf("new game state = %v, expected Idle", g.State())
	}

	// The starting tap arms the run but places no pipes yet.
	g.OnTap()
	if g.State() != StateRunning {
		t.Fatalf("state after starting tap = %v, expected Running", g.State())
	}
	if n := len(g.Snapshot().Obstacles); n != 0 {
		t.Errorf("obstacles before first tick = %d, expected 0", n)
	}
	// The starting tap only starts; no jump impulse on the same tap.
	if g.player.Vel != 0 {
		t.Errorf("velocity after starting tap = %f, expected 0", g.player.Vel)
	}

	// The seed step on the first tick places the initial window.
	snap := g.Tick(frameMillis)
	if n := len(snap.Obstacles); n != config.Default().Pipes.SeedCount {
		t.Errorf("obstacles after seed step = %d, expected %d", n, config.Default().Pipes.SeedCount)
	}
	if snap.Score != 0 {
		t.Errorf("score after seed step = %d, expected 0", snap.Score)
	}
}

func TestTickFrozenOutsideRunning(t *testing.T) {
	g := newTestGame(1)

	before := g.Snapshot()
	after := g.Tick(frameMillis)

	if after.PlayerY != before.PlayerY || after.State != StateIdle {
		t.Error("Tick in Idle must not move the player or change state")
	}

	// Drive to game over, then verify Over freezes too.
	g.OnTap()
	for i := 0; i < 10000 && g.State() == StateRunning; i++ {
		g.Tick(frameMillis)
	}
	if g.State() != StateOver {
		t.Fatal("game did not end without jumps")
	}

	frozen := g.Snapshot()
	after = g.Tick(frameMillis)
	if after.PlayerY != frozen.PlayerY || after.Score != frozen.Score {
		t.Error("Tick in Over must not mutate state")
	}
}

func TestGravityDescentEndsRun(t *testing.T) {
	g := newTestGame(1)
	g.OnTap()

	// Without jumps the bird falls monotonically and dies on the ground
	// within a bounded number of ticks.
	prevY := g.player.Y
	ticks := 0
	for g.State() == StateRunning {
		g.Tick(frameMillis)
		if g.player.Y < prevY {
			t.Fatal("descent should be monotonic without jumps")
		}
		prevY = g.player.Y
		ticks++
		if ticks > 200 {
			t.Fatal("bird did not reach the ground within 200 ticks")
		}
	}

	if g.State() != StateOver {
		t.Errorf("state after ground contact = %v, expected Over", g.State())
	}
}

func TestPlayerStaysWithinBounds(t *testing.T) {
	cfg := config.Default()
	g := newTestGame(5)
	g.OnTap()

	half := cfg.Player.CollisionHalf()
	floor := cfg.Screen.PlayableHeight()

	for i := 0; i < 2000 && g.State() == StateRunning; i++ {
		if i%11 == 0 {
			g.OnTap()
		}
		snap := g.Tick(frameMillis)
		if g.State() == StateOver {
			break // the terminal tick may leave Y past the ground boundary
		}
		if snap.PlayerY < half || snap.PlayerY > floor-half {
			t.Fatalf("tick %d: playerY=%f outside [%f, %f]", i, snap.PlayerY, half, floor-half)
		}
	}
}

func TestCeilingIsSolidNotDeadly(t *testing.T) {
	cfg := config.Default()
	g := newTestGame(3)
	g.OnTap()
	g.Tick(frameMillis)

	// Spam taps until the bird rests against the ceiling.
	for i := 0; i < 120; i++ {
		g.OnTap()
		g.Tick(frameMillis)
	}

	if g.State() == StateOver {
		t.Fatal("hitting the ceiling must not end the run")
	}
	if g.player.Y < cfg.Player.CollisionHalf() {
		t.Errorf("playerY=%f above the ceiling clamp %f", g.player.Y, cfg.Player.CollisionHalf())
	}
}

func TestTapInOverIsIgnored(t *testing.T) {
	g := newTestGame(1)
	g.OnTap()
	for g.State() == StateRunning {
		g.Tick(frameMillis)
	}

	snap := g.Snapshot()
	g.OnTap()

	if g.State() != StateOver {
		t.Errorf("tap in Over changed state to %v", g.State())
	}
	if g.player.Y != snap.PlayerY || g.player.Vel != snap.PlayerVel {
		t.Error("tap in Over mutated the player")
	}
}

func TestRestartReturnsToIdle(t *testing.T) {
	g := newTestGame(1)

	// Restart outside Over is a no-op.
	g.Restart()
	if g.State() != StateIdle {
		t.Fatal("Restart in Idle should do nothing")
	}

	g.OnTap()
	for g.State() == StateRunning {
		g.Tick(frameMillis)
	}

	g.Restart()

	if g.State() != StateIdle {
		t.Fatalf("state after restart = %v, expected Idle", g.State())
	}
	snap := g.Snapshot()
	if snap.Score != 0 || len(snap.Obstacles) != 0 {
		t.Error("restart should fully reset score and obstacles")
	}
	if snap.PlayerY != config.Default().Screen.Height/2 {
		t.Errorf("restart player pose y=%f, expected %f", snap.PlayerY, config.Default().Screen.Height/2)
	}

	// Restart does not auto-start; the next tap does.
	g.Tick(frameMillis)
	if g.State() != StateIdle {
		t.Error("Idle after restart should stay frozen until a tap")
	}
}

func TestFrameDeltaClamp(t *testing.T) {
	a := newTestGame(8)
	b := newTestGame(8)
	a.OnTap()
	b.OnTap()

	// A huge stall integrates exactly like the 50 ms cap.
	snapA := a.Tick(5000)
	snapB := b.Tick(50)

	if snapA.PlayerY != snapB.PlayerY {
		t.Errorf("clamped tick y=%f, expected %f", snapA.PlayerY, snapB.PlayerY)
	}
	if len(snapA.Obstacles) != len(snapB.Obstacles) || snapA.Obstacles[0].X != snapB.Obstacles[0].X {
		t.Error("clamped tick should advance obstacles like a 50 ms frame")
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and tap schedule produce identical
	// snapshots tick for tick.
	run := func() []Snapshot {
		g := newTestGame(12345)
		g.OnTap()
		snaps := make([]Snapshot, 0, 300)
		for i := 0; i < 300; i++ {
			if i%13 == 0 {
				g.OnTap()
			}
			snaps = append(snaps, g.Tick(frameMillis))
			if g.State() == StateOver {
				break
			}
		}
		return snaps
	}

	s1 := run()
	s2 := run()

	if len(s1) != len(s2) {
		t.Fatalf("run lengths differ: %d vs %d", len(s1), len(s2))
	}
	for i := range s1 {
		if s1[i].PlayerY != s2[i].PlayerY || s1[i].Score != s2[i].Score || s1[i].State != s2[i].State {
			t.Fatalf("tick %d diverged: %+v vs %+v", i, s1[i], s2[i])
		}
		if len(s1[i].Obstacles) != len(s2[i].Obstacles) {
			t.Fatalf("tick %d obstacle counts differ", i)
		}
		for j := range s1[i].Obstacles {
			if s1[i].Obstacles[j] != s2[i].Obstacles[j] {
				t.Fatalf("tick %d obstacle %d diverged", i, j)
			}
		}
	}
}

func TestScoreIncrementsOnPass(t *testing.T) {
	cfg := config.Default()
	g := newTestGame(77)
	g.OnTap()
	g.Tick(frameMillis) // seed pipes

	// Hold the bird in each upcoming gap so it survives long enough to
	// pass the first pipe.
	passTicks := 0
	for g.Score() == 0 && g.State() == StateRunning {
		for _, ob := range g.world.Obstacles() {
			if !ob.Passed && ob.X+cfg.Pipes.Width >= cfg.Player.X {
				g.player.Y = ob.TopHeight + cfg.Pipes.GapHeight/2
				g.player.Vel = 0
				break
			}
		}
		g.Tick(frameMillis)
		passTicks++
		if passTicks > 1000 {
			t.Fatal("first pipe never passed")
		}
	}

	if g.State() != StateRunning {
		t.Fatal("bird died while centered in the gap")
	}
	if g.Score() != 1 {
		t.Errorf("score = %d, expected 1 after first pass", g.Score())
	}
}
