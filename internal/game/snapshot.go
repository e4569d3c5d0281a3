package game

// ObstacleView is the render-ready projection of a pipe pair.
type ObstacleView struct {
	ID           int
	X            float64
	TopHeight    float64
	BottomHeight float64
}

// Snapshot is the complete render-ready state for one frame. It is built
// after the tick has fully settled, so a consumer never observes a
// half-updated world.
type Snapshot struct {
	PlayerY   float64
	PlayerVel float64
	Obstacles []ObstacleView
	Score     int
	State     State
}

// Snapshot returns the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	obstacles := make([]ObstacleView, 0, len(g.world.Obstacles()))
	for _, ob := range g.world.Obstacles() {
		obstacles = append(obstacles, ObstacleView{
			ID:           ob.ID,
			X:            ob.X,
			TopHeight:    ob.TopHeight,
			BottomHeight: ob.BottomHeight,
		})
	}

	return Snapshot{
		PlayerY:   g.player.Y,
		PlayerVel: g.player.Vel,
		Obstacles: obstacles,
		Score:     g.world.Score(),
		State:     g.state,
	}
}
