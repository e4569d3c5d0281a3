package game

import (
	"github.com/vmordasov/flappy-tui/internal/config"
	"github.com/vmordasov/flappy-tui/internal/core"
)

// Player is the bird. Its horizontal position is fixed; only the vertical
// axis is simulated. Y is the center of the collision box.
type Player struct {
	Y   float64
	Vel float64
}

// ApplyGravity integrates one simulation step. The step is the frame delta
// normalized to the 60 Hz reference frame, so a frame twice as long falls
// twice as fast but position still advances by the resulting velocity once.
func (p *Player) ApplyGravity(phys config.PhysicsConfig, step float64) {
	p.Vel += phys.Gravity * step
	if p.Vel > phys.MaxFallSpeed {
		p.Vel = phys.MaxFallSpeed
	}
	p.Y += p.Vel
}

// Jump sets the velocity to the fixed upward impulse. It overrides the
// current velocity rather than accumulating, so mashing taps cannot launch
// the bird off the top of the field.
func (p *Player) Jump(phys config.PhysicsConfig) {
	p.Vel = phys.JumpImpulse
}

// ClampCeiling rests the player against the top of the field. The ceiling
// is solid: position clamps and velocity zeroes, but nothing dies up there.
func (p *Player) ClampCeiling(halfBox float64) {
	if p.Y <= halfBox {
		p.Y = halfBox
		p.Vel = 0
	}
}

// HitGround reports whether the player reached the ground boundary.
// Ground contact is terminal; the caller ends the run instead of clamping.
func (p *Player) HitGround(floorY, halfBox float64) bool {
	return p.Y >= floorY-halfBox
}

// Box returns the player's collision rectangle, centered on the fixed
// horizontal position. The box is smaller than the visual sprite so that
// visually tight squeezes feel fair.
func (p *Player) Box(pc config.PlayerConfig) core.RectF {
	size := pc.CollisionSize()
	return core.NewRectF(pc.X-size/2, p.Y-size/2, size, size)
}
