// Package config provides YAML-based game tuning loading. All values are
// read once at startup and stay fixed for the process lifetime.
package config

// Config contains the full set of simulation constants.
// The simulation runs in a fixed virtual coordinate space so gameplay is
// identical on any terminal size; the platform projects to cells.
type Config struct {
	Screen  ScreenConfig  `yaml:"screen"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Player  PlayerConfig  `yaml:"player"`
}

// ScreenConfig defines the virtual play field in simulation units.
type ScreenConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// PlayableHeight returns the vertical extent above the ground.
func (s ScreenConfig) PlayableHeight() float64 {
	return s.Height - s.GroundHeight
}

// PhysicsConfig defines vertical movement parameters.
// Gravity and speeds are expressed per reference frame (60 Hz); the
// simulation normalizes the actual frame delta to that reference.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
}

// PipesConfig defines obstacle generation and movement parameters.
type PipesConfig struct {
	Width          float64 `yaml:"width"`
	GapHeight      float64 `yaml:"gap_height"`
	Speed          float64 `yaml:"speed"`
	SpawnThreshold float64 `yaml:"spawn_threshold"` // Also the implicit pipe spacing
	GraceOffset    float64 `yaml:"grace_offset"`    // Extra offset for the first seeded pipe
	SeedCount      int     `yaml:"seed_count"`      // Pipes placed when a run starts
	TopMargin      float64 `yaml:"top_margin"`      // Minimum top segment height
	BottomMargin   float64 `yaml:"bottom_margin"`   // Minimum bottom clearance above the gap floor
}

// PlayerConfig defines the player's fixed position and hitbox sizing.
// The collision box is deliberately smaller than the visual sprite; the
// scale plus the tolerance make near-miss grazes survivable.
type PlayerConfig struct {
	X              float64 `yaml:"x"`
	VisualSize     float64 `yaml:"visual_size"`
	CollisionScale float64 `yaml:"collision_scale"`
	Tolerance      float64 `yaml:"tolerance"`
}

// CollisionSize returns the side length of the square collision box.
func (p PlayerConfig) CollisionSize() float64 {
	return p.VisualSize * p.CollisionScale
}

// CollisionHalf returns half the collision box height, the clamp margin
// used at the ceiling and ground boundaries.
func (p PlayerConfig) CollisionHalf() float64 {
	return p.CollisionSize() / 2
}
