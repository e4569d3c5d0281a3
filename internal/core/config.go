package core

// RuntimeConfig contains host-side parameters passed in at startup.
// Screen dimensions come from the terminal and are read once; the seed
// drives deterministic obstacle generation.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed (0 means time-based, chosen by the platform)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}
