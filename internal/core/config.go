package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Drivers translate their surface (terminal cells, window pixels) into
// arena units before handing it over.
type RuntimeConfig struct {
	ArenaW   float64 // Arena width in arena units (pixels)
	ArenaH   float64 // Arena height in arena units (pixels)
	TickRate int     // Frames per second the driver aims for (default 60)
	Seed     int64   // RNG seed for deterministic spawns
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ArenaW:   640,
		ArenaH:   384,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// FrameMs returns the nominal frame duration in milliseconds.
func (c RuntimeConfig) FrameMs() float64 {
	if c.TickRate <= 0 {
		return 1000.0 / 60
	}
	return 1000.0 / float64(c.TickRate)
}
