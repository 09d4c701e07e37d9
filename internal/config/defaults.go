package config

import (
	_ "embed"
)

//go:embed defaults/slingpuck.yaml
var defaultSlingpuckYAML []byte

// DefaultSlingpuckConfig returns the hard-coded default tuning.
// It mirrors defaults/slingpuck.yaml and is the last fallback of the loader.
func DefaultSlingpuckConfig() SlingpuckConfig {
	return SlingpuckConfig{
		Physics: PhysicsConfig{
			PuckRadius:    14,
			SubSteps:      5,
			Friction:      0.985,
			Damping:       0.8,
			MaxSpeed:      40,
			WallThickness: 8,
		},
		Sling: SlingConfig{
			DragForce:        0.25,
			PickRadiusFactor: 3,
			BandMargin:       0.18,
			MidlineClearance: 4,
		},
		Arena: ArenaConfig{
			GapWidth:         84,
			SweepSpeed:       120,
			OscillationRange: 0.3,
			PairOffset:       0.22,
			PairOffsetCap:    160,
			ObstacleRadius:   12,
		},
		Match: MatchConfig{
			PucksPerSide: 5,
			SpawnSpread:  2.6,
			SpawnJitter:  0.4,
			WinDelayMs:   800,
			TransitionMs: 900,
			MaxFrameMs:   100,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `--print-config`.
func DefaultYAML() []byte {
	return defaultSlingpuckYAML
}
