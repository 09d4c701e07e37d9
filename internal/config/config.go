// Package config provides YAML-based tuning for the sling puck arena and
// difficulty presets.
package config

// SlingpuckConfig contains all tuning for a sling puck match.
// Distances are arena units (pixels), velocities are arena units per frame.
type SlingpuckConfig struct {
	Physics PhysicsConfig `yaml:"physics"`
	Sling   SlingConfig   `yaml:"sling"`
	Arena   ArenaConfig   `yaml:"arena"`
	Match   MatchConfig   `yaml:"match"`
}

// PhysicsConfig defines integration and collision parameters.
type PhysicsConfig struct {
	PuckRadius    float64 `yaml:"puck_radius"`
	SubSteps      int     `yaml:"sub_steps"`
	Friction      float64 `yaml:"friction"` // Velocity multiplier applied once per frame
	Damping       float64 `yaml:"damping"`  // Velocity multiplier applied on every bounce
	MaxSpeed      float64 `yaml:"max_speed"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// SlingConfig defines the drag-to-shoot parameters.
type SlingConfig struct {
	DragForce        float64 `yaml:"drag_force"`
	PickRadiusFactor float64 `yaml:"pick_radius_factor"` // Pick radius as a multiple of puck radius
	BandMargin       float64 `yaml:"band_margin"`        // Band line distance from the own edge, fraction of height
	MidlineClearance float64 `yaml:"midline_clearance"`  // Gap kept between a held puck and the wall
}

// ArenaConfig defines the wall gaps and obstacles.
type ArenaConfig struct {
	GapWidth         float64 `yaml:"gap_width"`
	SweepSpeed       float64 `yaml:"sweep_speed"`       // Gap sweep speed at full amplitude, units per second
	OscillationRange float64 `yaml:"oscillation_range"` // Sweep amplitude, fraction of width
	PairOffset       float64 `yaml:"pair_offset"`       // Twin gap distance from center, fraction of width
	PairOffsetCap    float64 `yaml:"pair_offset_cap"`   // Upper bound of the twin gap distance, units
	ObstacleRadius   float64 `yaml:"obstacle_radius"`
}

// MatchConfig defines rosters and match pacing.
type MatchConfig struct {
	PucksPerSide int     `yaml:"pucks_per_side"`
	SpawnSpread  float64 `yaml:"spawn_spread"` // Cluster radius as a multiple of puck radius
	SpawnJitter  float64 `yaml:"spawn_jitter"` // Random offset as a multiple of puck radius
	WinDelayMs   float64 `yaml:"win_delay_ms"`
	TransitionMs float64 `yaml:"transition_ms"`
	MaxFrameMs   float64 `yaml:"max_frame_ms"` // Upper bound of a single frame's elapsed time
}

// Validate replaces values that would break the simulation with defaults.
// It returns the number of fields that were replaced.
func (c *SlingpuckConfig) Validate() int {
	def := DefaultSlingpuckConfig()
	fixed := 0

	fixF := func(v *float64, ok bool, fallback float64) {
		if !ok {
			*v = fallback
			fixed++
		}
	}

	fixF(&c.Physics.PuckRadius, c.Physics.PuckRadius > 0, def.Physics.PuckRadius)
	if c.Physics.SubSteps < 1 {
		c.Physics.SubSteps = def.Physics.SubSteps
		fixed++
	}
	fixF(&c.Physics.Friction, c.Physics.Friction > 0 && c.Physics.Friction < 1, def.Physics.Friction)
	fixF(&c.Physics.Damping, c.Physics.Damping > 0 && c.Physics.Damping < 1, def.Physics.Damping)
	fixF(&c.Physics.MaxSpeed, c.Physics.MaxSpeed > 0, def.Physics.MaxSpeed)
	fixF(&c.Physics.WallThickness, c.Physics.WallThickness > 0, def.Physics.WallThickness)

	fixF(&c.Sling.DragForce, c.Sling.DragForce > 0, def.Sling.DragForce)
	fixF(&c.Sling.PickRadiusFactor, c.Sling.PickRadiusFactor >= 1, def.Sling.PickRadiusFactor)
	fixF(&c.Sling.BandMargin, c.Sling.BandMargin > 0 && c.Sling.BandMargin < 0.5, def.Sling.BandMargin)
	fixF(&c.Sling.MidlineClearance, c.Sling.MidlineClearance >= 0, def.Sling.MidlineClearance)

	fixF(&c.Arena.GapWidth, c.Arena.GapWidth > 0, def.Arena.GapWidth)
	fixF(&c.Arena.SweepSpeed, c.Arena.SweepSpeed >= 0, def.Arena.SweepSpeed)
	fixF(&c.Arena.OscillationRange, c.Arena.OscillationRange > 0 && c.Arena.OscillationRange < 0.5, def.Arena.OscillationRange)
	fixF(&c.Arena.PairOffset, c.Arena.PairOffset >= 0 && c.Arena.PairOffset < 0.5, def.Arena.PairOffset)
	fixF(&c.Arena.PairOffsetCap, c.Arena.PairOffsetCap > 0, def.Arena.PairOffsetCap)
	fixF(&c.Arena.ObstacleRadius, c.Arena.ObstacleRadius >= 0, def.Arena.ObstacleRadius)

	if c.Match.PucksPerSide < 1 {
		c.Match.PucksPerSide = def.Match.PucksPerSide
		fixed++
	}
	fixF(&c.Match.SpawnSpread, c.Match.SpawnSpread >= 0, def.Match.SpawnSpread)
	fixF(&c.Match.SpawnJitter, c.Match.SpawnJitter >= 0, def.Match.SpawnJitter)
	fixF(&c.Match.WinDelayMs, c.Match.WinDelayMs >= 0, def.Match.WinDelayMs)
	fixF(&c.Match.TransitionMs, c.Match.TransitionMs > 0, def.Match.TransitionMs)
	fixF(&c.Match.MaxFrameMs, c.Match.MaxFrameMs > 0, def.Match.MaxFrameMs)

	return fixed
}
