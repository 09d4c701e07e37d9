package slingpuck

import (
	"math"
	"sort"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/core"
)

// Segment is a solid piece of the center wall spanning [Start, End] on the
// midline. A segment with End <= Start is no wall at all.
type Segment struct {
	Start, End float64
}

// Valid reports whether the segment has positive length.
func (s Segment) Valid() bool {
	return s.End > s.Start
}

// Obstacle is a circular post. A zero radius means the post is absent.
type Obstacle struct {
	X, Y   float64
	Radius float64
}

// Layout is the arena geometry at one instant.
type Layout struct {
	Segments  []Segment  // Left to right, only valid segments
	Obstacles []Obstacle // Only obstacles with positive radius
}

// pose is a level layout with a continuous obstacle scale, so that two
// layouts can be blended.
type pose struct {
	gaps     [2]GapMotion
	obstacle float64 // 0 absent, 1 full size
}

func poseOf(l LevelLayout) pose {
	p := pose{gaps: l.Gaps}
	if l.Obstacles {
		p.obstacle = 1
	}
	return p
}

func blendPose(a, b pose, t float64) pose {
	var out pose
	for i := range out.gaps {
		out.gaps[i] = GapMotion{
			Offset: core.Lerp(a.gaps[i].Offset, b.gaps[i].Offset, t),
			Range:  core.Lerp(a.gaps[i].Range, b.gaps[i].Range, t),
			Sweep:  core.Lerp(a.gaps[i].Sweep, b.gaps[i].Sweep, t),
			Phase:  core.Lerp(a.gaps[i].Phase, b.gaps[i].Phase, t),
		}
	}
	out.obstacle = core.Lerp(a.obstacle, b.obstacle, t)
	return out
}

// Geometry computes wall segments and obstacles for the current level,
// easing from the previous level's layout when the level changes.
//
// Layout is a pure function of the time it is asked about: the only state
// is the description of the last level change.
type Geometry struct {
	arena        Arena
	tuning       config.ArenaConfig
	transitionMs float64

	level     int
	from, to  pose
	startMs   float64
	basePhase [2]float64 // Accumulated sweep phase at startMs
}

// NewGeometry creates a geometry settled on the given level.
func NewGeometry(arena Arena, tuning config.ArenaConfig, transitionMs float64, level int) *Geometry {
	p := poseOf(LevelFor(level))
	return &Geometry{
		arena:        arena,
		tuning:       tuning,
		transitionMs: transitionMs,
		level:        max(level, 1),
		from:         p,
		to:           p,
	}
}

// Level returns the level the geometry is showing or easing toward.
func (g *Geometry) Level() int {
	return g.level
}

// Retarget starts a transition to a new level at nowMs. The current blended
// layout and sweep phases become the starting point, so a change during a
// running transition stays continuous. Returns false if already on level.
func (g *Geometry) Retarget(level int, nowMs float64) bool {
	level = max(level, 1)
	if level == g.level {
		return false
	}

	current := blendPose(g.from, g.to, g.progress(nowMs))
	for i := range g.basePhase {
		g.basePhase[i] = g.sweepPhase(i, nowMs)
	}
	g.from = current
	g.to = poseOf(LevelFor(level))
	g.startMs = nowMs
	g.level = level
	return true
}

// Transitioning reports whether the layout is still easing at nowMs.
func (g *Geometry) Transitioning(nowMs float64) bool {
	return g.from != g.to && nowMs-g.startMs < g.transitionMs
}

// progress returns the eased transition parameter at nowMs.
func (g *Geometry) progress(nowMs float64) float64 {
	if g.transitionMs <= 0 {
		return 1
	}
	return core.EaseOutCubic((nowMs - g.startMs) / g.transitionMs)
}

// angularSpeed converts a sweep multiplier into radians per second.
// Dividing by the full amplitude keeps the apparent sweep speed the same on
// every surface width.
func (g *Geometry) angularSpeed(sweep float64) float64 {
	amplitude := g.tuning.OscillationRange * g.arena.W
	if amplitude <= 0 {
		return 0
	}
	return sweep * g.tuning.SweepSpeed / amplitude
}

// sweepPhase integrates the gap's angular speed from startMs to nowMs.
// During a transition the speed follows the same eased blend as everything
// else, so the integral uses the closed form of the ease curve instead of a
// per-frame sum and stays independent of the frame rate.
func (g *Geometry) sweepPhase(i int, nowMs float64) float64 {
	elapsed := math.Max(nowMs-g.startMs, 0) / 1000
	duration := g.transitionMs / 1000
	wFrom := g.angularSpeed(g.from.gaps[i].Sweep)
	wTo := g.angularSpeed(g.to.gaps[i].Sweep)

	if duration <= 0 {
		return g.basePhase[i] + wTo*elapsed
	}
	if elapsed >= duration {
		settled := wFrom*duration + (wTo-wFrom)*duration*core.EaseOutCubicIntegral(1)
		return g.basePhase[i] + settled + wTo*(elapsed-duration)
	}
	u := elapsed / duration
	return g.basePhase[i] + wFrom*elapsed + (wTo-wFrom)*duration*core.EaseOutCubicIntegral(u)
}

// pairDistance is the twin gap distance from center, capped on wide arenas.
func (g *Geometry) pairDistance() float64 {
	return math.Min(g.tuning.PairOffset*g.arena.W, g.tuning.PairOffsetCap)
}

// Layout returns the wall segments and obstacles at nowMs.
func (g *Geometry) Layout(nowMs float64) Layout {
	p := blendPose(g.from, g.to, g.progress(nowMs))
	w := g.arena.W
	gapW := g.tuning.GapWidth
	amplitude := g.tuning.OscillationRange * w

	var centers [2]float64
	for i, gap := range p.gaps {
		phase := g.sweepPhase(i, nowMs) + gap.Phase
		x := w/2 + gap.Offset*g.pairDistance() + math.Sin(phase)*gap.Range*amplitude
		if w > gapW {
			x = core.ClampF(x, gapW/2, w-gapW/2)
		} else {
			x = w / 2
		}
		centers[i] = x
	}

	layout := Layout{Segments: wallSegments(centers[:], gapW, w)}

	if radius := g.tuning.ObstacleRadius * p.obstacle; radius > 0 {
		mid := g.arena.MidY()
		topY := (g.arena.BandY(SideTop) + mid) / 2
		bottomY := (g.arena.BandY(SideBottom) + mid) / 2
		layout.Obstacles = []Obstacle{
			{X: w / 2, Y: topY, Radius: radius},
			{X: w / 2, Y: bottomY, Radius: radius},
		}
	}
	return layout
}

// wallSegments cuts gaps of width gapW centered on centers out of a wall
// spanning [0, width]. Overlapping gaps produce a non-positive piece
// between them, which is dropped along with any other empty piece.
func wallSegments(centers []float64, gapW, width float64) []Segment {
	sorted := make([]float64, len(centers))
	copy(sorted, centers)
	sort.Float64s(sorted)

	segments := make([]Segment, 0, len(sorted)+1)
	cursor := 0.0
	for _, c := range sorted {
		segments = append(segments, Segment{Start: cursor, End: c - gapW/2})
		cursor = c + gapW/2
	}
	segments = append(segments, Segment{Start: cursor, End: width})

	valid := segments[:0]
	for _, s := range segments {
		if s.Valid() {
			valid = append(valid, s)
		}
	}
	return valid
}

// WallSegments returns the wall of a level that has been in place since
// time zero, at elapsedMs.
func WallSegments(level int, elapsedMs float64, arena Arena, tuning config.ArenaConfig) []Segment {
	return NewGeometry(arena, tuning, 0, level).Layout(elapsedMs).Segments
}

// Obstacles returns the obstacles of a level that has been in place since
// time zero, at elapsedMs.
func Obstacles(level int, elapsedMs float64, arena Arena, tuning config.ArenaConfig) []Obstacle {
	return NewGeometry(arena, tuning, 0, level).Layout(elapsedMs).Obstacles
}
