package slingpuck

import "math"

// GapMotion describes where one wall gap sits and how it moves.
// Magnitudes are multiples of the arena tuning so the same table works on
// any surface size.
type GapMotion struct {
	Offset float64 // Base offset from center, multiple of the twin gap distance
	Range  float64 // Sweep amplitude, multiple of the oscillation range
	Sweep  float64 // Multiple of the sweep speed; 0 is a static gap
	Phase  float64 // Phase offset in radians
}

// LevelLayout is the wall and obstacle configuration of one level.
// Every level has two gaps; a single-opening level places both gaps on top
// of each other, which collapses the wall piece between them.
type LevelLayout struct {
	Name      string
	Gaps      [2]GapMotion
	Obstacles bool
}

var (
	centerGap   = GapMotion{}
	driftingGap = GapMotion{Range: 1, Sweep: 1}
	slowGap     = GapMotion{Offset: -0.5, Range: 1, Sweep: 0.6}
	fastGap     = GapMotion{Offset: 0.5, Range: 1, Sweep: 1.4, Phase: math.Pi}
)

// levelTable maps 1-based levels to layouts. Levels past the end of the
// table reuse the last entry.
var levelTable = []LevelLayout{
	{Name: "Open Door", Gaps: [2]GapMotion{centerGap, centerGap}},
	{Name: "Drift", Gaps: [2]GapMotion{driftingGap, driftingGap}},
	{Name: "Twin Gates", Gaps: [2]GapMotion{{Offset: -1}, {Offset: 1}}},
	{Name: "Crossfire", Gaps: [2]GapMotion{slowGap, fastGap}},
	{Name: "Sentinels", Gaps: [2]GapMotion{driftingGap, driftingGap}, Obstacles: true},
	{Name: "Gauntlet", Gaps: [2]GapMotion{slowGap, fastGap}, Obstacles: true},
}

// LevelCount returns the number of distinct layouts.
func LevelCount() int {
	return len(levelTable)
}

// LevelFor returns the layout for a 1-based level. Levels below 1 map to
// the first layout, levels past the table to the last one.
func LevelFor(level int) LevelLayout {
	if level < 1 {
		level = 1
	}
	if level > len(levelTable) {
		level = len(levelTable)
	}
	return levelTable[level-1]
}

// Levels returns a copy of the layout table.
func Levels() []LevelLayout {
	out := make([]LevelLayout, len(levelTable))
	copy(out, levelTable)
	return out
}

// Moving reports whether any gap of the layout sweeps.
func (l LevelLayout) Moving() bool {
	return l.Gaps[0].Sweep != 0 || l.Gaps[1].Sweep != 0
}

// Openings returns the number of distinct gaps when the level is at rest.
func (l LevelLayout) Openings() int {
	if l.Gaps[0] == l.Gaps[1] {
		return 1
	}
	return 2
}
