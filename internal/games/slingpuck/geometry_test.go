package slingpuck

import (
	"math"
	"testing"

	"github.com/vovakirdan/slingpuck/internal/config"
)

func testGeometry(level int) *Geometry {
	cfg := config.DefaultSlingpuckConfig()
	return NewGeometry(testArena(), cfg.Arena, cfg.Match.TransitionMs, level)
}

func segmentsNear(a, b []Segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i].Start, b[i].Start) || !near(a[i].End, b[i].End) {
			return false
		}
	}
	return true
}

func TestWallSegmentsStaticLevels(t *testing.T) {
	tuning := config.DefaultSlingpuckConfig().Arena
	a := testArena()

	tests := []struct {
		name  string
		level int
		want  []Segment
	}{
		{"open door", 1, []Segment{{0, 278}, {362, 640}}},
		{"twin gates", 3, []Segment{{0, 137.2}, {221.2, 418.8}, {502.8, 640}}},
		{"below range maps to first", 0, []Segment{{0, 278}, {362, 640}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WallSegments(tt.level, 0, a, tuning)
			if !segmentsNear(got, tt.want) {
				t.Errorf("WallSegments(%d) = %v, expected %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestWallSegmentsDrift(t *testing.T) {
	tuning := config.DefaultSlingpuckConfig().Arena
	a := testArena()

	// 120 units/s over a 192 unit amplitude: a quarter turn takes pi/2/0.625 s.
	quarter := math.Pi / 2 / 0.625 * 1000

	start := WallSegments(2, 0, a, tuning)
	if !segmentsNear(start, []Segment{{0, 278}, {362, 640}}) {
		t.Errorf("WallSegments(2, 0) = %v, expected centered gap", start)
	}

	peak := WallSegments(2, quarter, a, tuning)
	want := []Segment{{0, 470}, {554, 640}}
	if len(peak) != 2 || math.Abs(peak[0].End-want[0].End) > 1e-6 || math.Abs(peak[1].Start-want[1].Start) > 1e-6 {
		t.Errorf("WallSegments(2, %v) = %v, expected %v", quarter, peak, want)
	}
}

func TestWallSegmentsStayInArena(t *testing.T) {
	tuning := config.DefaultSlingpuckConfig().Arena
	a := testArena()

	for level := 1; level <= LevelCount(); level++ {
		for ms := 0.0; ms < 20000; ms += 137 {
			for _, s := range WallSegments(level, ms, a, tuning) {
				if !s.Valid() {
					t.Fatalf("level %d at %vms: invalid segment %v", level, ms, s)
				}
				if s.Start < 0 || s.End > a.W {
					t.Fatalf("level %d at %vms: segment %v outside arena", level, ms, s)
				}
			}
		}
	}
}

func TestWallSegmentsOverlapFiltering(t *testing.T) {
	tests := []struct {
		name    string
		centers []float64
		want    []Segment
	}{
		{"disjoint", []float64{100, 400}, []Segment{{0, 58}, {142, 358}, {442, 640}}},
		{"overlapping", []float64{100, 120}, []Segment{{0, 58}, {162, 640}}},
		{"unsorted", []float64{400, 100}, []Segment{{0, 58}, {142, 358}, {442, 640}}},
		{"at left edge", []float64{42, 42}, []Segment{{84, 640}}},
		{"at right edge", []float64{598, 598}, []Segment{{0, 556}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wallSegments(tt.centers, 84, 640)
			if !segmentsNear(got, tt.want) {
				t.Errorf("wallSegments(%v) = %v, expected %v", tt.centers, got, tt.want)
			}
		})
	}
}

func TestObstaclesByLevel(t *testing.T) {
	tuning := config.DefaultSlingpuckConfig().Arena
	a := testArena()

	for level := 1; level <= LevelCount(); level++ {
		obs := Obstacles(level, 0, a, tuning)
		if LevelFor(level).Obstacles {
			if len(obs) != 2 {
				t.Fatalf("level %d: %d obstacles, expected 2", level, len(obs))
			}
			if !near(obs[0].Radius, 12) || !near(obs[0].X, 320) || !near(obs[0].Y, 130.56) {
				t.Errorf("level %d: top obstacle = %+v", level, obs[0])
			}
			if !near(obs[1].Y, 253.44) {
				t.Errorf("level %d: bottom obstacle y = %v, expected 253.44", level, obs[1].Y)
			}
		} else if len(obs) != 0 {
			t.Errorf("level %d: %d obstacles, expected none", level, len(obs))
		}
	}
}

func TestGeometryRetarget(t *testing.T) {
	g := testGeometry(1)
	if g.Retarget(1, 0) {
		t.Error("Retarget() to the current level should return false")
	}
	if !g.Retarget(2, 0) {
		t.Error("Retarget() to a new level should return true")
	}
	if g.Level() != 2 {
		t.Errorf("Level() = %d, expected 2", g.Level())
	}
	if !g.Transitioning(100) {
		t.Error("Transitioning(100) = false during a 900ms transition")
	}
	if g.Transitioning(900) {
		t.Error("Transitioning(900) = true after the transition")
	}
}

func TestGeometryRetargetIsContinuous(t *testing.T) {
	g := testGeometry(4)
	before := g.Layout(1000)
	g.Retarget(5, 1000)
	after := g.Layout(1000)

	if !segmentsNear(before.Segments, after.Segments) {
		t.Errorf("layout jumped on retarget: %v -> %v", before.Segments, after.Segments)
	}
	if len(after.Obstacles) != 0 {
		t.Errorf("obstacles appeared instantly: %v", after.Obstacles)
	}

	halfway := g.Layout(1450)
	if len(halfway.Obstacles) != 2 {
		t.Fatalf("obstacles during transition = %d, expected 2", len(halfway.Obstacles))
	}
	if r := halfway.Obstacles[0].Radius; r <= 0 || r >= 12 {
		t.Errorf("obstacle radius mid-transition = %v, expected between 0 and 12", r)
	}

	settled := g.Layout(1900)
	if !near(settled.Obstacles[0].Radius, 12) {
		t.Errorf("obstacle radius after transition = %v, expected 12", settled.Obstacles[0].Radius)
	}
}

func TestGeometryRetargetDuringTransition(t *testing.T) {
	g := testGeometry(4)
	g.Retarget(5, 0)
	before := g.Layout(400)
	g.Retarget(6, 400)
	after := g.Layout(400)

	if !segmentsNear(before.Segments, after.Segments) {
		t.Errorf("layout jumped on retarget: %v -> %v", before.Segments, after.Segments)
	}
	if len(before.Obstacles) != len(after.Obstacles) || !near(before.Obstacles[0].Radius, after.Obstacles[0].Radius) {
		t.Errorf("obstacles jumped on retarget: %v -> %v", before.Obstacles, after.Obstacles)
	}
}

func TestGeometryFrameRateIndependent(t *testing.T) {
	fast := testGeometry(1)
	slow := testGeometry(1)
	fast.Retarget(4, 500)
	slow.Retarget(4, 500)

	// Layout is a function of time only; stepping granularity must not leak in.
	for ms := 0.0; ms <= 3000; ms += 8 {
		fast.Layout(ms)
	}
	for ms := 0.0; ms <= 3000; ms += 50 {
		slow.Layout(ms)
	}

	a := fast.Layout(3000)
	b := slow.Layout(3000)
	if !segmentsNear(a.Segments, b.Segments) {
		t.Errorf("layouts differ: %v vs %v", a.Segments, b.Segments)
	}
}

func TestGeometrySweepPhaseContinuous(t *testing.T) {
	g := testGeometry(2)
	g.Retarget(4, 1000)

	// The sweep phase must not jump anywhere around or inside the transition.
	prev := g.sweepPhase(0, 990)
	for ms := 991.0; ms <= 2500; ms++ {
		cur := g.sweepPhase(0, ms)
		if math.Abs(cur-prev) > 0.01 {
			t.Fatalf("phase jumped at %vms: %v -> %v", ms, prev, cur)
		}
		prev = cur
	}
}

func TestLevelTable(t *testing.T) {
	if LevelCount() < 4 {
		t.Fatalf("LevelCount() = %d, expected at least 4", LevelCount())
	}
	if LevelFor(1).Moving() {
		t.Error("level 1 should be static")
	}
	if LevelFor(1).Openings() != 1 {
		t.Errorf("level 1 openings = %d, expected 1", LevelFor(1).Openings())
	}
	if LevelFor(3).Openings() != 2 {
		t.Errorf("level 3 openings = %d, expected 2", LevelFor(3).Openings())
	}
	if LevelFor(100).Name != LevelFor(LevelCount()).Name {
		t.Error("levels past the table should reuse the last layout")
	}

	levels := Levels()
	levels[0].Name = "changed"
	if LevelFor(1).Name == "changed" {
		t.Error("Levels() should return a copy")
	}
}
