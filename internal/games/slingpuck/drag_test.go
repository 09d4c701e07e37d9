package slingpuck

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/core"
)

func testSlinger() *Slinger {
	return NewSlinger(testArena(), config.DefaultSlingpuckConfig())
}

func TestSlingerPress(t *testing.T) {
	tests := []struct {
		name  string
		pucks []Puck
		at    r2.Vec
		want  int
	}{
		{"own puck in reach", []Puck{{Pos: r2.Vec{X: 100, Y: 100}}}, r2.Vec{X: 110, Y: 100}, 0},
		{"edge of pick radius", []Puck{{Pos: r2.Vec{X: 100, Y: 100}}}, r2.Vec{X: 142, Y: 100}, 0},
		{"out of reach", []Puck{{Pos: r2.Vec{X: 100, Y: 100}}}, r2.Vec{X: 143, Y: 100}, -1},
		{"other side", []Puck{{Pos: r2.Vec{X: 100, Y: 180}}}, r2.Vec{X: 100, Y: 200}, -1},
		{"first match wins", []Puck{{Pos: r2.Vec{X: 400, Y: 100}}, {Pos: r2.Vec{X: 100, Y: 100}}, {Pos: r2.Vec{X: 105, Y: 100}}}, r2.Vec{X: 104, Y: 100}, 1},
		{"bottom side", []Puck{{Pos: r2.Vec{X: 100, Y: 100}}, {Pos: r2.Vec{X: 100, Y: 300}}}, r2.Vec{X: 100, Y: 300}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSlinger()
			if got := s.Press(1, tt.at, tt.pucks); got != tt.want {
				t.Errorf("Press() = %d, expected %d", got, tt.want)
			}
			wantActive := 1
			if tt.want < 0 {
				wantActive = 0
			}
			if s.Active() != wantActive {
				t.Errorf("Active() = %d, expected %d", s.Active(), wantActive)
			}
		})
	}
}

func TestSlingerPressZeroesVelocity(t *testing.T) {
	s := testSlinger()
	pucks := []Puck{{Pos: r2.Vec{X: 100, Y: 100}, Vel: r2.Vec{X: 5, Y: -3}}}

	s.Press(1, pucks[0].Pos, pucks)
	if pucks[0].Vel != (r2.Vec{}) {
		t.Errorf("velocity after pick = %v, expected zero", pucks[0].Vel)
	}
}

func TestSlingerOnePointerPerPuck(t *testing.T) {
	s := testSlinger()
	pucks := []Puck{{Pos: r2.Vec{X: 100, Y: 100}}}

	if s.Press(1, pucks[0].Pos, pucks) != 0 {
		t.Fatal("first press should pick the puck")
	}
	if got := s.Press(2, pucks[0].Pos, pucks); got != -1 {
		t.Errorf("second pointer picked claimed puck %d", got)
	}
}

func TestSlingerIndependentPointers(t *testing.T) {
	s := testSlinger()
	pucks := []Puck{
		{Pos: r2.Vec{X: 100, Y: 100}},
		{Pos: r2.Vec{X: 100, Y: 300}},
	}

	s.Press(1, pucks[0].Pos, pucks)
	s.Press(2, pucks[1].Pos, pucks)
	s.Move(1, r2.Vec{X: 200, Y: 50}, pucks)
	s.Move(2, r2.Vec{X: 150, Y: 350}, pucks)

	if pucks[0].Pos != (r2.Vec{X: 200, Y: 50}) || pucks[1].Pos != (r2.Vec{X: 150, Y: 350}) {
		t.Errorf("pucks = %v, %v, expected each to follow its pointer", pucks[0].Pos, pucks[1].Pos)
	}
	held := s.HeldMask(2)
	if !held[0] || !held[1] {
		t.Errorf("HeldMask() = %v, expected both held", held)
	}
	sessions := s.Sessions()
	if len(sessions) != 2 || sessions[0].Pointer != 1 || sessions[1].Pointer != 2 {
		t.Errorf("Sessions() = %+v, expected pointers 1 and 2", sessions)
	}
}

func TestSlingerConstrain(t *testing.T) {
	s := testSlinger()
	pucks := []Puck{
		{Pos: r2.Vec{X: 100, Y: 100}},
		{Pos: r2.Vec{X: 100, Y: 300}},
	}
	s.Press(1, pucks[0].Pos, pucks)
	s.Press(2, pucks[1].Pos, pucks)

	s.Move(1, r2.Vec{X: 700, Y: 400}, pucks)
	s.Move(2, r2.Vec{X: -50, Y: 10}, pucks)

	// Wall half thickness 4, radius 14, clearance 4.
	if want := (r2.Vec{X: 626, Y: 170}); pucks[0].Pos != want {
		t.Errorf("top puck = %v, expected %v", pucks[0].Pos, want)
	}
	if want := (r2.Vec{X: 14, Y: 214}); pucks[1].Pos != want {
		t.Errorf("bottom puck = %v, expected %v", pucks[1].Pos, want)
	}
}

func TestSlingerReleaseWithoutAnchor(t *testing.T) {
	s := testSlinger()
	pucks := []Puck{{Pos: r2.Vec{X: 100, Y: 150}}}

	s.Press(1, pucks[0].Pos, pucks)
	s.Move(1, r2.Vec{X: 120, Y: 100}, pucks)
	v, ok := s.Release(1, pucks)

	if !ok {
		t.Fatal("Release() reported no session")
	}
	if v != (r2.Vec{}) || pucks[0].Vel != (r2.Vec{}) {
		t.Errorf("release above the band launched %v", v)
	}
	if s.Active() != 0 {
		t.Errorf("Active() = %d after release, expected 0", s.Active())
	}
}

func TestSlingerAnchor(t *testing.T) {
	s := testSlinger()
	band := testArena().BandY(SideTop)
	pucks := []Puck{{Pos: r2.Vec{X: 320, Y: 115.2}}}
	s.Press(1, pucks[0].Pos, pucks)

	s.Move(1, r2.Vec{X: 320, Y: 50}, pucks)
	sess, _ := s.Session(1)
	if !sess.Anchored || sess.Anchor != (r2.Vec{X: 320, Y: band}) {
		t.Fatalf("session after crossing = %+v, expected anchor at (320, %v)", sess, band)
	}

	s.Move(1, r2.Vec{X: 300, Y: 30}, pucks)
	sess, _ = s.Session(1)
	if sess.Anchor != (r2.Vec{X: 320, Y: band}) {
		t.Errorf("anchor moved while retracted: %v", sess.Anchor)
	}

	s.Move(1, r2.Vec{X: 320, Y: 100}, pucks)
	sess, _ = s.Session(1)
	if sess.Anchored {
		t.Error("anchor kept after coming back over the band")
	}

	s.Move(1, r2.Vec{X: 310, Y: 40}, pucks)
	sess, _ = s.Session(1)
	if !sess.Anchored || sess.Anchor.X != 310 {
		t.Errorf("anchor after second crossing = %+v, expected x 310", sess)
	}
}

func TestSlingerLaunchTop(t *testing.T) {
	s := testSlinger()
	a := testArena()
	pucks := []Puck{{Pos: r2.Vec{X: a.W / 2, Y: 0.3 * a.H}}}

	s.Press(1, pucks[0].Pos, pucks)
	s.Move(1, r2.Vec{X: a.W / 2, Y: 0.05 * a.H}, pucks)
	v, _ := s.Release(1, pucks)

	// Pulled back toward the own edge, the puck flies toward the wall.
	want := 0.25 * (a.BandY(SideTop) - 0.05*a.H)
	if !near(v.X, 0) || !near(v.Y, want) {
		t.Errorf("launch velocity = %v, expected (0, %v)", v, want)
	}
	if v.Y <= 0 || r2.Norm(v) > 40 {
		t.Errorf("launch velocity %v should point down and respect the cap", v)
	}
	if pucks[0].Vel != v {
		t.Errorf("puck velocity = %v, expected %v", pucks[0].Vel, v)
	}
}

func TestSlingerLaunchBottom(t *testing.T) {
	s := testSlinger()
	a := testArena()
	pucks := []Puck{{Pos: r2.Vec{X: 320, Y: 280}}}

	s.Press(1, pucks[0].Pos, pucks)
	s.Move(1, r2.Vec{X: 320, Y: 360}, pucks)
	v, _ := s.Release(1, pucks)

	want := 0.25 * (a.BandY(SideBottom) - 360)
	if !near(v.Y, want) || v.Y >= 0 {
		t.Errorf("launch vy = %v, expected %v", v.Y, want)
	}
}

func TestLaunchVelocity(t *testing.T) {
	tests := []struct {
		name   string
		anchor r2.Vec
		pos    r2.Vec
		want   r2.Vec
	}{
		{"uncapped", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: -40}, r2.Vec{X: 0, Y: 10}},
		{"capped", r2.Vec{X: 0, Y: 0}, r2.Vec{X: 0, Y: -1000}, r2.Vec{X: 0, Y: 40}},
		{"capped diagonal", r2.Vec{X: 0, Y: 0}, r2.Vec{X: -300, Y: -400}, r2.Vec{X: 24, Y: 32}},
		{"zero pull", r2.Vec{X: 5, Y: 5}, r2.Vec{X: 5, Y: 5}, r2.Vec{}},
		{"non-finite", r2.Vec{X: 0, Y: 0}, r2.Vec{X: math.Inf(1), Y: 0}, r2.Vec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LaunchVelocity(tt.anchor, tt.pos, 0.25, 40)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("LaunchVelocity() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestSlingerUnknownPointer(t *testing.T) {
	s := testSlinger()
	pucks := []Puck{{Pos: r2.Vec{X: 100, Y: 100}}}

	if s.Move(core.MousePointer, r2.Vec{X: 1, Y: 1}, pucks) {
		t.Error("Move() for an unknown pointer should be false")
	}
	if _, ok := s.Release(core.MousePointer, pucks); ok {
		t.Error("Release() for an unknown pointer should be false")
	}
	if pucks[0].Pos != (r2.Vec{X: 100, Y: 100}) {
		t.Error("unknown pointer moved a puck")
	}
}

func TestSlingerReset(t *testing.T) {
	s := testSlinger()
	pucks := []Puck{{Pos: r2.Vec{X: 100, Y: 100}}}
	s.Press(1, pucks[0].Pos, pucks)
	s.Reset()

	if s.Active() != 0 {
		t.Errorf("Active() = %d after Reset, expected 0", s.Active())
	}
	if held := s.HeldMask(1); held[0] {
		t.Error("puck still held after Reset")
	}
}
