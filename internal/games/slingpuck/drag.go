package slingpuck

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/core"
)

// DragSession is one pointer holding one puck.
type DragSession struct {
	Pointer  core.PointerID
	Puck     int    // Index into the puck slice
	Side     Side   // Side the puck was picked up on
	At       r2.Vec // Last pointer position
	Anchor   r2.Vec // Where the pull first crossed the band line
	Anchored bool
}

// Slinger tracks drag sessions, one per active pointer.
// It never removes pucks; Reset must be called whenever the puck slice is
// replaced so no session points at a stale index.
type Slinger struct {
	arena    Arena
	radius   float64
	sling    config.SlingConfig
	maxSpeed float64

	sessions map[core.PointerID]*DragSession
}

// NewSlinger creates an input tracker for an arena.
func NewSlinger(arena Arena, cfg config.SlingpuckConfig) *Slinger {
	return &Slinger{
		arena:    arena,
		radius:   cfg.Physics.PuckRadius,
		sling:    cfg.Sling,
		maxSpeed: cfg.Physics.MaxSpeed,
		sessions: make(map[core.PointerID]*DragSession),
	}
}

// Reset drops every session without launching anything.
func (s *Slinger) Reset() {
	clear(s.sessions)
}

// Active returns the number of live sessions.
func (s *Slinger) Active() int {
	return len(s.sessions)
}

// Session returns the session of a pointer, if any.
func (s *Slinger) Session(id core.PointerID) (DragSession, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return DragSession{}, false
	}
	return *sess, true
}

// Sessions returns copies of all sessions ordered by pointer id.
func (s *Slinger) Sessions() []DragSession {
	out := make([]DragSession, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, *sess)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Pointer < out[j].Pointer
	})
	return out
}

// HeldMask returns, for n pucks, which ones are under a drag.
func (s *Slinger) HeldMask(n int) []bool {
	held := make([]bool, n)
	for _, sess := range s.sessions {
		if sess.Puck >= 0 && sess.Puck < n {
			held[sess.Puck] = true
		}
	}
	return held
}

// claimed reports whether any session holds puck i.
func (s *Slinger) claimed(i int) bool {
	for _, sess := range s.sessions {
		if sess.Puck == i {
			return true
		}
	}
	return false
}

// Press tries to pick up a puck at pos for pointer id. The first unclaimed
// puck within the pick radius that is on the same half as the press wins;
// its velocity is zeroed. Returns the picked index or -1.
func (s *Slinger) Press(id core.PointerID, pos r2.Vec, pucks []Puck) int {
	mid := s.arena.MidY()
	side := SideOf(pos.Y, mid)
	pick := s.radius * s.sling.PickRadiusFactor

	for i := range pucks {
		if s.claimed(i) {
			continue
		}
		if pucks[i].Side(mid) != side {
			continue
		}
		if r2.Norm(r2.Sub(pucks[i].Pos, pos)) > pick {
			continue
		}

		pucks[i].Vel = r2.Vec{}
		s.sessions[id] = &DragSession{
			Pointer: id,
			Puck:    i,
			Side:    side,
			At:      pos,
		}
		return i
	}
	return -1
}

// Move drags the pointer's puck to pos, keeping it on its own half. Crossing
// the band line arms the sling at the crossing point; coming back over the
// line disarms it. Returns false if the pointer holds nothing.
func (s *Slinger) Move(id core.PointerID, pos r2.Vec, pucks []Puck) bool {
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	sess.At = pos

	p := &pucks[sess.Puck]
	p.Pos = s.constrain(sess.Side, pos)
	p.Vel = r2.Vec{}

	if s.arena.Retracted(sess.Side, p.Pos.Y) {
		if !sess.Anchored {
			sess.Anchor = r2.Vec{X: p.Pos.X, Y: s.arena.BandY(sess.Side)}
			sess.Anchored = true
		}
	} else {
		sess.Anchored = false
	}
	return true
}

// constrain keeps a held puck inside the arena and short of the wall on
// its own half.
func (s *Slinger) constrain(side Side, pos r2.Vec) r2.Vec {
	r := s.radius
	mid := s.arena.MidY()
	limit := s.arena.WallThickness/2 + r + s.sling.MidlineClearance

	x := core.ClampF(pos.X, r, s.arena.W-r)
	var y float64
	if side == SideBottom {
		y = core.ClampF(pos.Y, mid+limit, s.arena.H-r)
	} else {
		y = core.ClampF(pos.Y, r, mid-limit)
	}
	return r2.Vec{X: x, Y: y}
}

// Release ends the pointer's session. An armed sling launches the puck
// toward its anchor; an unarmed one leaves it at rest. Cancels go through
// the same path. Returns the imparted velocity and whether a session ended.
func (s *Slinger) Release(id core.PointerID, pucks []Puck) (r2.Vec, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return r2.Vec{}, false
	}
	delete(s.sessions, id)

	p := &pucks[sess.Puck]
	if !sess.Anchored {
		p.Vel = r2.Vec{}
		return p.Vel, true
	}
	p.Vel = LaunchVelocity(sess.Anchor, p.Pos, s.sling.DragForce, s.maxSpeed)
	return p.Vel, true
}

// LaunchVelocity returns (anchor - pos) * k, rescaled to maxSpeed if faster
// while keeping its direction.
func LaunchVelocity(anchor, pos r2.Vec, k, maxSpeed float64) r2.Vec {
	v := r2.Scale(k, r2.Sub(anchor, pos))
	if speed := r2.Norm(v); speed > maxSpeed && speed > 0 {
		v = r2.Scale(maxSpeed/speed, v)
	}
	if !core.Finite(v.X) || !core.Finite(v.Y) {
		return r2.Vec{}
	}
	return v
}
