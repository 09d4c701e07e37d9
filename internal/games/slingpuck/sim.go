package slingpuck

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/slingpuck/internal/config"
)

// Counts is the number of pucks on each half after a frame.
type Counts struct {
	Top    int
	Bottom int
}

// Of returns the count for one side.
func (c Counts) Of(s Side) int {
	switch s {
	case SideTop:
		return c.Top
	case SideBottom:
		return c.Bottom
	default:
		return 0
	}
}

// CountSides tallies pucks by the half they are on.
func CountSides(pucks []Puck, midY float64) Counts {
	var c Counts
	for i := range pucks {
		if pucks[i].Side(midY) == SideTop {
			c.Top++
		} else {
			c.Bottom++
		}
	}
	return c
}

// Simulator advances pucks by whole frames.
type Simulator struct {
	arena Arena
	phys  config.PhysicsConfig
}

// NewSimulator creates a simulator for an arena.
func NewSimulator(arena Arena, phys config.PhysicsConfig) *Simulator {
	return &Simulator{arena: arena, phys: phys}
}

// Step advances every puck not marked in held by one frame against the
// given layout and returns the side counts afterwards.
//
// The frame is split into sub-steps. In each sub-step a free puck moves by
// velocity/N and then resolves arena edges, wall faces, wall ends and
// obstacles, in that order; after that it resolves contacts with every
// later puck. Friction is applied once at the end of the frame.
// held may be shorter than pucks; missing entries count as free.
func (s *Simulator) Step(pucks []Puck, layout Layout, held []bool) Counts {
	isHeld := func(i int) bool {
		return i < len(held) && held[i]
	}

	r := s.phys.PuckRadius
	damping := s.phys.Damping
	n := max(s.phys.SubSteps, 1)
	inv := 1 / float64(n)
	capReach := s.arena.WallThickness/2 + r
	caps := segmentCaps(layout.Segments, s.arena)

	for range n {
		for i := range pucks {
			p := &pucks[i]
			if !isHeld(i) {
				p.Pos = r2.Add(p.Pos, r2.Scale(inv, p.Vel))

				ResolveBoundary(p, r, s.arena, damping)
				for _, seg := range layout.Segments {
					ResolveSegment(p, seg, s.arena, r, damping)
				}
				for _, c := range caps {
					ResolveCap(p, c, capReach, damping)
				}
				for _, o := range layout.Obstacles {
					ResolveCap(p, r2.Vec{X: o.X, Y: o.Y}, o.Radius+r, damping)
				}
			}

			for j := i + 1; j < len(pucks); j++ {
				ResolvePair(p, &pucks[j], isHeld(i), isHeld(j), r, damping)
			}
		}

		// Contact pushes can move a puck past an edge after it was checked.
		for i := range pucks {
			if !isHeld(i) {
				ResolveBoundary(&pucks[i], r, s.arena, damping)
			}
		}
	}

	for i := range pucks {
		if !isHeld(i) {
			pucks[i].Vel = r2.Scale(s.phys.Friction, pucks[i].Vel)
		}
	}

	return CountSides(pucks, s.arena.MidY())
}

// segmentCaps returns the rounded ends of the wall segments. Ends that
// touch an arena edge are covered by the boundary and are skipped.
func segmentCaps(segments []Segment, a Arena) []r2.Vec {
	caps := make([]r2.Vec, 0, len(segments)*2)
	mid := a.MidY()
	for _, seg := range segments {
		if !seg.Valid() {
			continue
		}
		if seg.Start > 0 {
			caps = append(caps, r2.Vec{X: seg.Start, Y: mid})
		}
		if seg.End < a.W {
			caps = append(caps, r2.Vec{X: seg.End, Y: mid})
		}
	}
	return caps
}
