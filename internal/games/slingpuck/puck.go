// Package slingpuck implements a two-player sling puck table: each side
// slings its pucks through gaps in a center wall, and a side wins when the
// other half of the arena is empty.
//
// The package is pure game logic. Drivers feed it normalized pointer events
// and elapsed frame time, and paint the Frame it exposes.
package slingpuck

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/slingpuck/internal/config"
)

// Side identifies one half of the arena.
type Side int

const (
	SideNone Side = iota
	SideTop
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Opponent returns the other side. SideNone has no opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideTop:
		return SideBottom
	case SideBottom:
		return SideTop
	default:
		return SideNone
	}
}

// SideOf returns the half that contains vertical position y.
// The midline itself belongs to the bottom half.
func SideOf(y, midY float64) Side {
	if y < midY {
		return SideTop
	}
	return SideBottom
}

// Puck is a disc on the table. All pucks share the same radius and a mass
// of one; side membership is derived from the position on every query.
type Puck struct {
	ID  int
	Pos r2.Vec
	Vel r2.Vec // Arena units per frame
}

// Side returns the half the puck is currently on.
func (p *Puck) Side(midY float64) Side {
	return SideOf(p.Pos.Y, midY)
}

// Speed returns the velocity magnitude.
func (p *Puck) Speed() float64 {
	return r2.Norm(p.Vel)
}

// Arena describes the fixed table dimensions a match is played on.
type Arena struct {
	W, H          float64
	WallThickness float64
	BandMargin    float64 // Fraction of height between each edge and its band line
}

// NewArena builds the arena for a surface of w by h units.
func NewArena(w, h float64, cfg config.SlingpuckConfig) Arena {
	return Arena{
		W:             w,
		H:             h,
		WallThickness: cfg.Physics.WallThickness,
		BandMargin:    cfg.Sling.BandMargin,
	}
}

// MidY returns the y coordinate of the center wall.
func (a Arena) MidY() float64 {
	return a.H / 2
}

// BandY returns the y coordinate of a side's band line. Pulling a held puck
// beyond it, toward the own edge, arms the sling.
func (a Arena) BandY(s Side) float64 {
	if s == SideBottom {
		return a.H * (1 - a.BandMargin)
	}
	return a.H * a.BandMargin
}

// Retracted reports whether y lies beyond the side's band line.
func (a Arena) Retracted(s Side, y float64) bool {
	if s == SideBottom {
		return y > a.BandY(s)
	}
	return y < a.BandY(s)
}
