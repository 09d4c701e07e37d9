package slingpuck

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/slingpuck/internal/core"
)

// Frame is everything a driver needs to paint one frame, in arena units.
type Frame struct {
	Arena     Arena
	MidY      float64
	Radius    float64
	Segments  []Segment
	Obstacles []Obstacle
	Pucks     []PuckView
	Bands     []BandView
	Counts    Counts
	Score     Score
	State     MatchState
	Overlay   *Overlay // nil while playing
}

// PuckView is a puck as it should be drawn.
type PuckView struct {
	X, Y  float64
	Side  Side
	Color core.Color
	Held  bool
}

// BandView is a band line or a stretched sling band.
type BandView struct {
	X1, Y1, X2, Y2 float64
	Color          core.Color
	Taut           bool // Sling band from an anchor to a held puck
}

// Overlay is the start or win screen shown above the table.
type Overlay struct {
	Title    string
	Subtitle string
	Color    core.Color
}

// SideColor returns the color a side is drawn with.
func SideColor(s Side) core.Color {
	switch s {
	case SideTop:
		return core.ColorTop
	case SideBottom:
		return core.ColorBottom
	default:
		return core.ColorDefault
	}
}

// Frame returns the current render state.
func (g *Game) Frame() Frame {
	mid := g.arena.MidY()
	held := g.slinger.HeldMask(len(g.pucks))

	f := Frame{
		Arena:     g.arena,
		MidY:      mid,
		Radius:    g.tuning.Physics.PuckRadius,
		Segments:  append([]Segment(nil), g.layout.Segments...),
		Obstacles: append([]Obstacle(nil), g.layout.Obstacles...),
		Pucks:     make([]PuckView, 0, len(g.pucks)),
		Counts:    g.counts,
		Score:     g.Score(),
		State:     g.state,
	}

	for i, p := range g.pucks {
		side := p.Side(mid)
		c := SideColor(side)
		if held[i] {
			c = core.ColorHeld
		}
		f.Pucks = append(f.Pucks, PuckView{X: p.Pos.X, Y: p.Pos.Y, Side: side, Color: c, Held: held[i]})
	}

	for _, side := range []Side{SideTop, SideBottom} {
		y := g.arena.BandY(side)
		f.Bands = append(f.Bands, BandView{X1: 0, Y1: y, X2: g.arena.W, Y2: y, Color: core.ColorBand})
	}
	for _, sess := range g.slinger.Sessions() {
		if !sess.Anchored {
			continue
		}
		p := g.pucks[sess.Puck]
		f.Bands = append(f.Bands, BandView{
			X1: sess.Anchor.X, Y1: sess.Anchor.Y,
			X2: p.Pos.X, Y2: p.Pos.Y,
			Color: SideColor(sess.Side),
			Taut:  true,
		})
	}

	f.Overlay = g.overlay()
	return f
}

// overlay builds the start or win screen text.
func (g *Game) overlay() *Overlay {
	next := g.Level()
	layout := LevelFor(next)
	switch g.state {
	case StateStart:
		return &Overlay{
			Title:    "SLING PUCK",
			Subtitle: fmt.Sprintf("Tap to start - level %d: %s", next, layout.Name),
			Color:    core.ColorText,
		}
	case StateWon:
		return &Overlay{
			Title:    strings.ToUpper(g.winner.String()) + " WINS!",
			Subtitle: fmt.Sprintf("Tap for level %d: %s", next, layout.Name),
			Color:    SideColor(g.winner),
		}
	default:
		return nil
	}
}
