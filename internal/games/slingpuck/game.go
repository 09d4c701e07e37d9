package slingpuck

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/slingpuck/internal/config"
	"github.com/vovakirdan/slingpuck/internal/core"
)

// MatchState is the phase of the match.
type MatchState int

const (
	StateStart   MatchState = iota // Title screen, nothing moves
	StatePlaying                   // Physics and win detection run
	StateWon                       // A side won; waiting for a press
)

// String returns a human-readable name for the state.
func (s MatchState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Score is the cumulative result across matches.
type Score struct {
	TopWins    int
	BottomWins int
	Level      int // 1-based level of the current or next match
}

// Game owns the whole table: pucks, drag sessions, geometry and match
// progress. Drivers call Reset once, then StepFrame every display frame
// and HandlePointerEvent for every pointer event, all from one goroutine.
type Game struct {
	tuning  config.SlingpuckConfig
	runtime core.RuntimeConfig
	arena   Arena

	sim      *Simulator
	geometry *Geometry
	slinger  *Slinger
	rng      *rand.Rand
	logger   *log.Logger

	pucks  []Puck
	layout Layout
	counts Counts

	state     MatchState
	winner    Side
	pending   Side    // Side that currently has no pucks, SideNone if none
	pendingAt float64 // nowMs when pending was first seen

	topWins    int
	bottomWins int

	matchID string
	nowMs   float64
	frame   uint64
}

// New creates a game with the given tuning. Reset must be called before
// the game is stepped.
func New(tuning config.SlingpuckConfig) *Game {
	tuning.Validate()
	return &Game{
		tuning: tuning,
		logger: log.New(io.Discard),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "slingpuck"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sling Puck"
}

// SetLogger sets the logger for match events. nil silences the game.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset prepares a fresh table on the start screen: win counters cleared,
// level 1, pucks spawned but not moving.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.build(runtime.ArenaW, runtime.ArenaH, 1)

	g.topWins = 0
	g.bottomWins = 0
	g.state = StateStart
	g.winner = SideNone
	g.pending = SideNone
	g.matchID = ""
	g.nowMs = 0
	g.frame = 0

	g.spawn()
	g.layout = g.geometry.Layout(g.nowMs)
	g.counts = CountSides(g.pucks, g.arena.MidY())
}

// build creates the arena-bound components for a surface size.
func (g *Game) build(w, h float64, level int) {
	g.arena = NewArena(w, h, g.tuning)
	g.sim = NewSimulator(g.arena, g.tuning.Physics)
	g.geometry = NewGeometry(g.arena, g.tuning.Arena, g.tuning.Match.TransitionMs, level)
	g.slinger = NewSlinger(g.arena, g.tuning)
}

// Resize moves the table onto a new surface size. Pucks keep their relative
// positions, drags are dropped and the level layout is rebuilt settled.
func (g *Game) Resize(w, h float64) {
	if w == g.arena.W && h == g.arena.H {
		return
	}
	sx, sy := 1.0, 1.0
	if g.arena.W > 0 && g.arena.H > 0 {
		sx, sy = w/g.arena.W, h/g.arena.H
	}

	g.build(w, h, g.Level())
	g.runtime.ArenaW, g.runtime.ArenaH = w, h
	for i := range g.pucks {
		p := &g.pucks[i]
		p.Pos = r2.Vec{X: p.Pos.X * sx, Y: p.Pos.Y * sy}
		ResolveBoundary(p, g.tuning.Physics.PuckRadius, g.arena, 1)
	}
	g.layout = g.geometry.Layout(g.nowMs)
	g.counts = CountSides(g.pucks, g.arena.MidY())
	g.logger.Debug("arena resized", "width", w, "height", h)
}

// StartMatch respawns both rosters, drops all drags and starts play on the
// level that follows from the win counters.
func (g *Game) StartMatch() {
	g.slinger.Reset()
	g.spawn()

	g.state = StatePlaying
	g.winner = SideNone
	g.pending = SideNone
	g.matchID = uuid.NewString()

	level := g.Level()
	if from := g.geometry.Level(); g.geometry.Retarget(level, g.nowMs) {
		g.logger.Info("level transition", "from", from, "to", level)
	}
	g.counts = CountSides(g.pucks, g.arena.MidY())

	g.logger.Info("match started",
		"match", g.matchID,
		"level", level,
		"layout", LevelFor(level).Name,
	)
}

// spawn replaces the puck slice with fresh rosters clustered around each
// side's spawn point.
func (g *Game) spawn() {
	per := g.tuning.Match.PucksPerSide
	r := g.tuning.Physics.PuckRadius
	mid := g.arena.MidY()
	limit := g.arena.WallThickness/2 + r

	g.pucks = make([]Puck, 0, per*2)
	for _, side := range []Side{SideTop, SideBottom} {
		anchor := r2.Vec{X: g.arena.W / 2, Y: (g.arena.BandY(side) + mid) / 2}
		for k := range per {
			angle := 2*math.Pi*float64(k)/float64(per) + (g.rng.Float64()-0.5)*0.2
			dist := g.tuning.Match.SpawnSpread*r + (g.rng.Float64()*2-1)*g.tuning.Match.SpawnJitter*r
			if per == 1 {
				dist = 0
			}
			pos := r2.Add(anchor, r2.Vec{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist})

			pos.X = core.ClampF(pos.X, r, g.arena.W-r)
			if side == SideTop {
				pos.Y = core.ClampF(pos.Y, r, mid-limit)
			} else {
				pos.Y = core.ClampF(pos.Y, mid+limit, g.arena.H-r)
			}
			g.pucks = append(g.pucks, Puck{ID: len(g.pucks), Pos: pos})
		}
	}
}

// StepFrame advances the table by one display frame that took elapsedMs.
// The layout animates in every state; physics and win detection run only
// while playing. Negative or non-finite elapsed times count as zero and
// long stalls are clamped.
func (g *Game) StepFrame(elapsedMs float64) {
	if !core.Finite(elapsedMs) || elapsedMs < 0 {
		elapsedMs = 0
	}
	elapsedMs = math.Min(elapsedMs, g.tuning.Match.MaxFrameMs)
	g.nowMs += elapsedMs
	g.frame++

	g.layout = g.geometry.Layout(g.nowMs)
	if g.state != StatePlaying {
		return
	}

	held := g.slinger.HeldMask(len(g.pucks))
	g.counts = g.sim.Step(g.pucks, g.layout, held)
	g.checkWin()
}

// checkWin declares a winner once one side has had no pucks for the whole
// win delay. A puck coming back clears the timer.
func (g *Game) checkWin() {
	empty := SideNone
	switch {
	case g.counts.Top == 0:
		empty = SideTop
	case g.counts.Bottom == 0:
		empty = SideBottom
	}

	if empty == SideNone {
		g.pending = SideNone
		return
	}
	if g.pending != empty {
		g.pending = empty
		g.pendingAt = g.nowMs
		return
	}
	if g.nowMs-g.pendingAt >= g.tuning.Match.WinDelayMs {
		g.declareWinner(empty.Opponent())
	}
}

// declareWinner ends the match and starts easing toward the next level.
func (g *Game) declareWinner(winner Side) {
	g.state = StateWon
	g.winner = winner
	g.pending = SideNone
	if winner == SideTop {
		g.topWins++
	} else {
		g.bottomWins++
	}

	g.logger.Info("match won",
		"match", g.matchID,
		"winner", winner,
		"top_wins", g.topWins,
		"bottom_wins", g.bottomWins,
	)

	next := g.Level()
	if from := g.geometry.Level(); g.geometry.Retarget(next, g.nowMs) {
		g.logger.Info("level transition", "from", from, "to", next)
	}
}

// HandlePointerEvent applies one pointer event immediately.
// Outside of play any press (re)starts the match.
func (g *Game) HandlePointerEvent(evt core.PointerEvent) {
	finite := core.Finite(evt.X) && core.Finite(evt.Y)
	pos := r2.Vec{X: evt.X, Y: evt.Y}

	switch evt.Phase {
	case core.PointerStart:
		if !finite {
			return
		}
		if g.state != StatePlaying {
			g.StartMatch()
			return
		}
		if _, ok := g.slinger.Session(evt.ID); ok {
			// A second press without a release: the previous sequence was
			// lost somewhere, end it so its puck is not stuck.
			g.logger.Debug("pointer pressed while dragging, releasing", "pointer", evt.ID)
			g.slinger.Release(evt.ID, g.pucks)
		}
		g.slinger.Press(evt.ID, pos, g.pucks)

	case core.PointerMove:
		if finite {
			g.slinger.Move(evt.ID, pos, g.pucks)
		}

	case core.PointerEnd, core.PointerCancel:
		if evt.Phase == core.PointerCancel {
			g.logger.Debug("pointer cancelled", "pointer", evt.ID)
		}
		g.slinger.Release(evt.ID, g.pucks)
	}
}

// CancelPointers ends every drag as if each pointer had been cancelled.
// Drivers call it when the surface loses focus.
func (g *Game) CancelPointers() {
	for _, sess := range g.slinger.Sessions() {
		g.slinger.Release(sess.Pointer, g.pucks)
	}
}

// State returns the match state.
func (g *Game) State() MatchState {
	return g.state
}

// Winner returns the winner of the last finished match, or SideNone.
func (g *Game) Winner() Side {
	return g.winner
}

// Level returns the 1-based level of the current or next match.
func (g *Game) Level() int {
	return g.topWins + g.bottomWins + 1
}

// Score returns the win counters and level.
func (g *Game) Score() Score {
	return Score{TopWins: g.topWins, BottomWins: g.bottomWins, Level: g.Level()}
}

// Counts returns the side counts of the last simulated frame.
func (g *Game) Counts() Counts {
	return g.counts
}

// Pucks returns a copy of the pucks.
func (g *Game) Pucks() []Puck {
	out := make([]Puck, len(g.pucks))
	copy(out, g.pucks)
	return out
}

// Arena returns the table dimensions.
func (g *Game) Arena() Arena {
	return g.arena
}

// Layout returns the geometry computed for the last frame.
func (g *Game) Layout() Layout {
	return g.layout
}

// Sessions returns the active drag sessions ordered by pointer id.
func (g *Game) Sessions() []DragSession {
	return g.slinger.Sessions()
}

// MatchID returns the id of the current match, empty before the first one.
func (g *Game) MatchID() string {
	return g.matchID
}

// NowMs returns the game clock.
func (g *Game) NowMs() float64 {
	return g.nowMs
}
