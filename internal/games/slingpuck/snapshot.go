package slingpuck

// Snapshot is the deterministic part of the game state, used for replay
// checks and tests. Positions and velocities are scaled by 1000.
// The match id is random per match and deliberately left out.
type Snapshot struct {
	Frame      uint64
	NowMs      int
	State      int
	Winner     int
	TopWins    int
	BottomWins int
	Level      int
	Pending    int
	Held       int
	PuckData   []int // x, y, vx, vy per puck
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	data := make([]int, 0, len(g.pucks)*4)
	for _, p := range g.pucks {
		data = append(data,
			int(p.Pos.X*1000),
			int(p.Pos.Y*1000),
			int(p.Vel.X*1000),
			int(p.Vel.Y*1000),
		)
	}

	held := 0
	if g.slinger != nil {
		held = g.slinger.Active()
	}

	return Snapshot{
		Frame:      g.frame,
		NowMs:      int(g.nowMs * 1000),
		State:      int(g.state),
		Winner:     int(g.winner),
		TopWins:    g.topWins,
		BottomWins: g.bottomWins,
		Level:      g.Level(),
		Pending:    int(g.pending),
		Held:       held,
		PuckData:   data,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Frame
	h = h*31 + uint64(snap.NowMs)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.State)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Winner)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.TopWins)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BottomWins) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pending)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Held)       //#nosec G115 -- hash computation

	for _, v := range snap.PuckData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	return h
}
