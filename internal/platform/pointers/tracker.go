// Package pointers turns polled pointer state into pointer events, for
// platforms that report which pointers are down each frame rather than
// delivering press and release events.
package pointers

import (
	"sort"

	"github.com/vovakirdan/slingpuck/internal/core"
)

// Sample is one pointer that is down during a poll.
type Sample struct {
	ID   core.PointerID
	X, Y float64
}

// Tracker remembers which pointers were down at the previous poll.
type Tracker struct {
	active map[core.PointerID]Sample
}

// NewTracker creates a tracker with no active pointers.
func NewTracker() *Tracker {
	return &Tracker{active: make(map[core.PointerID]Sample)}
}

// Active returns the number of pointers currently down.
func (t *Tracker) Active() int {
	return len(t.active)
}

// Poll compares the pointers down this frame with the previous poll and
// returns the events in between. A pointer that is gone ends if released
// reports it as lifted this frame, and is cancelled otherwise. Events come
// ordered as ends, moves, then starts; within each group by pointer id.
func (t *Tracker) Poll(down []Sample, released func(core.PointerID) bool) []core.PointerEvent {
	current := make(map[core.PointerID]Sample, len(down))
	for _, s := range down {
		current[s.ID] = s
	}

	var ends, moves, starts []core.PointerEvent
	for _, id := range sortedIDs(t.active) {
		prev := t.active[id]
		if now, ok := current[id]; ok {
			if now.X != prev.X || now.Y != prev.Y {
				moves = append(moves, core.NewPointerEvent(id, now.X, now.Y, core.PointerMove))
			}
			continue
		}
		phase := core.PointerCancel
		if released != nil && released(id) {
			phase = core.PointerEnd
		}
		ends = append(ends, core.NewPointerEvent(id, prev.X, prev.Y, phase))
	}
	for _, id := range sortedIDs(current) {
		if _, ok := t.active[id]; !ok {
			s := current[id]
			starts = append(starts, core.NewPointerEvent(id, s.X, s.Y, core.PointerStart))
		}
	}

	t.active = current
	events := make([]core.PointerEvent, 0, len(ends)+len(moves)+len(starts))
	events = append(events, ends...)
	events = append(events, moves...)
	return append(events, starts...)
}

// CancelAll cancels every active pointer, e.g. when the window loses focus.
func (t *Tracker) CancelAll() []core.PointerEvent {
	events := make([]core.PointerEvent, 0, len(t.active))
	for _, id := range sortedIDs(t.active) {
		s := t.active[id]
		events = append(events, core.NewPointerEvent(id, s.X, s.Y, core.PointerCancel))
	}
	clear(t.active)
	return events
}

func sortedIDs(m map[core.PointerID]Sample) []core.PointerID {
	ids := make([]core.PointerID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
