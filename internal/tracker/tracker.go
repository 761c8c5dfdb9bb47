package tracker

import (
	"context"
	"sync"

	"github.com/lmoretti/respite/internal/domain"
	"github.com/lmoretti/respite/internal/service"
)

// NotifyFunc receives a local, user-facing message when a break finishes.
type NotifyFunc func(message string)

// Tracker owns the client-side execution state for the breaks of one fetched
// schedule. Every recommendation is keyed by its synthesized BreakID and
// moves upcoming -> active -> completed, with completed terminal. At most one
// break is active at a time; starting a second one is rejected.
//
// Start, Complete and Skip write through to the backend and only mutate
// local state after the backend acknowledges, so a failed call leaves the
// tracker exactly where it was and the caller can retry.
type Tracker struct {
	breaks service.BreakService
	notify NotifyFunc

	mu      sync.Mutex
	recs    []domain.BreakRecommendation
	ids     []string
	states  map[string]domain.BreakStatus
	active  string
	pending string // BreakID with an in-flight write-through
}

// New creates a Tracker with no schedule loaded. notify may be nil.
func New(breaks service.BreakService, notify NotifyFunc) *Tracker {
	return &Tracker{
		breaks: breaks,
		notify: notify,
		states: make(map[string]domain.BreakStatus),
	}
}

// Reset replaces the tracked schedule. All previous execution state is
// discarded: new fetches synthesize new BreakIDs, so nothing carries over.
func (t *Tracker) Reset(recs []domain.BreakRecommendation) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.recs = make([]domain.BreakRecommendation, len(recs))
	copy(t.recs, recs)
	t.ids = make([]string, len(recs))
	for i, rec := range recs {
		t.ids[i] = domain.BreakID(rec, i)
	}
	t.states = make(map[string]domain.BreakStatus)
	t.active = ""
	t.pending = ""
}

// IDs returns the BreakIDs of the current schedule in order.
func (t *Tracker) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Recommendation returns the recommendation behind a BreakID.
func (t *Tracker) Recommendation(breakID string) (domain.BreakRecommendation, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, id := range t.ids {
		if id == breakID {
			return t.recs[i], true
		}
	}
	return domain.BreakRecommendation{}, false
}

// StatusOf returns the execution state of a BreakID. Unknown IDs and IDs
// never started report upcoming.
func (t *Tracker) StatusOf(breakID string) domain.BreakStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.states[breakID]; ok {
		return s
	}
	return domain.BreakUpcoming
}

// ActiveID returns the currently active BreakID, or "" if none.
func (t *Tracker) ActiveID() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Adopt reconciles the tracker with a break the backend reports as already
// in progress, marking it active locally without another write-through. The
// recommendation is appended to the schedule when the ID is unknown, which
// happens when the process restarted since the break was started.
func (t *Tracker) Adopt(breakID string, rec domain.BreakRecommendation) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.states[breakID] == domain.BreakCompleted {
		return stateErr(breakID, "already completed")
	}
	if t.active != "" && t.active != breakID {
		return stateErr(breakID, "another break is active: "+t.active)
	}
	if _, ok := t.lookup(breakID); !ok {
		t.recs = append(t.recs, rec)
		t.ids = append(t.ids, breakID)
	}
	t.states[breakID] = domain.BreakActive
	t.active = breakID
	return nil
}

// Start transitions breakID from upcoming to active after the backend
// acknowledges the start.
func (t *Tracker) Start(ctx context.Context, breakID string) (*domain.BreakAck, error) {
	t.mu.Lock()
	rec, ok := t.lookup(breakID)
	if !ok {
		t.mu.Unlock()
		return nil, stateErr(breakID, "not part of the current schedule")
	}
	switch t.states[breakID] {
	case domain.BreakActive:
		t.mu.Unlock()
		return nil, stateErr(breakID, "already active")
	case domain.BreakCompleted:
		t.mu.Unlock()
		return nil, stateErr(breakID, "already completed")
	}
	if t.active != "" {
		t.mu.Unlock()
		return nil, stateErr(breakID, "another break is active: "+t.active)
	}
	if t.pending != "" {
		t.mu.Unlock()
		return nil, stateErr(breakID, "another transition is in flight")
	}
	t.pending = breakID
	t.mu.Unlock()

	ack, err := t.breaks.Start(ctx, breakID, rec.BreakType, rec.DurationMinutes, rec.Reasoning)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = ""
	if err != nil {
		return nil, err
	}
	// A Reset may have replaced the schedule while the call was in flight;
	// the acknowledged start then belongs to a discarded schedule.
	if _, ok := t.lookup(breakID); !ok {
		return nil, stateErr(breakID, "schedule changed while starting")
	}
	t.states[breakID] = domain.BreakActive
	t.active = breakID
	return ack, nil
}

// Complete transitions breakID from active to completed after the backend
// acknowledges, then emits the local completion notification.
func (t *Tracker) Complete(ctx context.Context, breakID, feedback string) (*domain.BreakAck, error) {
	t.mu.Lock()
	switch t.states[breakID] {
	case domain.BreakActive:
		// ok
	case domain.BreakCompleted:
		t.mu.Unlock()
		return nil, stateErr(breakID, "already completed")
	default:
		t.mu.Unlock()
		return nil, stateErr(breakID, "not started")
	}
	if t.pending != "" {
		t.mu.Unlock()
		return nil, stateErr(breakID, "another transition is in flight")
	}
	t.pending = breakID
	t.mu.Unlock()

	ack, err := t.breaks.Complete(ctx, breakID, feedback)

	t.mu.Lock()
	t.pending = ""
	if err != nil {
		t.mu.Unlock()
		return nil, err
	}
	t.states[breakID] = domain.BreakCompleted
	if t.active == breakID {
		t.active = ""
	}
	notify := t.notify
	t.mu.Unlock()

	if notify != nil {
		msg := "Break completed. Good job taking time for yourself."
		if ack != nil && ack.NextRecommendation != "" {
			msg = ack.NextRecommendation
		}
		notify(msg)
	}
	return ack, nil
}

// Skip abandons breakID. An active break returns to upcoming; an upcoming
// break may also be skipped, which tells the backend without changing local
// state. Completed breaks cannot be skipped.
func (t *Tracker) Skip(ctx context.Context, breakID, reason string) (*domain.BreakAck, error) {
	t.mu.Lock()
	if t.states[breakID] == domain.BreakCompleted {
		t.mu.Unlock()
		return nil, stateErr(breakID, "already completed")
	}
	if t.pending != "" {
		t.mu.Unlock()
		return nil, stateErr(breakID, "another transition is in flight")
	}
	t.pending = breakID
	t.mu.Unlock()

	ack, err := t.breaks.Skip(ctx, breakID, reason)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = ""
	if err != nil {
		return nil, err
	}
	delete(t.states, breakID)
	if t.active == breakID {
		t.active = ""
	}
	return ack, nil
}

// lookup must be called with t.mu held.
func (t *Tracker) lookup(breakID string) (domain.BreakRecommendation, bool) {
	for i, id := range t.ids {
		if id == breakID {
			return t.recs[i], true
		}
	}
	return domain.BreakRecommendation{}, false
}
