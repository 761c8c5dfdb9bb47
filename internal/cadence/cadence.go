package cadence

import (
	"time"

	"github.com/lmoretti/respite/internal/domain"
)

// DefaultOffsetMin is the backend deployment's clock offset from UTC
// (UTC+5:30). The cadence windows are defined against that clock, not the
// device-local one.
const DefaultOffsetMin = 330

// Resolver maps wall-clock time onto the morning/afternoon/evening cadence.
// The backend's check-in status endpoint stays authoritative for whether a
// check-in is actually due; the resolver is the local display fallback.
type Resolver struct {
	offset time.Duration
}

// NewResolver creates a Resolver with the given offset from UTC in minutes.
func NewResolver(offsetMin int) Resolver {
	return Resolver{offset: time.Duration(offsetMin) * time.Minute}
}

// Resolve returns the cadence for the current moment.
func (r Resolver) Resolve() domain.CheckinType {
	return r.ResolveAt(time.Now())
}

// ResolveAt returns the cadence for t: hours [5,12) are morning, [12,17)
// afternoon, everything else evening. The mapping is total over the 24-hour
// cycle.
func (r Resolver) ResolveAt(t time.Time) domain.CheckinType {
	h := t.UTC().Add(r.offset).Hour()
	switch {
	case h >= 5 && h < 12:
		return domain.CheckinMorning
	case h >= 12 && h < 17:
		return domain.CheckinAfternoon
	default:
		return domain.CheckinEvening
	}
}

// NextDue combines the server-reported status with the local cadence. It
// returns the server's answer when present and nil when the server says
// nothing is due; only a missing status falls back to the local clock.
func (r Resolver) NextDue(status *domain.CheckinStatus) *domain.CheckinType {
	if status != nil {
		return status.NextCheckin
	}
	local := r.Resolve()
	return &local
}
