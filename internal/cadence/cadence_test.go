package cadence

import (
	"testing"
	"time"

	"github.com/lmoretti/respite/internal/domain"
	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.UTC)
}

func TestResolveAt_OffsetWindows(t *testing.T) {
	r := NewResolver(DefaultOffsetMin) // UTC+5:30

	// 23:30 UTC = 05:00 local, the first morning minute.
	assert.Equal(t, domain.CheckinMorning, r.ResolveAt(at(23, 30)))
	// 06:29 UTC = 11:59 local, still morning.
	assert.Equal(t, domain.CheckinMorning, r.ResolveAt(at(6, 29)))
	// 06:30 UTC = 12:00 local, afternoon begins.
	assert.Equal(t, domain.CheckinAfternoon, r.ResolveAt(at(6, 30)))
	// 11:29 UTC = 16:59 local, last afternoon minute.
	assert.Equal(t, domain.CheckinAfternoon, r.ResolveAt(at(11, 29)))
	// 11:30 UTC = 17:00 local, evening begins.
	assert.Equal(t, domain.CheckinEvening, r.ResolveAt(at(11, 30)))
	// 23:29 UTC = 04:59 local, small hours still count as evening.
	assert.Equal(t, domain.CheckinEvening, r.ResolveAt(at(23, 29)))
}

func TestResolveAt_TotalOverDay(t *testing.T) {
	// Every hour of the day maps to exactly one cadence.
	r := NewResolver(DefaultOffsetMin)
	for h := 0; h < 24; h++ {
		got := r.ResolveAt(at(h, 0))
		assert.Contains(t,
			[]domain.CheckinType{domain.CheckinMorning, domain.CheckinAfternoon, domain.CheckinEvening},
			got, "hour %d", h)
	}
}

func TestResolveAt_ZeroOffset(t *testing.T) {
	r := NewResolver(0)
	assert.Equal(t, domain.CheckinMorning, r.ResolveAt(at(5, 0)))
	assert.Equal(t, domain.CheckinAfternoon, r.ResolveAt(at(12, 0)))
	assert.Equal(t, domain.CheckinEvening, r.ResolveAt(at(17, 0)))
	assert.Equal(t, domain.CheckinEvening, r.ResolveAt(at(2, 0)))
}

func TestResolveAt_NegativeOffset(t *testing.T) {
	r := NewResolver(-300) // UTC-5
	// 10:00 UTC = 05:00 local.
	assert.Equal(t, domain.CheckinMorning, r.ResolveAt(at(10, 0)))
	// 22:30 UTC = 17:30 local.
	assert.Equal(t, domain.CheckinEvening, r.ResolveAt(at(22, 30)))
}

func TestNextDue_ServerAuthoritative(t *testing.T) {
	r := NewResolver(DefaultOffsetMin)

	afternoon := domain.CheckinAfternoon
	status := &domain.CheckinStatus{NextCheckin: &afternoon}
	got := r.NextDue(status)
	assert.Equal(t, &afternoon, got)

	// Server explicitly says nothing is due: no local fallback.
	assert.Nil(t, r.NextDue(&domain.CheckinStatus{NextCheckin: nil}))
}

func TestNextDue_LocalFallback(t *testing.T) {
	r := NewResolver(DefaultOffsetMin)
	got := r.NextDue(nil)
	assert.NotNil(t, got)
	assert.Equal(t, r.Resolve(), *got)
}
