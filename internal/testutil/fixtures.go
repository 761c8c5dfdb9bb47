package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/lmoretti/respite/internal/domain"
)

// Recommendation options
type RecOption func(*domain.BreakRecommendation)

func WithTimeSlot(slot string) RecOption {
	return func(r *domain.BreakRecommendation) {
		r.TimeSlot = slot
	}
}

func WithDuration(minutes int) RecOption {
	return func(r *domain.BreakRecommendation) {
		r.DurationMinutes = minutes
	}
}

// NewTestRecommendation builds a BreakRecommendation with usable defaults.
func NewTestRecommendation(breakType domain.BreakType, opts ...RecOption) domain.BreakRecommendation {
	rec := domain.BreakRecommendation{
		TimeSlot:        "10:30",
		BreakType:       breakType,
		DurationMinutes: 5,
		Reasoning:       "test recommendation",
	}
	for _, opt := range opts {
		opt(&rec)
	}
	return rec
}

// NewTestSchedule builds a three-break schedule covering distinct types.
func NewTestSchedule() []domain.BreakRecommendation {
	return []domain.BreakRecommendation{
		NewTestRecommendation(domain.BreakBreathing, WithTimeSlot("10:30")),
		NewTestRecommendation(domain.BreakWalk, WithTimeSlot("13:00"), WithDuration(10)),
		NewTestRecommendation(domain.BreakStretch, WithTimeSlot("15:30")),
	}
}

// Journal entry options
type JournalOption func(*domain.JournalEntry)

func WithCreatedAt(ts time.Time) JournalOption {
	return func(e *domain.JournalEntry) {
		e.CreatedAt = ts
	}
}

func WithNote(note string) JournalOption {
	return func(e *domain.JournalEntry) {
		e.Note = note
	}
}

// NewTestCheckinEntry builds a journal entry for a submitted check-in.
func NewTestCheckinEntry(ct domain.CheckinType, opts ...JournalOption) *domain.JournalEntry {
	e := &domain.JournalEntry{
		ID:          uuid.New().String(),
		Kind:        domain.JournalCheckin,
		CheckinType: ct,
		Mood:        6,
		Energy:      5,
		Stress:      4,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestBreakEntry builds a journal entry for a completed break.
func NewTestBreakEntry(bt domain.BreakType, opts ...JournalOption) *domain.JournalEntry {
	e := &domain.JournalEntry{
		ID:          uuid.New().String(),
		Kind:        domain.JournalBreak,
		BreakType:   bt,
		BreakID:     string(bt) + "-10:30-0",
		DurationMin: 5,
		CreatedAt:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
