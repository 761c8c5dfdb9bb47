package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBreakID_Format(t *testing.T) {
	rec := BreakRecommendation{TimeSlot: "10:30", BreakType: BreakBreathing}
	assert.Equal(t, "breathing-10:30-0", BreakID(rec, 0))
	assert.Equal(t, "breathing-10:30-4", BreakID(rec, 4))
}

func TestBreakID_DistinguishesPosition(t *testing.T) {
	// Two identical recommendations at different positions get distinct IDs.
	rec := BreakRecommendation{TimeSlot: "14:00", BreakType: BreakWalk}
	assert.NotEqual(t, BreakID(rec, 0), BreakID(rec, 1))
}
