package domain

import "time"

type JournalKind string

const (
	JournalCheckin JournalKind = "checkin"
	JournalBreak   JournalKind = "break"
)

// JournalEntry is a local record of something the user did: a submitted
// check-in or a finished break. The backend owns the canonical history;
// the journal exists so `respite log` works offline.
type JournalEntry struct {
	ID          string
	Kind        JournalKind
	CheckinType CheckinType // set when Kind == JournalCheckin
	BreakType   BreakType   // set when Kind == JournalBreak
	BreakID     string      // set when Kind == JournalBreak
	Mood        int
	Energy      int
	Stress      int
	DurationMin int
	Note        string
	CreatedAt   time.Time
}
