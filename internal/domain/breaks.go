package domain

import "fmt"

// BreakRecommendation is one server-issued break suggestion. The server does
// not assign identity; see BreakID.
type BreakRecommendation struct {
	TimeSlot        string    `json:"time_slot"`
	BreakType       BreakType `json:"break_type"`
	DurationMinutes int       `json:"duration_minutes"`
	Reasoning       string    `json:"reasoning"`
	ReasonTag       string    `json:"reason_tag,omitempty"`
	UIMessage       string    `json:"ui_message,omitempty"`
	Confidence      float64   `json:"confidence,omitempty"`
	PreparationTip  string    `json:"preparation_tip,omitempty"`
	Benefits        []string  `json:"benefits,omitempty"`
}

// BreakID synthesizes a client-side identity for the recommendation at the
// given position in a fetched schedule. The ID is stable only for the
// lifetime of that schedule: a re-fetch recomputes every ID.
func BreakID(rec BreakRecommendation, index int) string {
	return fmt.Sprintf("%s-%s-%d", rec.BreakType, rec.TimeSlot, index)
}

// BreakSchedule is the response of GET /schedule-breaks.
type BreakSchedule struct {
	Success          bool             `json:"success"`
	StressAssessment StressAssessment `json:"stress_assessment"`
	BreakPlan        BreakPlan        `json:"break_schedule"`
	AutoInserted     bool             `json:"auto_inserted"`
	InsertedBreaks   []InsertedBreak  `json:"inserted_breaks"`
	Note             string           `json:"note,omitempty"`
}

type StressAssessment struct {
	Level StressLevel `json:"level"`
	Score int         `json:"score"`
}

type BreakPlan struct {
	RecommendedBreaks []BreakRecommendation `json:"recommended_breaks"`
	DailyStrategy     string                `json:"daily_strategy,omitempty"`
	EnergyManagement  string                `json:"energy_management,omitempty"`
}

// InsertedBreak reports a break the backend auto-inserted into the calendar.
type InsertedBreak struct {
	Success bool   `json:"success"`
	EventID string `json:"event_id,omitempty"`
	Link    string `json:"link,omitempty"`
}

// BreakAck is the acknowledgment for the break lifecycle write-through
// endpoints (/breaks/start, /breaks/complete, /breaks/skip).
type BreakAck struct {
	Success            bool   `json:"success"`
	Status             string `json:"status"`
	BreakID            string `json:"break_id,omitempty"`
	StartTime          string `json:"start_time,omitempty"`
	EndTime            string `json:"end_time,omitempty"`
	Reward             string `json:"reward,omitempty"`
	NextRecommendation string `json:"next_recommendation,omitempty"`
}

// CurrentBreak is the response of GET /breaks/current.
type CurrentBreak struct {
	Active          bool      `json:"active"`
	BreakID         string    `json:"break_id,omitempty"`
	Type            BreakType `json:"type,omitempty"`
	Title           string    `json:"title,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	StartTime       string    `json:"start_time,omitempty"`
	EndTime         string    `json:"end_time,omitempty"`
	AIReason        string    `json:"ai_reason,omitempty"`
	ElapsedSeconds  int       `json:"elapsed_seconds,omitempty"`
}

// BreakContent is the guided content for one break type.
type BreakContent struct {
	Type            BreakType     `json:"type"`
	Title           string        `json:"title"`
	Steps           []ContentStep `json:"steps"`
	Animation       string        `json:"animation,omitempty"`
	BackgroundMusic string        `json:"background_music,omitempty"`
	TotalDuration   int           `json:"total_duration"`
}

type ContentStep struct {
	Text    string `json:"text"`
	Seconds int    `json:"seconds"`
}

// BreakHistory is the response of GET /breaks/history.
type BreakHistory struct {
	Success bool              `json:"success"`
	History []BreakRecord     `json:"history"`
	Stats   BreakHistoryStats `json:"stats"`
}

type BreakRecord struct {
	BreakID   string    `json:"break_id"`
	Type      BreakType `json:"type"`
	Duration  int       `json:"duration"`
	Completed bool      `json:"completed"`
	Feedback  string    `json:"feedback,omitempty"`
	Timestamp string    `json:"timestamp"`
}

type BreakHistoryStats struct {
	TotalBreaks     int     `json:"total_breaks"`
	CompletedBreaks int     `json:"completed_breaks"`
	CompletionRate  float64 `json:"completion_rate"`
	Days            int     `json:"days"`
}
