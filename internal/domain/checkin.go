package domain

// MorningCheckin is the payload submitted to POST /checkin/morning.
// All scale fields are 1-10. Goals is already split into non-blank lines.
type MorningCheckin struct {
	Mood         int      `json:"mood"`
	Energy       int      `json:"energy"`
	SleepQuality int      `json:"sleep_quality"`
	Stress       int      `json:"stress"`
	Notes        string   `json:"notes"`
	Goals        []string `json:"goals"`
}

// AfternoonCheckin is the payload submitted to POST /checkin/afternoon.
type AfternoonCheckin struct {
	Mood   int    `json:"mood"`
	Energy int    `json:"energy"`
	Stress int    `json:"stress"`
	Focus  int    `json:"focus"`
	Notes  string `json:"notes"`
}

// EveningCheckin is the payload submitted to POST /checkin/evening.
type EveningCheckin struct {
	Mood          int      `json:"mood"`
	Energy        int      `json:"energy"`
	Stress        int      `json:"stress"`
	Productivity  int      `json:"productivity"`
	Notes         string   `json:"notes"`
	Gratitude     []string `json:"gratitude"`
	GoalsAchieved bool     `json:"goals_achieved"`
}

// CheckinAck is the backend acknowledgment for a submitted check-in.
type CheckinAck struct {
	Success      bool           `json:"success"`
	Checkin      SavedCheckin   `json:"checkin"`
	MoodAnalysis map[string]any `json:"mood_analysis"`
}

// SavedCheckin is the server-side record echoed back on submission and
// returned from the history endpoint.
type SavedCheckin struct {
	Type      CheckinType    `json:"type"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// CheckinStatus reports which check-ins were completed today and which, if
// any, is next due. NextCheckin is the backend's authoritative answer; the
// local cadence resolver is only a display fallback.
type CheckinStatus struct {
	Success            bool         `json:"success"`
	MorningCompleted   bool         `json:"morning_completed"`
	AfternoonCompleted bool         `json:"afternoon_completed"`
	EveningCompleted   bool         `json:"evening_completed"`
	NextCheckin        *CheckinType `json:"next_checkin"`
	CurrentHour        int          `json:"current_hour"`
}

// CheckinHistory groups past check-ins by cadence.
type CheckinHistory struct {
	Success        bool                           `json:"success"`
	History        map[CheckinType][]SavedCheckin `json:"history"`
	TotalMorning   int                            `json:"total_morning"`
	TotalAfternoon int                            `json:"total_afternoon"`
	TotalEvening   int                            `json:"total_evening"`
}

// CheckinAnalytics carries rolling averages and a mood trend.
type CheckinAnalytics struct {
	Success   bool           `json:"success"`
	Analytics AnalyticsStats `json:"analytics"`
}

type AnalyticsStats struct {
	AverageMood   float64   `json:"average_mood"`
	AverageEnergy float64   `json:"average_energy"`
	AverageStress float64   `json:"average_stress"`
	Trend         MoodTrend `json:"trend"`
	TotalCheckins int       `json:"total_checkins"`
	CheckinStreak int       `json:"checkin_streak"`
	MoodHistory   []int     `json:"mood_history"`
	EnergyHistory []int     `json:"energy_history"`
	StressHistory []int     `json:"stress_history"`
}
