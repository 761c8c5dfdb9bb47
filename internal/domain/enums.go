package domain

type CheckinType string

const (
	CheckinMorning   CheckinType = "morning"
	CheckinAfternoon CheckinType = "afternoon"
	CheckinEvening   CheckinType = "evening"
)

type BreakType string

const (
	BreakMeditation   BreakType = "meditation"
	BreakWalk         BreakType = "walk"
	BreakStretch      BreakType = "stretch"
	BreakBreathing    BreakType = "breathing"
	BreakDeskExercise BreakType = "desk_exercise"
	BreakMicroRest    BreakType = "micro_rest"
	BreakOther        BreakType = "other"
)

// BreakTypeOrder lists the break types in display order.
var BreakTypeOrder = []BreakType{
	BreakMeditation, BreakWalk, BreakStretch, BreakBreathing,
	BreakDeskExercise, BreakMicroRest, BreakOther,
}

// ValidBreakTypes is the canonical set of accepted break type strings.
var ValidBreakTypes = map[string]bool{
	"meditation": true, "walk": true, "stretch": true,
	"breathing": true, "desk_exercise": true, "micro_rest": true,
	"other": true,
}

type BreakStatus string

const (
	BreakUpcoming  BreakStatus = "upcoming"
	BreakActive    BreakStatus = "active"
	BreakCompleted BreakStatus = "completed"
)

type StressLevel string

const (
	StressMinimal  StressLevel = "minimal"
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
	StressSevere   StressLevel = "severe"
	StressCritical StressLevel = "critical"
)

type MoodTrend string

const (
	TrendImproving MoodTrend = "improving"
	TrendStable    MoodTrend = "stable"
	TrendDeclining MoodTrend = "declining"
)
