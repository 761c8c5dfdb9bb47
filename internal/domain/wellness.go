package domain

// StressAnalysis is the response of GET /analyze: the backend's stress
// intelligence snapshot. The client treats the scoring as opaque.
type StressAnalysis struct {
	Success            bool               `json:"success"`
	Timestamp          string             `json:"timestamp"`
	StressIntelligence StressIntelligence `json:"stress_intelligence"`
	DataSources        DataSources        `json:"data_sources"`
}

type StressIntelligence struct {
	StressLevel             StressLevel              `json:"stress_level"`
	StressScore             int                      `json:"stress_score"`
	BurnoutRisk             string                   `json:"burnout_risk"`
	MoodState               string                   `json:"mood_state"`
	EnergyForecast          string                   `json:"energy_forecast"`
	KeyPatterns             []string                 `json:"key_patterns"`
	WellnessRecommendations []WellnessRecommendation `json:"wellness_recommendations"`
	RecommendedMusicGenres  []string                 `json:"recommended_music_genres"`
	DetailedAssessment      string                   `json:"detailed_assessment"`
}

type WellnessRecommendation struct {
	Action    string `json:"action"`
	Priority  string `json:"priority"`
	Reasoning string `json:"reasoning"`
}

// DataSources reports how many upstream records informed the analysis.
type DataSources struct {
	CalendarEvents int `json:"calendar_events"`
	TasksTotal     int `json:"notion_tasks_total"`
	TasksRelevant  int `json:"notion_tasks_relevant"`
}

// Task is one entry from GET /tasks. The upstream task source leaves most
// fields nullable.
type Task struct {
	Name     *string `json:"name"`
	DueDate  *string `json:"due_date"`
	Priority *string `json:"priority"`
	Status   *string `json:"status"`
	Type     *string `json:"type"`
}

// TaskList is the response of GET /tasks.
type TaskList struct {
	Success bool   `json:"success"`
	Total   int    `json:"total"`
	Tasks   []Task `json:"tasks"`
}

// CalendarEvent is one entry from GET /calendar.
type CalendarEvent struct {
	Summary  string `json:"summary"`
	Start    string `json:"start"`
	End      string `json:"end"`
	Location string `json:"location,omitempty"`
}

// CalendarEvents is the response of GET /calendar.
type CalendarEvents struct {
	Success bool            `json:"success"`
	Total   int             `json:"total"`
	Events  []CalendarEvent `json:"events"`
}
