package domain

// MusicTherapy is the response of GET /music-therapy. NeedsAuth is a
// first-class outcome: the backend answers 200 with needs_auth=true when
// Spotify is not connected, which is not a transport failure.
type MusicTherapy struct {
	Success                bool        `json:"success"`
	Tracks                 []Track     `json:"tracks"`
	TotalTracks            int         `json:"total_tracks"`
	TherapeuticGoal        string      `json:"therapeutic_goal,omitempty"`
	TherapeuticExplanation string      `json:"therapeutic_explanation,omitempty"`
	StressLevel            StressLevel `json:"stress_level,omitempty"`
	StressScore            int         `json:"stress_score,omitempty"`
	NeedsAuth              bool        `json:"needs_auth,omitempty"`
	Error                  string      `json:"error,omitempty"`
}

type Track struct {
	Name          string `json:"name"`
	Artist        string `json:"artist"`
	URL           string `json:"url"`
	Album         string `json:"album"`
	AlbumImage    string `json:"album_image,omitempty"`
	Popularity    int    `json:"popularity"`
	AIReason      string `json:"ai_reason,omitempty"`
	RecommendedBy string `json:"recommended_by,omitempty"`
}

// MusicAuthStatus is the response of GET /spotify-status.
type MusicAuthStatus struct {
	Success       bool       `json:"success"`
	Authenticated bool       `json:"authenticated"`
	User          *MusicUser `json:"user,omitempty"`
	Message       string     `json:"message,omitempty"`
}

type MusicUser struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	ID      string `json:"id"`
	Country string `json:"country"`
}

// Playlist is the created playlist echoed by POST /create-playlist.
type Playlist struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	ID     string `json:"id"`
	Tracks int    `json:"tracks"`
}

type PlaylistResult struct {
	Success   bool     `json:"success"`
	Message   string   `json:"message,omitempty"`
	Playlist  Playlist `json:"playlist"`
	NeedsAuth bool     `json:"needs_auth,omitempty"`
	Error     string   `json:"error,omitempty"`
}

// VideoTherapy is the response of GET /video-therapy.
type VideoTherapy struct {
	Success           bool               `json:"success"`
	StressAssessment  VideoStressContext `json:"stress_assessment"`
	VideoIntelligence *VideoIntelligence `json:"ai_video_intelligence,omitempty"`
	TherapeuticVideos []Video            `json:"therapeutic_videos"`
	TotalVideos       int                `json:"total_videos"`
	NeedsAuth         bool               `json:"needs_auth,omitempty"`
	Error             string             `json:"error,omitempty"`
}

type VideoStressContext struct {
	Level          StressLevel `json:"level"`
	Score          int         `json:"score"`
	MoodState      string      `json:"mood_state"`
	EnergyForecast string      `json:"energy_forecast"`
	BurnoutRisk    string      `json:"burnout_risk"`
}

type VideoIntelligence struct {
	PrimaryVideoCategory    string   `json:"primary_video_category"`
	TherapeuticGoal         string   `json:"therapeutic_goal"`
	VideoDurationPreference string   `json:"video_duration_preference"`
	ViewingContext          string   `json:"viewing_context"`
	TherapeuticExplanation  string   `json:"therapeutic_explanation"`
	AvoidContent            []string `json:"avoid_content"`
}

type Video struct {
	VideoID     string `json:"video_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	URL         string `json:"url"`
	Channel     string `json:"channel"`
	PublishedAt string `json:"published_at"`
	QueryUsed   string `json:"query_used"`
}
