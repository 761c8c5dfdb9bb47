package service

import (
	"context"

	"github.com/lmoretti/respite/internal/domain"
)

type CheckinService interface {
	SubmitMorning(ctx context.Context, c domain.MorningCheckin) (*domain.CheckinAck, error)
	SubmitAfternoon(ctx context.Context, c domain.AfternoonCheckin) (*domain.CheckinAck, error)
	SubmitEvening(ctx context.Context, c domain.EveningCheckin) (*domain.CheckinAck, error)
	Status(ctx context.Context) (*domain.CheckinStatus, error)
	History(ctx context.Context, days int) (*domain.CheckinHistory, error)
	Analytics(ctx context.Context, days int) (*domain.CheckinAnalytics, error)
}

type BreakService interface {
	Schedule(ctx context.Context, autoInsert bool) (*domain.BreakSchedule, error)
	Start(ctx context.Context, breakID string, breakType domain.BreakType, durationMin int, reason string) (*domain.BreakAck, error)
	Complete(ctx context.Context, breakID, feedback string) (*domain.BreakAck, error)
	Skip(ctx context.Context, breakID, reason string) (*domain.BreakAck, error)
	Current(ctx context.Context) (*domain.CurrentBreak, error)
	Content(ctx context.Context, breakType domain.BreakType) (*domain.BreakContent, error)
	History(ctx context.Context, days int) (*domain.BreakHistory, error)
}

type WellnessService interface {
	Analyze(ctx context.Context) (*domain.StressAnalysis, error)
}

type TaskService interface {
	List(ctx context.Context) (*domain.TaskList, error)
}

type CalendarService interface {
	Events(ctx context.Context, days int) (*domain.CalendarEvents, error)
}

type MusicService interface {
	Status(ctx context.Context) (*domain.MusicAuthStatus, error)
	LoginURL(ctx context.Context) (string, error)
	Therapy(ctx context.Context, mood string) (*domain.MusicTherapy, error)
	CreatePlaylist(ctx context.Context, mood string) (*domain.PlaylistResult, error)
}

type VideoService interface {
	Therapy(ctx context.Context, mood string, useAI bool) (*domain.VideoTherapy, error)
}
