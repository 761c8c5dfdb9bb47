package service

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/lmoretti/respite/internal/api"
	"github.com/lmoretti/respite/internal/domain"
	"github.com/lmoretti/respite/internal/repository"
)

type checkinService struct {
	client  *api.Client
	userID  string
	journal repository.JournalRepo
	log     *log.Logger
}

// NewCheckinService creates a CheckinService. journal may be nil to disable
// local journaling; logger may be nil.
func NewCheckinService(client *api.Client, userID string, journal repository.JournalRepo, logger *log.Logger) CheckinService {
	return &checkinService{client: client, userID: userID, journal: journal, log: logger}
}

// morningPayload wires user_id onto the submitted record without touching
// the record itself.
type morningPayload struct {
	domain.MorningCheckin
	UserID string `json:"user_id"`
}

type afternoonPayload struct {
	domain.AfternoonCheckin
	UserID string `json:"user_id"`
}

type eveningPayload struct {
	domain.EveningCheckin
	UserID string `json:"user_id"`
}

func (s *checkinService) SubmitMorning(ctx context.Context, c domain.MorningCheckin) (*domain.CheckinAck, error) {
	if err := validateScales(map[string]int{
		"mood": c.Mood, "energy": c.Energy, "stress": c.Stress, "sleep_quality": c.SleepQuality,
	}); err != nil {
		return nil, err
	}

	var ack domain.CheckinAck
	if err := s.client.PostJSON(ctx, "/checkin/morning", morningPayload{MorningCheckin: c, UserID: s.userID}, &ack); err != nil {
		return nil, err
	}

	s.record(ctx, domain.CheckinMorning, c.Mood, c.Energy, c.Stress, c.Notes)
	return &ack, nil
}

func (s *checkinService) SubmitAfternoon(ctx context.Context, c domain.AfternoonCheckin) (*domain.CheckinAck, error) {
	if err := validateScales(map[string]int{
		"mood": c.Mood, "energy": c.Energy, "stress": c.Stress, "focus": c.Focus,
	}); err != nil {
		return nil, err
	}

	var ack domain.CheckinAck
	if err := s.client.PostJSON(ctx, "/checkin/afternoon", afternoonPayload{AfternoonCheckin: c, UserID: s.userID}, &ack); err != nil {
		return nil, err
	}

	s.record(ctx, domain.CheckinAfternoon, c.Mood, c.Energy, c.Stress, c.Notes)
	return &ack, nil
}

func (s *checkinService) SubmitEvening(ctx context.Context, c domain.EveningCheckin) (*domain.CheckinAck, error) {
	if err := validateScales(map[string]int{
		"mood": c.Mood, "energy": c.Energy, "stress": c.Stress, "productivity": c.Productivity,
	}); err != nil {
		return nil, err
	}

	var ack domain.CheckinAck
	if err := s.client.PostJSON(ctx, "/checkin/evening", eveningPayload{EveningCheckin: c, UserID: s.userID}, &ack); err != nil {
		return nil, err
	}

	s.record(ctx, domain.CheckinEvening, c.Mood, c.Energy, c.Stress, c.Notes)
	return &ack, nil
}

func (s *checkinService) Status(ctx context.Context) (*domain.CheckinStatus, error) {
	q := url.Values{"user_id": {s.userID}}
	var status domain.CheckinStatus
	if err := s.client.GetJSON(ctx, "/checkin/status", q, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *checkinService) History(ctx context.Context, days int) (*domain.CheckinHistory, error) {
	if days <= 0 {
		days = 7
	}
	q := url.Values{"user_id": {s.userID}, "days": {strconv.Itoa(days)}}
	var history domain.CheckinHistory
	if err := s.client.GetJSON(ctx, "/checkin/history", q, &history); err != nil {
		return nil, err
	}
	return &history, nil
}

func (s *checkinService) Analytics(ctx context.Context, days int) (*domain.CheckinAnalytics, error) {
	if days <= 0 {
		days = 30
	}
	q := url.Values{"user_id": {s.userID}, "days": {strconv.Itoa(days)}}
	var analytics domain.CheckinAnalytics
	if err := s.client.GetJSON(ctx, "/checkin/analytics", q, &analytics); err != nil {
		return nil, err
	}
	return &analytics, nil
}

// record writes a best-effort journal entry. Journal failures never fail
// the submission: the backend already owns the record.
func (s *checkinService) record(ctx context.Context, kind domain.CheckinType, mood, energy, stress int, note string) {
	if s.journal == nil {
		return
	}
	entry := &domain.JournalEntry{
		ID:          uuid.New().String(),
		Kind:        domain.JournalCheckin,
		CheckinType: kind,
		Mood:        mood,
		Energy:      energy,
		Stress:      stress,
		Note:        note,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.journal.Create(ctx, entry); err != nil && s.log != nil {
		s.log.Warn("journal write failed", "kind", kind, "error", err)
	}
}

func validateScales(fields map[string]int) error {
	for name, v := range fields {
		if !domain.InScale(v) {
			return scaleError(name)
		}
	}
	return nil
}
