package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/lmoretti/respite/internal/api"
	"github.com/lmoretti/respite/internal/domain"
)

type breakService struct {
	client *api.Client
	userID string
}

// NewBreakService creates a BreakService.
func NewBreakService(client *api.Client, userID string) BreakService {
	return &breakService{client: client, userID: userID}
}

func (s *breakService) Schedule(ctx context.Context, autoInsert bool) (*domain.BreakSchedule, error) {
	q := url.Values{
		"auto_insert": {strconv.FormatBool(autoInsert)},
		"user_id":     {s.userID},
	}
	var schedule domain.BreakSchedule
	if err := s.client.GetJSON(ctx, "/schedule-breaks", q, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

type startBreakPayload struct {
	BreakID  string `json:"break_id"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	AIReason string `json:"ai_reason"`
}

func (s *breakService) Start(ctx context.Context, breakID string, breakType domain.BreakType, durationMin int, reason string) (*domain.BreakAck, error) {
	if breakID == "" {
		return nil, &ValidationError{Field: "break_id", Reason: "must not be empty"}
	}
	if durationMin <= 0 {
		return nil, &ValidationError{Field: "duration", Reason: "must be positive"}
	}

	body := startBreakPayload{
		BreakID:  breakID,
		Type:     string(breakType),
		Duration: durationMin,
		AIReason: reason,
	}
	var ack domain.BreakAck
	if err := s.client.PostJSON(ctx, "/breaks/start", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

type completeBreakPayload struct {
	BreakID   string `json:"break_id"`
	Completed bool   `json:"completed"`
	Feedback  string `json:"feedback"`
}

func (s *breakService) Complete(ctx context.Context, breakID, feedback string) (*domain.BreakAck, error) {
	if breakID == "" {
		return nil, &ValidationError{Field: "break_id", Reason: "must not be empty"}
	}

	body := completeBreakPayload{BreakID: breakID, Completed: true, Feedback: feedback}
	var ack domain.BreakAck
	if err := s.client.PostJSON(ctx, "/breaks/complete", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

type skipBreakPayload struct {
	BreakID string `json:"break_id"`
	Reason  string `json:"reason"`
}

func (s *breakService) Skip(ctx context.Context, breakID, reason string) (*domain.BreakAck, error) {
	if breakID == "" {
		return nil, &ValidationError{Field: "break_id", Reason: "must not be empty"}
	}
	if reason == "" {
		reason = "user_skip"
	}

	body := skipBreakPayload{BreakID: breakID, Reason: reason}
	var ack domain.BreakAck
	if err := s.client.PostJSON(ctx, "/breaks/skip", body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

func (s *breakService) Current(ctx context.Context) (*domain.CurrentBreak, error) {
	var current domain.CurrentBreak
	if err := s.client.GetJSON(ctx, "/breaks/current", nil, &current); err != nil {
		return nil, err
	}
	return &current, nil
}

func (s *breakService) Content(ctx context.Context, breakType domain.BreakType) (*domain.BreakContent, error) {
	if !domain.ValidBreakTypes[string(breakType)] {
		return nil, &ValidationError{Field: "type", Reason: "unknown break type"}
	}
	q := url.Values{"type": {string(breakType)}}
	var content domain.BreakContent
	if err := s.client.GetJSON(ctx, "/breaks/content", q, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (s *breakService) History(ctx context.Context, days int) (*domain.BreakHistory, error) {
	if days <= 0 {
		days = 7
	}
	q := url.Values{"days": {strconv.Itoa(days)}}
	var history domain.BreakHistory
	if err := s.client.GetJSON(ctx, "/breaks/history", q, &history); err != nil {
		return nil, err
	}
	return &history, nil
}
