package service

import (
	"context"
	"net/url"
	"strconv"

	"github.com/lmoretti/respite/internal/api"
	"github.com/lmoretti/respite/internal/domain"
)

type wellnessService struct {
	client *api.Client
}

// NewWellnessService creates a WellnessService.
func NewWellnessService(client *api.Client) WellnessService {
	return &wellnessService{client: client}
}

func (s *wellnessService) Analyze(ctx context.Context) (*domain.StressAnalysis, error) {
	var analysis domain.StressAnalysis
	if err := s.client.GetJSON(ctx, "/analyze", nil, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

type taskService struct {
	client *api.Client
}

// NewTaskService creates a TaskService.
func NewTaskService(client *api.Client) TaskService {
	return &taskService{client: client}
}

func (s *taskService) List(ctx context.Context) (*domain.TaskList, error) {
	var tasks domain.TaskList
	if err := s.client.GetJSON(ctx, "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return &tasks, nil
}

type calendarService struct {
	client *api.Client
}

// NewCalendarService creates a CalendarService.
func NewCalendarService(client *api.Client) CalendarService {
	return &calendarService{client: client}
}

func (s *calendarService) Events(ctx context.Context, days int) (*domain.CalendarEvents, error) {
	if days <= 0 {
		days = 7
	}
	q := url.Values{"days": {strconv.Itoa(days)}}
	var events domain.CalendarEvents
	if err := s.client.GetJSON(ctx, "/calendar", q, &events); err != nil {
		return nil, err
	}
	return &events, nil
}
