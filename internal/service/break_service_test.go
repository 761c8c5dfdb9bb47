package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/lmoretti/respite/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakService_Schedule(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/schedule-breaks", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("auto_insert"))
		assert.Equal(t, "u1", r.URL.Query().Get("user_id"))
		w.Write([]byte(`{
			"success": true,
			"stress_assessment": {"level": "high", "score": 7},
			"break_schedule": {
				"recommended_breaks": [
					{"time_slot": "10:30", "break_type": "breathing", "duration_minutes": 5, "reasoning": "dense morning"},
					{"time_slot": "13:00", "break_type": "walk", "duration_minutes": 10, "reasoning": "midday reset"}
				],
				"daily_strategy": "frequent short breaks"
			},
			"auto_inserted": true,
			"inserted_breaks": [{"success": true, "event_id": "ev1"}]
		}`))
	})

	svc := NewBreakService(client, "u1")
	schedule, err := svc.Schedule(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, domain.StressHigh, schedule.StressAssessment.Level)
	require.Len(t, schedule.BreakPlan.RecommendedBreaks, 2)
	assert.Equal(t, "breathing-10:30-0", domain.BreakID(schedule.BreakPlan.RecommendedBreaks[0], 0))
	assert.Equal(t, "walk-13:00-1", domain.BreakID(schedule.BreakPlan.RecommendedBreaks[1], 1))
	assert.True(t, schedule.AutoInserted)
}

func TestBreakService_Start_PayloadShape(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/breaks/start", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"success":true,"status":"started","break_id":"breathing-10:30-0"}`))
	})

	svc := NewBreakService(client, "u1")
	ack, err := svc.Start(context.Background(), "breathing-10:30-0", domain.BreakBreathing, 5, "dense morning")
	require.NoError(t, err)
	assert.Equal(t, "started", ack.Status)

	assert.Equal(t, "breathing-10:30-0", received["break_id"])
	assert.Equal(t, "breathing", received["type"])
	assert.Equal(t, float64(5), received["duration"])
	assert.Equal(t, "dense morning", received["ai_reason"])
}

func TestBreakService_Start_Validation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("invalid start must not reach the backend")
	})

	svc := NewBreakService(client, "u1")

	_, err := svc.Start(context.Background(), "", domain.BreakWalk, 5, "")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "break_id", verr.Field)

	_, err = svc.Start(context.Background(), "walk-13:00-1", domain.BreakWalk, 0, "")
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "duration", verr.Field)
}

func TestBreakService_Complete_MarksCompleted(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/breaks/complete", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"success":true,"status":"completed","reward":"Nice work"}`))
	})

	svc := NewBreakService(client, "u1")
	ack, err := svc.Complete(context.Background(), "walk-13:00-1", "refreshing")
	require.NoError(t, err)
	assert.Equal(t, "Nice work", ack.Reward)

	assert.Equal(t, true, received["completed"])
	assert.Equal(t, "refreshing", received["feedback"])
}

func TestBreakService_Skip_DefaultsReason(t *testing.T) {
	var received map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"success":true,"status":"skipped"}`))
	})

	svc := NewBreakService(client, "u1")
	_, err := svc.Skip(context.Background(), "walk-13:00-1", "")
	require.NoError(t, err)
	assert.Equal(t, "user_skip", received["reason"])
}

func TestBreakService_Content_RejectsUnknownType(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("unknown type must not reach the backend")
	})

	svc := NewBreakService(client, "u1")
	_, err := svc.Content(context.Background(), domain.BreakType("nap"))
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestBreakService_Content(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "breathing", r.URL.Query().Get("type"))
		w.Write([]byte(`{
			"type": "breathing",
			"title": "Box Breathing",
			"steps": [
				{"text": "Inhale for 4", "seconds": 4},
				{"text": "Hold for 4", "seconds": 4}
			],
			"total_duration": 300
		}`))
	})

	svc := NewBreakService(client, "u1")
	content, err := svc.Content(context.Background(), domain.BreakBreathing)
	require.NoError(t, err)
	assert.Equal(t, "Box Breathing", content.Title)
	require.Len(t, content.Steps, 2)
	assert.Equal(t, 4, content.Steps[0].Seconds)
}

func TestBreakService_Current_Inactive(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"active":false}`))
	})

	svc := NewBreakService(client, "u1")
	cur, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.False(t, cur.Active)
}
