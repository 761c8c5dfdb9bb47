package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMusicService_Therapy_NeedsAuthIsNotAnError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/music-therapy", r.URL.Path)
		w.Write([]byte(`{"success":false,"needs_auth":true,"error":"Spotify authentication required","tracks":[]}`))
	})

	svc := NewMusicService(client)
	therapy, err := svc.Therapy(context.Background(), "")
	require.NoError(t, err)
	assert.True(t, therapy.NeedsAuth)
	assert.Empty(t, therapy.Tracks)
}

func TestMusicService_Therapy_PassesMood(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "calm", r.URL.Query().Get("mood"))
		w.Write([]byte(`{"success":true,"tracks":[{"name":"Weightless","artist":"Marconi Union"}],"total_tracks":1}`))
	})

	svc := NewMusicService(client)
	therapy, err := svc.Therapy(context.Background(), "calm")
	require.NoError(t, err)
	require.Len(t, therapy.Tracks, 1)
	assert.Equal(t, "Weightless", therapy.Tracks[0].Name)
}

func TestMusicService_Status(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spotify-status", r.URL.Path)
		w.Write([]byte(`{"success":true,"authenticated":true,"user":{"name":"Lia","email":"lia@example.com"}}`))
	})

	svc := NewMusicService(client)
	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Authenticated)
	require.NotNil(t, status.User)
	assert.Equal(t, "Lia", status.User.Name)
}

func TestMusicService_LoginURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/spotify-login", r.URL.Path)
		w.Write([]byte(`{"success":true,"auth_url":"https://accounts.spotify.com/authorize?x=1"}`))
	})

	svc := NewMusicService(client)
	url, err := svc.LoginURL(context.Background())
	require.NoError(t, err)
	assert.Contains(t, url, "accounts.spotify.com")
}

func TestVideoService_Therapy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/video-therapy", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("use_ai"))
		w.Write([]byte(`{
			"success": true,
			"stress_assessment": {"level": "moderate", "score": 5},
			"therapeutic_videos": [{"video_id": "abc", "title": "10 min yoga", "channel": "Yoga With Adriene"}],
			"total_videos": 1
		}`))
	})

	svc := NewVideoService(client)
	therapy, err := svc.Therapy(context.Background(), "", true)
	require.NoError(t, err)
	require.Len(t, therapy.TherapeuticVideos, 1)
	assert.Equal(t, "10 min yoga", therapy.TherapeuticVideos[0].Title)
}
