package service

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/lmoretti/respite/internal/api"
	"github.com/lmoretti/respite/internal/domain"
)

type musicService struct {
	client *api.Client
}

// NewMusicService creates a MusicService. Needs-auth responses are returned
// as results, not errors: the caller decides whether to open the login flow.
func NewMusicService(client *api.Client) MusicService {
	return &musicService{client: client}
}

func (s *musicService) Status(ctx context.Context) (*domain.MusicAuthStatus, error) {
	var status domain.MusicAuthStatus
	if err := s.client.GetJSON(ctx, "/spotify-status", nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (s *musicService) LoginURL(ctx context.Context) (string, error) {
	var resp struct {
		Success bool   `json:"success"`
		AuthURL string `json:"auth_url"`
		Error   string `json:"error,omitempty"`
	}
	if err := s.client.GetJSON(ctx, "/spotify-login", nil, &resp); err != nil {
		return "", err
	}
	if !resp.Success || resp.AuthURL == "" {
		return "", fmt.Errorf("no login URL available: %s", resp.Error)
	}
	return resp.AuthURL, nil
}

func (s *musicService) Therapy(ctx context.Context, mood string) (*domain.MusicTherapy, error) {
	q := url.Values{}
	if mood = strings.TrimSpace(mood); mood != "" {
		q.Set("mood", mood)
	}
	var therapy domain.MusicTherapy
	if err := s.client.GetJSON(ctx, "/music-therapy", q, &therapy); err != nil {
		return nil, err
	}
	return &therapy, nil
}

func (s *musicService) CreatePlaylist(ctx context.Context, mood string) (*domain.PlaylistResult, error) {
	body := map[string]string{}
	if mood = strings.TrimSpace(mood); mood != "" {
		body["mood"] = mood
	}
	var result domain.PlaylistResult
	if err := s.client.PostJSON(ctx, "/create-playlist", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

type videoService struct {
	client *api.Client
}

// NewVideoService creates a VideoService.
func NewVideoService(client *api.Client) VideoService {
	return &videoService{client: client}
}

func (s *videoService) Therapy(ctx context.Context, mood string, useAI bool) (*domain.VideoTherapy, error) {
	q := url.Values{"use_ai": {strconv.FormatBool(useAI)}}
	if mood = strings.TrimSpace(mood); mood != "" {
		q.Set("mood", mood)
	}
	var therapy domain.VideoTherapy
	if err := s.client.GetJSON(ctx, "/video-therapy", q, &therapy); err != nil {
		return nil, err
	}
	return &therapy, nil
}
