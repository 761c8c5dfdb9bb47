package session

import (
	"encoding/json"
	"errors"
	"fmt"
)

// User is the authenticated-user snapshot. Token is an opaque identity
// token: its provenance (real OAuth or otherwise) is external to this
// client.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Token       string `json:"token"`
	HasCalendar bool   `json:"has_calendar"`
	HasNotion   bool   `json:"has_notion"`
	HasSpotify  bool   `json:"has_spotify"`
}

// Onboarding tracks setup progress across runs.
type Onboarding struct {
	CurrentStep    int      `json:"current_step"`
	CompletedSteps []string `json:"completed_steps"`
	Completed      bool     `json:"completed"`
}

// Preferences holds user-adjustable settings.
type Preferences struct {
	WorkdayStart   string   `json:"workday_start"`
	WorkdayEnd     string   `json:"workday_end"`
	BreakTypes     []string `json:"break_types"`
	BreakReminders bool     `json:"break_reminders"`
	StressAlerts   bool     `json:"stress_alerts"`
}

// Manager reads and writes the session state through a Store. It is passed
// explicitly to whatever needs it; there is no ambient global.
type Manager struct {
	store Store
}

func NewManager(store Store) *Manager {
	return &Manager{store: store}
}

func (m *Manager) User() (*User, error) {
	var u User
	if err := m.load(KeyUser, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (m *Manager) SaveUser(u *User) error {
	return m.save(KeyUser, u)
}

func (m *Manager) ClearUser() error {
	err := m.store.Remove(KeyUser)
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	return err
}

func (m *Manager) Onboarding() (*Onboarding, error) {
	var o Onboarding
	if err := m.load(KeyOnboarding, &o); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &Onboarding{}, nil
		}
		return nil, err
	}
	return &o, nil
}

func (m *Manager) SaveOnboarding(o *Onboarding) error {
	return m.save(KeyOnboarding, o)
}

func (m *Manager) Preferences() (*Preferences, error) {
	var p Preferences
	if err := m.load(KeyPreferences, &p); err != nil {
		if errors.Is(err, ErrNotFound) {
			return defaultPreferences(), nil
		}
		return nil, err
	}
	return &p, nil
}

func (m *Manager) SavePreferences(p *Preferences) error {
	return m.save(KeyPreferences, p)
}

func defaultPreferences() *Preferences {
	return &Preferences{
		WorkdayStart:   "09:00",
		WorkdayEnd:     "17:00",
		BreakReminders: true,
		StressAlerts:   true,
	}
}

func (m *Manager) load(key string, out any) error {
	raw, err := m.store.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decoding %s: %w", key, err)
	}
	return nil
}

func (m *Manager) save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	return m.store.Set(key, string(data))
}
