package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	data map[string]string
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]string)}
}

func (m *memStore) Get(key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *memStore) Set(key, value string) error {
	m.data[key] = value
	return nil
}

func (m *memStore) Remove(key string) error {
	if _, ok := m.data[key]; !ok {
		return ErrNotFound
	}
	delete(m.data, key)
	return nil
}

func TestManager_UserRoundTrip(t *testing.T) {
	m := NewManager(newMemStore())

	user := &User{
		ID:         "u1",
		Email:      "lia@example.com",
		Name:       "Lia",
		Token:      "opaque-token",
		HasSpotify: true,
	}
	require.NoError(t, m.SaveUser(user))

	fetched, err := m.User()
	require.NoError(t, err)
	assert.Equal(t, user, fetched)
}

func TestManager_UserNotFound(t *testing.T) {
	m := NewManager(newMemStore())

	_, err := m.User()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_ClearUserIsIdempotent(t *testing.T) {
	m := NewManager(newMemStore())

	require.NoError(t, m.SaveUser(&User{ID: "u1"}))
	require.NoError(t, m.ClearUser())
	// Clearing an already-clear session is not an error.
	require.NoError(t, m.ClearUser())

	_, err := m.User()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_OnboardingDefaultsToZero(t *testing.T) {
	m := NewManager(newMemStore())

	o, err := m.Onboarding()
	require.NoError(t, err)
	assert.Equal(t, 0, o.CurrentStep)
	assert.False(t, o.Completed)
	assert.Empty(t, o.CompletedSteps)
}

func TestManager_OnboardingRoundTrip(t *testing.T) {
	m := NewManager(newMemStore())

	saved := &Onboarding{CurrentStep: 2, CompletedSteps: []string{"welcome", "connect"}}
	require.NoError(t, m.SaveOnboarding(saved))

	o, err := m.Onboarding()
	require.NoError(t, err)
	assert.Equal(t, saved, o)
}

func TestManager_PreferencesDefaults(t *testing.T) {
	m := NewManager(newMemStore())

	p, err := m.Preferences()
	require.NoError(t, err)
	assert.Equal(t, "09:00", p.WorkdayStart)
	assert.Equal(t, "17:00", p.WorkdayEnd)
	assert.True(t, p.BreakReminders)
	assert.True(t, p.StressAlerts)
}

func TestManager_PreferencesRoundTrip(t *testing.T) {
	m := NewManager(newMemStore())

	p := &Preferences{
		WorkdayStart:   "08:00",
		WorkdayEnd:     "16:00",
		BreakTypes:     []string{"walk", "breathing"},
		BreakReminders: false,
		StressAlerts:   true,
	}
	require.NoError(t, m.SavePreferences(p))

	fetched, err := m.Preferences()
	require.NoError(t, err)
	assert.Equal(t, p, fetched)
}

func TestManager_CorruptValueSurfacesError(t *testing.T) {
	store := newMemStore()
	store.data[KeyUser] = "{not json"
	m := NewManager(store)

	_, err := m.User()
	assert.Error(t, err)
}
