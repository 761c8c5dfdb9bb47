package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

const keyringService = "respite"

// Fixed storage keys. One JSON-serialized value lives under each.
const (
	KeyUser        = "authUser"
	KeyOnboarding  = "onboardingState"
	KeyPreferences = "userPreferences"
)

var (
	// ErrNotFound is returned when no value is stored under a key.
	ErrNotFound = errors.New("not found in secure store")
	// ErrStoreUnavailable is returned when the OS keyring cannot be used.
	ErrStoreUnavailable = errors.New("secure store unavailable")
)

// Store is the secure key-value collaborator holding the session snapshot,
// onboarding progress and preferences.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// KeyringStore implements Store on the OS keyring.
type KeyringStore struct{}

func NewKeyringStore() KeyringStore { return KeyringStore{} }

func (KeyringStore) Get(key string) (string, error) {
	v, err := keyring.Get(keyringService, key)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return v, nil
}

func (KeyringStore) Set(key, value string) error {
	if err := keyring.Set(keyringService, key, value); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

func (KeyringStore) Remove(key string) error {
	if err := keyring.Delete(keyringService, key); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}
