package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds all client configuration. Values come from RESPITE_*
// environment variables, falling back to defaults.
type Config struct {
	BaseURL string
	// TimeoutMs is the request timeout for every backend call.
	TimeoutMs int
	UserID    string
	// DataDir holds the local journal database and log files.
	DataDir string
	// UTCOffsetMin adjusts the check-in cadence clock. The default matches
	// the backend's deployment locale (UTC+5:30); it is a locale assumption,
	// not device-local time.
	UTCOffsetMin int
	Debug        bool
}

// DefaultConfig returns a Config with sensible defaults. DataDir is empty
// until resolved by Load.
func DefaultConfig() Config {
	return Config{
		BaseURL:      "http://localhost:5000",
		TimeoutMs:    10000,
		UserID:       "default_user",
		UTCOffsetMin: 330,
	}
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("RESPITE_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("RESPITE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("RESPITE_USER_ID"); v != "" {
		cfg.UserID = v
	}
	if v := os.Getenv("RESPITE_UTC_OFFSET_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > -24*60 && n < 24*60 {
			cfg.UTCOffsetMin = n
		}
	}
	if v := os.Getenv("RESPITE_DEBUG"); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	cfg.DataDir = os.Getenv("RESPITE_DATA_DIR")
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DataDir = filepath.Join(home, ".respite")
	}

	return cfg, nil
}
