package app

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"beeminder-dow/internal/beeminder"
	"beeminder-dow/internal/schedule"
)

// Environment variables read by LoadConfig.
const (
	EnvAPIKeyFile = "BEEMINDER_API_KEY_FILE"
	EnvBaseURL    = "BEEMINDER_BASE_URL"
	EnvPassphrase = "BEEMINDER_DOW_PASSPHRASE"
	EnvHorizon    = "BEEMINDER_DOW_HORIZON"
	EnvVerbose    = "BEEMINDER_DOW_VERBOSE"
)

// DefaultAPIKeyFile is where the auth token lives unless told otherwise.
const DefaultAPIKeyFile = "~/.beem_api_key"

// Config holds runtime wiring options for building the app.
type Config struct {
	APIKeyFile string       // path to the credentials file, "~" allowed
	BaseURL    string       // Beeminder API root, e.g. https://www.beeminder.com/api/v1
	Passphrase string       // only needed for a sealed credentials file
	Horizon    int          // days to preview
	Verbose    bool         // debug logging
	HTTP       *http.Client // optional; defaults to http.DefaultClient
	Now        func() time.Time
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		APIKeyFile: DefaultAPIKeyFile,
		BaseURL:    beeminder.DefaultBaseURL,
		Horizon:    schedule.DefaultHorizon,
	}
}

// LoadConfig returns DefaultConfig overridden by the environment.
// A missing .env file is not an error.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()
	if v := os.Getenv(EnvAPIKeyFile); v != "" {
		cfg.APIKeyFile = v
	}
	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	cfg.Passphrase = os.Getenv(EnvPassphrase)
	if v := os.Getenv(EnvHorizon); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("%s: want a positive integer, got %q", EnvHorizon, v)
		}
		cfg.Horizon = n
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvVerbose, err)
		}
		cfg.Verbose = b
	}
	return cfg, nil
}
