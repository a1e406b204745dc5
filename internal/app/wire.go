package app

import (
	"net/http"

	"github.com/rs/zerolog"

	"beeminder-dow/internal/beeminder"
	"beeminder-dow/internal/domain"
	"beeminder-dow/internal/services/holiday"
	"beeminder-dow/internal/store"
)

// Wire bundles the services a run needs.
type Wire struct {
	Holidays domain.PreviewService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config, log zerolog.Logger) (*Wire, error) {
	path, err := store.ExpandHome(cfg.APIKeyFile)
	if err != nil {
		return nil, err
	}
	token, err := store.ReadAPIKey(path, cfg.Passphrase)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("file", path).Str("key", store.Fingerprint(token)).Msg("loaded credentials")

	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	goals := beeminder.NewHTTP(cfg.BaseURL, token, httpClient)
	svc := holiday.New(goals,
		holiday.WithHorizon(cfg.Horizon),
		holiday.WithClock(cfg.Now),
		holiday.WithLogger(log),
	)

	return &Wire{Holidays: svc}, nil
}
