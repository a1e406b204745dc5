package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beeminder-dow/internal/domain"
	"beeminder-dow/internal/store"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAPIKeyFile, EnvBaseURL, EnvPassphrase, EnvHorizon, EnvVerbose} {
		t.Setenv(k, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "~/.beem_api_key", cfg.APIKeyFile)
	assert.Equal(t, "https://www.beeminder.com/api/v1", cfg.BaseURL)
	assert.Equal(t, 30, cfg.Horizon)
	assert.False(t, cfg.Verbose)
}

func TestLoadConfigReadsEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKeyFile, "/tmp/key")
	t.Setenv(EnvBaseURL, "http://localhost:3000/api/v1")
	t.Setenv(EnvPassphrase, "hunter2")
	t.Setenv(EnvHorizon, "14")
	t.Setenv(EnvVerbose, "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/key", cfg.APIKeyFile)
	assert.Equal(t, "http://localhost:3000/api/v1", cfg.BaseURL)
	assert.Equal(t, "hunter2", cfg.Passphrase)
	assert.Equal(t, 14, cfg.Horizon)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigRejectsBadHorizon(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvHorizon, "0")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv(EnvHorizon, "soon")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestNewWire(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("auth_token") != "tok" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/users/me.json":
			_, _ = w.Write([]byte(`{"username":"alice"}`))
		default:
			_, _ = w.Write([]byte(`{"slug":"reading","roadall":[]}`))
		}
	}))
	defer srv.Close()

	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("tok\n"), 0o600))

	cfg := DefaultConfig()
	cfg.APIKeyFile = keyFile
	cfg.BaseURL = srv.URL
	cfg.HTTP = srv.Client()
	cfg.Horizon = 9
	cfg.Now = func() time.Time { return time.Date(2026, 10, 14, 0, 0, 0, 0, time.UTC) }

	w, err := NewWire(cfg, zerolog.Nop())
	require.NoError(t, err)

	p, err := w.Holidays.Preview(context.Background(), "reading",
		domain.DowPattern{true, true, true, true, true, false, false})
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
	assert.Equal(t, []int{5, 2, 2}, p.Fragment.Runs)
}

func TestNewWireSealedKey(t *testing.T) {
	keyFile := filepath.Join(t.TempDir(), "key")
	require.NoError(t, os.WriteFile(keyFile, []byte("tok"), 0o600))
	require.NoError(t, store.SealAPIKey(keyFile, "hunter2"))

	cfg := DefaultConfig()
	cfg.APIKeyFile = keyFile

	_, err := NewWire(cfg, zerolog.Nop())
	assert.ErrorIs(t, err, store.ErrPassphraseRequired)

	cfg.Passphrase = "hunter2"
	_, err = NewWire(cfg, zerolog.Nop())
	assert.NoError(t, err)
}
