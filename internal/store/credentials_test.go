package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"beeminder-dow/internal/store"
)

func writeKey(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".beem_api_key")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestReadAPIKey_PlainTextIsTrimmed(t *testing.T) {
	path := writeKey(t, "  abc123xyz \n\n")

	key, err := store.ReadAPIKey(path, "")
	require.NoError(t, err)
	assert.Equal(t, "abc123xyz", key)
}

func TestReadAPIKey_PassphraseIgnoredForPlainText(t *testing.T) {
	path := writeKey(t, "abc123xyz\n")

	key, err := store.ReadAPIKey(path, "unused")
	require.NoError(t, err)
	assert.Equal(t, "abc123xyz", key)
}

func TestReadAPIKey_Missing(t *testing.T) {
	_, err := store.ReadAPIKey(filepath.Join(t.TempDir(), "nope"), "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAPIKey_Empty(t *testing.T) {
	path := writeKey(t, " \n")

	_, err := store.ReadAPIKey(path, "")
	assert.ErrorIs(t, err, store.ErrEmptyAPIKey)
}

func TestSealAPIKey_RoundTrip(t *testing.T) {
	path := writeKey(t, "abc123xyz\n")

	require.NoError(t, store.SealAPIKey(path, "hunter2"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "abc123xyz")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	key, err := store.ReadAPIKey(path, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "abc123xyz", key)
}

func TestReadAPIKey_SealedNeedsPassphrase(t *testing.T) {
	path := writeKey(t, "abc123xyz")
	require.NoError(t, store.SealAPIKey(path, "hunter2"))

	_, err := store.ReadAPIKey(path, "")
	assert.ErrorIs(t, err, store.ErrPassphraseRequired)

	_, err = store.ReadAPIKey(path, "wrong")
	assert.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestSealAPIKey_Refusals(t *testing.T) {
	t.Run("already sealed", func(t *testing.T) {
		path := writeKey(t, "abc123xyz")
		require.NoError(t, store.SealAPIKey(path, "hunter2"))
		assert.ErrorIs(t, store.SealAPIKey(path, "hunter2"), store.ErrAlreadySealed)
	})

	t.Run("no passphrase", func(t *testing.T) {
		path := writeKey(t, "abc123xyz")
		assert.ErrorIs(t, store.SealAPIKey(path, ""), store.ErrPassphraseRequired)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeKey(t, "\n")
		assert.ErrorIs(t, store.SealAPIKey(path, "hunter2"), store.ErrEmptyAPIKey)
	})
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := store.ExpandHome("~/.beem_api_key")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".beem_api_key"), got)

	got, err = store.ExpandHome("~")
	require.NoError(t, err)
	assert.Equal(t, home, got)

	got, err = store.ExpandHome("/etc/key")
	require.NoError(t, err)
	assert.Equal(t, "/etc/key", got)
}

func TestFingerprint(t *testing.T) {
	fp := store.Fingerprint("abc123xyz")
	assert.Len(t, fp, 8)
	assert.Equal(t, fp, store.Fingerprint("abc123xyz"))
	assert.NotEqual(t, fp, store.Fingerprint("abc123xyZ"))
}

func TestSealAPIKey_LeavesOnlyTheKeyFile(t *testing.T) {
	path := writeKey(t, "abc123xyz")
	require.NoError(t, store.SealAPIKey(path, "hunter2"))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Base(path), entries[0].Name())
}
