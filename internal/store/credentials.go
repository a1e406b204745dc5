package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrPassphraseRequired is returned when the credentials file is sealed
	// and no passphrase was given.
	ErrPassphraseRequired = errors.New("credentials file is sealed; passphrase required (-p)")

	// ErrEmptyAPIKey is returned when the credentials file holds no token.
	ErrEmptyAPIKey = errors.New("credentials file is empty")

	// ErrAlreadySealed is returned by SealAPIKey for an already sealed file.
	ErrAlreadySealed = errors.New("credentials file is already sealed")
)

// ReadAPIKey reads the auth token stored at path.
//
// passphrase is only consulted when the file is sealed.
func ReadAPIKey(path, passphrase string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read credentials: %w", err)
	}
	defer wipe(b)

	if isSealed(b) {
		if passphrase == "" {
			return "", ErrPassphraseRequired
		}
		pt, err := open(passphrase, bytes.TrimSpace(b))
		if err != nil {
			return "", fmt.Errorf("open %s: %w", path, err)
		}
		defer wipe(pt)
		b = pt
	}

	key := strings.TrimSpace(string(b))
	if key == "" {
		return "", ErrEmptyAPIKey
	}
	return key, nil
}

// SealAPIKey encrypts the plain-text token at path with passphrase and
// replaces the file atomically.
func SealAPIKey(path, passphrase string) error {
	if passphrase == "" {
		return ErrPassphraseRequired
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read credentials: %w", err)
	}
	defer wipe(b)
	if isSealed(b) {
		return ErrAlreadySealed
	}

	raw := bytes.TrimSpace(b)
	if len(raw) == 0 {
		return ErrEmptyAPIKey
	}
	N, r, p := scryptParamsDefault()
	blob, err := seal(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFile(path, blob, 0o600)
}

// Fingerprint returns a short hex fingerprint of a token for display/logging.
//
// It hashes with SHA-256 and truncates to 4 bytes (8 hex chars).
func Fingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:4])
}
