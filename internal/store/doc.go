// Package store reads the Beeminder credentials file.
//
// The file holds a single auth token, either as plain text (surrounding
// whitespace is trimmed) or sealed in a passphrase-protected JSON envelope.
// Sealed files are encrypted with ChaCha20-Poly1305 under a key derived by
// scrypt; SealAPIKey converts a plain file in place.
//
// The file is read once per run and nothing is ever cached.
package store
