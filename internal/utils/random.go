package utils

import (
	"crypto/rand"
	"fmt"
)

// urlSafeAlphabet is the 64-character alphabet used for all public random
// identifiers. Exactly 64 characters long so a random byte can be mapped to
// an index with a mask, without modulo bias.
const urlSafeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

const (
	// SecretTokenLength is the length of a claim's bearer retraction token.
	// 32 characters over a 64-symbol alphabet give 192 bits of entropy.
	SecretTokenLength = 32

	// ShareIDLength is the length of a list's public share identifier.
	ShareIDLength = 10
)

// RandomURLSafeString returns a cryptographically random string of the given
// length drawn from the URL-safe alphabet.
func RandomURLSafeString(length int) (string, error) {
	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error reading random bytes: %w", err)
	}

	for i, b := range buf {
		buf[i] = urlSafeAlphabet[b&63]
	}

	return string(buf), nil
}

// NewSecretToken generates a fresh claim retraction token.
// Global uniqueness is not guaranteed here; the storage layer enforces it
// with a unique index, and callers retry on collision.
func NewSecretToken() (string, error) {
	return RandomURLSafeString(SecretTokenLength)
}

// NewShareID generates a fresh public share identifier for a list.
// Uniqueness handling mirrors NewSecretToken.
func NewShareID() (string, error) {
	return RandomURLSafeString(ShareIDLength)
}
