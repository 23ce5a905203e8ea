package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const shortCodeAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// NewSessionID builds the client-visible itinerary identifier: a v4 uuid with
// a millisecond timestamp suffix so ids stay unique even across uuid reuse in
// tests and imports.
func NewSessionID() string {
	return fmt.Sprintf("%s--%d", uuid.New().String(), time.Now().UnixMilli())
}

// NewShortCode returns a crypto-random shareable code of the given length.
func NewShortCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid short code length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}

	for i, b := range bytes {
		bytes[i] = shortCodeAlphabet[int(b)%len(shortCodeAlphabet)]
	}
	return string(bytes), nil
}

func NewFileUUID() string {
	return uuid.New().String()
}
