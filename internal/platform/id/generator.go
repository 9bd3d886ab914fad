package id

import (
	"crypto/rand"
	"fmt"
)

// Generator creates short opaque room tokens.
type Generator interface {
	NewRoomID() (string, error)
}

const (
	roomTokenLength   = 6
	roomTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// TokenGenerator produces fixed-length uppercase tokens. Uniqueness against
// already-issued tokens is NOT checked; with 36^6 possible values callers
// accept the collision risk for short-lived rooms.
type TokenGenerator struct{}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

func (g *TokenGenerator) NewRoomID() (string, error) {
	buf := make([]byte, roomTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	out := make([]byte, roomTokenLength)
	for i, b := range buf {
		out[i] = roomTokenAlphabet[int(b)%len(roomTokenAlphabet)]
	}

	return string(out), nil
}
