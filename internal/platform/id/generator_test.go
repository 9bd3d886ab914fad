package id

import (
	"strings"
	"testing"
)

func TestTokenGenerator_NewRoomID(t *testing.T) {
	t.Parallel()

	g := NewTokenGenerator()
	seen := make(map[string]struct{})

	for i := 0; i < 200; i++ {
		token, err := g.NewRoomID()
		if err != nil {
			t.Fatalf("NewRoomID error: %v", err)
		}
		if len(token) != roomTokenLength {
			t.Fatalf("expected %d chars, got %q", roomTokenLength, token)
		}
		for _, r := range token {
			if !strings.ContainsRune(roomTokenAlphabet, r) {
				t.Fatalf("token %q contains %q outside the alphabet", token, r)
			}
		}
		seen[token] = struct{}{}
	}

	// Not a uniqueness guarantee, just a sanity check that the generator is
	// not returning a constant.
	if len(seen) < 2 {
		t.Fatalf("expected varied tokens, got %d distinct", len(seen))
	}
}
