package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("expected hashed password")
	}

	t.Run("matching password", func(t *testing.T) {
		if err := h.Compare(hash, "s3cret"); err != nil {
			t.Fatalf("expected match, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if err := h.Compare(hash, "nope"); err == nil {
			t.Fatalf("expected mismatch")
		}
	})

	t.Run("out of range cost falls back to default", func(t *testing.T) {
		if got := NewBcryptHasher(100).cost; got != bcrypt.DefaultCost {
			t.Fatalf("expected default cost, got %d", got)
		}
	})
}
