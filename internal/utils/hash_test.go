// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("s3cret")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "s3cret" || !strings.HasPrefix(hash, "$2") {
		t.Fatalf("expected bcrypt hash, got %q", hash)
	}

	if err := hasher.Compare(hash, "s3cret"); err != nil {
		t.Errorf("expected match, got: %v", err)
	}
}

func TestPasswordHasher_Salted(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	first, _ := hasher.Hash("same")
	second, _ := hasher.Hash("same")

	if first == second {
		t.Error("expected different hashes for the same password")
	}
}

func TestPasswordHasher_Mismatch(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	hash, _ := hasher.Hash("right")

	err := hasher.Compare(hash, "wrong")
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	err := hasher.Compare("plain-text", "plain-text")
	if err == nil {
		t.Fatal("expected error for malformed hash, got nil")
	}
	if errors.Is(err, ErrPasswordMismatch) {
		t.Error("malformed hash must not be reported as a mismatch")
	}
}

func TestNewPasswordHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{"explicit", 12, 12},
		{"min", bcrypt.MinCost, bcrypt.MinCost},
		{"too small", 1, bcrypt.DefaultCost},
		{"too large", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPasswordHasher(tt.cost).cost; got != tt.want {
				t.Errorf("expected cost %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	hash, err := NewPasswordHasher(5).Hash("pw")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if cost != 5 {
		t.Errorf("expected cost 5, got %d", cost)
	}
}

func TestPasswordHasher_LongPasswords(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)
	long := strings.Repeat("p", 100)

	hash, err := hasher.Hash(long)
	if err != nil {
		t.Fatalf("expected no error for a %d byte password, got: %v", len(long), err)
	}
	if err := hasher.Compare(hash, long); err != nil {
		t.Errorf("expected match, got: %v", err)
	}

	// Passwords sharing the first 72 bytes must still differ.
	if err := hasher.Compare(hash, long[:72]+"q"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("expected ErrPasswordMismatch, got %v", err)
	}
}
