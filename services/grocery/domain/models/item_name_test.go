package models

import (
	"errors"
	"strings"
	"testing"
)

func TestNewItemName(t *testing.T) {
	t.Run("valid single character", func(t *testing.T) {
		n, err := NewItemName("a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "a" {
			t.Fatalf("expected %q, got %q", "a", n.String())
		}
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		n, err := NewItemName("  Milk  ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Milk" {
			t.Fatalf("expected %q, got %q", "Milk", n.String())
		}
	})

	t.Run("keeps inner whitespace", func(t *testing.T) {
		n, err := NewItemName("\tOat  Milk\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != "Oat  Milk" {
			t.Fatalf("expected %q, got %q", "Oat  Milk", n.String())
		}
	})

	t.Run("valid 200 characters", func(t *testing.T) {
		s := strings.Repeat("x", 200)
		n, err := NewItemName(s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n.String() != s {
			t.Fatalf("expected string of length 200, got %d", len(n.String()))
		}
	})

	t.Run("200 multibyte characters", func(t *testing.T) {
		if _, err := NewItemName(strings.Repeat("é", 200)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("empty string returns error", func(t *testing.T) {
		_, err := NewItemName("")
		if !errors.Is(err, ErrEmptyItemName) {
			t.Fatalf("expected ErrEmptyItemName, got %v", err)
		}
	})

	t.Run("whitespace only returns error", func(t *testing.T) {
		_, err := NewItemName("   \t ")
		if !errors.Is(err, ErrEmptyItemName) {
			t.Fatalf("expected ErrEmptyItemName, got %v", err)
		}
	})

	t.Run("invalid utf-8 returns error", func(t *testing.T) {
		_, err := NewItemName("Br\xc3\x28ad")
		if !errors.Is(err, ErrItemNameEncoding) {
			t.Fatalf("expected ErrItemNameEncoding, got %v", err)
		}
	})

	t.Run("201 characters returns error", func(t *testing.T) {
		_, err := NewItemName(strings.Repeat("x", 201))
		if !errors.Is(err, ErrItemNameTooLong) {
			t.Fatalf("expected ErrItemNameTooLong, got %v", err)
		}
	})
}

func TestItemName_String(t *testing.T) {
	n := ItemName("Eggs")
	if n.String() != "Eggs" {
		t.Fatalf("expected %q, got %q", "Eggs", n.String())
	}
}
