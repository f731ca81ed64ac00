package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxItemNameLength is the longest accepted item name, in characters.
const MaxItemNameLength = 200

var (
	// ErrEmptyItemName is returned when a name is empty or whitespace-only.
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// ErrItemNameTooLong is returned when a name exceeds MaxItemNameLength.
	ErrItemNameTooLong = fmt.Errorf("item name must not exceed %d characters", MaxItemNameLength)

	// ErrItemNameEncoding is returned when a name is not valid UTF-8.
	ErrItemNameEncoding = errors.New("item name must be valid UTF-8 text")
)

// ItemName is a value object representing a valid grocery item name.
// A constructed ItemName never has surrounding whitespace and is never empty.
type ItemName string

// NewItemName trims surrounding whitespace from raw and returns the result as an
// ItemName, or an error if raw is not UTF-8, nothing is left or the name is too long.
func NewItemName(raw string) (ItemName, error) {
	if !utf8.ValidString(raw) {
		return "", ErrItemNameEncoding
	}
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyItemName
	}
	if utf8.RuneCountInString(s) > MaxItemNameLength {
		return "", ErrItemNameTooLong
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
