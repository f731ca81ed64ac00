package domain

import "errors"

// Sentinel errors for the grocery domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the referenced item does not exist (or was deleted).
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidItemName indicates the item name is blank or violates length limits.
	ErrInvalidItemName = errors.New("invalid item name")

	// ErrInvalidItemID indicates an item identifier could not be parsed.
	ErrInvalidItemID = errors.New("invalid item id")
)
