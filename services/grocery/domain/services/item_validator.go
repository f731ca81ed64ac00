// Package services contains stateless domain services for the grocery bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

// ErrControlCharacters is returned for names containing control characters
// such as tabs or newlines pasted into the input field.
var ErrControlCharacters = errors.New("item name must not contain control characters")

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (trimmed, 1–200 characters).
//
// Business rules:
//   - Must not be only whitespace characters
//   - No control characters (Unicode category Cc)
func ValidateName(name models.ItemName) error {
	s := name.String()

	if strings.TrimSpace(s) == "" {
		return models.ErrEmptyItemName
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return ErrControlCharacters
		}
	}

	return nil
}

// ValidateItemForSave checks an item aggregate right before it is written to the
// store, whether newly created or mutated.
func ValidateItemForSave(item *models.GroceryItem) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if err := ValidateName(item.Name); err != nil {
		return fmt.Errorf("invalid name: %w", err)
	}

	if item.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	if item.ID < 0 {
		return fmt.Errorf("id must not be negative")
	}

	return nil
}
