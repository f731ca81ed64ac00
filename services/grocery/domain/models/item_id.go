package models

import (
	"fmt"
	"strconv"

	"github.com/ghuser/grocerylist/services/grocery/domain"
)

// ItemID identifies one grocery item. IDs are assigned by the store and never reused.
type ItemID int64

// ParseItemID parses a decimal item identifier as it appears in URLs and forms.
// Non-numeric and non-positive values yield ErrInvalidItemID.
func ParseItemID(s string) (ItemID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidItemID, s)
	}
	return ItemID(n), nil
}

// String returns the decimal form of the ID.
func (id ItemID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
