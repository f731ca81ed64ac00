package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghuser/grocerylist/pkg/session"
	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

func TestNoticeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", fmt.Errorf("get item 3: %w", itemdomain.ErrItemNotFound), "Item not found."},
		{"empty", fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, models.ErrEmptyItemName), "Item name cannot be empty."},
		{"too long", fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemName, models.ErrItemNameTooLong), "Item name must not exceed 200 characters."},
		{"store constraint", fmt.Errorf("insert item: %w", itemdomain.ErrInvalidItemName), "Item name cannot be empty."},
		{"infrastructure", errors.New("connection reset"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := noticeForError(tt.err)
			assert.Equal(t, tt.want, n.Message)
			if tt.want != "" {
				assert.Equal(t, session.LevelError, n.Level)
			} else {
				assert.True(t, n.IsZero())
			}
		})
	}
}

func TestNotice_Flash(t *testing.T) {
	n := successNotice("%s added successfully!", "Milk")
	assert.Equal(t, session.Flash{Level: session.LevelSuccess, Message: "Milk added successfully!"}, n.Flash())
}
