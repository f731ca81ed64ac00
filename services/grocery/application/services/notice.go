package services

import (
	"errors"
	"fmt"

	"github.com/ghuser/grocerylist/pkg/session"
	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
	domainsvcs "github.com/ghuser/grocerylist/services/grocery/domain/services"
)

// Notice is the single user-facing message produced by a mutation.
// The zero Notice means "nothing to show".
type Notice struct {
	Level   string // session.LevelSuccess or session.LevelError
	Message string
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool {
	return n.Message == ""
}

// Flash converts the notice for storage in the session.
func (n Notice) Flash() session.Flash {
	return session.Flash{Level: n.Level, Message: n.Message}
}

// ItemNotFoundNotice is shown when a mutation targets a missing item.
var ItemNotFoundNotice = errorNotice("Item not found.")

func successNotice(format string, args ...any) Notice {
	return Notice{Level: session.LevelSuccess, Message: fmt.Sprintf(format, args...)}
}

func errorNotice(msg string) Notice {
	return Notice{Level: session.LevelError, Message: msg}
}

// noticeForError returns the error notice for a validation or not-found failure
// and the zero Notice for anything else.
func noticeForError(err error) Notice {
	switch {
	case errors.Is(err, itemdomain.ErrItemNotFound):
		return ItemNotFoundNotice
	case errors.Is(err, models.ErrItemNameTooLong):
		return errorNotice(fmt.Sprintf("Item name must not exceed %d characters.", models.MaxItemNameLength))
	case errors.Is(err, models.ErrItemNameEncoding):
		return errorNotice("Item name must be valid text.")
	case errors.Is(err, domainsvcs.ErrControlCharacters):
		return errorNotice("Item name must not contain control characters.")
	case errors.Is(err, itemdomain.ErrInvalidItemName):
		return errorNotice("Item name cannot be empty.")
	default:
		return Notice{}
	}
}
