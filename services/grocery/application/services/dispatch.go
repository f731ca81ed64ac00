package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

// Command names one lifecycle operation. Transports translate their own
// routing (HTTP method and path, JSON endpoints) into a Command and call Dispatch.
type Command int

const (
	CommandList Command = iota
	CommandAdd
	CommandBeginEdit
	CommandRename
	CommandToggle
	CommandDelete
)

// ErrUnknownCommand is returned by Dispatch for unrecognized commands.
var ErrUnknownCommand = errors.New("unknown command")

var commandNames = [...]string{
	CommandList:      "list",
	CommandAdd:       "add",
	CommandBeginEdit: "begin_edit",
	CommandRename:    "rename",
	CommandToggle:    "toggle",
	CommandDelete:    "delete",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return fmt.Sprintf("Command(%d)", int(c))
	}
	return commandNames[c]
}

// Request carries one command and its arguments. ItemID is used by BeginEdit,
// Rename, Toggle and Delete; Name by Add and Rename.
type Request struct {
	Command Command
	ItemID  models.ItemID
	Name    string
}

// Outcome is what a dispatched command produced. Items is only set for List;
// Item is set for Add, BeginEdit, Rename and Toggle on success.
type Outcome struct {
	Items  []*models.GroceryItem
	Item   *models.GroceryItem
	Notice Notice
}

// Dispatch runs req against the service.
func (s *ItemService) Dispatch(ctx context.Context, req Request) (Outcome, error) {
	var (
		out Outcome
		err error
	)

	switch req.Command {
	case CommandList:
		out.Items, err = s.List(ctx)
	case CommandAdd:
		out.Item, out.Notice, err = s.Add(ctx, req.Name)
	case CommandBeginEdit:
		out.Item, err = s.BeginEdit(ctx, req.ItemID)
	case CommandRename:
		out.Item, out.Notice, err = s.Rename(ctx, req.ItemID, req.Name)
	case CommandToggle:
		out.Item, out.Notice, err = s.Toggle(ctx, req.ItemID)
	case CommandDelete:
		out.Notice, err = s.Delete(ctx, req.ItemID)
	default:
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnknownCommand, req.Command)
	}

	return out, err
}
