package session

import (
	"encoding/gob"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

// CookieName is the name of the session cookie carrying flash notices.
const CookieName = "grocerylist_session"

// Flash levels, rendered as CSS classes.
const (
	LevelSuccess = "success"
	LevelError   = "error"
)

// Flash is a one-shot notice shown on the next page render.
type Flash struct {
	Level   string
	Message string
}

func init() {
	gob.Register(Flash{})
}

// Flasher queues and drains flash notices in a sessions.Store.
type Flasher struct {
	store sessions.Store
}

// NewFlasher returns a Flasher backed by store.
func NewFlasher(store sessions.Store) *Flasher {
	return &Flasher{store: store}
}

// Add queues f for the next request of the same browser.
func (f *Flasher) Add(w http.ResponseWriter, r *http.Request, flash Flash) error {
	s, err := f.store.Get(r, CookieName)
	if err != nil {
		// A tampered or stale cookie yields a usable fresh session alongside the error.
		if s == nil {
			return fmt.Errorf("load session: %w", err)
		}
	}
	s.AddFlash(flash)
	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Pop returns and clears every queued notice, oldest first.
func (f *Flasher) Pop(w http.ResponseWriter, r *http.Request) ([]Flash, error) {
	s, err := f.store.Get(r, CookieName)
	if err != nil && s == nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}
	if err := s.Save(r, w); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if fl, ok := v.(Flash); ok {
			out = append(out, fl)
		}
	}
	return out, nil
}
