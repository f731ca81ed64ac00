package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/grocerylist/pkg/httpx"
	"github.com/ghuser/grocerylist/pkg/logger"
	"github.com/ghuser/grocerylist/pkg/session"
	"github.com/ghuser/grocerylist/pkg/telemetry"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
	"github.com/ghuser/grocerylist/services/grocery/application/views"
	itemdomain "github.com/ghuser/grocerylist/services/grocery/domain"
	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

// EditQueryParam selects the item shown in edit mode on the list page.
const EditQueryParam = "edit"

// PageHandler serves the HTML list page and its form posts.
//
// Every form post ends in a 303 redirect to "/" carrying at most one notice in
// the session. Requests with any other method are redirected without touching
// the store.
type PageHandler struct {
	svc   *appsvcs.Services
	flash *session.Flasher
	log   logger.Logger
}

// NewPageHandler returns a PageHandler storing notices in store.
func NewPageHandler(svc *appsvcs.Services, store sessions.Store, log logger.Logger) *PageHandler {
	return &PageHandler{svc: svc, flash: session.NewFlasher(store), log: log}
}

// Index handles GET / and renders every item, newest first. With ?edit={id}
// that item is rendered as an edit form; an unknown id renders the 404 page.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notices, err := h.flash.Pop(w, r)
	if err != nil {
		h.log.WarnContext(ctx, "failed to read notices", "error", err)
	}

	var editID models.ItemID
	if raw := r.URL.Query().Get(EditQueryParam); raw != "" {
		id, err := models.ParseItemID(raw)
		if err == nil {
			_, err = h.svc.Item.Dispatch(ctx, appsvcs.Request{Command: appsvcs.CommandBeginEdit, ItemID: id})
		}
		if err != nil {
			if errors.Is(err, itemdomain.ErrItemNotFound) || errors.Is(err, itemdomain.ErrInvalidItemID) {
				h.renderNotFound(w, r, notices)
				return
			}
			h.serverError(w, r, err)
			return
		}
		editID = id
	}

	out, err := h.svc.Item.Dispatch(ctx, appsvcs.Request{Command: appsvcs.CommandList})
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	if err := views.RenderIndex(w, views.NewIndexPage(out.Items, editID, notices)); err != nil {
		h.log.ErrorContext(ctx, "failed to render list page", "error", err)
	}
}

// Edit handles GET /edit/{item_id} by redirecting to the list page in edit mode.
// Existence is checked when the list page renders.
func (h *PageHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromPath(r)
	if err != nil {
		h.renderNotFound(w, r, nil)
		return
	}
	http.Redirect(w, r, "/?"+EditQueryParam+"="+id.String(), http.StatusFound)
}

// Mutation returns the form handler for cmd (add, rename, toggle or delete).
func (h *PageHandler) Mutation(cmd appsvcs.Command) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}

		ctx := r.Context()
		req := appsvcs.Request{Command: cmd}

		if cmd != appsvcs.CommandAdd {
			id, err := itemIDFromPath(r)
			if err != nil {
				// Unparseable IDs can never match an item.
				h.redirectWithNotice(w, r, appsvcs.ItemNotFoundNotice)
				return
			}
			req.ItemID = id
		}
		if cmd == appsvcs.CommandAdd || cmd == appsvcs.CommandRename {
			req.Name = r.PostFormValue("name")
		}

		out, err := h.svc.Item.Dispatch(ctx, req)
		if err != nil && out.Notice.IsZero() {
			h.serverError(w, r, err)
			return
		}
		if err != nil {
			h.log.InfoContext(ctx, "item mutation rejected", "command", cmd.String(), "item_id", req.ItemID, "reason", err)
		} else {
			h.log.InfoContext(ctx, "item mutated", "command", cmd.String(), "item_id", itemIDOf(out, req))
		}

		h.redirectWithNotice(w, r, out.Notice)
	}
}

func (h *PageHandler) redirectWithNotice(w http.ResponseWriter, r *http.Request, n appsvcs.Notice) {
	if !n.IsZero() {
		if err := h.flash.Add(w, r, n.Flash()); err != nil {
			h.log.WarnContext(r.Context(), "failed to store notice", "error", err)
		}
	}
	httpx.SeeOther(w, r, "/")
}

func (h *PageHandler) renderNotFound(w http.ResponseWriter, r *http.Request, notices []session.Flash) {
	if err := views.RenderNotFound(w, notices); err != nil {
		h.log.ErrorContext(r.Context(), "failed to render not found page", "error", err)
	}
}

func (h *PageHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.ErrorContext(r.Context(), "grocery request failed", "path", r.URL.Path, "error", err)
	telemetry.CaptureError(r.Context(), err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func itemIDOf(out appsvcs.Outcome, req appsvcs.Request) models.ItemID {
	if out.Item != nil {
		return out.Item.ID
	}
	return req.ItemID
}
