package handlers

import (
	"net/http"

	"github.com/ghuser/grocerylist/pkg/errhttp"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
)

// DeleteItemHandler handles DELETE /api/items/{item_id} requests.
type DeleteItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services, isProduction bool) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc, isProduction: isProduction}
}

// Execute removes an item permanently.
//
//	@Summary		Delete item
//	@Tags			items
//	@Param			item_id	path	int	true	"Item ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{item_id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromPath(r)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	if _, err := h.svc.Item.Dispatch(r.Context(), appsvcs.Request{Command: appsvcs.CommandDelete, ItemID: id}); err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
