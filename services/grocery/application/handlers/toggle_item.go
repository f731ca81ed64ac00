package handlers

import (
	"net/http"

	"github.com/ghuser/grocerylist/pkg/errhttp"
	"github.com/ghuser/grocerylist/pkg/httpx"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
)

// ToggleItemHandler handles POST /api/items/{item_id}/toggle requests.
type ToggleItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewToggleItemHandler returns a ToggleItemHandler backed by the given services.
func NewToggleItemHandler(svc *appsvcs.Services, isProduction bool) *ToggleItemHandler {
	return &ToggleItemHandler{svc: svc, isProduction: isProduction}
}

// Execute flips the completion state of an item.
//
//	@Summary		Toggle item
//	@Tags			items
//	@Produce		json
//	@Param			item_id	path		int	true	"Item ID"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{item_id}/toggle [post]
func (h *ToggleItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromPath(r)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	out, err := h.svc.Item.Dispatch(r.Context(), appsvcs.Request{Command: appsvcs.CommandToggle, ItemID: id})
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(out.Item))
}
