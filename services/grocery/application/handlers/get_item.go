package handlers

import (
	"net/http"

	"github.com/ghuser/grocerylist/pkg/errhttp"
	"github.com/ghuser/grocerylist/pkg/httpx"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
)

// GetItemHandler handles GET /api/items/{item_id} requests.
type GetItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services, isProduction bool) *GetItemHandler {
	return &GetItemHandler{svc: svc, isProduction: isProduction}
}

// Execute returns one item.
//
//	@Summary		Get item
//	@Tags			items
//	@Produce		json
//	@Param			item_id	path		int	true	"Item ID"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/items/{item_id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromPath(r)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	item, err := h.svc.Item.Get(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(item))
}
