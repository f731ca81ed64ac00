package handlers

import (
	"net/http"

	"github.com/ghuser/grocerylist/pkg/errhttp"
	"github.com/ghuser/grocerylist/pkg/httpx"
	pkgvalidator "github.com/ghuser/grocerylist/pkg/validator"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
)

// PutItemHandler handles PUT /api/items/{item_id} requests.
type PutItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPutItemHandler returns a PutItemHandler backed by the given services.
func NewPutItemHandler(svc *appsvcs.Services, isProduction bool) *PutItemHandler {
	return &PutItemHandler{svc: svc, isProduction: isProduction}
}

// Execute renames an item. The completion state is left unchanged.
//
//	@Summary		Rename item
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			item_id	path		int				true	"Item ID"
//	@Param			request	body		ItemNameRequest	true	"New name"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items/{item_id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := itemIDFromPath(r)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ItemNameRequest](w, r)
	if !ok {
		return
	}

	out, err := h.svc.Item.Dispatch(r.Context(), appsvcs.Request{Command: appsvcs.CommandRename, ItemID: id, Name: req.Name})
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusOK, toItemResponse(out.Item))
}
