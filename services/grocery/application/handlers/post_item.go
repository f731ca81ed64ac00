package handlers

import (
	"net/http"

	"github.com/ghuser/grocerylist/pkg/errhttp"
	"github.com/ghuser/grocerylist/pkg/httpx"
	pkgvalidator "github.com/ghuser/grocerylist/pkg/validator"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
)

// PostItemHandler handles POST /api/items requests.
type PostItemHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, isProduction bool) *PostItemHandler {
	return &PostItemHandler{svc: svc, isProduction: isProduction}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Adds an item to the grocery list. The name is trimmed; duplicates are allowed.
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemNameRequest	true	"Item to add"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemNameRequest](w, r)
	if !ok {
		return
	}

	out, err := h.svc.Item.Dispatch(r.Context(), appsvcs.Request{Command: appsvcs.CommandAdd, Name: req.Name})
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	httpx.JSON(w, http.StatusCreated, toItemResponse(out.Item))
}
