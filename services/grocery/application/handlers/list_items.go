package handlers

import (
	"net/http"
	"strconv"

	"github.com/ghuser/grocerylist/pkg/errhttp"
	"github.com/ghuser/grocerylist/pkg/httpx"
	appsvcs "github.com/ghuser/grocerylist/services/grocery/application/services"
)

// ListItemsHandler handles GET /api/items requests.
type ListItemsHandler struct {
	svc          *appsvcs.Services
	isProduction bool
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, isProduction bool) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, isProduction: isProduction}
}

// Execute lists items, newest first.
//
//	@Summary		List items
//	@Description	Lists grocery items newest first, optionally filtered by completion state or name
//	@Tags			items
//	@Produce		json
//	@Param			completed	query		bool	false	"Only items with this completion state"
//	@Param			q			query		string	false	"Case-insensitive name substring"
//	@Success		200			{array}		ItemResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var filter appsvcs.Filter

	if raw := r.URL.Query().Get("completed"); raw != "" {
		completed, err := strconv.ParseBool(raw)
		if err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "completed must be true or false")
			return
		}
		filter.Completed = &completed
	}
	filter.Query = r.URL.Query().Get("q")

	items, err := h.svc.Item.Search(r.Context(), filter)
	if err != nil {
		errhttp.WriteError(w, err, h.isProduction)
		return
	}

	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = toItemResponse(item)
	}
	httpx.JSON(w, http.StatusOK, resp)
}
