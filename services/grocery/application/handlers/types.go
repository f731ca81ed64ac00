package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/grocerylist/services/grocery/domain/models"
)

// ItemIDParam is the chi URL parameter carrying the item ID.
const ItemIDParam = "item_id"

// ItemResponse is the JSON representation of a grocery item.
type ItemResponse struct {
	ID        int64     `json:"id"         example:"42"`
	Name      string    `json:"name"       example:"Oat Milk"`
	Completed bool      `json:"completed"  example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

// ItemNameRequest is the request body for creating or renaming an item.
// Surrounding whitespace is trimmed before the name is stored.
type ItemNameRequest struct {
	Name string `json:"name" validate:"required,notblank" example:"Oat Milk"`
} // @name ItemNameRequest

// ErrorResponse documents httpx.ErrorBody. Fields is set on 422 only.
type ErrorResponse struct {
	Error  string            `json:"error"            example:"item not found"`
	Fields map[string]string `json:"fields,omitempty"`
} // @name ErrorResponse

func toItemResponse(item *models.GroceryItem) ItemResponse {
	return ItemResponse{
		ID:        int64(item.ID),
		Name:      item.Name.String(),
		Completed: item.Completed,
		CreatedAt: item.CreatedAt,
	}
}

func itemIDFromPath(r *http.Request) (models.ItemID, error) {
	return models.ParseItemID(chi.URLParam(r, ItemIDParam))
}
