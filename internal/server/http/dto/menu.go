package dto

import (
	"time"

	"github.com/polkiloo/canteen/internal/domain/model"
)

// MenuItemRequest describes a new catalog entry.
type MenuItemRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

// MenuItemPatchRequest carries the fields to change on an item.
type MenuItemPatchRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	ImageURL    *string  `json:"image_url"`
	IsAvailable *bool    `json:"is_available"`
}

// Patch converts request into domain patch.
func (r MenuItemPatchRequest) Patch() model.MenuItemPatch {
	return model.MenuItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		ImageURL:    r.ImageURL,
		IsAvailable: r.IsAvailable,
	}
}

// MenuItemResponse is the wire form of a catalog entry.
type MenuItemResponse struct {
	ID          string    `json:"_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	ImageURL    string    `json:"image_url"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewMenuItemResponse maps domain item to response.
func NewMenuItemResponse(item model.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Price:       item.Price,
		Category:    item.Category,
		ImageURL:    item.ImageURL,
		IsAvailable: item.IsAvailable,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// MenuItemsResponse lists available items.
type MenuItemsResponse struct {
	Success bool               `json:"success"`
	Items   []MenuItemResponse `json:"items"`
}

// MenuItemEnvelope wraps a single item.
type MenuItemEnvelope struct {
	Success bool             `json:"success"`
	Item    MenuItemResponse `json:"item"`
}

// MenuItemCreatedResponse reports identifier of a new item.
type MenuItemCreatedResponse struct {
	Message string `json:"message"`
	ItemID  string `json:"item_id"`
}

// CategoriesResponse lists distinct categories.
type CategoriesResponse struct {
	Success    bool     `json:"success"`
	Categories []string `json:"categories"`
}
