package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/canteen/internal/domain/errors"
	"github.com/polkiloo/canteen/internal/server/http/dto"
	"github.com/polkiloo/canteen/internal/usecase"
)

var itemMessages = messages{domainErrors.ErrNotFound: "Item not found"}

// MenuHandler serves catalog endpoints.
type MenuHandler struct {
	facade MenuFacade
}

// NewMenuHandler constructs MenuHandler.
func NewMenuHandler(facade MenuFacade) *MenuHandler {
	return &MenuHandler{facade: facade}
}

// List handles GET /api/menu/items.
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.facade.MenuItems(c.Request.Context())
	if err != nil {
		respondError(c, err, nil)
		return
	}

	resp := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, dto.NewMenuItemResponse(item))
	}
	c.JSON(http.StatusOK, dto.MenuItemsResponse{Success: true, Items: resp})
}

// Get handles GET /api/menu/items/:id.
func (h *MenuHandler) Get(c *gin.Context) {
	item, err := h.facade.MenuItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, itemMessages)
		return
	}
	c.JSON(http.StatusOK, dto.MenuItemEnvelope{Success: true, Item: dto.NewMenuItemResponse(*item)})
}

// Create handles POST /api/menu/items.
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	item, err := h.facade.CreateMenuItem(c.Request.Context(), CurrentIdentity(c), usecase.MenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Price:       req.Price,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, dto.MenuItemCreatedResponse{Message: "Menu item added successfully", ItemID: item.ID})
}

// Update handles PUT /api/menu/items/:id.
func (h *MenuHandler) Update(c *gin.Context) {
	var req dto.MenuItemPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, invalidBody)
		return
	}

	if err := h.facade.UpdateMenuItem(c.Request.Context(), CurrentIdentity(c), c.Param("id"), req.Patch()); err != nil {
		respondError(c, err, itemMessages)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Menu item updated successfully"})
}

// Delete handles DELETE /api/menu/items/:id.
func (h *MenuHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteMenuItem(c.Request.Context(), CurrentIdentity(c), c.Param("id")); err != nil {
		respondError(c, err, itemMessages)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Menu item deleted successfully"})
}

// Categories handles GET /api/menu/categories.
func (h *MenuHandler) Categories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, dto.CategoriesResponse{Success: true, Categories: categories})
}
