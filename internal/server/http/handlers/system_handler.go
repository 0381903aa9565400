package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves service banner and health endpoints.
type SystemHandler struct {
	facade HealthFacade
}

// NewSystemHandler constructs SystemHandler.
func NewSystemHandler(facade HealthFacade) *SystemHandler {
	return &SystemHandler{facade: facade}
}

// Root handles GET /.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "QR-Based Canteen Management System API",
		"version": "1.0",
		"status":  "running",
	})
}

// Health handles GET /health.
func (h *SystemHandler) Health(c *gin.Context) {
	if err := h.facade.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound answers unknown routes.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
}
