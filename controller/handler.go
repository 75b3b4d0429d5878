package controller

import (
	"errors"
	"net/http"

	"souk/catalog"
	"souk/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler holds the catalog engine and provides the HTTP handlers.
type Handler struct {
	engine *catalog.Engine
	log    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(engine *catalog.Engine) *Handler {
	return &Handler{engine: engine, log: logger.GetLogger()}
}

// respondError translates engine errors into the response envelope.
// Collaborator failures are logged and surfaced as one generic message.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalog.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	case errors.Is(err, catalog.ErrNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": "You don't have permission to modify this record"})
	case errors.Is(err, catalog.ErrStoreNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Store not found"})
	case errors.Is(err, catalog.ErrAdminNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Admin panel not found"})
	case errors.Is(err, catalog.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Category not found"})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Product not found"})
	case errors.Is(err, catalog.ErrImageNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Image not found"})
	default:
		h.log.Error("catalog operation failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Something went wrong, please try again"})
	}
}

// storeIDFromContext returns the store code the merchant middleware resolved.
func storeIDFromContext(c *gin.Context) (string, bool) {
	value, exists := c.Get("store_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized access"})
		return "", false
	}
	storeID, ok := value.(string)
	if !ok || storeID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Unauthorized access"})
		return "", false
	}
	return storeID, true
}
