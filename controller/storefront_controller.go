package controller

import (
	"net/http"
	"strconv"

	"souk/catalog"
	"souk/prometheus"

	"github.com/gin-gonic/gin"
)

// GetStorefront serves the public read-only view of a store. No token is
// required. Inactive and unknown stores both come back as 404 so the two
// cannot be told apart by probing, but the state field distinguishes them
// for the storefront page itself.
func (h *Handler) GetStorefront(c *gin.Context) {
	storeID := c.Param("store_id")

	var selectedCategory uint
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category ID format"})
			return
		}
		selectedCategory = uint(parsed)
	}

	view, err := h.engine.Storefront(storeID, selectedCategory, c.Query("search"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordStorefrontView(string(view.State))

	if view.State != catalog.StorefrontReady {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"state":   view.State,
			"error":   "Store is not available",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Storefront retrieved successfully",
		"data":    view,
	})
}
