package controller

import (
	"net/http"
	"strconv"

	"souk/prometheus"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetAdminOverview returns platform totals plus the most recently
// registered stores.
func (h *Handler) GetAdminOverview(c *gin.Context) {
	stats, err := h.engine.AdminStats()
	if err != nil {
		h.respondError(c, err)
		return
	}

	stores, err := h.engine.AdminStores("")
	if err != nil {
		h.respondError(c, err)
		return
	}
	if len(stores) > 5 {
		stores = stores[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Overview retrieved successfully",
		"data": gin.H{
			"stats":         stats,
			"recent_stores": stores,
		},
	})
}

// ListStores returns every store, optionally filtered by a search over
// name, city and store code.
func (h *Handler) ListStores(c *gin.Context) {
	stores, err := h.engine.AdminStores(c.Query("search"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Stores retrieved successfully",
		"data":    stores,
	})
}

// ToggleStoreActive suspends or reinstates a store.
func (h *Handler) ToggleStoreActive(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid store ID format"})
		return
	}

	store, err := h.engine.ToggleStoreActive(uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordStoreOperation("toggle_active")
	h.log.Info("store active flag toggled",
		zap.String("store_id", store.StoreID),
		zap.Bool("is_active", store.IsActive))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Store updated successfully",
		"data":    store,
	})
}

// DeleteStore removes a store together with all of its categories and
// products.
func (h *Handler) DeleteStore(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid store ID format"})
		return
	}

	if err := h.engine.DeleteStore(uint(id)); err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordStoreOperation("delete")
	h.log.Info("store deleted", zap.Uint64("id", id))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Store deleted successfully",
	})
}

// ListAllCategories returns every category across the platform annotated
// with its store name.
func (h *Handler) ListAllCategories(c *gin.Context) {
	categories, err := h.engine.AdminCategories()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
	})
}

// ListAllProducts returns every product across the platform annotated
// with category, store name and currency.
func (h *Handler) ListAllProducts(c *gin.Context) {
	products, err := h.engine.AdminProducts()
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Products retrieved successfully",
		"data":    products,
	})
}

// ListImages returns the full image library including inactive entries.
func (h *Handler) ListImages(c *gin.Context) {
	images, err := h.engine.Images(false)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Images retrieved successfully",
		"data":    images,
	})
}

// AddImage adds an entry to the shared image library.
func (h *Handler) AddImage(c *gin.Context) {
	type Request struct {
		Name     string `form:"name" json:"name" binding:"required"`
		Category string `form:"category" json:"category"`
		ImageURL string `form:"image_url" json:"image_url" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Image name and URL are required"})
		return
	}

	image, err := h.engine.AddImage(req.Name, req.Category, req.ImageURL)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image added successfully",
		"data":    image,
	})
}

// ToggleImage flips one library image between active and inactive.
func (h *Handler) ToggleImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid image ID format"})
		return
	}

	image, err := h.engine.ToggleImage(uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image updated successfully",
		"data":    image,
	})
}
