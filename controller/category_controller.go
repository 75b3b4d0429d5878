package controller

import (
	"net/http"
	"strconv"

	"souk/prometheus"

	"github.com/gin-gonic/gin"
)

// AddCategory appends a category to the merchant's store.
func (h *Handler) AddCategory(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	type Request struct {
		Name string `form:"name" json:"name" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Category name is required"})
		return
	}

	category, err := h.engine.CreateCategory(storeID, req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordCategoryOperation("create")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category added successfully",
		"data":    category,
	})
}

// GetMyCategories returns the merchant's categories with product counts,
// ordered by sort_order.
func (h *Handler) GetMyCategories(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	categories, err := h.engine.DashboardCategories(storeID)
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

// ToggleCategory flips one category's visibility. Its products keep their
// own flags; the storefront filter decides what customers see.
func (h *Handler) ToggleCategory(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid category ID format"})
		return
	}

	category, err := h.engine.ToggleCategoryVisibility(storeID, uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordCategoryOperation("toggle_visibility")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Category updated successfully",
		"data":    category,
	})
}
