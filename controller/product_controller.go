package controller

import (
	"net/http"
	"strconv"

	"souk/catalog"
	"souk/prometheus"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// AddProduct creates a product inside one of the merchant's categories.
// Price arrives as the raw form string and must parse as a non-negative
// number.
func (h *Handler) AddProduct(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	type Request struct {
		Name       string `form:"name" json:"name" binding:"required"`
		CategoryID uint   `form:"category_id" json:"category_id" binding:"required"`
		Price      string `form:"price" json:"price" binding:"required"`
		ImageURL   string `form:"image_url" json:"image_url"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Product name, category and price are required"})
		return
	}

	product, err := h.engine.CreateProduct(storeID, catalog.ProductInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Price:      req.Price,
		ImageURL:   req.ImageURL,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordProductOperation("create")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product added successfully",
		"data":    product,
	})
}

// BulkAddProducts imports products from an Excel sheet. Expected columns:
// category id, price, name, optional image URL. Invalid rows are skipped.
func (h *Handler) BulkAddProducts(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to open Excel file"})
		return
	}
	defer file.Close()

	xl, err := excelize.OpenReader(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to parse Excel file"})
		return
	}

	rows, err := xl.GetRows("Sheet1")
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Excel must have at least one row of data"})
		return
	}

	imported := 0
	for rowIndex, row := range rows[1:] {
		if len(row) < 3 {
			h.log.Warn("bulk import: incomplete row skipped", zap.Int("row", rowIndex+2))
			continue
		}

		categoryID, err := strconv.ParseUint(row[0], 10, 32)
		if err != nil {
			h.log.Warn("bulk import: invalid category id", zap.Int("row", rowIndex+2), zap.String("value", row[0]))
			continue
		}

		input := catalog.ProductInput{
			Name:       row[2],
			CategoryID: uint(categoryID),
			Price:      row[1],
		}
		if len(row) > 3 {
			input.ImageURL = row[3]
		}

		if _, err := h.engine.CreateProduct(storeID, input); err != nil {
			h.log.Warn("bulk import: row rejected", zap.Int("row", rowIndex+2), zap.Error(err))
			continue
		}
		imported++
	}

	if imported == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No valid rows found"})
		return
	}

	prometheus.RecordProductOperation("bulk_import")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bulk product upload successful",
		"count":   imported,
	})
}

// GetMyProducts returns the merchant's products with category names,
// optionally narrowed by a case-insensitive name search.
func (h *Handler) GetMyProducts(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	products, err := h.engine.DashboardProducts(storeID, c.Query("search"))
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

// ToggleProduct flips one product's visibility.
func (h *Handler) ToggleProduct(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid product ID format"})
		return
	}

	product, err := h.engine.ToggleProductVisibility(storeID, uint(id))
	if err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordProductOperation("toggle_visibility")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product updated successfully",
		"data":    product,
	})
}

// GetImageLibrary returns the active shared images merchants can pick from.
func (h *Handler) GetImageLibrary(c *gin.Context) {
	images, err := h.engine.Images(true)
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
