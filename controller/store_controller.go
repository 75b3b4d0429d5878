package controller

import (
	"net/http"

	"souk/catalog"
	"souk/prometheus"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterStore creates a new store and returns the issued codes. The
// merchant must save both: the merchant code opens the dashboard, the store
// code is shared with customers.
func (h *Handler) RegisterStore(c *gin.Context) {
	type Request struct {
		StoreName string `form:"store_name" json:"store_name" binding:"required"`
		City      string `form:"city" json:"city" binding:"required"`
		District  string `form:"district" json:"district" binding:"required"`
		Phone     string `form:"phone" json:"phone" binding:"required"`
		Currency  string `form:"currency" json:"currency"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Store name, city, district and phone are required"})
		return
	}

	store, err := h.engine.RegisterStore(catalog.RegisterInput{
		StoreName: req.StoreName,
		City:      req.City,
		District:  req.District,
		Phone:     req.Phone,
		Currency:  req.Currency,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	prometheus.RecordStoreOperation("register")
	h.log.Info("store registered",
		zap.String("store_id", store.StoreID),
		zap.String("city", store.City))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Store registered successfully",
		"data": gin.H{
			"merchant_id": store.MerchantID,
			"store_id":    store.StoreID,
			"store":       store,
		},
	})
}

// GetMyStore returns the merchant's store together with the recomputed
// overview stats.
func (h *Handler) GetMyStore(c *gin.Context) {
	storeID, ok := storeIDFromContext(c)
	if !ok {
		return
	}

	store, err := h.engine.StoreByStoreID(storeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	stats, err := h.engine.DashboardStats(storeID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"store": store,
			"stats": stats,
		},
	})
}
