package controller

import (
	"net/http"

	"souk/prometheus"
	"souk/utils"

	"github.com/gin-gonic/gin"
)

// MerchantLogin exchanges a merchant code for session tokens. The code is
// the only credential; holding it grants full dashboard access.
func (h *Handler) MerchantLogin(c *gin.Context) {
	type Request struct {
		MerchantID string `form:"merchant_id" json:"merchant_id" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Merchant ID is required"})
		return
	}

	prometheus.AuthAttemptsCounter.Inc()

	store, err := h.engine.StoreByMerchantID(req.MerchantID)
	if err != nil {
		prometheus.AuthErrorsCounter.Inc()
		h.respondError(c, err)
		return
	}

	access, refresh, err := utils.GenerateTokens(utils.RoleMerchant, store.StoreID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
		"data":          store,
	})
}

// AdminLogin exchanges an admin code for session tokens.
func (h *Handler) AdminLogin(c *gin.Context) {
	type Request struct {
		AdminID string `form:"admin_id" json:"admin_id" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Admin ID is required"})
		return
	}

	prometheus.AuthAttemptsCounter.Inc()

	admin, err := h.engine.AdminByID(req.AdminID)
	if err != nil {
		prometheus.AuthErrorsCounter.Inc()
		h.respondError(c, err)
		return
	}

	access, refresh, err := utils.GenerateTokens(utils.RoleAdmin, admin.AdminID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to generate tokens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
		"data":          admin,
	})
}

// RefreshTokenFunc rotates a token pair.
func (h *Handler) RefreshTokenFunc(c *gin.Context) {
	type Request struct {
		RefreshToken string `form:"refresh_token" json:"refresh_token" binding:"required"`
	}

	var req Request
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Refresh token is required"})
		return
	}

	access, refresh, err := utils.RefreshTokens(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"access_token":  access,
		"refresh_token": refresh,
	})
}
