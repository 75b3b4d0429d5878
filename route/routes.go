package route

import (
	"souk/controller"
	"souk/utils"

	"github.com/gin-gonic/gin"
)

// SoukRoutes wires every endpoint of the storefront platform.
func SoukRoutes(router *gin.Engine, h *controller.Handler) {
	api := router.Group("/api")
	{
		api.POST("/register", h.RegisterStore)
		api.POST("/auth/merchant", h.MerchantLogin)
		api.POST("/auth/admin", h.AdminLogin)
		api.POST("/auth/refresh", h.RefreshTokenFunc)
		api.GET("/storefront/:store_id", h.GetStorefront)
	}

	dashboard := router.Group("/api/dashboard")
	dashboard.Use(utils.MerchantMiddleware())
	{
		dashboard.GET("/store", h.GetMyStore)
		dashboard.GET("/categories", h.GetMyCategories)
		dashboard.POST("/categories", h.AddCategory)
		dashboard.PATCH("/categories/:id/visibility", h.ToggleCategory)
		dashboard.GET("/products", h.GetMyProducts)
		dashboard.POST("/products", h.AddProduct)
		dashboard.POST("/products/import", h.BulkAddProducts)
		dashboard.PATCH("/products/:id/visibility", h.ToggleProduct)
		dashboard.GET("/images", h.GetImageLibrary)
	}

	admin := router.Group("/api/admin")
	admin.Use(utils.AdminMiddleware())
	{
		admin.GET("/overview", h.GetAdminOverview)
		admin.GET("/stores", h.ListStores)
		admin.PATCH("/stores/:id/active", h.ToggleStoreActive)
		admin.DELETE("/stores/:id", h.DeleteStore)
		admin.GET("/categories", h.ListAllCategories)
		admin.GET("/products", h.ListAllProducts)
		admin.GET("/images", h.ListImages)
		admin.POST("/images", h.AddImage)
		admin.PATCH("/images/:id/active", h.ToggleImage)
	}
}
