package catalog

import (
	"math"

	"souk/model"
)

// Display sentinels for dangling references, matching the storefront UI copy.
const (
	UnspecifiedCategoryName = "غير محدد"
	UnknownStoreName        = "غير معروف"
)

// CategoryView is a category annotated with its product count. Derived on
// every load, never persisted.
type CategoryView struct {
	model.Category
	ProductsCount int `json:"products_count"`
}

// ProductView is a product annotated with its owning category's name.
type ProductView struct {
	model.Product
	CategoryName string `json:"category_name"`
}

// CategoryAdminView is a category annotated with its store's name for the
// cross-store admin listing.
type CategoryAdminView struct {
	model.Category
	StoreName string `json:"store_name"`
}

// ProductAdminView is a product annotated with category, store and currency
// for the cross-store admin listing.
type ProductAdminView struct {
	model.Product
	CategoryName string `json:"category_name"`
	StoreName    string `json:"store_name"`
	Currency     string `json:"currency"`
}

// DashboardStats summarizes one merchant's catalog.
type DashboardStats struct {
	TotalCategories   int `json:"total_categories"`
	VisibleCategories int `json:"visible_categories"`
	TotalProducts     int `json:"total_products"`
	VisibleProducts   int `json:"visible_products"`
}

// AdminStats summarizes the whole platform.
type AdminStats struct {
	TotalStores     int `json:"total_stores"`
	ActiveStores    int `json:"active_stores"`
	TotalCategories int `json:"total_categories"`
	TotalProducts   int `json:"total_products"`
	TotalImages     int `json:"total_images"`
	ActiveImages    int `json:"active_images"`
	ActivityRate    int `json:"activity_rate"`
}

// CategoriesWithCounts pairs each category with the number of products whose
// category_id references it.
func CategoriesWithCounts(categories []model.Category, products []model.Product) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		count := 0
		for _, product := range products {
			if product.CategoryID == category.ID {
				count++
			}
		}
		views = append(views, CategoryView{Category: category, ProductsCount: count})
	}
	return views
}

// ProductsWithCategoryNames pairs each product with its category's name, or
// the unspecified sentinel when the reference dangles.
func ProductsWithCategoryNames(products []model.Product, categories []model.Category) []ProductView {
	views := make([]ProductView, 0, len(products))
	for _, product := range products {
		name := UnspecifiedCategoryName
		for _, category := range categories {
			if category.ID == product.CategoryID {
				name = category.Name
				break
			}
		}
		views = append(views, ProductView{Product: product, CategoryName: name})
	}
	return views
}

// ComputeDashboardStats recomputes the merchant overview numbers from the
// current snapshot.
func ComputeDashboardStats(categories []model.Category, products []model.Product) DashboardStats {
	stats := DashboardStats{
		TotalCategories: len(categories),
		TotalProducts:   len(products),
	}
	for _, category := range categories {
		if category.IsVisible {
			stats.VisibleCategories++
		}
	}
	for _, product := range products {
		if product.IsVisible {
			stats.VisibleProducts++
		}
	}
	return stats
}

// ComputeAdminStats recomputes the platform-wide numbers. The activity rate
// is round(active stores / total stores * 100) and 0 when no stores exist.
func ComputeAdminStats(stores []model.Store, categories []model.Category, products []model.Product, images []model.ImageLibraryItem) AdminStats {
	stats := AdminStats{
		TotalStores:     len(stores),
		TotalCategories: len(categories),
		TotalProducts:   len(products),
		TotalImages:     len(images),
	}
	for _, store := range stores {
		if store.IsActive {
			stats.ActiveStores++
		}
	}
	for _, image := range images {
		if image.IsActive {
			stats.ActiveImages++
		}
	}
	if stats.TotalStores > 0 {
		stats.ActivityRate = int(math.Round(float64(stats.ActiveStores) / float64(stats.TotalStores) * 100))
	}
	return stats
}
