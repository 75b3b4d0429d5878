package catalog

import (
	"strings"

	"souk/model"
)

// StorefrontState is the outcome of loading a public store view.
type StorefrontState string

const (
	StorefrontNotFound StorefrontState = "not_found"
	StorefrontInactive StorefrontState = "inactive"
	StorefrontReady    StorefrontState = "ready"
)

// StorefrontView is what a customer sees for one store code.
type StorefrontView struct {
	State      StorefrontState `json:"state"`
	Store      *model.Store    `json:"store,omitempty"`
	Categories []CategoryView  `json:"categories,omitempty"`
	Products   []ProductView   `json:"products,omitempty"`
}

// MatchesName reports whether a product name matches a search query,
// case-insensitive substring. An empty query matches everything.
func MatchesName(name, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(query))
}

// BuildStorefront narrows a store's catalog to what a customer may see.
//
// A hidden category drops out of the category list, but its products keep
// their own is_visible flags and still appear in the product list; their
// category name resolves to the unspecified sentinel because the hidden
// category is no longer in scope. selectedCategory narrows to one visible
// category when nonzero; query narrows by name. Both compose by AND after
// the visibility filter.
func BuildStorefront(store *model.Store, categories []model.Category, products []model.Product, selectedCategory uint, query string) *StorefrontView {
	if store == nil {
		return &StorefrontView{State: StorefrontNotFound}
	}
	if !store.IsActive {
		return &StorefrontView{State: StorefrontInactive}
	}

	visibleCategories := make([]model.Category, 0, len(categories))
	for _, category := range categories {
		if category.IsVisible {
			visibleCategories = append(visibleCategories, category)
		}
	}

	visibleProducts := make([]model.Product, 0, len(products))
	for _, product := range products {
		if !product.IsVisible {
			continue
		}
		if selectedCategory != 0 && product.CategoryID != selectedCategory {
			continue
		}
		if !MatchesName(product.Name, query) {
			continue
		}
		visibleProducts = append(visibleProducts, product)
	}

	// Category counts reflect visible products only, before narrowing.
	countable := make([]model.Product, 0, len(products))
	for _, product := range products {
		if product.IsVisible {
			countable = append(countable, product)
		}
	}

	return &StorefrontView{
		State:      StorefrontReady,
		Store:      store,
		Categories: CategoriesWithCounts(visibleCategories, countable),
		Products:   ProductsWithCategoryNames(visibleProducts, visibleCategories),
	}
}
