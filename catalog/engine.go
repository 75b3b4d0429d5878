package catalog

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"souk/model"
)

// Engine enforces the scoping and cascade rules that keep a store's
// categories and products coherent. All reads and writes go through the
// record-store collaborator; derived shapes are recomputed on every call.
type Engine struct {
	store Store
}

// NewEngine creates an engine over a record store.
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	StoreName string
	City      string
	District  string
	Phone     string
	Currency  string
}

// RegisterStore validates the form, issues merchant and store codes and
// creates the store record, active by default.
func (e *Engine) RegisterStore(in RegisterInput) (*model.Store, error) {
	in.StoreName = strings.TrimSpace(in.StoreName)
	in.City = strings.TrimSpace(in.City)
	in.District = strings.TrimSpace(in.District)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.StoreName == "" || in.City == "" || in.District == "" || in.Phone == "" {
		return nil, fmt.Errorf("%w: store name, city, district and phone are required", ErrValidation)
	}
	if in.Currency == "" {
		in.Currency = model.CurrencyMAD
	}
	if !model.ValidCurrency(in.Currency) {
		return nil, fmt.Errorf("%w: unsupported currency %q", ErrValidation, in.Currency)
	}

	store := &model.Store{
		MerchantID: NewMerchantID(),
		StoreID:    NewStoreID(),
		StoreName:  in.StoreName,
		City:       in.City,
		District:   in.District,
		Phone:      in.Phone,
		Currency:   in.Currency,
		IsActive:   true,
	}
	if err := e.store.CreateStore(store); err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}
	return store, nil
}

// StoreByMerchantID resolves a store from its dashboard code.
func (e *Engine) StoreByMerchantID(merchantID string) (*model.Store, error) {
	return e.store.StoreByMerchantID(merchantID)
}

// StoreByStoreID resolves a store from its public code.
func (e *Engine) StoreByStoreID(storeID string) (*model.Store, error) {
	return e.store.StoreByStoreID(storeID)
}

// AdminByID resolves an admin panel record from its access code.
func (e *Engine) AdminByID(adminID string) (*model.AdminPanel, error) {
	return e.store.AdminByAdminID(adminID)
}

// CreateCategory appends a category to a store. sort_order is the count of
// categories already in the store, so ordering is append-only.
func (e *Engine) CreateCategory(storeID, name string) (*CategoryView, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if _, err := e.store.StoreByStoreID(storeID); err != nil {
		return nil, err
	}

	count, err := e.store.CountCategories(storeID)
	if err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}

	category := &model.Category{
		StoreID:   storeID,
		Name:      name,
		SortOrder: count,
		IsVisible: true,
	}
	if err := e.store.CreateCategory(category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &CategoryView{Category: *category, ProductsCount: 0}, nil
}

// ProductInput carries the new-product form fields. Price arrives as the raw
// form string and must parse as a non-negative number.
type ProductInput struct {
	Name       string
	CategoryID uint
	Price      string
	ImageURL   string
}

// CreateProduct creates a product inside one of the store's own categories.
// The denormalized store_id is written here, never taken from input.
func (e *Engine) CreateProduct(storeID string, in ProductInput) (*ProductView, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if in.CategoryID == 0 {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(in.Price), 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	}

	category, err := e.store.CategoryByRowID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category.StoreID != storeID {
		return nil, ErrNotOwned
	}

	count, err := e.store.CountProducts(storeID)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	product := &model.Product{
		StoreID:    storeID,
		CategoryID: category.ID,
		Name:       in.Name,
		Price:      price,
		ImageURL:   strings.TrimSpace(in.ImageURL),
		SortOrder:  count,
		IsVisible:  true,
	}
	if err := e.store.CreateProduct(product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return &ProductView{Product: *product, CategoryName: category.Name}, nil
}

// ToggleCategoryVisibility flips one category's is_visible flag. Products
// keep their own flags untouched.
func (e *Engine) ToggleCategoryVisibility(storeID string, id uint) (*model.Category, error) {
	category, err := e.store.CategoryByRowID(id)
	if err != nil {
		return nil, err
	}
	if category.StoreID != storeID {
		return nil, ErrNotOwned
	}
	if err := e.store.SetCategoryVisible(id, !category.IsVisible); err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	category.IsVisible = !category.IsVisible
	return category, nil
}

// ToggleProductVisibility flips one product's is_visible flag.
func (e *Engine) ToggleProductVisibility(storeID string, id uint) (*model.Product, error) {
	product, err := e.store.ProductByRowID(id)
	if err != nil {
		return nil, err
	}
	if product.StoreID != storeID {
		return nil, ErrNotOwned
	}
	if err := e.store.SetProductVisible(id, !product.IsVisible); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	product.IsVisible = !product.IsVisible
	return product, nil
}

// ToggleStoreActive flips a store's is_active flag. Categories and products
// are untouched; the storefront filter hides them at display time.
func (e *Engine) ToggleStoreActive(id uint) (*model.Store, error) {
	store, err := e.store.StoreByRowID(id)
	if err != nil {
		return nil, err
	}
	if err := e.store.SetStoreActive(id, !store.IsActive); err != nil {
		return nil, fmt.Errorf("update store: %w", err)
	}
	store.IsActive = !store.IsActive
	return store, nil
}

// DeleteStore removes a store and everything scoped to it: products first,
// then categories, then the store row, all inside one transaction.
func (e *Engine) DeleteStore(id uint) error {
	store, err := e.store.StoreByRowID(id)
	if err != nil {
		return err
	}
	return e.store.Transaction(func(tx Store) error {
		if err := tx.DeleteProductsByStore(store.StoreID); err != nil {
			return fmt.Errorf("delete products: %w", err)
		}
		if err := tx.DeleteCategoriesByStore(store.StoreID); err != nil {
			return fmt.Errorf("delete categories: %w", err)
		}
		if err := tx.DeleteStoreRow(store.ID); err != nil {
			return fmt.Errorf("delete store: %w", err)
		}
		return nil
	})
}

// DashboardCategories returns the store's categories with product counts.
func (e *Engine) DashboardCategories(storeID string) ([]CategoryView, error) {
	categories, err := e.store.CategoriesByStore(storeID)
	if err != nil {
		return nil, err
	}
	products, err := e.store.ProductsByStore(storeID)
	if err != nil {
		return nil, err
	}
	return CategoriesWithCounts(categories, products), nil
}

// DashboardProducts returns the store's products with category names,
// optionally narrowed by a case-insensitive name search.
func (e *Engine) DashboardProducts(storeID, query string) ([]ProductView, error) {
	products, err := e.store.ProductsByStore(storeID)
	if err != nil {
		return nil, err
	}
	categories, err := e.store.CategoriesByStore(storeID)
	if err != nil {
		return nil, err
	}
	if query != "" {
		matched := products[:0]
		for _, product := range products {
			if MatchesName(product.Name, query) {
				matched = append(matched, product)
			}
		}
		products = matched
	}
	return ProductsWithCategoryNames(products, categories), nil
}

// DashboardStats recomputes the merchant overview numbers.
func (e *Engine) DashboardStats(storeID string) (DashboardStats, error) {
	categories, err := e.store.CategoriesByStore(storeID)
	if err != nil {
		return DashboardStats{}, err
	}
	products, err := e.store.ProductsByStore(storeID)
	if err != nil {
		return DashboardStats{}, err
	}
	return ComputeDashboardStats(categories, products), nil
}

// Storefront loads the public view for a store code. A missing store and an
// inactive store both come back as a blocked view, with distinct states.
func (e *Engine) Storefront(storeID string, selectedCategory uint, query string) (*StorefrontView, error) {
	store, err := e.store.StoreByStoreID(storeID)
	if err != nil {
		if errors.Is(err, ErrStoreNotFound) {
			return BuildStorefront(nil, nil, nil, 0, ""), nil
		}
		return nil, err
	}
	categories, err := e.store.CategoriesByStore(store.StoreID)
	if err != nil {
		return nil, err
	}
	products, err := e.store.ProductsByStore(store.StoreID)
	if err != nil {
		return nil, err
	}
	return BuildStorefront(store, categories, products, selectedCategory, query), nil
}

// AdminStores lists every store newest first, optionally narrowed by a
// case-insensitive search over name, city and store code.
func (e *Engine) AdminStores(query string) ([]model.Store, error) {
	stores, err := e.store.AllStores()
	if err != nil {
		return nil, err
	}
	if query == "" {
		return stores, nil
	}
	q := strings.ToLower(query)
	matched := make([]model.Store, 0, len(stores))
	for _, store := range stores {
		if strings.Contains(strings.ToLower(store.StoreName), q) ||
			strings.Contains(strings.ToLower(store.City), q) ||
			strings.Contains(strings.ToLower(store.StoreID), q) {
			matched = append(matched, store)
		}
	}
	return matched, nil
}

// AdminStats recomputes the platform-wide numbers from the full snapshot.
func (e *Engine) AdminStats() (AdminStats, error) {
	stores, err := e.store.AllStores()
	if err != nil {
		return AdminStats{}, err
	}
	categories, err := e.store.AllCategories()
	if err != nil {
		return AdminStats{}, err
	}
	products, err := e.store.AllProducts()
	if err != nil {
		return AdminStats{}, err
	}
	images, err := e.store.Images(false)
	if err != nil {
		return AdminStats{}, err
	}
	return ComputeAdminStats(stores, categories, products, images), nil
}

// AdminCategories lists every category annotated with its store's name.
func (e *Engine) AdminCategories() ([]CategoryAdminView, error) {
	categories, err := e.store.AllCategories()
	if err != nil {
		return nil, err
	}
	stores, err := e.store.AllStores()
	if err != nil {
		return nil, err
	}
	views := make([]CategoryAdminView, 0, len(categories))
	for _, category := range categories {
		views = append(views, CategoryAdminView{
			Category:  category,
			StoreName: storeNameFor(stores, category.StoreID),
		})
	}
	return views, nil
}

// AdminProducts lists every product annotated with category, store and
// currency.
func (e *Engine) AdminProducts() ([]ProductAdminView, error) {
	products, err := e.store.AllProducts()
	if err != nil {
		return nil, err
	}
	categories, err := e.store.AllCategories()
	if err != nil {
		return nil, err
	}
	stores, err := e.store.AllStores()
	if err != nil {
		return nil, err
	}
	views := make([]ProductAdminView, 0, len(products))
	for _, product := range products {
		view := ProductAdminView{
			Product:      product,
			CategoryName: UnspecifiedCategoryName,
			StoreName:    UnknownStoreName,
		}
		for _, category := range categories {
			if category.ID == product.CategoryID {
				view.CategoryName = category.Name
				break
			}
		}
		for _, store := range stores {
			if store.StoreID == product.StoreID {
				view.StoreName = store.StoreName
				view.Currency = store.Currency
				break
			}
		}
		views = append(views, view)
	}
	return views, nil
}

// Images lists the shared image library, active items only for merchants.
func (e *Engine) Images(activeOnly bool) ([]model.ImageLibraryItem, error) {
	return e.store.Images(activeOnly)
}

// AddImage adds an item to the shared image library, active by default.
func (e *Engine) AddImage(name, category, imageURL string) (*model.ImageLibraryItem, error) {
	name = strings.TrimSpace(name)
	imageURL = strings.TrimSpace(imageURL)
	if name == "" || imageURL == "" {
		return nil, fmt.Errorf("%w: image name and URL are required", ErrValidation)
	}
	item := &model.ImageLibraryItem{
		Name:     name,
		Category: strings.TrimSpace(category),
		ImageURL: imageURL,
		IsActive: true,
	}
	if err := e.store.CreateImage(item); err != nil {
		return nil, fmt.Errorf("create image: %w", err)
	}
	return item, nil
}

// ToggleImage flips one library item's is_active flag.
func (e *Engine) ToggleImage(id uint) (*model.ImageLibraryItem, error) {
	item, err := e.store.ImageByRowID(id)
	if err != nil {
		return nil, err
	}
	if err := e.store.SetImageActive(id, !item.IsActive); err != nil {
		return nil, fmt.Errorf("update image: %w", err)
	}
	item.IsActive = !item.IsActive
	return item, nil
}

func storeNameFor(stores []model.Store, storeID string) string {
	for _, store := range stores {
		if store.StoreID == storeID {
			return store.StoreName
		}
	}
	return UnknownStoreName
}
