package catalog

import (
	"errors"

	"souk/model"
)

// Lookup failures by business code or row id. Anything else coming out of a
// Store is a collaborator failure and is surfaced generically.
var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrAdminNotFound    = errors.New("admin panel not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrImageNotFound    = errors.New("image not found")

	// ErrValidation wraps input rejections; no write is attempted.
	ErrValidation = errors.New("invalid input")

	// ErrNotOwned marks a record that exists but belongs to another store.
	ErrNotOwned = errors.New("record does not belong to this store")
)

// Store is the record-store collaborator the engine runs against. The
// production implementation is GORM over Postgres; tests use MemStore.
//
// List methods return categories and products ordered by sort_order
// ascending, stores newest first, and images by category label ascending.
type Store interface {
	CreateStore(store *model.Store) error
	StoreByMerchantID(merchantID string) (*model.Store, error)
	StoreByStoreID(storeID string) (*model.Store, error)
	StoreByRowID(id uint) (*model.Store, error)
	AllStores() ([]model.Store, error)
	SetStoreActive(id uint, active bool) error
	DeleteStoreRow(id uint) error

	CreateCategory(category *model.Category) error
	CategoryByRowID(id uint) (*model.Category, error)
	CategoriesByStore(storeID string) ([]model.Category, error)
	AllCategories() ([]model.Category, error)
	CountCategories(storeID string) (int, error)
	SetCategoryVisible(id uint, visible bool) error
	DeleteCategoriesByStore(storeID string) error

	CreateProduct(product *model.Product) error
	ProductByRowID(id uint) (*model.Product, error)
	ProductsByStore(storeID string) ([]model.Product, error)
	AllProducts() ([]model.Product, error)
	CountProducts(storeID string) (int, error)
	SetProductVisible(id uint, visible bool) error
	DeleteProductsByStore(storeID string) error

	CreateImage(item *model.ImageLibraryItem) error
	ImageByRowID(id uint) (*model.ImageLibraryItem, error)
	Images(activeOnly bool) ([]model.ImageLibraryItem, error)
	SetImageActive(id uint, active bool) error

	AdminByAdminID(adminID string) (*model.AdminPanel, error)

	// Transaction runs fn against a transactional view of the store and
	// rolls back if fn returns an error.
	Transaction(fn func(tx Store) error) error
}
