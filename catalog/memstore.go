package catalog

import (
	"sort"
	"time"

	"souk/model"
)

// MemStore is an in-memory Store used by the test suites. It mirrors the
// record-store contract, including ordering, but not durability. Sessions
// are single-threaded, so it does no locking; Transaction applies fn
// directly with no rollback.
type MemStore struct {
	stores     []model.Store
	categories []model.Category
	products   []model.Product
	images     []model.ImageLibraryItem
	admins     []model.AdminPanel
	nextID     uint
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{nextID: 1}
}

func (m *MemStore) allocID() uint {
	id := m.nextID
	m.nextID++
	return id
}

// SeedAdmin registers an admin panel record, for tests and bootstrap.
func (m *MemStore) SeedAdmin(adminID, name, email string) *model.AdminPanel {
	admin := model.AdminPanel{AdminID: adminID, AdminName: name, Email: email}
	admin.ID = m.allocID()
	admin.CreatedAt = time.Now()
	m.admins = append(m.admins, admin)
	return &admin
}

func (m *MemStore) CreateStore(store *model.Store) error {
	store.ID = m.allocID()
	store.CreatedAt = time.Now()
	m.stores = append(m.stores, *store)
	return nil
}

func (m *MemStore) StoreByMerchantID(merchantID string) (*model.Store, error) {
	for i := range m.stores {
		if m.stores[i].MerchantID == merchantID {
			store := m.stores[i]
			return &store, nil
		}
	}
	return nil, ErrStoreNotFound
}

func (m *MemStore) StoreByStoreID(storeID string) (*model.Store, error) {
	for i := range m.stores {
		if m.stores[i].StoreID == storeID {
			store := m.stores[i]
			return &store, nil
		}
	}
	return nil, ErrStoreNotFound
}

func (m *MemStore) StoreByRowID(id uint) (*model.Store, error) {
	for i := range m.stores {
		if m.stores[i].ID == id {
			store := m.stores[i]
			return &store, nil
		}
	}
	return nil, ErrStoreNotFound
}

func (m *MemStore) AllStores() ([]model.Store, error) {
	stores := append([]model.Store(nil), m.stores...)
	sort.SliceStable(stores, func(i, j int) bool {
		return stores[i].CreatedAt.After(stores[j].CreatedAt)
	})
	return stores, nil
}

func (m *MemStore) SetStoreActive(id uint, active bool) error {
	for i := range m.stores {
		if m.stores[i].ID == id {
			m.stores[i].IsActive = active
			return nil
		}
	}
	return ErrStoreNotFound
}

func (m *MemStore) DeleteStoreRow(id uint) error {
	for i := range m.stores {
		if m.stores[i].ID == id {
			m.stores = append(m.stores[:i], m.stores[i+1:]...)
			return nil
		}
	}
	return ErrStoreNotFound
}

func (m *MemStore) CreateCategory(category *model.Category) error {
	category.ID = m.allocID()
	category.CreatedAt = time.Now()
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MemStore) CategoryByRowID(id uint) (*model.Category, error) {
	for i := range m.categories {
		if m.categories[i].ID == id {
			category := m.categories[i]
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (m *MemStore) CategoriesByStore(storeID string) ([]model.Category, error) {
	var categories []model.Category
	for _, category := range m.categories {
		if category.StoreID == storeID {
			categories = append(categories, category)
		}
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].SortOrder < categories[j].SortOrder
	})
	return categories, nil
}

func (m *MemStore) AllCategories() ([]model.Category, error) {
	return append([]model.Category(nil), m.categories...), nil
}

func (m *MemStore) CountCategories(storeID string) (int, error) {
	count := 0
	for _, category := range m.categories {
		if category.StoreID == storeID {
			count++
		}
	}
	return count, nil
}

func (m *MemStore) SetCategoryVisible(id uint, visible bool) error {
	for i := range m.categories {
		if m.categories[i].ID == id {
			m.categories[i].IsVisible = visible
			return nil
		}
	}
	return ErrCategoryNotFound
}

func (m *MemStore) DeleteCategoriesByStore(storeID string) error {
	kept := m.categories[:0]
	for _, category := range m.categories {
		if category.StoreID != storeID {
			kept = append(kept, category)
		}
	}
	m.categories = kept
	return nil
}

func (m *MemStore) CreateProduct(product *model.Product) error {
	product.ID = m.allocID()
	product.CreatedAt = time.Now()
	m.products = append(m.products, *product)
	return nil
}

func (m *MemStore) ProductByRowID(id uint) (*model.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			product := m.products[i]
			return &product, nil
		}
	}
	return nil, ErrProductNotFound
}

func (m *MemStore) ProductsByStore(storeID string) ([]model.Product, error) {
	var products []model.Product
	for _, product := range m.products {
		if product.StoreID == storeID {
			products = append(products, product)
		}
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].SortOrder < products[j].SortOrder
	})
	return products, nil
}

func (m *MemStore) AllProducts() ([]model.Product, error) {
	return append([]model.Product(nil), m.products...), nil
}

func (m *MemStore) CountProducts(storeID string) (int, error) {
	count := 0
	for _, product := range m.products {
		if product.StoreID == storeID {
			count++
		}
	}
	return count, nil
}

func (m *MemStore) SetProductVisible(id uint, visible bool) error {
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].IsVisible = visible
			return nil
		}
	}
	return ErrProductNotFound
}

func (m *MemStore) DeleteProductsByStore(storeID string) error {
	kept := m.products[:0]
	for _, product := range m.products {
		if product.StoreID != storeID {
			kept = append(kept, product)
		}
	}
	m.products = kept
	return nil
}

func (m *MemStore) CreateImage(item *model.ImageLibraryItem) error {
	item.ID = m.allocID()
	item.CreatedAt = time.Now()
	m.images = append(m.images, *item)
	return nil
}

func (m *MemStore) ImageByRowID(id uint) (*model.ImageLibraryItem, error) {
	for i := range m.images {
		if m.images[i].ID == id {
			item := m.images[i]
			return &item, nil
		}
	}
	return nil, ErrImageNotFound
}

func (m *MemStore) Images(activeOnly bool) ([]model.ImageLibraryItem, error) {
	var items []model.ImageLibraryItem
	for _, item := range m.images {
		if activeOnly && !item.IsActive {
			continue
		}
		items = append(items, item)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Category < items[j].Category
	})
	return items, nil
}

func (m *MemStore) SetImageActive(id uint, active bool) error {
	for i := range m.images {
		if m.images[i].ID == id {
			m.images[i].IsActive = active
			return nil
		}
	}
	return ErrImageNotFound
}

func (m *MemStore) AdminByAdminID(adminID string) (*model.AdminPanel, error) {
	for i := range m.admins {
		if m.admins[i].AdminID == adminID {
			admin := m.admins[i]
			return &admin, nil
		}
	}
	return nil, ErrAdminNotFound
}

func (m *MemStore) Transaction(fn func(tx Store) error) error {
	return fn(m)
}
