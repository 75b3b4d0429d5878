package database

import (
	"errors"
	"time"

	"souk/catalog"
	"souk/model"
	"souk/prometheus"

	"gorm.io/gorm"
)

// CatalogStore implements catalog.Store over GORM.
type CatalogStore struct {
	db *gorm.DB
}

// NewCatalogStore wraps a gorm handle as a record store.
func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

func (s *CatalogStore) CreateStore(store *model.Store) error {
	defer prometheus.TrackDBOperation("create_store")(time.Now())
	return s.db.Create(store).Error
}

func (s *CatalogStore) StoreByMerchantID(merchantID string) (*model.Store, error) {
	var store model.Store
	if err := s.db.Where("merchant_id = ?", merchantID).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (s *CatalogStore) StoreByStoreID(storeID string) (*model.Store, error) {
	var store model.Store
	if err := s.db.Where("store_id = ?", storeID).First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (s *CatalogStore) StoreByRowID(id uint) (*model.Store, error) {
	var store model.Store
	if err := s.db.First(&store, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (s *CatalogStore) AllStores() ([]model.Store, error) {
	var stores []model.Store
	if err := s.db.Order("created_at desc").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (s *CatalogStore) SetStoreActive(id uint, active bool) error {
	return s.updateOne(&model.Store{}, id, "is_active", active, catalog.ErrStoreNotFound)
}

func (s *CatalogStore) DeleteStoreRow(id uint) error {
	defer prometheus.TrackDBOperation("delete_store")(time.Now())
	result := s.db.Delete(&model.Store{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return catalog.ErrStoreNotFound
	}
	return nil
}

func (s *CatalogStore) CreateCategory(category *model.Category) error {
	defer prometheus.TrackDBOperation("create_category")(time.Now())
	return s.db.Create(category).Error
}

func (s *CatalogStore) CategoryByRowID(id uint) (*model.Category, error) {
	var category model.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *CatalogStore) CategoriesByStore(storeID string) ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.Where("store_id = ?", storeID).Order("sort_order asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogStore) AllCategories() ([]model.Category, error) {
	var categories []model.Category
	if err := s.db.Order("created_at desc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (s *CatalogStore) CountCategories(storeID string) (int, error) {
	var count int64
	if err := s.db.Model(&model.Category{}).Where("store_id = ?", storeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *CatalogStore) SetCategoryVisible(id uint, visible bool) error {
	return s.updateOne(&model.Category{}, id, "is_visible", visible, catalog.ErrCategoryNotFound)
}

func (s *CatalogStore) DeleteCategoriesByStore(storeID string) error {
	return s.db.Where("store_id = ?", storeID).Delete(&model.Category{}).Error
}

func (s *CatalogStore) CreateProduct(product *model.Product) error {
	defer prometheus.TrackDBOperation("create_product")(time.Now())
	return s.db.Create(product).Error
}

func (s *CatalogStore) ProductByRowID(id uint) (*model.Product, error) {
	var product model.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (s *CatalogStore) ProductsByStore(storeID string) ([]model.Product, error) {
	var products []model.Product
	if err := s.db.Where("store_id = ?", storeID).Order("sort_order asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) AllProducts() ([]model.Product, error) {
	var products []model.Product
	if err := s.db.Order("created_at desc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *CatalogStore) CountProducts(storeID string) (int, error) {
	var count int64
	if err := s.db.Model(&model.Product{}).Where("store_id = ?", storeID).Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count), nil
}

func (s *CatalogStore) SetProductVisible(id uint, visible bool) error {
	return s.updateOne(&model.Product{}, id, "is_visible", visible, catalog.ErrProductNotFound)
}

func (s *CatalogStore) DeleteProductsByStore(storeID string) error {
	return s.db.Where("store_id = ?", storeID).Delete(&model.Product{}).Error
}

func (s *CatalogStore) CreateImage(item *model.ImageLibraryItem) error {
	return s.db.Create(item).Error
}

func (s *CatalogStore) ImageByRowID(id uint) (*model.ImageLibraryItem, error) {
	var item model.ImageLibraryItem
	if err := s.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrImageNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (s *CatalogStore) Images(activeOnly bool) ([]model.ImageLibraryItem, error) {
	query := s.db.Order("category asc")
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	var items []model.ImageLibraryItem
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *CatalogStore) SetImageActive(id uint, active bool) error {
	return s.updateOne(&model.ImageLibraryItem{}, id, "is_active", active, catalog.ErrImageNotFound)
}

func (s *CatalogStore) AdminByAdminID(adminID string) (*model.AdminPanel, error) {
	var admin model.AdminPanel
	if err := s.db.Where("admin_id = ?", adminID).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrAdminNotFound
		}
		return nil, err
	}
	return &admin, nil
}

func (s *CatalogStore) Transaction(fn func(tx catalog.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewCatalogStore(tx))
	})
}

func (s *CatalogStore) updateOne(target interface{}, id uint, column string, value interface{}, notFound error) error {
	result := s.db.Model(target).Where("id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound
	}
	return nil
}
