package catalog

import (
	"errors"
	"testing"

	"souk/model"
)

func newTestEngine(t *testing.T) (*Engine, *MemStore, *model.Store) {
	t.Helper()
	mem := NewMemStore()
	engine := NewEngine(mem)
	store, err := engine.RegisterStore(RegisterInput{
		StoreName: "مقهى الأطلس",
		City:      "الدار البيضاء",
		District:  "المعاريف",
		Phone:     "0600000000",
	})
	if err != nil {
		t.Fatalf("RegisterStore: %v", err)
	}
	return engine, mem, store
}

func TestRegisterStoreDefaults(t *testing.T) {
	_, _, store := newTestEngine(t)

	if store.Currency != model.CurrencyMAD {
		t.Errorf("expected default currency MAD, got %q", store.Currency)
	}
	if !store.IsActive {
		t.Error("expected new store to be active")
	}
	if store.MerchantID == "" || store.StoreID == "" {
		t.Error("expected both codes to be issued")
	}
	if store.MerchantID == store.StoreID {
		t.Error("merchant and store codes must differ")
	}
}

func TestRegisterStoreValidation(t *testing.T) {
	engine := NewEngine(NewMemStore())

	_, err := engine.RegisterStore(RegisterInput{StoreName: "متجر", City: "نواكشوط"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing fields, got %v", err)
	}

	_, err = engine.RegisterStore(RegisterInput{
		StoreName: "متجر",
		City:      "نواكشوط",
		District:  "تفرغ زينة",
		Phone:     "22000000",
		Currency:  "USD",
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for unsupported currency, got %v", err)
	}
}

func TestCreateCategorySortOrder(t *testing.T) {
	engine, _, store := newTestEngine(t)

	for i, name := range []string{"مشروبات ساخنة", "عصائر", "حلويات"} {
		category, err := engine.CreateCategory(store.StoreID, name)
		if err != nil {
			t.Fatalf("CreateCategory(%q): %v", name, err)
		}
		if category.SortOrder != i {
			t.Errorf("category %q: expected sort_order %d, got %d", name, i, category.SortOrder)
		}
		if !category.IsVisible {
			t.Errorf("category %q: expected visible by default", name)
		}
	}
}

func TestCreateCategoryUnknownStore(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	_, err := engine.CreateCategory("SMISSING1", "مشروبات")
	if !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("expected ErrStoreNotFound, got %v", err)
	}
}

func TestCreateProduct(t *testing.T) {
	engine, _, store := newTestEngine(t)

	category, err := engine.CreateCategory(store.StoreID, "مشروبات")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	product, err := engine.CreateProduct(store.StoreID, ProductInput{
		Name:       "حليب أطلس",
		CategoryID: category.ID,
		Price:      "12.50",
	})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	if product.Price != 12.50 {
		t.Errorf("expected price 12.50, got %v", product.Price)
	}
	if product.CategoryName != "مشروبات" {
		t.Errorf("expected category name resolved, got %q", product.CategoryName)
	}
	if product.StoreID != store.StoreID {
		t.Errorf("expected store code %q stamped on product, got %q", store.StoreID, product.StoreID)
	}
	if product.SortOrder != 0 {
		t.Errorf("expected first product sort_order 0, got %d", product.SortOrder)
	}

	second, err := engine.CreateProduct(store.StoreID, ProductInput{
		Name:       "شاي بالنعناع",
		CategoryID: category.ID,
		Price:      "8",
	})
	if err != nil {
		t.Fatalf("CreateProduct second: %v", err)
	}
	if second.SortOrder != 1 {
		t.Errorf("expected second product sort_order 1, got %d", second.SortOrder)
	}
}

func TestCreateProductBadPrice(t *testing.T) {
	engine, _, store := newTestEngine(t)
	category, err := engine.CreateCategory(store.StoreID, "مشروبات")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	for _, price := range []string{"", "abc", "-5", "NaN", "Inf", "+Inf", "-Inf"} {
		_, err := engine.CreateProduct(store.StoreID, ProductInput{
			Name:       "منتج",
			CategoryID: category.ID,
			Price:      price,
		})
		if !errors.Is(err, ErrValidation) {
			t.Errorf("price %q: expected ErrValidation, got %v", price, err)
		}
	}

	// Zero is a legal price.
	if _, err := engine.CreateProduct(store.StoreID, ProductInput{
		Name:       "عينة مجانية",
		CategoryID: category.ID,
		Price:      "0",
	}); err != nil {
		t.Errorf("price 0: expected success, got %v", err)
	}
}

func TestCreateProductForeignCategory(t *testing.T) {
	engine, _, store := newTestEngine(t)

	other, err := engine.RegisterStore(RegisterInput{
		StoreName: "بقالة الحي",
		City:      "داكار",
		District:  "بلاطو",
		Phone:     "770000000",
		Currency:  model.CurrencyXOF,
	})
	if err != nil {
		t.Fatalf("RegisterStore other: %v", err)
	}
	foreign, err := engine.CreateCategory(other.StoreID, "خضروات")
	if err != nil {
		t.Fatalf("CreateCategory other: %v", err)
	}

	_, err = engine.CreateProduct(store.StoreID, ProductInput{
		Name:       "طماطم",
		CategoryID: foreign.ID,
		Price:      "3",
	})
	if !errors.Is(err, ErrNotOwned) {
		t.Errorf("expected ErrNotOwned for another store's category, got %v", err)
	}
}

func TestToggleVisibility(t *testing.T) {
	engine, _, store := newTestEngine(t)
	category, err := engine.CreateCategory(store.StoreID, "مشروبات")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	toggled, err := engine.ToggleCategoryVisibility(store.StoreID, category.ID)
	if err != nil {
		t.Fatalf("ToggleCategoryVisibility: %v", err)
	}
	if toggled.IsVisible {
		t.Error("expected category hidden after first toggle")
	}

	toggled, err = engine.ToggleCategoryVisibility(store.StoreID, category.ID)
	if err != nil {
		t.Fatalf("ToggleCategoryVisibility again: %v", err)
	}
	if !toggled.IsVisible {
		t.Error("expected category visible after second toggle")
	}
}

func TestToggleVisibilityOwnership(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	other, err := engine.RegisterStore(RegisterInput{
		StoreName: "بقالة",
		City:      "نواكشوط",
		District:  "لكصر",
		Phone:     "22000000",
		Currency:  model.CurrencyMRU,
	})
	if err != nil {
		t.Fatalf("RegisterStore: %v", err)
	}
	category, err := engine.CreateCategory(other.StoreID, "أجبان")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}

	_, err = engine.ToggleCategoryVisibility("SWRONG123", category.ID)
	if !errors.Is(err, ErrNotOwned) {
		t.Errorf("expected ErrNotOwned, got %v", err)
	}
}

func TestDeleteStoreCascades(t *testing.T) {
	engine, mem, store := newTestEngine(t)

	keep, err := engine.RegisterStore(RegisterInput{
		StoreName: "متجر آخر",
		City:      "مراكش",
		District:  "جليز",
		Phone:     "0611111111",
	})
	if err != nil {
		t.Fatalf("RegisterStore keep: %v", err)
	}

	category, err := engine.CreateCategory(store.StoreID, "مشروبات")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if _, err := engine.CreateProduct(store.StoreID, ProductInput{
		Name: "عصير برتقال", CategoryID: category.ID, Price: "10",
	}); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
	keptCategory, err := engine.CreateCategory(keep.StoreID, "حلويات")
	if err != nil {
		t.Fatalf("CreateCategory keep: %v", err)
	}
	if _, err := engine.CreateProduct(keep.StoreID, ProductInput{
		Name: "شباكية", CategoryID: keptCategory.ID, Price: "5",
	}); err != nil {
		t.Fatalf("CreateProduct keep: %v", err)
	}

	if err := engine.DeleteStore(store.ID); err != nil {
		t.Fatalf("DeleteStore: %v", err)
	}

	if _, err := mem.StoreByStoreID(store.StoreID); !errors.Is(err, ErrStoreNotFound) {
		t.Errorf("expected store gone, got %v", err)
	}
	categories, _ := mem.CategoriesByStore(store.StoreID)
	if len(categories) != 0 {
		t.Errorf("expected 0 categories after cascade, got %d", len(categories))
	}
	products, _ := mem.ProductsByStore(store.StoreID)
	if len(products) != 0 {
		t.Errorf("expected 0 products after cascade, got %d", len(products))
	}

	// The other store is untouched.
	categories, _ = mem.CategoriesByStore(keep.StoreID)
	if len(categories) != 1 {
		t.Errorf("expected other store's category to survive, got %d", len(categories))
	}
	products, _ = mem.ProductsByStore(keep.StoreID)
	if len(products) != 1 {
		t.Errorf("expected other store's product to survive, got %d", len(products))
	}
}

func TestDashboardProductsSearch(t *testing.T) {
	engine, _, store := newTestEngine(t)
	category, err := engine.CreateCategory(store.StoreID, "مشروبات")
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	for _, name := range []string{"حليب أطلس", "عصير برتقال"} {
		if _, err := engine.CreateProduct(store.StoreID, ProductInput{
			Name: name, CategoryID: category.ID, Price: "10",
		}); err != nil {
			t.Fatalf("CreateProduct(%q): %v", name, err)
		}
	}

	products, err := engine.DashboardProducts(store.StoreID, "حليب")
	if err != nil {
		t.Fatalf("DashboardProducts: %v", err)
	}
	if len(products) != 1 || products[0].Name != "حليب أطلس" {
		t.Errorf("expected exactly the milk product, got %+v", products)
	}

	all, err := engine.DashboardProducts(store.StoreID, "")
	if err != nil {
		t.Fatalf("DashboardProducts all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 products without query, got %d", len(all))
	}
}

func TestAdminStoresSearch(t *testing.T) {
	engine, _, store := newTestEngine(t)

	byCity, err := engine.AdminStores("الدار")
	if err != nil {
		t.Fatalf("AdminStores: %v", err)
	}
	if len(byCity) != 1 || byCity[0].StoreID != store.StoreID {
		t.Errorf("expected the registered store by city search, got %+v", byCity)
	}

	none, err := engine.AdminStores("لا وجود")
	if err != nil {
		t.Fatalf("AdminStores none: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no matches, got %d", len(none))
	}
}

func TestImageLibrary(t *testing.T) {
	engine, _, _ := newTestEngine(t)

	image, err := engine.AddImage("قهوة", "مشروبات", "https://cdn.example.com/coffee.png")
	if err != nil {
		t.Fatalf("AddImage: %v", err)
	}
	if !image.IsActive {
		t.Error("expected new image active by default")
	}

	if _, err := engine.AddImage("", "", "https://cdn.example.com/x.png"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for missing name, got %v", err)
	}

	toggled, err := engine.ToggleImage(image.ID)
	if err != nil {
		t.Fatalf("ToggleImage: %v", err)
	}
	if toggled.IsActive {
		t.Error("expected image inactive after toggle")
	}

	visible, err := engine.Images(true)
	if err != nil {
		t.Fatalf("Images: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("expected inactive image hidden from merchants, got %d", len(visible))
	}
	all, err := engine.Images(false)
	if err != nil {
		t.Fatalf("Images all: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected admin to see the inactive image, got %d", len(all))
	}
}
