package catalog

import (
	"testing"

	"souk/model"
)

func category(id uint, name string, visible bool) model.Category {
	c := model.Category{Name: name, IsVisible: visible}
	c.ID = id
	return c
}

func product(id, categoryID uint, name string, visible bool) model.Product {
	p := model.Product{CategoryID: categoryID, Name: name, IsVisible: visible}
	p.ID = id
	return p
}

func TestCategoriesWithCounts(t *testing.T) {
	categories := []model.Category{
		category(1, "مشروبات", true),
		category(2, "حلويات", true),
	}
	products := []model.Product{
		product(10, 1, "شاي", true),
		product(11, 1, "قهوة", false),
		product(12, 2, "كعب غزال", true),
	}

	views := CategoriesWithCounts(categories, products)
	if len(views) != 2 {
		t.Fatalf("expected 2 views, got %d", len(views))
	}
	if views[0].ProductsCount != 2 {
		t.Errorf("expected count 2 for first category, got %d", views[0].ProductsCount)
	}
	if views[1].ProductsCount != 1 {
		t.Errorf("expected count 1 for second category, got %d", views[1].ProductsCount)
	}
}

func TestProductsWithCategoryNamesDangling(t *testing.T) {
	categories := []model.Category{category(1, "مشروبات", true)}
	products := []model.Product{
		product(10, 1, "شاي", true),
		product(11, 99, "منتج يتيم", true),
	}

	views := ProductsWithCategoryNames(products, categories)
	if views[0].CategoryName != "مشروبات" {
		t.Errorf("expected resolved name, got %q", views[0].CategoryName)
	}
	if views[1].CategoryName != UnspecifiedCategoryName {
		t.Errorf("expected %q for dangling reference, got %q", UnspecifiedCategoryName, views[1].CategoryName)
	}
}

func TestComputeDashboardStats(t *testing.T) {
	categories := []model.Category{
		category(1, "أ", true),
		category(2, "ب", false),
	}
	products := []model.Product{
		product(10, 1, "p1", true),
		product(11, 1, "p2", true),
		product(12, 2, "p3", false),
	}

	stats := ComputeDashboardStats(categories, products)
	want := DashboardStats{TotalCategories: 2, VisibleCategories: 1, TotalProducts: 3, VisibleProducts: 2}
	if stats != want {
		t.Errorf("got %+v, want %+v", stats, want)
	}
}

func TestComputeAdminStatsActivityRate(t *testing.T) {
	stats := ComputeAdminStats(nil, nil, nil, nil)
	if stats.ActivityRate != 0 {
		t.Errorf("expected rate 0 with no stores, got %d", stats.ActivityRate)
	}

	stores := []model.Store{
		{IsActive: true}, {IsActive: true}, {IsActive: true}, {IsActive: false},
	}
	stats = ComputeAdminStats(stores, nil, nil, nil)
	if stats.ActivityRate != 75 {
		t.Errorf("expected rate 75 for 3 of 4 active, got %d", stats.ActivityRate)
	}
	if stats.ActiveStores != 3 || stats.TotalStores != 4 {
		t.Errorf("unexpected store counts: %+v", stats)
	}
}
