package model

import "gorm.io/gorm"

// Product belongs to one category and denormalizes the store code for
// direct filtering. The write path keeps CategoryID and StoreID consistent;
// storage enforces nothing.
type Product struct {
	gorm.Model
	StoreID    string  `json:"store_id" gorm:"index"`
	CategoryID uint    `json:"category_id" gorm:"index"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
	SortOrder  int     `json:"sort_order"`
	IsVisible  bool    `json:"is_visible" gorm:"default:true"`
}
