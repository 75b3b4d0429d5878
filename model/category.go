package model

import "gorm.io/gorm"

// Category groups products inside one store. StoreID holds the store's
// public code, not its row id.
type Category struct {
	gorm.Model
	StoreID   string `json:"store_id" gorm:"index"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsVisible bool   `json:"is_visible" gorm:"default:true"`
}
