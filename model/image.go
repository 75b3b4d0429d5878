package model

import "gorm.io/gorm"

// ImageLibraryItem is a shared, store-independent image merchants can pick
// for their products. Category is a free-text label, not a reference.
type ImageLibraryItem struct {
	gorm.Model
	Name     string `json:"name"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
