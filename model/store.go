package model

import (
	"gorm.io/gorm"
)

// Supported settlement currencies for a store.
const (
	CurrencyMAD = "MAD"
	CurrencyXOF = "XOF"
	CurrencyMRU = "MRU"
)

// ValidCurrency reports whether code is one of the supported currencies.
func ValidCurrency(code string) bool {
	switch code {
	case CurrencyMAD, CurrencyXOF, CurrencyMRU:
		return true
	}
	return false
}

// Store is one registered merchant shop. MerchantID gates the dashboard,
// StoreID is the public code shared with customers. Both are immutable
// after registration.
type Store struct {
	gorm.Model
	MerchantID string `json:"merchant_id" gorm:"uniqueIndex"`
	StoreID    string `json:"store_id" gorm:"uniqueIndex"`
	StoreName  string `json:"store_name"`
	City       string `json:"city"`
	District   string `json:"district"`
	Phone      string `json:"phone"`
	Currency   string `json:"currency" gorm:"default:MAD"`
	IsActive   bool   `json:"is_active" gorm:"default:true"`
}
