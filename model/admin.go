package model

import "gorm.io/gorm"

// AdminPanel maps an admin access code to an administrator.
type AdminPanel struct {
	gorm.Model
	AdminID   string `json:"admin_id" gorm:"uniqueIndex"`
	AdminName string `json:"admin_name"`
	Email     string `json:"email"`
}
