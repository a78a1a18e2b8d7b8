package models

import "gorm.io/gorm"

// Profile carries the authorization role for a user. Only the literal
// role "admin" grants dashboard access.
type Profile struct {
	gorm.Model
	UserID   uint   `json:"userID" gorm:"not null;uniqueIndex"`
	User     User   `json:"-" gorm:"foreignKey:UserID"`
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Role     string `json:"role" gorm:"type:varchar(20);default:customer;index"` // customer, admin
}
