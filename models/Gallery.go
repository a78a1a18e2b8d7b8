package models

import "gorm.io/gorm"

type GalleryItem struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	ImageURL    string `json:"imageURL"`
	EventType   string `json:"eventType" gorm:"index"` // wedding, corporate, vip, ...
	IsFeatured  bool   `json:"isFeatured" gorm:"default:false;index"`
}
