package models

import "gorm.io/gorm"

type Testimonial struct {
	gorm.Model
	CustomerName  string `json:"customerName" gorm:"not null"`
	CustomerTitle string `json:"customerTitle"`
	Content       string `json:"content" gorm:"type:text;not null"`
	Rating        int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	ImageURL      string `json:"imageURL"`
	IsFeatured    bool   `json:"isFeatured" gorm:"default:false;index"`
}
