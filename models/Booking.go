package models

import "gorm.io/gorm"

// Booking stores the rental request exactly as submitted: total days and
// total price are computed once at submission time from the car's daily
// rate and are never recomputed when the rate changes later.
type Booking struct {
	gorm.Model
	CarID         uint    `json:"carID" gorm:"not null;index"`
	Car           Car     `json:"car" gorm:"foreignKey:CarID"`
	CustomerName  string  `json:"customerName" gorm:"not null"`
	CustomerEmail string  `json:"customerEmail" gorm:"not null"`
	CustomerPhone string  `json:"customerPhone" gorm:"not null"`
	StartDate     string  `json:"startDate" gorm:"not null"` // calendar date, 2006-01-02
	EndDate       string  `json:"endDate" gorm:"not null"`
	TotalDays     int     `json:"totalDays" gorm:"not null;check:total_days >= 1"`
	TotalPrice    float64 `json:"totalPrice" gorm:"not null;check:total_price >= 0"`
	Notes         string  `json:"notes" gorm:"type:text"`
	Status        string  `json:"status" gorm:"type:varchar(20);default:pending;index"` // pending, confirmed, completed, cancelled
}
