package models

import (
	"time"

	"gorm.io/datatypes"
)

// Car uses an explicit primary key instead of gorm.Model because it carries
// a Model column of its own.
type Car struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Brand        string         `json:"brand" gorm:"not null;index"`
	Model        string         `json:"model" gorm:"not null"`
	Year         int            `json:"year"`
	Color        string         `json:"color"`
	PricePerDay  float64        `json:"pricePerDay" gorm:"not null;check:price_per_day >= 0"`
	Transmission string         `json:"transmission"`
	FuelType     string         `json:"fuelType"`
	Seats        int            `json:"seats" gorm:"check:seats >= 0"`
	Features     datatypes.JSON `json:"features"`
	Description  string         `json:"description" gorm:"type:text"`
	ImageURL     string         `json:"imageURL"`
	CategoryID   *uint          `json:"categoryID" gorm:"index"`
	Category     *Category      `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	// booleans carry no column defaults so a Create can persist false
	IsFeatured  bool `json:"isFeatured" gorm:"index"`
	IsAvailable bool `json:"isAvailable" gorm:"index"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}
