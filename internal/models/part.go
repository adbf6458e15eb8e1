package models

import "time"

// Part é um item de estoque da oficina.
type Part struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SKU         string `gorm:"size:50;uniqueIndex;not null" json:"sku"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	UnitPrice float64 `json:"unit_price"`
	Stock     int     `json:"stock"`
	Active    bool    `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
