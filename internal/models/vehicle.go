package models

import "time"

type Vehicle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	OwnerID uint `json:"owner_id"`
	Owner   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"owner"`

	Plate string `gorm:"size:20;uniqueIndex;not null" json:"plate"`
	Brand string `gorm:"size:50" json:"brand"`
	Model string `gorm:"size:50" json:"model"`
	Year  int    `json:"year"`
	VIN   string `gorm:"size:64" json:"vin"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
