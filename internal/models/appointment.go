package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint `json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	MechanicID uint `json:"mechanic_id"`
	Mechanic   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"mechanic"`

	VehicleID uint    `json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle"`

	ScheduleID uint     `json:"schedule_id"`
	Schedule   Schedule `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"schedule"`

	Date string `gorm:"size:10;index" json:"date"`
	Hour string `gorm:"size:5" json:"hour"`

	Description string `gorm:"size:255" json:"description"`

	Status          string `gorm:"size:20;default:'pending'" json:"status"`
	RejectionReason string `gorm:"size:255" json:"rejection_reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
