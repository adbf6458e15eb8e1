package models

import "time"

type Notification struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`

	Title   string `gorm:"size:100;not null" json:"title"`
	Message string `gorm:"size:500" json:"message"`

	AppointmentID *uint `json:"appointment_id"`
	WorkOrderID   *uint `json:"work_order_id"`

	Read bool `gorm:"default:false" json:"read"`

	CreatedAt time.Time `json:"created_at"`
}
