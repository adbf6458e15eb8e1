package models

import "time"

type WorkOrder struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID *uint        `json:"appointment_id"`
	Appointment   *Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment,omitempty"`

	VehicleID uint    `json:"vehicle_id"`
	Vehicle   Vehicle `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"vehicle"`

	MechanicID uint `json:"mechanic_id"`
	Mechanic   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"mechanic"`

	ClientID uint `json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Title       string `gorm:"size:100;not null" json:"title"`
	Description string `gorm:"size:500" json:"description"`

	Status    string  `gorm:"size:20;default:'open'" json:"status"`
	LaborCost float64 `json:"labor_cost"`

	PhotoURL string `gorm:"size:255" json:"photo_url"`

	Items []WorkOrderItem `json:"items,omitempty"`

	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type WorkOrderItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkOrderID uint `json:"work_order_id"`

	PartID uint `json:"part_id"`
	Part   Part `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"part"`

	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`

	CreatedAt time.Time `json:"created_at"`
}

// Total soma mão de obra e peças.
func (w *WorkOrder) Total() float64 {
	total := w.LaborCost
	for _, it := range w.Items {
		total += float64(it.Quantity) * it.UnitPrice
	}
	return total
}
