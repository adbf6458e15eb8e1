package models

import (
	"encoding/json"
	"time"
)

const (
	PaymentStatusPending  = "pending"
	PaymentStatusApproved = "approved"
	PaymentStatusRejected = "rejected"
)

// Payment registra a cobrança de uma ordem de serviço no gateway.
// ProviderPayload guarda a resposta original do provedor para auditoria.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WorkOrderID uint      `gorm:"index" json:"work_order_id"`
	WorkOrder   WorkOrder `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Amount float64 `json:"amount"`
	Status string  `gorm:"size:20;default:'pending'" json:"status"`

	ProviderPaymentID string          `gorm:"size:64" json:"provider_payment_id"`
	ProviderPayload   json.RawMessage `gorm:"type:text" json:"provider_payload,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
