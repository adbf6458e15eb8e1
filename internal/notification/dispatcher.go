package notification

import (
	"log"

	"gorm.io/gorm"

	"github.com/OficinaTechBR/workshop-api/internal/models"
)

type Request struct {
	UserID        uint
	Title         string
	Message       string
	AppointmentID *uint
	WorkOrderID   *uint
}

// Dispatcher grava notificações de forma assíncrona. A fila é melhor
// esforço: cheia ou com erro de banco, a operação de origem não falha.
type Dispatcher struct {
	db    *gorm.DB
	queue chan Request
}

func NewDispatcher(db *gorm.DB) *Dispatcher {
	d := &Dispatcher{
		db:    db,
		queue: make(chan Request, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for req := range d.queue {
		if d.db == nil {
			continue
		}
		n := models.Notification{
			UserID:        req.UserID,
			Title:         req.Title,
			Message:       req.Message,
			AppointmentID: req.AppointmentID,
			WorkOrderID:   req.WorkOrderID,
		}
		if err := d.db.Create(&n).Error; err != nil {
			log.Println("notification error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(req Request) {
	select {
	case d.queue <- req:
		// enviado
	default:
		log.Println("notification queue full, dropping request")
	}
}
