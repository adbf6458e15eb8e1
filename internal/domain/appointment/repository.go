package appointment

import (
	"context"

	"github.com/OficinaTechBR/workshop-api/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mocks/repository_mock.go -package=mocks

// ListFilter são os filtros de listagem. Campo zero = sem filtro.
type ListFilter struct {
	Status     string
	ClientID   uint
	MechanicID uint
	Date       string
}

type Repository interface {
	// -------- Collaborators --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetVehicleByID(
		ctx context.Context,
		id uint,
	) (*models.Vehicle, error)

	// -------- Schedule slots --------
	GetScheduleByID(
		ctx context.Context,
		id uint,
	) (*models.Schedule, error)

	AddHourToSchedule(
		ctx context.Context,
		scheduleID uint,
		hour string,
	) error

	RemoveHourFromSchedule(
		ctx context.Context,
		scheduleID uint,
		hour string,
	) error

	// -------- Appointment (create) --------

	// BookSlot persiste o agendamento pendente e consome a hora da agenda
	// na MESMA transação; falha com hour_not_available se a hora já saiu.
	BookSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	ListAppointments(
		ctx context.Context,
		f ListFilter,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RejectAppointment grava o novo status e devolve a hora à agenda
	// atomicamente.
	RejectAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CancelAppointment apaga o registro e devolve a hora à agenda
	// atomicamente.
	CancelAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}

// Notifier dispara avisos fire-and-forget: a entrega nunca afeta o
// resultado da operação que a originou.
type Notifier interface {
	NotifyAppointmentCreated(ap *models.Appointment)
	NotifyAppointmentAccepted(ap *models.Appointment)
	NotifyAppointmentRejected(ap *models.Appointment)
}
