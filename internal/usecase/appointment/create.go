package appointment

import (
	"context"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/models"
	"github.com/OficinaTechBR/workshop-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientID uint

	MechanicID uint
	VehicleID  uint
	ScheduleID uint

	Date        string
	Hour        string
	Description string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data e hora
	// --------------------------------------------------
	if !validators.IsValidDate(in.Date) || !validators.IsValidHour(in.Hour) {
		return nil, httperr.ErrBusiness("invalid_date_or_hour")
	}

	// --------------------------------------------------
	// 2️⃣ Mecânico
	// --------------------------------------------------
	mechanic, err := uc.repo.GetUserByID(ctx, in.MechanicID)
	if err != nil {
		return nil, httperr.ErrBusiness("mechanic_not_found")
	}
	if mechanic.Role != models.RoleMechanic {
		return nil, httperr.ErrBusiness("not_a_mechanic")
	}

	// --------------------------------------------------
	// 3️⃣ Veículo do cliente
	// --------------------------------------------------
	vehicle, err := uc.repo.GetVehicleByID(ctx, in.VehicleID)
	if err != nil {
		return nil, httperr.ErrBusiness("vehicle_not_found")
	}
	if vehicle.OwnerID != in.ClientID {
		return nil, httperr.ErrBusiness("vehicle_not_owned")
	}

	// --------------------------------------------------
	// 4️⃣ Agenda do mecânico
	// --------------------------------------------------
	schedule, err := uc.repo.GetScheduleByID(ctx, in.ScheduleID)
	if err != nil {
		return nil, httperr.ErrBusiness("schedule_not_found")
	}
	if schedule.MechanicID != in.MechanicID || schedule.Date != in.Date {
		return nil, httperr.ErrBusiness("schedule_mismatch")
	}
	if !schedule.HasHour(in.Hour) {
		return nil, httperr.ErrBusiness("hour_not_available")
	}

	// --------------------------------------------------
	// 5️⃣ Reserva atômica (checagem + criação + consumo da hora)
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:    in.ClientID,
		MechanicID:  in.MechanicID,
		VehicleID:   in.VehicleID,
		ScheduleID:  in.ScheduleID,
		Date:        in.Date,
		Hour:        in.Hour,
		Description: in.Description,
		Status:      string(domain.StatusPending),
	}

	if err := uc.repo.BookSlot(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 6️⃣ Notificação + auditoria (fire-and-forget)
	// --------------------------------------------------
	uc.notifier.NotifyAppointmentCreated(ap)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
