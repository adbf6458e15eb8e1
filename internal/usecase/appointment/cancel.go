package appointment

import (
	"context"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute apaga o agendamento do cliente e devolve a hora à agenda.
// Nenhuma notificação é disparada aqui: o mecânico vê a agenda liberada
// na listagem.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	clientID uint,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if ap.ClientID != clientID {
		return httperr.ErrBusiness("not_appointment_owner")
	}

	if err := domain.CanCancel(domain.Status(ap.Status)); err != nil {
		return err
	}

	if err := uc.repo.CancelAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}
