package appointment

import (
	"context"

	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	requesterID uint,
	requesterRole string,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	switch requesterRole {
	case models.RoleClient:
		if ap.ClientID != requesterID {
			return nil, httperr.ErrBusiness("not_appointment_owner")
		}
	case models.RoleMechanic:
		if ap.MechanicID != requesterID {
			return nil, httperr.ErrBusiness("not_appointment_owner")
		}
	}

	return ap, nil
}
