package appointment

import (
	"context"

	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ListAppointmentsInput struct {
	RequesterID   uint
	RequesterRole string

	Status     string
	ClientID   uint
	MechanicID uint
	Date       string
}

// ======================================================
// USE CASE
// ======================================================

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute aplica a regra de escopo por papel: cliente sempre preso ao
// próprio clientId, mecânico sempre preso ao próprio mechanicId. Filtros
// explícitos só valem para os campos que o papel não fixa. Sem filtro de
// status, TODOS os status voltam: contrato deliberado, não assumir
// default de pending.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]models.Appointment, error) {

	f := domain.ListFilter{
		Status:     in.Status,
		ClientID:   in.ClientID,
		MechanicID: in.MechanicID,
		Date:       in.Date,
	}

	switch in.RequesterRole {
	case models.RoleClient:
		f.ClientID = in.RequesterID
	case models.RoleMechanic:
		f.MechanicID = in.RequesterID
	}

	return uc.repo.ListAppointments(ctx, f)
}
