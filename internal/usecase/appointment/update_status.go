package appointment

import (
	"context"
	"strings"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	ActorID   uint
	ActorRole string

	AppointmentID uint

	Status          string
	RejectionReason string
	Description     string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointmentStatus struct {
	repo     domain.Repository
	notifier domain.Notifier
	audit    *audit.Dispatcher
}

func NewUpdateAppointmentStatus(
	repo domain.Repository,
	notifier domain.Notifier,
	audit *audit.Dispatcher,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		repo:     repo,
		notifier: notifier,
		audit:    audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Agendamento + autorização
	// --------------------------------------------------
	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	isMechanic := in.ActorRole == models.RoleMechanic && ap.MechanicID == in.ActorID
	isOwner := in.ActorRole == models.RoleClient && ap.ClientID == in.ActorID

	if !isMechanic && !isOwner {
		return nil, httperr.ErrBusiness("not_appointment_owner")
	}

	// --------------------------------------------------
	// 2️⃣ Só pendente muda
	// --------------------------------------------------
	if domain.Status(ap.Status) != domain.StatusPending {
		return nil, httperr.ErrBusiness("invalid_state")
	}

	// --------------------------------------------------
	// 3️⃣ Descrição (qualquer uma das partes)
	// --------------------------------------------------
	if in.Description != "" {
		ap.Description = in.Description
	}

	// --------------------------------------------------
	// 4️⃣ Mudança de status (só o mecânico designado)
	// --------------------------------------------------
	if in.Status == "" {
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
		return ap, nil
	}

	if !isMechanic {
		return nil, httperr.ErrBusiness("not_appointment_owner")
	}

	requested, err := domain.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	if err := domain.Transition(domain.Status(ap.Status), requested); err != nil {
		return nil, err
	}

	if domain.RequiresReason(requested) && strings.TrimSpace(in.RejectionReason) == "" {
		return nil, httperr.ErrBusiness("rejection_reason_required")
	}

	ap.Status = string(requested)

	// --------------------------------------------------
	// 5️⃣ Persistência (+ devolução da hora no rejeite)
	// --------------------------------------------------
	switch requested {
	case domain.StatusRejected:
		ap.RejectionReason = in.RejectionReason
		if err := uc.repo.RejectAppointment(ctx, ap); err != nil {
			return nil, err
		}
		uc.notifier.NotifyAppointmentRejected(ap)

	case domain.StatusAccepted:
		if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
			return nil, err
		}
		uc.notifier.NotifyAppointmentAccepted(ap)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "appointment_" + string(requested),
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
