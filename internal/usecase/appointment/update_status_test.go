package appointment

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/OficinaTechBR/workshop-api/internal/domain/appointment/mocks"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

func pendingAppointment() *models.Appointment {
	return &models.Appointment{
		ID:         10,
		ClientID:   1,
		MechanicID: 2,
		ScheduleID: 4,
		Date:       "2026-09-10",
		Hour:       "09:00",
		Status:     "pending",
	}
}

func TestUpdateAppointment_Accept(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewUpdateAppointmentStatus(repo, notifier, newTestDispatcher())

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).Return(pendingAppointment(), nil)
	repo.EXPECT().UpdateAppointment(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().NotifyAppointmentAccepted(gomock.Any())

	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ActorID:       2,
		ActorRole:     models.RoleMechanic,
		AppointmentID: 10,
		Status:        "accepted",
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ap.Status != "accepted" {
		t.Fatalf("status deveria ser accepted, veio %q", ap.Status)
	}
}

func TestUpdateAppointment_RejectRequiresReason(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewUpdateAppointmentStatus(repo, notifier, newTestDispatcher())

	for _, reason := range []string{"", "   "} {
		repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).Return(pendingAppointment(), nil)

		_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
			ActorID:         2,
			ActorRole:       models.RoleMechanic,
			AppointmentID:   10,
			Status:          "rejected",
			RejectionReason: reason,
		})
		if !httperr.IsBusiness(err, "rejection_reason_required") {
			t.Fatalf("esperava rejection_reason_required, veio %v", err)
		}
	}
}

func TestUpdateAppointment_RejectRestoresSlot(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewUpdateAppointmentStatus(repo, notifier, newTestDispatcher())

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).Return(pendingAppointment(), nil)

	// RejectAppointment grava o status e devolve a hora na mesma transação.
	repo.EXPECT().RejectAppointment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ap *models.Appointment) error {
			if ap.Status != "rejected" {
				t.Fatalf("status na persistencia deveria ser rejected, veio %q", ap.Status)
			}
			if ap.RejectionReason == "" {
				t.Fatal("justificativa deveria estar preenchida")
			}
			return nil
		})
	notifier.EXPECT().NotifyAppointmentRejected(gomock.Any())

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ActorID:         2,
		ActorRole:       models.RoleMechanic,
		AppointmentID:   10,
		Status:          "rejected",
		RejectionReason: "Sem peça em estoque",
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
}

func TestUpdateAppointment_OnlyPendingChanges(t *testing.T) {
	for _, status := range []string{"accepted", "rejected"} {
		t.Run(status, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			notifier := mocks.NewMockNotifier(ctrl)

			uc := NewUpdateAppointmentStatus(repo, notifier, newTestDispatcher())

			ap := pendingAppointment()
			ap.Status = status
			repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).Return(ap, nil)

			_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
				ActorID:       2,
				ActorRole:     models.RoleMechanic,
				AppointmentID: 10,
				Status:        "accepted",
			})
			if !httperr.IsBusiness(err, "invalid_state") {
				t.Fatalf("esperava invalid_state, veio %v", err)
			}
		})
	}
}

func TestUpdateAppointment_ClientCannotChangeStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewUpdateAppointmentStatus(repo, notifier, newTestDispatcher())

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).Return(pendingAppointment(), nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ActorID:       1,
		ActorRole:     models.RoleClient,
		AppointmentID: 10,
		Status:        "accepted",
	})
	if !httperr.IsBusiness(err, "not_appointment_owner") {
		t.Fatalf("esperava not_appointment_owner, veio %v", err)
	}
}

func TestUpdateAppointment_DescriptionOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewUpdateAppointmentStatus(repo, notifier, newTestDispatcher())

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).Return(pendingAppointment(), nil)
	repo.EXPECT().UpdateAppointment(gomock.Any(), gomock.Any()).Return(nil)

	ap, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ActorID:       1,
		ActorRole:     models.RoleClient,
		AppointmentID: 10,
		Description:   "Barulho ao frear",
	})
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ap.Description != "Barulho ao frear" {
		t.Fatalf("descricao nao atualizada: %q", ap.Description)
	}
	if ap.Status != "pending" {
		t.Fatalf("status nao deveria mudar, veio %q", ap.Status)
	}
}

func TestUpdateAppointment_StrangerForbidden(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewUpdateAppointmentStatus(repo, notifier, newTestDispatcher())

	repo.EXPECT().GetAppointmentByID(gomock.Any(), uint(10)).Return(pendingAppointment(), nil)

	_, err := uc.Execute(context.Background(), UpdateAppointmentInput{
		ActorID:       99,
		ActorRole:     models.RoleMechanic,
		AppointmentID: 10,
		Status:        "accepted",
	})
	if !httperr.IsBusiness(err, "not_appointment_owner") {
		t.Fatalf("esperava not_appointment_owner, veio %v", err)
	}
}
