package appointment

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/domain/appointment/mocks"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

func TestListAppointments_Scope(t *testing.T) {
	cases := []struct {
		name       string
		in         ListAppointmentsInput
		wantFilter domain.ListFilter
	}{
		{
			name: "cliente preso ao proprio id mesmo filtrando outro",
			in: ListAppointmentsInput{
				RequesterID:   1,
				RequesterRole: models.RoleClient,
				ClientID:      99,
				MechanicID:    2,
			},
			wantFilter: domain.ListFilter{ClientID: 1, MechanicID: 2},
		},
		{
			name: "mecanico preso ao proprio id",
			in: ListAppointmentsInput{
				RequesterID:   2,
				RequesterRole: models.RoleMechanic,
				MechanicID:    77,
				Date:          "2026-09-10",
			},
			wantFilter: domain.ListFilter{MechanicID: 2, Date: "2026-09-10"},
		},
		{
			name: "admin filtra livremente",
			in: ListAppointmentsInput{
				RequesterID:   3,
				RequesterRole: models.RoleAdmin,
				ClientID:      1,
				MechanicID:    2,
				Status:        "accepted",
			},
			wantFilter: domain.ListFilter{ClientID: 1, MechanicID: 2, Status: "accepted"},
		},
		{
			// Sem filtro de status TODOS os status voltam; não há default.
			name: "sem status nao assume pending",
			in: ListAppointmentsInput{
				RequesterID:   1,
				RequesterRole: models.RoleClient,
			},
			wantFilter: domain.ListFilter{ClientID: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)

			uc := NewListAppointments(repo)

			repo.EXPECT().ListAppointments(gomock.Any(), tc.wantFilter).
				Return([]models.Appointment{}, nil)

			if _, err := uc.Execute(context.Background(), tc.in); err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
		})
	}
}
