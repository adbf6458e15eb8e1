package appointment

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/OficinaTechBR/workshop-api/internal/audit"
	"github.com/OficinaTechBR/workshop-api/internal/domain/appointment/mocks"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func validInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:    1,
		MechanicID:  2,
		VehicleID:   3,
		ScheduleID:  4,
		Date:        "2026-09-10",
		Hour:        "09:00",
		Description: "Troca de óleo",
	}
}

func mechanicUser() *models.User {
	return &models.User{ID: 2, Role: models.RoleMechanic}
}

func clientVehicle() *models.Vehicle {
	return &models.Vehicle{ID: 3, OwnerID: 1}
}

func openSchedule() *models.Schedule {
	s := &models.Schedule{ID: 4, MechanicID: 2, Date: "2026-09-10"}
	s.SetHourList([]string{"09:00", "10:00"})
	return s
}

func TestCreateAppointment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewCreateAppointment(repo, notifier, newTestDispatcher())
	in := validInput()

	repo.EXPECT().GetUserByID(gomock.Any(), in.MechanicID).Return(mechanicUser(), nil)
	repo.EXPECT().GetVehicleByID(gomock.Any(), in.VehicleID).Return(clientVehicle(), nil)
	repo.EXPECT().GetScheduleByID(gomock.Any(), in.ScheduleID).Return(openSchedule(), nil)
	repo.EXPECT().BookSlot(gomock.Any(), gomock.Any()).Return(nil)
	notifier.EXPECT().NotifyAppointmentCreated(gomock.Any())

	ap, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if ap.Status != "pending" {
		t.Fatalf("agendamento deve nascer pending, veio %q", ap.Status)
	}
	if ap.ClientID != in.ClientID || ap.MechanicID != in.MechanicID {
		t.Fatal("agendamento nao guardou cliente e mecanico")
	}
}

func TestCreateAppointment_InvalidDateOrHour(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewCreateAppointment(repo, notifier, newTestDispatcher())

	cases := []struct {
		name string
		date string
		hour string
	}{
		{"data vazia", "", "09:00"},
		{"data fora do formato", "10/09/2026", "09:00"},
		{"hora vazia", "2026-09-10", ""},
		{"hora fora do formato", "2026-09-10", "9h"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			in.Date = tc.date
			in.Hour = tc.hour

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, "invalid_date_or_hour") {
				t.Fatalf("esperava invalid_date_or_hour, veio %v", err)
			}
		})
	}
}

func TestCreateAppointment_MechanicChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewCreateAppointment(repo, notifier, newTestDispatcher())
	in := validInput()

	t.Run("mecanico inexistente", func(t *testing.T) {
		repo.EXPECT().GetUserByID(gomock.Any(), in.MechanicID).
			Return(nil, httperr.ErrBusiness("not_found"))

		_, err := uc.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, "mechanic_not_found") {
			t.Fatalf("esperava mechanic_not_found, veio %v", err)
		}
	})

	t.Run("usuario nao e mecanico", func(t *testing.T) {
		repo.EXPECT().GetUserByID(gomock.Any(), in.MechanicID).
			Return(&models.User{ID: 2, Role: models.RoleClient}, nil)

		_, err := uc.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, "not_a_mechanic") {
			t.Fatalf("esperava not_a_mechanic, veio %v", err)
		}
	})
}

func TestCreateAppointment_VehicleNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewCreateAppointment(repo, notifier, newTestDispatcher())
	in := validInput()

	repo.EXPECT().GetUserByID(gomock.Any(), in.MechanicID).Return(mechanicUser(), nil)
	repo.EXPECT().GetVehicleByID(gomock.Any(), in.VehicleID).
		Return(&models.Vehicle{ID: 3, OwnerID: 99}, nil)

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "vehicle_not_owned") {
		t.Fatalf("esperava vehicle_not_owned, veio %v", err)
	}
}

func TestCreateAppointment_ScheduleChecks(t *testing.T) {
	in := validInput()

	cases := []struct {
		name     string
		schedule *models.Schedule
		wantCode string
	}{
		{
			name: "agenda de outro mecanico",
			schedule: func() *models.Schedule {
				s := openSchedule()
				s.MechanicID = 77
				return s
			}(),
			wantCode: "schedule_mismatch",
		},
		{
			name: "agenda de outro dia",
			schedule: func() *models.Schedule {
				s := openSchedule()
				s.Date = "2026-09-11"
				return s
			}(),
			wantCode: "schedule_mismatch",
		},
		{
			name: "hora ja reservada",
			schedule: func() *models.Schedule {
				s := openSchedule()
				s.SetHourList([]string{"10:00"})
				return s
			}(),
			wantCode: "hour_not_available",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepository(ctrl)
			notifier := mocks.NewMockNotifier(ctrl)

			uc := NewCreateAppointment(repo, notifier, newTestDispatcher())

			repo.EXPECT().GetUserByID(gomock.Any(), in.MechanicID).Return(mechanicUser(), nil)
			repo.EXPECT().GetVehicleByID(gomock.Any(), in.VehicleID).Return(clientVehicle(), nil)
			repo.EXPECT().GetScheduleByID(gomock.Any(), in.ScheduleID).Return(tc.schedule, nil)

			_, err := uc.Execute(context.Background(), in)
			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("esperava %s, veio %v", tc.wantCode, err)
			}
		})
	}
}

// A hora pode sumir entre a checagem e a reserva. BookSlot é quem decide,
// dentro da transação, e o caso perde a corrida sem efeito colateral.
func TestCreateAppointment_LostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	uc := NewCreateAppointment(repo, notifier, newTestDispatcher())
	in := validInput()

	repo.EXPECT().GetUserByID(gomock.Any(), in.MechanicID).Return(mechanicUser(), nil)
	repo.EXPECT().GetVehicleByID(gomock.Any(), in.VehicleID).Return(clientVehicle(), nil)
	repo.EXPECT().GetScheduleByID(gomock.Any(), in.ScheduleID).Return(openSchedule(), nil)
	repo.EXPECT().BookSlot(gomock.Any(), gomock.Any()).
		Return(httperr.ErrBusiness("hour_not_available"))

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "hour_not_available") {
		t.Fatalf("esperava hour_not_available, veio %v", err)
	}
}
