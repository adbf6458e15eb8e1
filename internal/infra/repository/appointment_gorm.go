package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/OficinaTechBR/workshop-api/internal/domain/appointment"
	"github.com/OficinaTechBR/workshop-api/internal/httperr"
	"github.com/OficinaTechBR/workshop-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Collaborators
// --------------------------------------------------

func (r *AppointmentGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetVehicleByID(
	ctx context.Context,
	id uint,
) (*models.Vehicle, error) {

	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// --------------------------------------------------
// Schedule slots
// --------------------------------------------------

func (r *AppointmentGormRepository) GetScheduleByID(
	ctx context.Context,
	id uint,
) (*models.Schedule, error) {

	var schedule models.Schedule
	if err := r.db.WithContext(ctx).First(&schedule, id).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *AppointmentGormRepository) AddHourToSchedule(
	ctx context.Context,
	scheduleID uint,
	hour string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return addHourTx(tx, scheduleID, hour)
	})
}

func (r *AppointmentGormRepository) RemoveHourFromSchedule(
	ctx context.Context,
	scheduleID uint,
	hour string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var schedule models.Schedule
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&schedule, scheduleID).Error; err != nil {
			return httperr.ErrBusiness("schedule_not_found")
		}

		if !schedule.RemoveHour(hour) {
			return httperr.ErrBusiness("hour_not_available")
		}

		return tx.Model(&schedule).Update("hours", schedule.Hours).Error
	})
}

// addHourTx devolve a hora dentro de uma transação já aberta.
// AddHour não duplica se a hora já estiver presente.
func addHourTx(tx *gorm.DB, scheduleID uint, hour string) error {

	var schedule models.Schedule
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&schedule, scheduleID).Error; err != nil {
		return httperr.ErrBusiness("schedule_not_found")
	}

	schedule.AddHour(hour)

	return tx.Model(&schedule).Update("hours", schedule.Hours).Error
}

// --------------------------------------------------
// Appointment (create)
// --------------------------------------------------

// BookSlot tranca a linha da agenda, re-checa a disponibilidade e só então
// cria o agendamento e consome a hora. Duas reservas simultâneas para a
// mesma hora: a segunda falha com hour_not_available.
func (r *AppointmentGormRepository) BookSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var schedule models.Schedule
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&schedule, ap.ScheduleID).Error; err != nil {
			return httperr.ErrBusiness("schedule_not_found")
		}

		if !schedule.RemoveHour(ap.Hour) {
			return httperr.ErrBusiness("hour_not_available")
		}

		if err := tx.Omit(clause.Associations).Create(ap).Error; err != nil {
			return err
		}

		return tx.Model(&schedule).Update("hours", schedule.Hours).Error
	})
	if err != nil {
		return err
	}

	// Recarrega com as relações resolvidas para a resposta.
	return r.db.WithContext(ctx).
		Preload("Client").
		Preload("Mechanic").
		Preload("Vehicle").
		Preload("Schedule").
		First(ap, ap.ID).Error
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Mechanic").
		Preload("Vehicle").
		Preload("Schedule").
		First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Mechanic").
		Preload("Vehicle")

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ClientID != 0 {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if f.MechanicID != 0 {
		q = q.Where("mechanic_id = ?", f.MechanicID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}

	var aps []models.Appointment
	if err := q.
		Order("date ASC").
		Order("hour ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(ap).Error
}

func (r *AppointmentGormRepository) RejectAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Omit(clause.Associations).Save(ap).Error; err != nil {
			return err
		}

		return addHourTx(tx, ap.ScheduleID, ap.Hour)
	})
}

func (r *AppointmentGormRepository) CancelAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Delete(&models.Appointment{}, ap.ID).Error; err != nil {
			return err
		}

		return addHourTx(tx, ap.ScheduleID, ap.Hour)
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
