package dto

import "github.com/OficinaTechBR/workshop-api/internal/models"

// Duas projeções explícitas sobre o mesmo Appointment: o mecânico vê os
// dados completos do cliente; o cliente vê só um resumo do mecânico.

type PersonSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type PersonDetail struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type VehicleSummary struct {
	ID    uint   `json:"id"`
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type ClientAppointmentView struct {
	ID              uint           `json:"id"`
	Date            string         `json:"date"`
	Hour            string         `json:"hour"`
	Description     string         `json:"description"`
	Status          string         `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Mechanic        PersonSummary  `json:"mechanic"`
	Vehicle         VehicleSummary `json:"vehicle"`
}

type MechanicAppointmentView struct {
	ID              uint           `json:"id"`
	Date            string         `json:"date"`
	Hour            string         `json:"hour"`
	Description     string         `json:"description"`
	Status          string         `json:"status"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	Client          PersonDetail   `json:"client"`
	Vehicle         VehicleSummary `json:"vehicle"`
}

func ToClientAppointmentView(ap models.Appointment) ClientAppointmentView {
	return ClientAppointmentView{
		ID:              ap.ID,
		Date:            ap.Date,
		Hour:            ap.Hour,
		Description:     ap.Description,
		Status:          ap.Status,
		RejectionReason: ap.RejectionReason,
		Mechanic: PersonSummary{
			ID:   ap.MechanicID,
			Name: ap.Mechanic.Name,
		},
		Vehicle: VehicleSummary{
			ID:    ap.VehicleID,
			Plate: ap.Vehicle.Plate,
			Brand: ap.Vehicle.Brand,
			Model: ap.Vehicle.Model,
		},
	}
}

func ToMechanicAppointmentView(ap models.Appointment) MechanicAppointmentView {
	return MechanicAppointmentView{
		ID:              ap.ID,
		Date:            ap.Date,
		Hour:            ap.Hour,
		Description:     ap.Description,
		Status:          ap.Status,
		RejectionReason: ap.RejectionReason,
		Client: PersonDetail{
			ID:    ap.ClientID,
			Name:  ap.Client.Name,
			Email: ap.Client.Email,
			Phone: ap.Client.Phone,
		},
		Vehicle: VehicleSummary{
			ID:    ap.VehicleID,
			Plate: ap.Vehicle.Plate,
			Brand: ap.Vehicle.Brand,
			Model: ap.Vehicle.Model,
		},
	}
}
