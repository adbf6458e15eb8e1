package notification

import (
	"fmt"

	"github.com/OficinaTechBR/workshop-api/internal/models"
)

// Service monta as mensagens por evento e delega ao dispatcher.
type Service struct {
	dispatcher *Dispatcher
}

func NewService(dispatcher *Dispatcher) *Service {
	return &Service{dispatcher: dispatcher}
}

func (s *Service) NotifyAppointmentCreated(ap *models.Appointment) {
	s.dispatcher.Dispatch(Request{
		UserID: ap.MechanicID,
		Title:  "Novo agendamento",
		Message: fmt.Sprintf(
			"Você recebeu um novo agendamento para %s às %s.",
			ap.Date, ap.Hour,
		),
		AppointmentID: &ap.ID,
	})
}

func (s *Service) NotifyAppointmentAccepted(ap *models.Appointment) {
	s.dispatcher.Dispatch(Request{
		UserID: ap.ClientID,
		Title:  "Agendamento aceito",
		Message: fmt.Sprintf(
			"Seu agendamento de %s às %s foi aceito.",
			ap.Date, ap.Hour,
		),
		AppointmentID: &ap.ID,
	})
}

func (s *Service) NotifyAppointmentRejected(ap *models.Appointment) {
	s.dispatcher.Dispatch(Request{
		UserID: ap.ClientID,
		Title:  "Agendamento recusado",
		Message: fmt.Sprintf(
			"Seu agendamento de %s às %s foi recusado: %s",
			ap.Date, ap.Hour, ap.RejectionReason,
		),
		AppointmentID: &ap.ID,
	})
}

func (s *Service) NotifyWorkOrderCompleted(wo *models.WorkOrder) {
	s.dispatcher.Dispatch(Request{
		UserID: wo.ClientID,
		Title:  "Serviço concluído",
		Message: fmt.Sprintf(
			"A ordem de serviço #%d (%s) foi concluída. Total: R$ %.2f",
			wo.ID, wo.Title, wo.Total(),
		),
		WorkOrderID: &wo.ID,
	})
}
