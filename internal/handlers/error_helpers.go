package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/OficinaTechBR/workshop-api/internal/httperr"
)

// mensagens por código de negócio
var businessMessages = map[string]string{
	"mechanic_not_found":        "Mecânico não encontrado.",
	"not_a_mechanic":            "O usuário selecionado não é um mecânico.",
	"vehicle_not_found":         "Veículo não encontrado.",
	"vehicle_not_owned":         "O veículo não pertence a você.",
	"schedule_not_found":        "Agenda não encontrada.",
	"schedule_mismatch":         "A agenda não corresponde ao mecânico ou à data.",
	"hour_not_available":        "Horário não disponível.",
	"appointment_not_found":     "Agendamento não encontrado.",
	"not_appointment_owner":     "Você não tem acesso a este agendamento.",
	"invalid_state":             "Apenas agendamentos pendentes podem ser alterados.",
	"invalid_status":            "Status inválido.",
	"rejection_reason_required": "Informe o motivo da recusa.",
	"invalid_date_or_hour":      "Data ou hora inválida.",
	"invalid_token":             "Token inválido ou expirado.",
	"email_in_use":              "E-mail já cadastrado.",
	"part_not_found":            "Peça não encontrada.",
	"insufficient_stock":        "Estoque insuficiente.",
	"work_order_not_found":      "Ordem de serviço não encontrada.",
	"not_work_order_owner":      "Você não tem acesso a esta ordem de serviço.",
	"invalid_work_order_state":  "A ordem de serviço não permite esta operação.",
}

// writeBusinessError mapeia o código de negócio para o status HTTP da
// taxonomia: NotFound, Validation, Forbidden ou StateConflict.
func writeBusinessError(c *gin.Context, err error) {
	code := httperr.BusinessCode(err)

	msg, ok := businessMessages[code]
	if !ok {
		msg = "Erro ao processar a requisição."
	}

	switch code {
	case "mechanic_not_found", "vehicle_not_found", "schedule_not_found",
		"appointment_not_found", "part_not_found", "work_order_not_found":
		httperr.NotFound(c, code, msg)

	case "vehicle_not_owned", "not_appointment_owner", "not_work_order_owner":
		httperr.Forbidden(c, code, msg)

	case "invalid_state", "invalid_work_order_state":
		httperr.Conflict(c, code, msg)

	case "":
		httperr.Internal(c, "internal_error", "Erro interno.")

	default:
		httperr.BadRequest(c, code, msg)
	}
}
