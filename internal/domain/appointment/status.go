package appointment

import "github.com/OficinaTechBR/workshop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusAccepted, StatusRejected:
		return Status(s), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// ===============================
// Transições
// ===============================

// Transition centraliza a máquina de estados: só pending muda de status,
// e só para accepted ou rejected. Cancelamento não é status, é exclusão
// do registro (ver CanCancel).
func Transition(current, requested Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}

	switch requested {
	case StatusAccepted, StatusRejected:
		return nil
	}

	return httperr.ErrBusiness("invalid_status")
}

// CanCancel define se o cliente ainda pode cancelar (apagar) o agendamento.
// Rejeitado é terminal: não há o que cancelar.
func CanCancel(current Status) error {
	if current != StatusPending && current != StatusAccepted {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// RequiresReason indica se a transição exige justificativa.
func RequiresReason(requested Status) bool {
	return requested == StatusRejected
}
