package appointment

import (
	"testing"

	"github.com/OficinaTechBR/workshop-api/internal/httperr"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"pending", "accepted", "rejected"} {
		if _, err := ParseStatus(valid); err != nil {
			t.Fatalf("ParseStatus(%q) retornou erro: %v", valid, err)
		}
	}

	for _, invalid := range []string{"", "cancelled", "done", "PENDING"} {
		if _, err := ParseStatus(invalid); !httperr.IsBusiness(err, "invalid_status") {
			t.Fatalf("ParseStatus(%q) deveria falhar com invalid_status, veio %v", invalid, err)
		}
	}
}

func TestTransition(t *testing.T) {
	cases := []struct {
		name      string
		current   Status
		requested Status
		wantCode  string
	}{
		{"pending para accepted", StatusPending, StatusAccepted, ""},
		{"pending para rejected", StatusPending, StatusRejected, ""},
		{"pending para pending", StatusPending, StatusPending, "invalid_status"},
		{"accepted nao muda mais", StatusAccepted, StatusRejected, "invalid_state"},
		{"rejected nao muda mais", StatusRejected, StatusAccepted, "invalid_state"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Transition(tc.current, tc.requested)

			if tc.wantCode == "" {
				if err != nil {
					t.Fatalf("transicao valida retornou erro: %v", err)
				}
				return
			}

			if !httperr.IsBusiness(err, tc.wantCode) {
				t.Fatalf("esperava %s, veio %v", tc.wantCode, err)
			}
		})
	}
}

func TestCanCancel(t *testing.T) {
	if err := CanCancel(StatusPending); err != nil {
		t.Fatalf("pending deve permitir cancelamento: %v", err)
	}
	if err := CanCancel(StatusAccepted); err != nil {
		t.Fatalf("accepted deve permitir cancelamento: %v", err)
	}
	if err := CanCancel(StatusRejected); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("rejected nao pode ser cancelado, veio %v", err)
	}
}

func TestRequiresReason(t *testing.T) {
	if !RequiresReason(StatusRejected) {
		t.Fatal("rejeicao exige justificativa")
	}
	if RequiresReason(StatusAccepted) {
		t.Fatal("aceite nao exige justificativa")
	}
}
