package handlers

import (
	"testing"

	"github.com/OficinaTechBR/workshop-api/internal/models"
)

func TestCanTransitionWorkOrder(t *testing.T) {
	cases := []struct {
		current   string
		requested string
		want      bool
	}{
		{WorkOrderOpen, WorkOrderInProgress, true},
		{WorkOrderOpen, WorkOrderCancelled, true},
		{WorkOrderOpen, WorkOrderCompleted, false},
		{WorkOrderInProgress, WorkOrderCompleted, true},
		{WorkOrderInProgress, WorkOrderCancelled, true},
		{WorkOrderInProgress, WorkOrderOpen, false},
		{WorkOrderCompleted, WorkOrderInProgress, false},
		{WorkOrderCancelled, WorkOrderOpen, false},
	}

	for _, tc := range cases {
		if got := canTransitionWorkOrder(tc.current, tc.requested); got != tc.want {
			t.Errorf("canTransitionWorkOrder(%s, %s) = %v, esperava %v",
				tc.current, tc.requested, got, tc.want)
		}
	}
}

func TestMapProviderStatus(t *testing.T) {
	cases := []struct {
		provider string
		want     string
	}{
		{"approved", models.PaymentStatusApproved},
		{"rejected", models.PaymentStatusRejected},
		{"cancelled", models.PaymentStatusRejected},
		{"in_process", models.PaymentStatusPending},
		{"", models.PaymentStatusPending},
	}

	for _, tc := range cases {
		if got := mapProviderStatus(tc.provider); got != tc.want {
			t.Errorf("mapProviderStatus(%q) = %q, esperava %q", tc.provider, got, tc.want)
		}
	}
}
