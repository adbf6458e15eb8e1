package models

import (
	"encoding/json"
	"testing"
)

func TestScheduleHours(t *testing.T) {
	s := &Schedule{}

	if got := s.HourList(); len(got) != 0 {
		t.Fatalf("agenda vazia deveria ter zero horas, veio %v", got)
	}

	s.SetHourList([]string{"10:00", "08:00", "09:00", "08:00"})

	got := s.HourList()
	want := []string{"08:00", "09:00", "10:00"}
	if len(got) != len(want) {
		t.Fatalf("esperava %v, veio %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("horas devem sair ordenadas e sem duplicata: %v", got)
		}
	}

	if !s.HasHour("09:00") {
		t.Fatal("09:00 deveria estar na agenda")
	}
	if s.HasHour("11:00") {
		t.Fatal("11:00 nao deveria estar na agenda")
	}
}

func TestScheduleRemoveHour(t *testing.T) {
	s := &Schedule{}
	s.SetHourList([]string{"08:00", "09:00"})

	if !s.RemoveHour("08:00") {
		t.Fatal("remover hora existente deveria retornar true")
	}
	if s.HasHour("08:00") {
		t.Fatal("08:00 deveria ter saido da agenda")
	}

	// Remover de novo falha: é a checagem que barra reserva dupla.
	if s.RemoveHour("08:00") {
		t.Fatal("remover hora ausente deveria retornar false")
	}
}

func TestScheduleAddHourIdempotent(t *testing.T) {
	s := &Schedule{}
	s.SetHourList([]string{"08:00"})

	s.AddHour("09:00")
	s.AddHour("09:00")

	if got := len(s.HourList()); got != 2 {
		t.Fatalf("esperava 2 horas, veio %d", got)
	}
}

func TestScheduleMarshalJSON(t *testing.T) {
	s := Schedule{ID: 1, MechanicID: 2, Date: "2026-09-10"}
	s.SetHourList([]string{"08:00", "09:00"})

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out struct {
		Hours []string `json:"hours"`
	}
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(out.Hours) != 2 || out.Hours[0] != "08:00" {
		t.Fatalf("json deveria expor as horas como array: %s", b)
	}
}
