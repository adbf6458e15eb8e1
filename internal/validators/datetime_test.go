package validators

import "testing"

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-09-10", "2026-01-01", "2024-02-29"}
	for _, d := range valid {
		if !IsValidDate(d) {
			t.Fatalf("%q deveria ser válida", d)
		}
	}

	invalid := []string{"", "10/09/2026", "2026-13-01", "2026-02-30", "2026-9-1"}
	for _, d := range invalid {
		if IsValidDate(d) {
			t.Fatalf("%q não deveria ser válida", d)
		}
	}
}

func TestIsValidHour(t *testing.T) {
	valid := []string{"00:00", "08:30", "23:59"}
	for _, h := range valid {
		if !IsValidHour(h) {
			t.Fatalf("%q deveria ser válida", h)
		}
	}

	invalid := []string{"", "24:00", "8h30", "08:60", "8:30"}
	for _, h := range invalid {
		if IsValidHour(h) {
			t.Fatalf("%q não deveria ser válida", h)
		}
	}
}
