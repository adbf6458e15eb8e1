package timezone

import "testing"

func TestIsValid(t *testing.T) {
	if !IsValid("America/Sao_Paulo") {
		t.Fatal("America/Sao_Paulo deveria ser válido")
	}
	if IsValid("") || IsValid("Narnia/City") {
		t.Fatal("timezone inexistente nao deveria ser válido")
	}
}

func TestLocationFallback(t *testing.T) {
	if got := Location("Narnia/City"); got.String() != DefaultTimezone {
		t.Fatalf("esperava fallback para %s, veio %s", DefaultTimezone, got)
	}
	if got := Location("UTC"); got.String() != "UTC" {
		t.Fatalf("esperava UTC, veio %s", got)
	}
}

func TestNowUsesDefaultTimezone(t *testing.T) {
	if got := Now().Location().String(); got != DefaultTimezone {
		t.Fatalf("Now deveria estar em %s, veio %s", DefaultTimezone, got)
	}
}
