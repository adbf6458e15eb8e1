package notification

import (
	"testing"
	"time"
)

// Dispatch nunca pode bloquear nem falhar a operação de origem, mesmo com
// a fila saturada.
func TestDispatchNeverBlocks(t *testing.T) {
	d := NewDispatcher(nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10_000; i++ {
			d.Dispatch(Request{
				UserID:  1,
				Title:   "Teste",
				Message: "mensagem",
			})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Dispatch bloqueou com a fila cheia")
	}
}
