package inventory

import (
	"errors"
	"testing"
	"time"
)

func TestAddIncreasesAvailable(t *testing.T) {
	r := NewRecord("prod-1", "A-01")
	before := r.UpdatedAt

	time.Sleep(time.Millisecond)
	if err := r.Add(5); err != nil {
		t.Fatalf("Add(5) retornou erro: %v", err)
	}
	if r.Available != 5 {
		t.Errorf("disponível = %d, esperado 5", r.Available)
	}
	if !r.UpdatedAt.After(before) {
		t.Error("Add deveria atualizar o timestamp")
	}
}

func TestAddRejectsNonPositive(t *testing.T) {
	r := NewRecord("prod-1", "")
	for _, q := range []int{0, -3} {
		if err := r.Add(q); !errors.Is(err, ErrInvalidQuantity) {
			t.Errorf("Add(%d) = %v, esperado ErrInvalidQuantity", q, err)
		}
	}
	if r.Available != 0 {
		t.Errorf("disponível = %d, esperado 0", r.Available)
	}
}

func TestSubtractGuardsAvailability(t *testing.T) {
	r := NewRecord("prod-1", "")
	_ = r.Add(3)

	if err := r.Subtract(5); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("Subtract(5) = %v, esperado ErrInsufficientStock", err)
	}
	if r.Available != 3 {
		t.Errorf("falha na retirada não deveria alterar o disponível: %d", r.Available)
	}

	if err := r.Subtract(3); err != nil {
		t.Fatalf("Subtract(3) retornou erro: %v", err)
	}
	if r.Available != 0 {
		t.Errorf("disponível = %d, esperado 0", r.Available)
	}
}

func TestReserveMovesQuantity(t *testing.T) {
	r := NewRecord("prod-1", "")
	_ = r.Add(10)

	if err := r.Reserve(4); err != nil {
		t.Fatalf("Reserve(4) retornou erro: %v", err)
	}
	if r.Available != 6 || r.Reserved != 4 {
		t.Errorf("após reserva: disponível=%d reservado=%d, esperado 6/4", r.Available, r.Reserved)
	}

	// Reserva acima do disponível não altera nada
	if err := r.Reserve(7); !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("Reserve(7) = %v, esperado ErrInsufficientStock", err)
	}
	if r.Available != 6 || r.Reserved != 4 {
		t.Errorf("reserva rejeitada alterou o registro: disponível=%d reservado=%d", r.Available, r.Reserved)
	}
}

func TestQuantitiesNeverNegative(t *testing.T) {
	r := NewRecord("prod-1", "")
	ops := []func() error{
		func() error { return r.Add(7) },
		func() error { return r.Subtract(2) },
		func() error { return r.Reserve(5) },
		func() error { return r.Subtract(10) },
		func() error { return r.Reserve(1) },
		func() error { return r.Add(3) },
	}
	for i, op := range ops {
		_ = op()
		if r.Available < 0 || r.Reserved < 0 {
			t.Fatalf("após operação %d: disponível=%d reservado=%d", i, r.Available, r.Reserved)
		}
	}
}

func TestIsLow(t *testing.T) {
	// Produto com estoque mínimo 20 e apenas 5 disponíveis
	r := NewRecord("prod-odz", "B-02")
	_ = r.Add(5)

	if !r.IsLow(20) {
		t.Error("disponível 5 com mínimo 20 deveria estar baixo")
	}

	if err := r.Add(20); err != nil {
		t.Fatalf("Add(20) retornou erro: %v", err)
	}
	if r.Available != 25 {
		t.Errorf("disponível = %d, esperado 25", r.Available)
	}
	if r.IsLow(20) {
		t.Error("disponível 25 com mínimo 20 não deveria estar baixo")
	}
}
