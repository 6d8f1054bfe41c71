package order

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeValues(t *testing.T) {
	// Duas posições: 2 × 10,00 e 1 × 5,00 → líquido 25,00, bruto 30,75
	o := NewOrder("cust-1", "")
	if err := o.AddItem("prod-1", 2, price("10.00")); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := o.AddItem("prod-2", 1, price("5.00")); err != nil {
		t.Fatalf("AddItem: %v", err)
	}

	if !o.NetValue.Equal(price("25.00")) {
		t.Errorf("líquido = %s, esperado 25.00", o.NetValue)
	}
	if !o.GrossValue.Equal(price("30.75")) {
		t.Errorf("bruto = %s, esperado 30.75", o.GrossValue)
	}
}

func TestItemValue(t *testing.T) {
	item, err := NewItem("prod-1", 3, price("7.50"))
	if err != nil {
		t.Fatalf("NewItem: %v", err)
	}
	if !item.NetValue.Equal(price("22.50")) {
		t.Errorf("valor da posição = %s, esperado 22.50", item.NetValue)
	}

	if _, err := NewItem("prod-1", 0, price("1.00")); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("quantidade zero deveria retornar ErrInvalidQuantity, obteve %v", err)
	}
}

func TestGrossRecomputedOnItemChange(t *testing.T) {
	o := NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 1, price("100.00"))

	if !o.GrossValue.Equal(price("123.00")) {
		t.Fatalf("bruto = %s, esperado 123.00", o.GrossValue)
	}

	_ = o.AddItem("prod-2", 1, price("100.00"))
	if !o.GrossValue.Equal(o.NetValue.Mul(GrossFactor)) {
		t.Errorf("bruto %s difere de líquido × 1,23 (%s)", o.GrossValue, o.NetValue.Mul(GrossFactor))
	}
}

func TestStartPicking(t *testing.T) {
	o := NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 1, price("1.00"))

	if !o.StartPicking() {
		t.Fatal("StartPicking em NEW deveria transicionar")
	}
	if o.Status != StatusInProgress {
		t.Errorf("status = %s, esperado IN_PROGRESS", o.Status)
	}

	// Fora de NEW a chamada não tem efeito
	if o.StartPicking() {
		t.Error("StartPicking fora de NEW deveria ser no-op")
	}
	if o.Status != StatusInProgress {
		t.Errorf("status alterado indevidamente para %s", o.Status)
	}
}

func TestCompleteRequiresAllItemsPicked(t *testing.T) {
	o := NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 2, price("10.00"))
	_ = o.AddItem("prod-2", 1, price("5.00"))
	o.StartPicking()

	if err := o.Complete(); !errors.Is(err, ErrItemsNotPicked) {
		t.Fatalf("Complete sem separação = %v, esperado ErrItemsNotPicked", err)
	}
	if o.Status != StatusInProgress {
		t.Errorf("falha em Complete não deveria mudar o status: %s", o.Status)
	}

	_ = o.TogglePicked(o.Items[0].ID)
	if err := o.Complete(); !errors.Is(err, ErrItemsNotPicked) {
		t.Fatalf("Complete com separação parcial = %v, esperado ErrItemsNotPicked", err)
	}

	_ = o.TogglePicked(o.Items[1].ID)
	if err := o.Complete(); err != nil {
		t.Fatalf("Complete com tudo separado retornou erro: %v", err)
	}
	if o.Status != StatusReady {
		t.Errorf("status = %s, esperado READY", o.Status)
	}
	if o.FulfilledAt == nil {
		t.Error("Complete deveria registrar a data de realização")
	}
}

func TestCompleteOnlyFromInProgress(t *testing.T) {
	o := NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 1, price("1.00"))
	_ = o.TogglePicked(o.Items[0].ID)

	if err := o.Complete(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Complete em NEW = %v, esperado ErrInvalidTransition", err)
	}
}

func TestShipOnlyFromReady(t *testing.T) {
	o := NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 1, price("1.00"))

	if err := o.Ship(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Ship em NEW = %v, esperado ErrInvalidTransition", err)
	}

	o.StartPicking()
	_ = o.TogglePicked(o.Items[0].ID)
	if err := o.Complete(); err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if err := o.Ship(); err != nil {
		t.Fatalf("Ship em READY retornou erro: %v", err)
	}
	if o.Status != StatusShipped {
		t.Errorf("status = %s, esperado SHIPPED", o.Status)
	}

	// SHIPPED é terminal
	if err := o.Ship(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Ship em SHIPPED = %v, esperado ErrInvalidTransition", err)
	}
	if err := o.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Cancel em SHIPPED = %v, esperado ErrInvalidTransition", err)
	}
}

func TestCancel(t *testing.T) {
	o := NewOrder("cust-1", "")
	if err := o.Cancel(); err != nil {
		t.Fatalf("Cancel em NEW retornou erro: %v", err)
	}
	if o.Status != StatusCancelled {
		t.Errorf("status = %s, esperado CANCELLED", o.Status)
	}

	// CANCELLED é terminal
	if o.StartPicking() {
		t.Error("StartPicking em CANCELLED deveria ser no-op")
	}
}

func TestTogglePickedUnknownItem(t *testing.T) {
	o := NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 1, price("1.00"))
	if err := o.TogglePicked("desconhecido"); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("TogglePicked de posição inexistente = %v, esperado ErrItemNotFound", err)
	}
}
