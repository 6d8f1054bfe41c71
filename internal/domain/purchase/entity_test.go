package purchase

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestComputeValue(t *testing.T) {
	o := NewOrder("supp-1", "", nil)
	_ = o.AddItem("prod-1", 10, decimal.RequireFromString("2.50"))
	_ = o.AddItem("prod-2", 4, decimal.RequireFromString("12.00"))

	if !o.NetValue.Equal(decimal.RequireFromString("73.00")) {
		t.Errorf("líquido = %s, esperado 73.00", o.NetValue)
	}
}

func TestLifecycle(t *testing.T) {
	o := NewOrder("supp-1", "", nil)

	// DELIVERED direto de NEW não é permitido
	if err := o.MarkDelivered(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("MarkDelivered em NEW = %v, esperado ErrInvalidTransition", err)
	}

	if err := o.Send(); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if o.Status != StatusSent {
		t.Errorf("status = %s, esperado SENT", o.Status)
	}

	if err := o.MarkDelivered(); err != nil {
		t.Fatalf("MarkDelivered: %v", err)
	}
	if o.Status != StatusDelivered {
		t.Errorf("status = %s, esperado DELIVERED", o.Status)
	}
	if o.ActualDelivery == nil {
		t.Error("entrega deveria registrar a data real")
	}

	// DELIVERED é terminal
	if err := o.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Cancel em DELIVERED = %v, esperado ErrInvalidTransition", err)
	}
}

func TestCancelFromSent(t *testing.T) {
	o := NewOrder("supp-1", "", nil)
	_ = o.Send()
	if err := o.Cancel(); err != nil {
		t.Fatalf("Cancel em SENT retornou erro: %v", err)
	}
	if o.Status != StatusCancelled {
		t.Errorf("status = %s, esperado CANCELLED", o.Status)
	}
	if err := o.Send(); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("Send em CANCELLED = %v, esperado ErrInvalidTransition", err)
	}
}
