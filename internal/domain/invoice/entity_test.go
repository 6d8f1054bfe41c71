package invoice

import (
	"testing"
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/shopspring/decimal"
)

func TestNewFromOrder(t *testing.T) {
	o := order.NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 2, decimal.RequireFromString("10.00"))
	_ = o.AddItem("prod-2", 1, decimal.RequireFromString("5.00"))

	inv := NewFromOrder(o)

	if !inv.NetValue.Equal(decimal.RequireFromString("25.00")) {
		t.Errorf("líquido = %s, esperado 25.00", inv.NetValue)
	}
	if !inv.VATValue.Equal(decimal.RequireFromString("5.75")) {
		t.Errorf("IVA = %s, esperado 5.75", inv.VATValue)
	}
	if !inv.GrossValue.Equal(decimal.RequireFromString("30.75")) {
		t.Errorf("bruto = %s, esperado 30.75", inv.GrossValue)
	}

	// bruto = líquido + IVA sempre
	if !inv.GrossValue.Equal(inv.NetValue.Add(inv.VATValue)) {
		t.Errorf("bruto %s difere de líquido + IVA", inv.GrossValue)
	}

	if inv.OrderID != o.ID || inv.CustomerID != "cust-1" {
		t.Error("fatura não referencia pedido e cliente")
	}
	if inv.Paid {
		t.Error("fatura nova não pode nascer paga")
	}

	wantDue := inv.IssuedAt.Add(14 * 24 * time.Hour)
	if !inv.DueDate.Equal(wantDue) {
		t.Errorf("vencimento = %v, esperado %v", inv.DueDate, wantDue)
	}
}

func TestMarkPaid(t *testing.T) {
	o := order.NewOrder("cust-1", "")
	_ = o.AddItem("prod-1", 1, decimal.RequireFromString("1.00"))
	inv := NewFromOrder(o)

	inv.MarkPaid()
	if !inv.Paid {
		t.Error("MarkPaid não registrou o pagamento")
	}
}
