package warehouse

import (
	"errors"
	"testing"
)

func TestNewReceiptRequiresSupplier(t *testing.T) {
	if _, err := NewReceipt("", ""); !errors.Is(err, ErrMissingSupplier) {
		t.Errorf("NewReceipt sem fornecedor = %v, esperado ErrMissingSupplier", err)
	}

	doc, err := NewReceipt("supp-1", "entrega semanal")
	if err != nil {
		t.Fatalf("NewReceipt: %v", err)
	}
	if doc.Type != TypeReceipt {
		t.Errorf("tipo = %s, esperado RECEIPT", doc.Type)
	}
	if doc.SupplierID == nil || *doc.SupplierID != "supp-1" {
		t.Error("fornecedor não registrado no documento")
	}
}

func TestNewIssueOrderLinkOptional(t *testing.T) {
	doc := NewIssue("", "")
	if doc.OrderID != nil {
		t.Error("expedição sem pedido não deveria ter vínculo")
	}

	linked := NewIssue("order-1", "")
	if linked.OrderID == nil || *linked.OrderID != "order-1" {
		t.Error("vínculo com o pedido não registrado")
	}
	if linked.Type != TypeIssue {
		t.Errorf("tipo = %s, esperado ISSUE", linked.Type)
	}
}

func TestValidate(t *testing.T) {
	doc := NewIssue("", "")
	if err := doc.Validate(); !errors.Is(err, ErrNoItems) {
		t.Errorf("documento vazio = %v, esperado ErrNoItems", err)
	}

	if err := doc.AddItem("prod-1", 0); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("AddItem com quantidade 0 = %v, esperado ErrInvalidQuantity", err)
	}

	if err := doc.AddItem("prod-1", 5); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if err := doc.Validate(); err != nil {
		t.Errorf("documento com posição retornou %v", err)
	}
}
