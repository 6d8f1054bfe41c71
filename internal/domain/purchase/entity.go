package purchase

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems           = errors.New("ordem de compra precisa de ao menos uma posição")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrInvalidTransition = errors.New("transição de status inválida")
)

// Status representa o estado da ordem de compra
type Status string

const (
	StatusNew       Status = "NEW"
	StatusSent      Status = "SENT"
	StatusDelivered Status = "DELIVERED"
	StatusCancelled Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusNew:  {StatusSent, StatusCancelled},
	StatusSent: {StatusDelivered, StatusCancelled},
}

// IsValid verifica se o status é um dos valores conhecidos
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusSent, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo verifica se a transição para o status alvo é permitida
func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Item é uma posição da ordem de compra
type Item struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	NetValue  decimal.Decimal `json:"net_value"`
}

// NewItem cria uma posição com o valor líquido calculado
func NewItem(productID string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		NetValue:  unitPrice.Mul(decimal.NewFromInt(int64(quantity))),
	}, nil
}

// Order representa uma ordem de compra enviada a um fornecedor
type Order struct {
	ID              string          `json:"id"`
	Number          string          `json:"number"`
	SupplierID      string          `json:"supplier_id"`
	Status          Status          `json:"status"`
	NetValue        decimal.Decimal `json:"net_value"`
	Notes           string          `json:"notes"`
	PlacedAt        time.Time       `json:"placed_at"`
	PlannedDelivery *time.Time      `json:"planned_delivery"`
	ActualDelivery  *time.Time      `json:"actual_delivery"`
	Items           []*Item         `json:"items"`
}

// NewOrder cria uma ordem de compra no status NEW
func NewOrder(supplierID, notes string, plannedDelivery *time.Time) *Order {
	return &Order{
		ID:              uuid.New().String(),
		SupplierID:      supplierID,
		Status:          StatusNew,
		NetValue:        decimal.Zero,
		Notes:           notes,
		PlacedAt:        time.Now(),
		PlannedDelivery: plannedDelivery,
	}
}

// AddItem adiciona uma posição e recalcula o valor da ordem
func (o *Order) AddItem(productID string, quantity int, unitPrice decimal.Decimal) error {
	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return err
	}
	o.Items = append(o.Items, item)
	o.ComputeValue()
	return nil
}

// ComputeValue recalcula o valor líquido a partir das posições
func (o *Order) ComputeValue() {
	net := decimal.Zero
	for _, item := range o.Items {
		net = net.Add(item.NetValue)
	}
	o.NetValue = net
}

// Send marca a ordem como enviada ao fornecedor
func (o *Order) Send() error {
	if !o.Status.CanTransitionTo(StatusSent) {
		return ErrInvalidTransition
	}
	o.Status = StatusSent
	return nil
}

// MarkDelivered registra a entrega, com a data real. A entrega não mexe no
// estoque: o recebimento físico é um documento de armazém separado.
func (o *Order) MarkDelivered() error {
	if !o.Status.CanTransitionTo(StatusDelivered) {
		return ErrInvalidTransition
	}
	o.Status = StatusDelivered
	now := time.Now()
	o.ActualDelivery = &now
	return nil
}

// Cancel cancela a ordem. Permitido apenas em NEW ou SENT.
func (o *Order) Cancel() error {
	if !o.Status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	o.Status = StatusCancelled
	return nil
}
