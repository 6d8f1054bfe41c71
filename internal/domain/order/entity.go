package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrNoItems           = errors.New("pedido precisa de ao menos uma posição")
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrItemsNotPicked    = errors.New("nem todas as posições foram separadas")
	ErrInvalidTransition = errors.New("transição de status inválida")
	ErrItemNotFound      = errors.New("posição não encontrada no pedido")
)

// GrossFactor é o fator fixo de imposto aplicado sobre o valor líquido
var GrossFactor = decimal.RequireFromString("1.23")

// Status representa o estado do pedido de venda
type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusReady      Status = "READY"
	StatusShipped    Status = "SHIPPED"
	StatusCancelled  Status = "CANCELLED"
)

// transitions define as transições permitidas; SHIPPED e CANCELLED são
// terminais
var transitions = map[Status][]Status{
	StatusNew:        {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusReady, StatusCancelled},
	StatusReady:      {StatusShipped},
}

// IsValid verifica se o status é um dos valores conhecidos
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusReady, StatusShipped, StatusCancelled:
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

// Item é uma posição do pedido de venda
type Item struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	NetValue  decimal.Decimal `json:"net_value"`
	Picked    bool            `json:"picked"` // Posição separada no armazém
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

// Order representa um pedido de venda
type Order struct {
	ID          string          `json:"id"`
	Number      string          `json:"number"` // Imutável após a criação
	CustomerID  string          `json:"customer_id"`
	Status      Status          `json:"status"`
	NetValue    decimal.Decimal `json:"net_value"`
	GrossValue  decimal.Decimal `json:"gross_value"`
	Notes       string          `json:"notes"`
	PlacedAt    time.Time       `json:"placed_at"`
	FulfilledAt *time.Time      `json:"fulfilled_at"`
	Items       []*Item         `json:"items"`
}

// NewOrder cria um pedido de venda no status NEW
func NewOrder(customerID, notes string) *Order {
	return &Order{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Status:     StatusNew,
		NetValue:   decimal.Zero,
		GrossValue: decimal.Zero,
		Notes:      notes,
		PlacedAt:   time.Now(),
	}
}

// AddItem adiciona uma posição e recalcula os valores do pedido
func (o *Order) AddItem(productID string, quantity int, unitPrice decimal.Decimal) error {
	item, err := NewItem(productID, quantity, unitPrice)
	if err != nil {
		return err
	}
	o.Items = append(o.Items, item)
	o.ComputeValues()
	return nil
}

// ComputeValues recalcula líquido e bruto a partir das posições.
// Bruto = líquido × 1,23; deve ser chamado sempre que as posições mudam.
func (o *Order) ComputeValues() {
	net := decimal.Zero
	for _, item := range o.Items {
		net = net.Add(item.NetValue)
	}
	o.NetValue = net
	o.GrossValue = net.Mul(GrossFactor)
}

// AllItemsPicked verifica se todas as posições foram separadas
func (o *Order) AllItemsPicked() bool {
	for _, item := range o.Items {
		if !item.Picked {
			return false
		}
	}
	return true
}

// TogglePicked inverte a marcação de separação de uma posição
func (o *Order) TogglePicked(itemID string) error {
	for _, item := range o.Items {
		if item.ID == itemID {
			item.Picked = !item.Picked
			return nil
		}
	}
	return ErrItemNotFound
}

// StartPicking move o pedido de NEW para IN_PROGRESS. Fora de NEW a
// chamada não tem efeito.
func (o *Order) StartPicking() bool {
	if o.Status != StatusNew {
		return false
	}
	o.Status = StatusInProgress
	return true
}

// Complete move o pedido de IN_PROGRESS para READY. Exige todas as
// posições separadas; caso contrário o estado permanece inalterado.
func (o *Order) Complete() error {
	if !o.Status.CanTransitionTo(StatusReady) {
		return ErrInvalidTransition
	}
	if !o.AllItemsPicked() {
		return ErrItemsNotPicked
	}
	o.Status = StatusReady
	now := time.Now()
	o.FulfilledAt = &now
	return nil
}

// Ship move o pedido de READY para SHIPPED. Disparado pela criação do
// documento de expedição vinculado, na mesma transação.
func (o *Order) Ship() error {
	if !o.Status.CanTransitionTo(StatusShipped) {
		return ErrInvalidTransition
	}
	o.Status = StatusShipped
	return nil
}

// Cancel cancela o pedido. Permitido apenas em NEW ou IN_PROGRESS.
func (o *Order) Cancel() error {
	if !o.Status.CanTransitionTo(StatusCancelled) {
		return ErrInvalidTransition
	}
	o.Status = StatusCancelled
	return nil
}
