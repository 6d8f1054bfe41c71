package warehouse

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoItems         = errors.New("documento precisa de ao menos uma posição")
	ErrInvalidQuantity = errors.New("quantidade deve ser maior que zero")
	ErrMissingSupplier = errors.New("documento de recebimento exige fornecedor")
	ErrInvalidType     = errors.New("tipo de documento inválido")
)

// Type representa o tipo do documento de armazém, fixado na criação
type Type string

const (
	TypeReceipt Type = "RECEIPT" // Entrada de mercadoria
	TypeIssue   Type = "ISSUE"   // Saída de mercadoria
)

// IsValid verifica se o tipo é conhecido
func (t Type) IsValid() bool {
	return t == TypeReceipt || t == TypeIssue
}

// Item é uma posição do documento de armazém
type Item struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Document representa um documento de entrada ou saída de mercadoria.
// Um recebimento referencia um fornecedor; uma expedição pode referenciar
// o pedido de venda que atende.
type Document struct {
	ID         string    `json:"id"`
	Number     string    `json:"number"`
	Type       Type      `json:"type"`
	IssuedAt   time.Time `json:"issued_at"`
	SupplierID *string   `json:"supplier_id"`
	OrderID    *string   `json:"order_id"`
	Notes      string    `json:"notes"`
	Items      []*Item   `json:"items"`
}

// NewReceipt cria um documento de recebimento vinculado a um fornecedor
func NewReceipt(supplierID, notes string) (*Document, error) {
	if supplierID == "" {
		return nil, ErrMissingSupplier
	}
	return &Document{
		ID:         uuid.New().String(),
		Type:       TypeReceipt,
		IssuedAt:   time.Now(),
		SupplierID: &supplierID,
		Notes:      notes,
	}, nil
}

// NewIssue cria um documento de expedição, opcionalmente vinculado a um
// pedido de venda
func NewIssue(orderID, notes string) *Document {
	doc := &Document{
		ID:       uuid.New().String(),
		Type:     TypeIssue,
		IssuedAt: time.Now(),
		Notes:    notes,
	}
	if orderID != "" {
		doc.OrderID = &orderID
	}
	return doc
}

// AddItem adiciona uma posição ao documento
func (d *Document) AddItem(productID string, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	d.Items = append(d.Items, &Item{
		ID:        uuid.New().String(),
		ProductID: productID,
		Quantity:  quantity,
	})
	return nil
}

// Validate verifica as condições mínimas antes da persistência
func (d *Document) Validate() error {
	if !d.Type.IsValid() {
		return ErrInvalidType
	}
	if len(d.Items) == 0 {
		return ErrNoItems
	}
	return nil
}
