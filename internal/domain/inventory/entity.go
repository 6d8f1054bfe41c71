package inventory

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity   = errors.New("quantidade deve ser maior que zero")
	ErrInsufficientStock = errors.New("estoque disponível insuficiente")
)

// Record é o registro de estoque de um produto. Mantém as quantidades
// disponível e reservada, ambas nunca negativas.
type Record struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	Available int       `json:"available"`
	Reserved  int       `json:"reserved"`
	Location  string    `json:"location"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRecord cria um registro de estoque zerado para um produto
func NewRecord(productID, location string) *Record {
	return &Record{
		ID:        uuid.New().String(),
		ProductID: productID,
		Available: 0,
		Reserved:  0,
		Location:  location,
		UpdatedAt: time.Now(),
	}
}

// Add acrescenta quantidade ao disponível (entrada de mercadoria)
func (r *Record) Add(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	r.Available += quantity
	r.UpdatedAt = time.Now()
	return nil
}

// Subtract retira quantidade do disponível (saída de mercadoria).
// A retirada exige disponível suficiente; caso contrário nada é alterado.
func (r *Record) Subtract(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.Available < quantity {
		return fmt.Errorf("%w: disponível %d, solicitado %d", ErrInsufficientStock, r.Available, quantity)
	}
	r.Available -= quantity
	r.UpdatedAt = time.Now()
	return nil
}

// Reserve move quantidade do disponível para o reservado. A operação é
// tudo-ou-nada: sem disponível suficiente o registro permanece intacto.
func (r *Record) Reserve(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if r.Available < quantity {
		return fmt.Errorf("%w: disponível %d, solicitado %d", ErrInsufficientStock, r.Available, quantity)
	}
	r.Available -= quantity
	r.Reserved += quantity
	r.UpdatedAt = time.Now()
	return nil
}

// IsLow indica se o disponível atingiu o estoque mínimo do produto
func (r *Record) IsLow(minimumStock int) bool {
	return r.Available <= minimumStock
}
