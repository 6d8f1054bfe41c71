package product

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCode     = errors.New("código não pode ser vazio")
	ErrEmptyName     = errors.New("nome não pode ser vazio")
	ErrNegativePrice = errors.New("preço unitário não pode ser negativo")
)

// Product representa um produto do catálogo
type Product struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`     // Código único do produto
	Name         string          `json:"name"`     // Nome comercial
	Category     string          `json:"category"` // Categoria livre
	Unit         string          `json:"unit"`     // Unidade de medida (un, kg, ...)
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinimumStock int             `json:"minimum_stock"` // Estoque mínimo para alerta
	Description  string          `json:"description"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// NewProduct cria um novo produto
func NewProduct(code, name, category, unit string, unitPrice decimal.Decimal, minimumStock int, description string) (*Product, error) {
	if code == "" {
		return nil, ErrEmptyCode
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	if unit == "" {
		unit = "un"
	}

	return &Product{
		ID:           uuid.New().String(),
		Code:         code,
		Name:         name,
		Category:     category,
		Unit:         unit,
		UnitPrice:    unitPrice,
		MinimumStock: minimumStock,
		Description:  description,
		Active:       true,
		CreatedAt:    time.Now(),
	}, nil
}

// Update atualiza os dados cadastrais do produto
func (p *Product) Update(name, category, unit string, unitPrice decimal.Decimal, minimumStock int, description string) error {
	if name == "" {
		return ErrEmptyName
	}
	if unitPrice.IsNegative() {
		return ErrNegativePrice
	}

	p.Name = name
	p.Category = category
	p.Unit = unit
	p.UnitPrice = unitPrice
	p.MinimumStock = minimumStock
	p.Description = description
	return nil
}

// Activate ativa o produto
func (p *Product) Activate() {
	p.Active = true
}

// Deactivate desativa o produto; produtos nunca são removidos
func (p *Product) Deactivate() {
	p.Active = false
}
