// Package report define as visões de leitura agregadas do sistema.
// Erros de agregação sempre sobem ao chamador; nenhum relatório substitui
// uma falha por um resultado vazio.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CategorySales é a venda líquida agregada por categoria de produto
type CategorySales struct {
	Category string          `json:"category"`
	NetValue decimal.Decimal `json:"net_value"`
}

// SalesSummary resume os pedidos de venda de um período
type SalesSummary struct {
	From       time.Time       `json:"from"`
	To         time.Time       `json:"to"`
	OrderCount int             `json:"order_count"`
	TotalNet   decimal.Decimal `json:"total_net"`
	TotalGross decimal.Decimal `json:"total_gross"`
	ByCategory []CategorySales `json:"by_category"`
}

// StockRow é uma linha do relatório de estoque
type StockRow struct {
	ProductID    string          `json:"product_id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Available    int             `json:"available"`
	Reserved     int             `json:"reserved"`
	Location     string          `json:"location"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinimumStock int             `json:"minimum_stock"`
	Low          bool            `json:"low"`
}

// StockSummary resume o estoque atual
type StockSummary struct {
	Rows       []StockRow      `json:"rows"`
	TotalValue decimal.Decimal `json:"total_value"` // Σ disponível × preço unitário
	LowCount   int             `json:"low_count"`
}

// RotationRow é a quantidade expedida de um produto no período
type RotationRow struct {
	ProductID string `json:"product_id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Issued    int64  `json:"issued"`
}

// DocumentRow é uma linha do relatório de documentos de armazém
type DocumentRow struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Type     string    `json:"type"`
	IssuedAt time.Time `json:"issued_at"`
	Items    int       `json:"items"`
}

// InvoiceSummary resume as faturas de um período
type InvoiceSummary struct {
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	InvoiceCount int             `json:"invoice_count"`
	PaidCount    int             `json:"paid_count"`
	TotalNet     decimal.Decimal `json:"total_net"`
	TotalGross   decimal.Decimal `json:"total_gross"`
}

// Repository define as consultas agregadas de relatório
type Repository interface {
	// Sales resume os pedidos do período com totais por categoria
	Sales(ctx context.Context, from, to time.Time) (*SalesSummary, error)

	// Stock retorna a visão de estoque, com filtro opcional de categoria
	// e de somente-baixos
	Stock(ctx context.Context, category string, lowOnly bool) (*StockSummary, error)

	// Rotation retorna as quantidades expedidas por produto no período,
	// em ordem decrescente
	Rotation(ctx context.Context, from, to time.Time) ([]RotationRow, error)

	// Documents lista os documentos do período com filtro opcional de tipo
	Documents(ctx context.Context, from, to time.Time, docType string) ([]DocumentRow, error)

	// Invoices resume as faturas do período
	Invoices(ctx context.Context, from, to time.Time) (*InvoiceSummary, error)
}
