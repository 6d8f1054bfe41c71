package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/invoice"
	"github.com/shopspring/decimal"
)

// InvoiceRequest representa a requisição de emissão de fatura
type InvoiceRequest struct {
	OrderID string `json:"order_id" binding:"required"`
}

// InvoiceResponse representa a resposta de fatura
type InvoiceResponse struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"`
	CustomerID string          `json:"customer_id"`
	OrderID    string          `json:"order_id"`
	IssuedAt   time.Time       `json:"issued_at"`
	SaleDate   time.Time       `json:"sale_date"`
	DueDate    time.Time       `json:"due_date"`
	NetValue   decimal.Decimal `json:"net_value"`
	VATValue   decimal.Decimal `json:"vat_value"`
	GrossValue decimal.Decimal `json:"gross_value"`
	Paid       bool            `json:"paid"`
}

// InvoiceListResponse representa a resposta de lista de faturas
type InvoiceListResponse struct {
	Items      []InvoiceResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToInvoiceResponse converte uma fatura do domínio para DTO
func ToInvoiceResponse(i *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:         i.ID,
		Number:     i.Number,
		CustomerID: i.CustomerID,
		OrderID:    i.OrderID,
		IssuedAt:   i.IssuedAt,
		SaleDate:   i.SaleDate,
		DueDate:    i.DueDate,
		NetValue:   i.NetValue,
		VATValue:   i.VATValue,
		GrossValue: i.GrossValue,
		Paid:       i.Paid,
	}
}

// ToInvoiceListResponse converte uma lista de faturas do domínio para DTO
func ToInvoiceListResponse(invoices []*invoice.Invoice, total, page, size int) InvoiceListResponse {
	items := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = ToInvoiceResponse(inv)
	}

	return InvoiceListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
