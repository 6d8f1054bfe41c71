package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/warehouse"
)

// DocumentItemRequest representa a requisição de uma posição do documento
type DocumentItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// ReceiptRequest representa a requisição de documento de recebimento
type ReceiptRequest struct {
	SupplierID string                `json:"supplier_id" binding:"required"`
	Notes      string                `json:"notes"`
	Items      []DocumentItemRequest `json:"items" binding:"required,min=1"`
}

// IssueRequest representa a requisição de documento de expedição
type IssueRequest struct {
	OrderID string                `json:"order_id"` // Opcional; expede o pedido vinculado
	Notes   string                `json:"notes"`
	Items   []DocumentItemRequest `json:"items" binding:"required,min=1"`
}

// DocumentItemResponse representa a resposta de uma posição do documento
type DocumentItemResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// DocumentResponse representa a resposta de documento de armazém
type DocumentResponse struct {
	ID         string                 `json:"id"`
	Number     string                 `json:"number"`
	Type       string                 `json:"type"`
	IssuedAt   time.Time              `json:"issued_at"`
	SupplierID *string                `json:"supplier_id"`
	OrderID    *string                `json:"order_id"`
	Notes      string                 `json:"notes"`
	Items      []DocumentItemResponse `json:"items,omitempty"`
}

// DocumentListResponse representa a resposta de lista de documentos
type DocumentListResponse struct {
	Items      []DocumentResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToDocumentResponse converte um documento do domínio para DTO
func ToDocumentResponse(d *warehouse.Document) DocumentResponse {
	items := make([]DocumentItemResponse, len(d.Items))
	for i, item := range d.Items {
		items[i] = DocumentItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
	}

	return DocumentResponse{
		ID:         d.ID,
		Number:     d.Number,
		Type:       string(d.Type),
		IssuedAt:   d.IssuedAt,
		SupplierID: d.SupplierID,
		OrderID:    d.OrderID,
		Notes:      d.Notes,
		Items:      items,
	}
}

// ToDocumentListResponse converte uma lista de documentos do domínio para DTO
func ToDocumentListResponse(docs []*warehouse.Document, total, page, size int) DocumentListResponse {
	items := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		items[i] = ToDocumentResponse(d)
	}

	return DocumentListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
