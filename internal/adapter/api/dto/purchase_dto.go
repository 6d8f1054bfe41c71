package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/purchase"
	"github.com/shopspring/decimal"
)

// PurchaseItemRequest representa a requisição de uma posição da ordem de compra
type PurchaseItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price" binding:"required"`
}

// PurchaseRequest representa a requisição de ordem de compra
type PurchaseRequest struct {
	SupplierID      string                `json:"supplier_id" binding:"required"`
	Notes           string                `json:"notes"`
	PlannedDelivery *time.Time            `json:"planned_delivery"`
	Items           []PurchaseItemRequest `json:"items" binding:"required,min=1"`
}

// PurchaseItemResponse representa a resposta de uma posição da ordem de compra
type PurchaseItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	NetValue  decimal.Decimal `json:"net_value"`
}

// PurchaseResponse representa a resposta de ordem de compra
type PurchaseResponse struct {
	ID              string                 `json:"id"`
	Number          string                 `json:"number"`
	SupplierID      string                 `json:"supplier_id"`
	Status          string                 `json:"status"`
	NetValue        decimal.Decimal        `json:"net_value"`
	Notes           string                 `json:"notes"`
	PlacedAt        time.Time              `json:"placed_at"`
	PlannedDelivery *time.Time             `json:"planned_delivery"`
	ActualDelivery  *time.Time             `json:"actual_delivery"`
	Items           []PurchaseItemResponse `json:"items,omitempty"`
}

// PurchaseListResponse representa a resposta de lista de ordens de compra
type PurchaseListResponse struct {
	Items      []PurchaseResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToPurchaseResponse converte uma ordem de compra do domínio para DTO
func ToPurchaseResponse(o *purchase.Order) PurchaseResponse {
	items := make([]PurchaseItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = PurchaseItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			NetValue:  item.NetValue,
		}
	}

	return PurchaseResponse{
		ID:              o.ID,
		Number:          o.Number,
		SupplierID:      o.SupplierID,
		Status:          string(o.Status),
		NetValue:        o.NetValue,
		Notes:           o.Notes,
		PlacedAt:        o.PlacedAt,
		PlannedDelivery: o.PlannedDelivery,
		ActualDelivery:  o.ActualDelivery,
		Items:           items,
	}
}

// ToPurchaseListResponse converte uma lista de ordens de compra para DTO
func ToPurchaseListResponse(orders []*purchase.Order, total, page, size int) PurchaseListResponse {
	items := make([]PurchaseResponse, len(orders))
	for i, o := range orders {
		items[i] = ToPurchaseResponse(o)
	}

	return PurchaseListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
