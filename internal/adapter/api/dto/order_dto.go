package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/shopspring/decimal"
)

// OrderItemRequest representa a requisição de uma posição do pedido
type OrderItemRequest struct {
	ProductID string          `json:"product_id" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"` // Vazio usa o preço atual do produto
}

// OrderRequest representa a requisição de pedido de venda
type OrderRequest struct {
	CustomerID string             `json:"customer_id" binding:"required"`
	Notes      string             `json:"notes"`
	Items      []OrderItemRequest `json:"items" binding:"required,min=1"`
}

// OrderItemResponse representa a resposta de uma posição do pedido
type OrderItemResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	NetValue  decimal.Decimal `json:"net_value"`
	Picked    bool            `json:"picked"`
}

// OrderResponse representa a resposta de pedido de venda
type OrderResponse struct {
	ID          string              `json:"id"`
	Number      string              `json:"number"`
	CustomerID  string              `json:"customer_id"`
	Status      string              `json:"status"`
	NetValue    decimal.Decimal     `json:"net_value"`
	GrossValue  decimal.Decimal     `json:"gross_value"`
	Notes       string              `json:"notes"`
	PlacedAt    time.Time           `json:"placed_at"`
	FulfilledAt *time.Time          `json:"fulfilled_at"`
	Items       []OrderItemResponse `json:"items,omitempty"`
}

// OrderListResponse representa a resposta de lista de pedidos
type OrderListResponse struct {
	Items      []OrderResponse `json:"items"`
	Total      int             `json:"total"`
	Page       int             `json:"page"`
	Size       int             `json:"size"`
	TotalPages int             `json:"total_pages"`
}

// ToOrderResponse converte um pedido do domínio para DTO
func ToOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			NetValue:  item.NetValue,
			Picked:    item.Picked,
		}
	}

	return OrderResponse{
		ID:          o.ID,
		Number:      o.Number,
		CustomerID:  o.CustomerID,
		Status:      string(o.Status),
		NetValue:    o.NetValue,
		GrossValue:  o.GrossValue,
		Notes:       o.Notes,
		PlacedAt:    o.PlacedAt,
		FulfilledAt: o.FulfilledAt,
		Items:       items,
	}
}

// ToOrderListResponse converte uma lista de pedidos do domínio para DTO
func ToOrderListResponse(orders []*order.Order, total, page, size int) OrderListResponse {
	items := make([]OrderResponse, len(orders))
	for i, o := range orders {
		items[i] = ToOrderResponse(o)
	}

	return OrderListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
