package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/inventory"
)

// StockItemResponse representa a resposta de um item de estoque
type StockItemResponse struct {
	ProductID    string    `json:"product_id"`
	ProductCode  string    `json:"product_code"`
	ProductName  string    `json:"product_name"`
	Category     string    `json:"category"`
	Available    int       `json:"available"`
	Reserved     int       `json:"reserved"`
	Location     string    `json:"location"`
	MinimumStock int       `json:"minimum_stock"`
	Low          bool      `json:"low"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StockListResponse representa a resposta de lista de estoque
type StockListResponse struct {
	Items []StockItemResponse `json:"items"`
	Total int                 `json:"total"`
}

// LocationUpdateRequest representa a requisição de mudança de localização
type LocationUpdateRequest struct {
	Location string `json:"location" binding:"required"`
}

// ToStockItemResponse converte um item de estoque do domínio para DTO
func ToStockItemResponse(it *inventory.StockItem) StockItemResponse {
	return StockItemResponse{
		ProductID:    it.ProductID,
		ProductCode:  it.ProductCode,
		ProductName:  it.ProductName,
		Category:     it.Category,
		Available:    it.Available,
		Reserved:     it.Reserved,
		Location:     it.Location,
		MinimumStock: it.MinimumStock,
		Low:          it.Low,
		UpdatedAt:    it.UpdatedAt,
	}
}

// ToStockListResponse converte uma lista de itens de estoque para DTO
func ToStockListResponse(items []*inventory.StockItem) StockListResponse {
	result := make([]StockItemResponse, len(items))
	for i, it := range items {
		result[i] = ToStockItemResponse(it)
	}
	return StockListResponse{Items: result, Total: len(result)}
}
