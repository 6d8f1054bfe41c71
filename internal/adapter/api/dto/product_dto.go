package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/product"
	"github.com/shopspring/decimal"
)

// ProductRequest representa a requisição de produto
type ProductRequest struct {
	Code         string          `json:"code" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	MinimumStock int             `json:"minimum_stock"`
	Description  string          `json:"description"`
	Location     string          `json:"location"` // Localização inicial no armazém
}

// ProductUpdateRequest representa a requisição de atualização de produto
type ProductUpdateRequest struct {
	Name         string          `json:"name" binding:"required"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price" binding:"required"`
	MinimumStock int             `json:"minimum_stock"`
	Description  string          `json:"description"`
}

// ProductResponse representa a resposta de produto
type ProductResponse struct {
	ID           string          `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Unit         string          `json:"unit"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	MinimumStock int             `json:"minimum_stock"`
	Description  string          `json:"description"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ProductListResponse representa a resposta de lista de produtos
type ProductListResponse struct {
	Items      []ProductResponse `json:"items"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	Size       int               `json:"size"`
	TotalPages int               `json:"total_pages"`
}

// ToProductResponse converte um produto do domínio para DTO
func ToProductResponse(p *product.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         p.Unit,
		UnitPrice:    p.UnitPrice,
		MinimumStock: p.MinimumStock,
		Description:  p.Description,
		Active:       p.Active,
		CreatedAt:    p.CreatedAt,
	}
}

// ToProductListResponse converte uma lista de produtos do domínio para DTO
func ToProductListResponse(products []*product.Product, total, page, size int) ProductListResponse {
	items := make([]ProductResponse, len(products))
	for i, p := range products {
		items[i] = ToProductResponse(p)
	}

	return ProductListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
