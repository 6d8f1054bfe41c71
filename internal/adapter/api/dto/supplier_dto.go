package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/supplier"
)

// SupplierRequest representa a requisição de fornecedor
type SupplierRequest struct {
	Name          string `json:"name" binding:"required"`
	TaxID         string `json:"tax_id"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	ContactPerson string `json:"contact_person"`
}

// SupplierResponse representa a resposta de fornecedor
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	TaxID         string    `json:"tax_id"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	ContactPerson string    `json:"contact_person"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// SupplierListResponse representa a resposta de lista de fornecedores
type SupplierListResponse struct {
	Items      []SupplierResponse `json:"items"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	Size       int                `json:"size"`
	TotalPages int                `json:"total_pages"`
}

// ToSupplierResponse converte um fornecedor do domínio para DTO
func ToSupplierResponse(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:            s.ID,
		Name:          s.Name,
		TaxID:         s.TaxID,
		Address:       s.Address,
		Phone:         s.Phone,
		Email:         s.Email,
		ContactPerson: s.ContactPerson,
		Active:        s.Active,
		CreatedAt:     s.CreatedAt,
	}
}

// ToSupplierListResponse converte uma lista de fornecedores do domínio para DTO
func ToSupplierListResponse(suppliers []*supplier.Supplier, total, page, size int) SupplierListResponse {
	items := make([]SupplierResponse, len(suppliers))
	for i, s := range suppliers {
		items[i] = ToSupplierResponse(s)
	}

	return SupplierListResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: calculateTotalPages(total, size),
	}
}
