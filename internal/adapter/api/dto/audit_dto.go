package dto

import (
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
)

// AuditEntryResponse representa a resposta de um registro de auditoria
type AuditEntryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	IP          string    `json:"ip"`
	CreatedAt   time.Time `json:"created_at"`
}

// AuditListResponse representa a resposta de lista da trilha de auditoria
type AuditListResponse struct {
	Items []AuditEntryResponse `json:"items"`
	Page  int                  `json:"page"`
	Size  int                  `json:"size"`
}

// ToAuditListResponse converte registros de auditoria do domínio para DTO
func ToAuditListResponse(entries []*audit.Entry, page, size int) AuditListResponse {
	items := make([]AuditEntryResponse, len(entries))
	for i, e := range entries {
		items[i] = AuditEntryResponse{
			ID:          e.ID,
			UserID:      e.UserID,
			Action:      e.Action,
			Description: e.Description,
			IP:          e.IP,
			CreatedAt:   e.CreatedAt,
		}
	}
	return AuditListResponse{Items: items, Page: page, Size: size}
}
