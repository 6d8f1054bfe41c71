package audit

import (
	"time"

	"github.com/google/uuid"
)

// Entry é um registro da trilha de auditoria. A trilha é somente-acréscimo:
// entradas nunca são alteradas ou removidas.
type Entry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	IP          string    `json:"ip"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewEntry cria um registro de auditoria
func NewEntry(userID, action, description, ip string) *Entry {
	return &Entry{
		ID:          uuid.New().String(),
		UserID:      userID,
		Action:      action,
		Description: description,
		IP:          ip,
		CreatedAt:   time.Now(),
	}
}
