package audit

import "context"

// Repository define a interface para a trilha de auditoria
type Repository interface {
	// Create acrescenta um registro à trilha
	Create(ctx context.Context, e *Entry) error

	// List lista os registros mais recentes
	List(ctx context.Context, limit, offset int) ([]*Entry, error)
}
