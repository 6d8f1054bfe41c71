package repository

import (
	"context"
	"fmt"

	"github.com/hugohenrick/erp-armazem/internal/domain/audit"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
)

// AuditRepository implementa a interface audit.Repository
type AuditRepository struct {
	db *database.PostgresDB
}

// NewAuditRepository cria uma nova instância de AuditRepository
func NewAuditRepository(db *database.PostgresDB) audit.Repository {
	return &AuditRepository{db: db}
}

// Create implementa audit.Repository.Create. Ações sem usuário autenticado
// (tentativa de login desconhecido) entram com user_id nulo.
func (r *AuditRepository) Create(ctx context.Context, e *audit.Entry) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO audit_logs (
			id, user_id, action, description, ip, created_at
		) VALUES ($1, NULLIF($2, '')::uuid, $3, $4, $5, $6)`,
		e.ID, e.UserID, e.Action, e.Description, e.IP, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("erro ao registrar auditoria: %w", err)
	}
	return nil
}

// List implementa audit.Repository.List
func (r *AuditRepository) List(ctx context.Context, limit, offset int) ([]*audit.Entry, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, action, description, ip, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar auditoria: %w", err)
	}
	defer rows.Close()

	var entries []*audit.Entry
	for rows.Next() {
		var e audit.Entry
		var userID *string
		if err := rows.Scan(
			&e.ID, &userID, &e.Action, &e.Description, &e.IP,
			&e.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler registro de auditoria: %w", err)
		}
		if userID != nil {
			e.UserID = *userID
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}
