package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-armazem/internal/domain/supplier"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de fornecedores
var (
	ErrSupplierNotFound = errors.New("fornecedor não encontrado")
)

// SupplierRepository implementa a interface supplier.Repository
type SupplierRepository struct {
	db *database.PostgresDB
}

// NewSupplierRepository cria uma nova instância de SupplierRepository
func NewSupplierRepository(db *database.PostgresDB) supplier.Repository {
	return &SupplierRepository{db: db}
}

// Create implementa supplier.Repository.Create
func (r *SupplierRepository) Create(ctx context.Context, s *supplier.Supplier) error {
	if s.TaxID != "" {
		exists, err := r.ExistsByTaxID(ctx, s.TaxID)
		if err != nil {
			return fmt.Errorf("erro ao verificar NIF do fornecedor: %w", err)
		}
		if exists {
			return supplier.ErrDuplicateTaxID
		}
	}

	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO suppliers (
			id, name, tax_id, address, phone, email, contact_person,
			active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		s.ID, s.Name, s.TaxID, s.Address, s.Phone, s.Email, s.ContactPerson,
		s.Active, s.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return supplier.ErrDuplicateTaxID
		}
		return fmt.Errorf("erro ao criar fornecedor: %w", err)
	}
	return nil
}

// FindByID implementa supplier.Repository.FindByID
func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*supplier.Supplier, error) {
	var s supplier.Supplier
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, name, tax_id, address, phone, email, contact_person,
			active, created_at
		FROM suppliers WHERE id = $1`,
		id).Scan(
		&s.ID, &s.Name, &s.TaxID, &s.Address, &s.Phone, &s.Email,
		&s.ContactPerson, &s.Active, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSupplierNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fornecedor: %w", err)
	}
	return &s, nil
}

// List implementa supplier.Repository.List
func (r *SupplierRepository) List(ctx context.Context, search string, limit, offset int) ([]*supplier.Supplier, error) {
	query := `SELECT id, name, tax_id, address, phone, email, contact_person,
			active, created_at
		FROM suppliers`
	var args []any

	if search != "" {
		args = append(args, "%"+search+"%")
		query += " WHERE (name ILIKE $1 OR tax_id ILIKE $1)"
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar fornecedores: %w", err)
	}
	defer rows.Close()

	var suppliers []*supplier.Supplier
	for rows.Next() {
		var s supplier.Supplier
		if err := rows.Scan(
			&s.ID, &s.Name, &s.TaxID, &s.Address, &s.Phone, &s.Email,
			&s.ContactPerson, &s.Active, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler fornecedor: %w", err)
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

// Count implementa supplier.Repository.Count
func (r *SupplierRepository) Count(ctx context.Context, search string) (int, error) {
	query := `SELECT COUNT(*) FROM suppliers`
	var args []any
	if search != "" {
		query += " WHERE (name ILIKE $1 OR tax_id ILIKE $1)"
		args = append(args, "%"+search+"%")
	}

	var count int
	if err := r.db.Pool().QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar fornecedores: %w", err)
	}
	return count, nil
}

// Update implementa supplier.Repository.Update
func (r *SupplierRepository) Update(ctx context.Context, s *supplier.Supplier) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE suppliers SET
			name = $2, tax_id = $3, address = $4, phone = $5, email = $6,
			contact_person = $7, active = $8
		WHERE id = $1`,
		s.ID, s.Name, s.TaxID, s.Address, s.Phone, s.Email, s.ContactPerson,
		s.Active)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return supplier.ErrDuplicateTaxID
		}
		return fmt.Errorf("erro ao atualizar fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// SetActive implementa supplier.Repository.SetActive
func (r *SupplierRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE suppliers SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("erro ao alterar status do fornecedor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSupplierNotFound
	}
	return nil
}

// ExistsByTaxID implementa supplier.Repository.ExistsByTaxID
func (r *SupplierRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM suppliers WHERE tax_id = $1 AND tax_id <> '')`,
		taxID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar NIF do fornecedor: %w", err)
	}
	return exists, nil
}
