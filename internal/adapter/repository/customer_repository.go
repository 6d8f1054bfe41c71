package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-armazem/internal/domain/customer"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de clientes
var (
	ErrCustomerNotFound = errors.New("cliente não encontrado")
)

// CustomerRepository implementa a interface customer.Repository
type CustomerRepository struct {
	db *database.PostgresDB
}

// NewCustomerRepository cria uma nova instância de CustomerRepository
func NewCustomerRepository(db *database.PostgresDB) customer.Repository {
	return &CustomerRepository{db: db}
}

// Create implementa customer.Repository.Create
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if c.TaxID != "" {
		exists, err := r.ExistsByTaxID(ctx, c.TaxID)
		if err != nil {
			return fmt.Errorf("erro ao verificar NIF do cliente: %w", err)
		}
		if exists {
			return customer.ErrDuplicateTaxID
		}
	}

	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO customers (
			id, name, tax_id, address, zip_code, city, phone, email,
			active, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Name, c.TaxID, c.Address, c.ZipCode, c.City, c.Phone,
		c.Email, c.Active, c.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return customer.ErrDuplicateTaxID
		}
		return fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return nil
}

// FindByID implementa customer.Repository.FindByID
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, name, tax_id, address, zip_code, city, phone, email,
			active, created_at
		FROM customers WHERE id = $1`,
		id).Scan(
		&c.ID, &c.Name, &c.TaxID, &c.Address, &c.ZipCode, &c.City, &c.Phone,
		&c.Email, &c.Active, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("erro ao buscar cliente: %w", err)
	}
	return &c, nil
}

// List implementa customer.Repository.List
func (r *CustomerRepository) List(ctx context.Context, search string, limit, offset int) ([]*customer.Customer, error) {
	query := `SELECT id, name, tax_id, address, zip_code, city, phone, email,
			active, created_at
		FROM customers`
	var args []any

	if search != "" {
		args = append(args, "%"+search+"%")
		query += " WHERE (name ILIKE $1 OR tax_id ILIKE $1 OR email ILIKE $1)"
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY name ASC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar clientes: %w", err)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		var c customer.Customer
		if err := rows.Scan(
			&c.ID, &c.Name, &c.TaxID, &c.Address, &c.ZipCode, &c.City,
			&c.Phone, &c.Email, &c.Active, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler cliente: %w", err)
		}
		customers = append(customers, &c)
	}
	return customers, rows.Err()
}

// Count implementa customer.Repository.Count
func (r *CustomerRepository) Count(ctx context.Context, search string) (int, error) {
	query := `SELECT COUNT(*) FROM customers`
	var args []any
	if search != "" {
		query += " WHERE (name ILIKE $1 OR tax_id ILIKE $1 OR email ILIKE $1)"
		args = append(args, "%"+search+"%")
	}

	var count int
	if err := r.db.Pool().QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar clientes: %w", err)
	}
	return count, nil
}

// Update implementa customer.Repository.Update
func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE customers SET
			name = $2, tax_id = $3, address = $4, zip_code = $5, city = $6,
			phone = $7, email = $8, active = $9
		WHERE id = $1`,
		c.ID, c.Name, c.TaxID, c.Address, c.ZipCode, c.City, c.Phone,
		c.Email, c.Active)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return customer.ErrDuplicateTaxID
		}
		return fmt.Errorf("erro ao atualizar cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// SetActive implementa customer.Repository.SetActive
func (r *CustomerRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE customers SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("erro ao alterar status do cliente: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

// ExistsByTaxID implementa customer.Repository.ExistsByTaxID
func (r *CustomerRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM customers WHERE tax_id = $1 AND tax_id <> '')`,
		taxID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar NIF do cliente: %w", err)
	}
	return exists, nil
}
