package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-armazem/internal/domain/inventory"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de estoque
var (
	ErrInventoryNotFound = errors.New("registro de estoque não encontrado")
)

// InventoryRepository implementa a interface inventory.Repository
type InventoryRepository struct {
	db *database.PostgresDB
}

// NewInventoryRepository cria uma nova instância de InventoryRepository
func NewInventoryRepository(db *database.PostgresDB) inventory.Repository {
	return &InventoryRepository{db: db}
}

// FindByProduct implementa inventory.Repository.FindByProduct
func (r *InventoryRepository) FindByProduct(ctx context.Context, productID string) (*inventory.Record, error) {
	var rec inventory.Record
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, product_id, available, reserved, location, updated_at
		FROM inventory_records WHERE product_id = $1`,
		productID).Scan(
		&rec.ID, &rec.ProductID, &rec.Available, &rec.Reserved,
		&rec.Location, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInventoryNotFound
		}
		return nil, fmt.Errorf("erro ao buscar registro de estoque: %w", err)
	}
	return &rec, nil
}

// List implementa inventory.Repository.List
func (r *InventoryRepository) List(ctx context.Context, category string, lowOnly bool) ([]*inventory.StockItem, error) {
	query := `SELECT i.id, i.product_id, i.available, i.reserved, i.location,
			i.updated_at, p.code, p.name, p.category, p.minimum_stock
		FROM inventory_records i
		JOIN products p ON p.id = i.product_id
		WHERE p.active = TRUE`
	var args []any

	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND p.category = $%d", len(args))
	}
	if lowOnly {
		query += " AND i.available <= p.minimum_stock"
	}
	query += " ORDER BY p.name ASC"

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar estoque: %w", err)
	}
	defer rows.Close()

	var items []*inventory.StockItem
	for rows.Next() {
		var it inventory.StockItem
		if err := rows.Scan(
			&it.ID, &it.ProductID, &it.Available, &it.Reserved, &it.Location,
			&it.UpdatedAt, &it.ProductCode, &it.ProductName, &it.Category,
			&it.MinimumStock); err != nil {
			return nil, fmt.Errorf("erro ao ler item de estoque: %w", err)
		}
		it.Low = it.Available <= it.MinimumStock
		items = append(items, &it)
	}
	return items, rows.Err()
}

// UpdateLocation implementa inventory.Repository.UpdateLocation
func (r *InventoryRepository) UpdateLocation(ctx context.Context, productID, location string) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE inventory_records SET location = $2, updated_at = NOW()
		WHERE product_id = $1`,
		productID, location)
	if err != nil {
		return fmt.Errorf("erro ao atualizar localização: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

// Reserve implementa inventory.Repository.Reserve. A cláusula de guarda no
// UPDATE garante que a reserva só acontece com disponível suficiente.
func (r *InventoryRepository) Reserve(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return inventory.ErrInvalidQuantity
	}

	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE inventory_records SET
			available = available - $2,
			reserved = reserved + $2,
			updated_at = NOW()
		WHERE product_id = $1 AND available >= $2`,
		productID, quantity)
	if err != nil {
		return fmt.Errorf("erro ao reservar estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Sem linha afetada: registro inexistente ou disponível insuficiente
		if _, findErr := r.FindByProduct(ctx, productID); findErr != nil {
			return findErr
		}
		return inventory.ErrInsufficientStock
	}
	return nil
}
