package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/purchase"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/hugohenrick/erp-armazem/pkg/docnumber"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de ordens de compra
var (
	ErrPurchaseNotFound = errors.New("ordem de compra não encontrada")
)

// PurchaseRepository implementa a interface purchase.Repository
type PurchaseRepository struct {
	db  *database.PostgresDB
	seq *SequenceRepository
}

// NewPurchaseRepository cria uma nova instância de PurchaseRepository
func NewPurchaseRepository(db *database.PostgresDB, seq *SequenceRepository) purchase.Repository {
	return &PurchaseRepository{db: db, seq: seq}
}

// Create implementa purchase.Repository.Create
func (r *PurchaseRepository) Create(ctx context.Context, o *purchase.Order) error {
	if len(o.Items) == 0 {
		return purchase.ErrNoItems
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		year := o.PlacedAt.Year()
		seq, err := r.seq.NextYearly(ctx, tx, docnumber.PrefixPurchase, year)
		if err != nil {
			return err
		}
		o.Number = docnumber.Yearly(docnumber.PrefixPurchase, year, seq)

		_, err = tx.Exec(ctx,
			`INSERT INTO purchase_orders (
				id, number, supplier_id, status, net_value, notes,
				placed_at, planned_delivery, actual_delivery
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			o.ID, o.Number, o.SupplierID, o.Status, o.NetValue, o.Notes,
			o.PlacedAt, o.PlannedDelivery, o.ActualDelivery)
		if err != nil {
			return fmt.Errorf("erro ao criar ordem de compra: %w", err)
		}

		for _, item := range o.Items {
			_, err = tx.Exec(ctx,
				`INSERT INTO purchase_order_items (
					id, purchase_order_id, product_id, quantity, unit_price, net_value
				) VALUES ($1, $2, $3, $4, $5, $6)`,
				item.ID, o.ID, item.ProductID, item.Quantity, item.UnitPrice,
				item.NetValue)
			if err != nil {
				return fmt.Errorf("erro ao criar posição da ordem de compra: %w", err)
			}
		}

		return nil
	})
}

// FindByID implementa purchase.Repository.FindByID
func (r *PurchaseRepository) FindByID(ctx context.Context, id string) (*purchase.Order, error) {
	var o purchase.Order
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, number, supplier_id, status, net_value, notes,
			placed_at, planned_delivery, actual_delivery
		FROM purchase_orders WHERE id = $1`,
		id).Scan(
		&o.ID, &o.Number, &o.SupplierID, &o.Status, &o.NetValue, &o.Notes,
		&o.PlacedAt, &o.PlannedDelivery, &o.ActualDelivery)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("erro ao buscar ordem de compra: %w", err)
	}

	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, product_id, quantity, unit_price, net_value
		FROM purchase_order_items WHERE purchase_order_id = $1
		ORDER BY id`,
		o.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar posições da ordem de compra: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item purchase.Item
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice,
			&item.NetValue); err != nil {
			return nil, fmt.Errorf("erro ao ler posição da ordem de compra: %w", err)
		}
		o.Items = append(o.Items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &o, nil
}

// List implementa purchase.Repository.List
func (r *PurchaseRepository) List(ctx context.Context, status purchase.Status, limit, offset int) ([]*purchase.Order, error) {
	query := `SELECT id, number, supplier_id, status, net_value, notes,
			placed_at, planned_delivery, actual_delivery
		FROM purchase_orders`
	var args []any

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY placed_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar ordens de compra: %w", err)
	}
	defer rows.Close()

	var orders []*purchase.Order
	for rows.Next() {
		var o purchase.Order
		if err := rows.Scan(
			&o.ID, &o.Number, &o.SupplierID, &o.Status, &o.NetValue, &o.Notes,
			&o.PlacedAt, &o.PlannedDelivery, &o.ActualDelivery); err != nil {
			return nil, fmt.Errorf("erro ao ler ordem de compra: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Count implementa purchase.Repository.Count
func (r *PurchaseRepository) Count(ctx context.Context, status purchase.Status) (int, error) {
	query := `SELECT COUNT(*) FROM purchase_orders`
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}

	var count int
	if err := r.db.Pool().QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar ordens de compra: %w", err)
	}
	return count, nil
}

// UpdateStatus implementa purchase.Repository.UpdateStatus
func (r *PurchaseRepository) UpdateStatus(ctx context.Context, id string, status purchase.Status, actualDelivery *time.Time) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE purchase_orders SET
			status = $2,
			actual_delivery = COALESCE($3, actual_delivery)
		WHERE id = $1`,
		id, status, actualDelivery)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status da ordem de compra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPurchaseNotFound
	}
	return nil
}
