package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/hugohenrick/erp-armazem/pkg/docnumber"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de pedidos
var (
	ErrOrderNotFound     = errors.New("pedido não encontrado")
	ErrOrderItemNotFound = errors.New("posição do pedido não encontrada")
)

// OrderRepository implementa a interface order.Repository
type OrderRepository struct {
	db  *database.PostgresDB
	seq *SequenceRepository
}

// NewOrderRepository cria uma nova instância de OrderRepository
func NewOrderRepository(db *database.PostgresDB, seq *SequenceRepository) order.Repository {
	return &OrderRepository{db: db, seq: seq}
}

// Create implementa order.Repository.Create. Número, pedido e posições
// entram na mesma transação.
func (r *OrderRepository) Create(ctx context.Context, o *order.Order) error {
	if len(o.Items) == 0 {
		return order.ErrNoItems
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		year := o.PlacedAt.Year()
		seq, err := r.seq.NextYearly(ctx, tx, docnumber.PrefixOrder, year)
		if err != nil {
			return err
		}
		o.Number = docnumber.Yearly(docnumber.PrefixOrder, year, seq)

		_, err = tx.Exec(ctx,
			`INSERT INTO orders (
				id, number, customer_id, status, net_value, gross_value,
				notes, placed_at, fulfilled_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			o.ID, o.Number, o.CustomerID, o.Status, o.NetValue, o.GrossValue,
			o.Notes, o.PlacedAt, o.FulfilledAt)
		if err != nil {
			return fmt.Errorf("erro ao criar pedido: %w", err)
		}

		for _, item := range o.Items {
			_, err = tx.Exec(ctx,
				`INSERT INTO order_items (
					id, order_id, product_id, quantity, unit_price, net_value, picked
				) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				item.ID, o.ID, item.ProductID, item.Quantity, item.UnitPrice,
				item.NetValue, item.Picked)
			if err != nil {
				return fmt.Errorf("erro ao criar posição do pedido: %w", err)
			}
		}

		return nil
	})
}

// FindByID implementa order.Repository.FindByID
func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	var o order.Order
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, number, customer_id, status, net_value, gross_value,
			notes, placed_at, fulfilled_at
		FROM orders WHERE id = $1`,
		id).Scan(
		&o.ID, &o.Number, &o.CustomerID, &o.Status, &o.NetValue,
		&o.GrossValue, &o.Notes, &o.PlacedAt, &o.FulfilledAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("erro ao buscar pedido: %w", err)
	}

	items, err := r.findItems(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Items = items

	return &o, nil
}

func (r *OrderRepository) findItems(ctx context.Context, orderID string) ([]*order.Item, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, product_id, quantity, unit_price, net_value, picked
		FROM order_items WHERE order_id = $1
		ORDER BY id`,
		orderID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar posições do pedido: %w", err)
	}
	defer rows.Close()

	var items []*order.Item
	for rows.Next() {
		var item order.Item
		if err := rows.Scan(
			&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice,
			&item.NetValue, &item.Picked); err != nil {
			return nil, fmt.Errorf("erro ao ler posição do pedido: %w", err)
		}
		items = append(items, &item)
	}
	return items, rows.Err()
}

// List implementa order.Repository.List. As posições não são carregadas na
// listagem.
func (r *OrderRepository) List(ctx context.Context, status order.Status, limit, offset int) ([]*order.Order, error) {
	query := `SELECT id, number, customer_id, status, net_value, gross_value,
			notes, placed_at, fulfilled_at
		FROM orders`
	var args []any

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" WHERE status = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY placed_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar pedidos: %w", err)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(
			&o.ID, &o.Number, &o.CustomerID, &o.Status, &o.NetValue,
			&o.GrossValue, &o.Notes, &o.PlacedAt, &o.FulfilledAt); err != nil {
			return nil, fmt.Errorf("erro ao ler pedido: %w", err)
		}
		orders = append(orders, &o)
	}
	return orders, rows.Err()
}

// Count implementa order.Repository.Count
func (r *OrderRepository) Count(ctx context.Context, status order.Status) (int, error) {
	query := `SELECT COUNT(*) FROM orders`
	var args []any
	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}

	var count int
	if err := r.db.Pool().QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar pedidos: %w", err)
	}
	return count, nil
}

// UpdateStatus implementa order.Repository.UpdateStatus
func (r *OrderRepository) UpdateStatus(ctx context.Context, id string, status order.Status, fulfilledAt *time.Time) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE orders SET status = $2, fulfilled_at = COALESCE($3, fulfilled_at)
		WHERE id = $1`,
		id, status, fulfilledAt)
	if err != nil {
		return fmt.Errorf("erro ao atualizar status do pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderNotFound
	}
	return nil
}

// SetItemPicked implementa order.Repository.SetItemPicked
func (r *OrderRepository) SetItemPicked(ctx context.Context, orderID, itemID string, picked bool) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE order_items SET picked = $3
		WHERE id = $2 AND order_id = $1`,
		orderID, itemID, picked)
	if err != nil {
		return fmt.Errorf("erro ao marcar posição do pedido: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrOrderItemNotFound
	}
	return nil
}
