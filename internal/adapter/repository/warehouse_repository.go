package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-armazem/internal/domain/inventory"
	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/hugohenrick/erp-armazem/internal/domain/warehouse"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/hugohenrick/erp-armazem/pkg/docnumber"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de documentos de armazém
var (
	ErrDocumentNotFound = errors.New("documento não encontrado")
	ErrOrderNotReady    = errors.New("pedido vinculado não está pronto para expedição")
)

// InsufficientStockError nomeia o produto sem disponível suficiente. A
// criação do documento é abortada por inteiro na primeira posição em falta.
type InsufficientStockError struct {
	ProductID   string
	ProductName string
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("quantidade insuficiente do produto: %s", e.ProductName)
}

// Unwrap permite testar com errors.Is(err, inventory.ErrInsufficientStock)
func (e *InsufficientStockError) Unwrap() error {
	return inventory.ErrInsufficientStock
}

// WarehouseRepository implementa a interface warehouse.Repository
type WarehouseRepository struct {
	db  *database.PostgresDB
	seq *SequenceRepository
}

// NewWarehouseRepository cria uma nova instância de WarehouseRepository
func NewWarehouseRepository(db *database.PostgresDB, seq *SequenceRepository) warehouse.Repository {
	return &WarehouseRepository{db: db, seq: seq}
}

// Create implementa warehouse.Repository.Create. Documento, posições,
// ajustes de estoque e a eventual expedição do pedido vinculado entram
// todos na mesma transação: ou tudo é aplicado, ou nada é.
func (r *WarehouseRepository) Create(ctx context.Context, d *warehouse.Document) error {
	if err := d.Validate(); err != nil {
		return err
	}

	prefix := docnumber.PrefixReceipt
	if d.Type == warehouse.TypeIssue {
		prefix = docnumber.PrefixIssue
	}

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		year := d.IssuedAt.Year()
		seq, err := r.seq.NextYearly(ctx, tx, prefix, year)
		if err != nil {
			return err
		}
		d.Number = docnumber.Yearly(prefix, year, seq)

		_, err = tx.Exec(ctx,
			`INSERT INTO warehouse_documents (
				id, number, type, issued_at, supplier_id, order_id, notes
			) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			d.ID, d.Number, d.Type, d.IssuedAt, d.SupplierID, d.OrderID, d.Notes)
		if err != nil {
			return fmt.Errorf("erro ao criar documento: %w", err)
		}

		// Posições na ordem informada; na saída a primeira falta aborta tudo
		for _, item := range d.Items {
			_, err = tx.Exec(ctx,
				`INSERT INTO warehouse_document_items (
					id, document_id, product_id, quantity
				) VALUES ($1, $2, $3, $4)`,
				item.ID, d.ID, item.ProductID, item.Quantity)
			if err != nil {
				return fmt.Errorf("erro ao criar posição do documento: %w", err)
			}

			if d.Type == warehouse.TypeReceipt {
				err = r.addStock(ctx, tx, item.ProductID, item.Quantity)
			} else {
				err = r.subtractStock(ctx, tx, item.ProductID, item.Quantity)
			}
			if err != nil {
				return err
			}
		}

		// Expedição vinculada a um pedido: READY → SHIPPED na mesma transação
		if d.Type == warehouse.TypeIssue && d.OrderID != nil {
			if err := r.shipOrder(ctx, tx, *d.OrderID); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *WarehouseRepository) addStock(ctx context.Context, tx pgx.Tx, productID string, quantity int) error {
	tag, err := tx.Exec(ctx,
		`UPDATE inventory_records SET
			available = available + $2, updated_at = NOW()
		WHERE product_id = $1`,
		productID, quantity)
	if err != nil {
		return fmt.Errorf("erro ao ajustar estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInventoryNotFound
	}
	return nil
}

func (r *WarehouseRepository) subtractStock(ctx context.Context, tx pgx.Tx, productID string, quantity int) error {
	// A guarda available >= $2 mantém o invariante de disponível nunca
	// negativo mesmo sob escritores concorrentes
	tag, err := tx.Exec(ctx,
		`UPDATE inventory_records SET
			available = available - $2, updated_at = NOW()
		WHERE product_id = $1 AND available >= $2`,
		productID, quantity)
	if err != nil {
		return fmt.Errorf("erro ao ajustar estoque: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Zero linhas pode significar produto inexistente, registro de
		// estoque ausente ou disponível insuficiente
		var name string
		var hasRecord bool
		checkErr := tx.QueryRow(ctx,
			`SELECT p.name,
				EXISTS(SELECT 1 FROM inventory_records i WHERE i.product_id = p.id)
			FROM products p WHERE p.id = $1`, productID).Scan(&name, &hasRecord)
		if checkErr != nil {
			if errors.Is(checkErr, pgx.ErrNoRows) {
				return ErrProductNotFound
			}
			return fmt.Errorf("erro ao buscar produto: %w", checkErr)
		}
		if !hasRecord {
			return ErrInventoryNotFound
		}
		return &InsufficientStockError{
			ProductID:   productID,
			ProductName: name,
			Requested:   quantity,
		}
	}
	return nil
}

func (r *WarehouseRepository) shipOrder(ctx context.Context, tx pgx.Tx, orderID string) error {
	var status order.Status
	err := tx.QueryRow(ctx,
		`SELECT status FROM orders WHERE id = $1 FOR UPDATE`, orderID).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("erro ao buscar pedido vinculado: %w", err)
	}

	if !status.CanTransitionTo(order.StatusShipped) {
		return ErrOrderNotReady
	}

	_, err = tx.Exec(ctx,
		`UPDATE orders SET status = $2 WHERE id = $1`,
		orderID, order.StatusShipped)
	if err != nil {
		return fmt.Errorf("erro ao expedir pedido vinculado: %w", err)
	}
	return nil
}

// FindByID implementa warehouse.Repository.FindByID
func (r *WarehouseRepository) FindByID(ctx context.Context, id string) (*warehouse.Document, error) {
	var d warehouse.Document
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, number, type, issued_at, supplier_id, order_id, notes
		FROM warehouse_documents WHERE id = $1`,
		id).Scan(
		&d.ID, &d.Number, &d.Type, &d.IssuedAt, &d.SupplierID, &d.OrderID, &d.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("erro ao buscar documento: %w", err)
	}

	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, product_id, quantity
		FROM warehouse_document_items WHERE document_id = $1
		ORDER BY id`,
		d.ID)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar posições do documento: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item warehouse.Item
		if err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("erro ao ler posição do documento: %w", err)
		}
		d.Items = append(d.Items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &d, nil
}

// List implementa warehouse.Repository.List
func (r *WarehouseRepository) List(ctx context.Context, docType warehouse.Type, limit, offset int) ([]*warehouse.Document, error) {
	query := `SELECT id, number, type, issued_at, supplier_id, order_id, notes
		FROM warehouse_documents`
	var args []any

	if docType != "" {
		args = append(args, docType)
		query += fmt.Sprintf(" WHERE type = $%d", len(args))
	}

	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY issued_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar documentos: %w", err)
	}
	defer rows.Close()

	var docs []*warehouse.Document
	for rows.Next() {
		var d warehouse.Document
		if err := rows.Scan(
			&d.ID, &d.Number, &d.Type, &d.IssuedAt, &d.SupplierID,
			&d.OrderID, &d.Notes); err != nil {
			return nil, fmt.Errorf("erro ao ler documento: %w", err)
		}
		docs = append(docs, &d)
	}
	return docs, rows.Err()
}

// Count implementa warehouse.Repository.Count
func (r *WarehouseRepository) Count(ctx context.Context, docType warehouse.Type) (int, error) {
	query := `SELECT COUNT(*) FROM warehouse_documents`
	var args []any
	if docType != "" {
		query += " WHERE type = $1"
		args = append(args, docType)
	}

	var count int
	if err := r.db.Pool().QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar documentos: %w", err)
	}
	return count, nil
}
