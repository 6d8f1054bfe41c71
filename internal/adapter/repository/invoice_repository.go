package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/hugohenrick/erp-armazem/internal/domain/invoice"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/hugohenrick/erp-armazem/pkg/docnumber"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de faturas
var (
	ErrInvoiceNotFound = errors.New("fatura não encontrada")
)

// InvoiceRepository implementa a interface invoice.Repository
type InvoiceRepository struct {
	db  *database.PostgresDB
	seq *SequenceRepository
}

// NewInvoiceRepository cria uma nova instância de InvoiceRepository
func NewInvoiceRepository(db *database.PostgresDB, seq *SequenceRepository) invoice.Repository {
	return &InvoiceRepository{db: db, seq: seq}
}

// Create implementa invoice.Repository.Create. O número é gerado no escopo
// mensal da data de emissão; um pedido só pode ter uma fatura.
func (r *InvoiceRepository) Create(ctx context.Context, i *invoice.Invoice) error {
	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM invoices WHERE order_id = $1)`,
			i.OrderID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("erro ao verificar fatura do pedido: %w", err)
		}
		if exists {
			return invoice.ErrAlreadyInvoiced
		}

		year, month := i.IssuedAt.Year(), i.IssuedAt.Month()
		seq, err := r.seq.NextMonthly(ctx, tx, docnumber.PrefixInvoice, year, month)
		if err != nil {
			return err
		}
		i.Number = docnumber.Monthly(docnumber.PrefixInvoice, year, month, seq)

		_, err = tx.Exec(ctx,
			`INSERT INTO invoices (
				id, number, customer_id, order_id, issued_at, sale_date,
				due_date, net_value, vat_value, gross_value, paid
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			i.ID, i.Number, i.CustomerID, i.OrderID, i.IssuedAt, i.SaleDate,
			i.DueDate, i.NetValue, i.VATValue, i.GrossValue, i.Paid)
		if err != nil {
			return fmt.Errorf("erro ao criar fatura: %w", err)
		}

		return nil
	})
}

// FindByID implementa invoice.Repository.FindByID
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*invoice.Invoice, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByOrder implementa invoice.Repository.FindByOrder
func (r *InvoiceRepository) FindByOrder(ctx context.Context, orderID string) (*invoice.Invoice, error) {
	return r.findOne(ctx, "order_id = $1", orderID)
}

func (r *InvoiceRepository) findOne(ctx context.Context, where string, arg any) (*invoice.Invoice, error) {
	var i invoice.Invoice
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, number, customer_id, order_id, issued_at, sale_date,
			due_date, net_value, vat_value, gross_value, paid
		FROM invoices WHERE `+where,
		arg).Scan(
		&i.ID, &i.Number, &i.CustomerID, &i.OrderID, &i.IssuedAt, &i.SaleDate,
		&i.DueDate, &i.NetValue, &i.VATValue, &i.GrossValue, &i.Paid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("erro ao buscar fatura: %w", err)
	}
	return &i, nil
}

// List implementa invoice.Repository.List
func (r *InvoiceRepository) List(ctx context.Context, limit, offset int) ([]*invoice.Invoice, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, number, customer_id, order_id, issued_at, sale_date,
			due_date, net_value, vat_value, gross_value, paid
		FROM invoices
		ORDER BY issued_at DESC
		LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar faturas: %w", err)
	}
	defer rows.Close()

	var invoices []*invoice.Invoice
	for rows.Next() {
		var i invoice.Invoice
		if err := rows.Scan(
			&i.ID, &i.Number, &i.CustomerID, &i.OrderID, &i.IssuedAt,
			&i.SaleDate, &i.DueDate, &i.NetValue, &i.VATValue, &i.GrossValue,
			&i.Paid); err != nil {
			return nil, fmt.Errorf("erro ao ler fatura: %w", err)
		}
		invoices = append(invoices, &i)
	}
	return invoices, rows.Err()
}

// Count implementa invoice.Repository.Count
func (r *InvoiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM invoices`).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar faturas: %w", err)
	}
	return count, nil
}

// MarkPaid implementa invoice.Repository.MarkPaid
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id string) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE invoices SET paid = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao registrar pagamento da fatura: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrInvoiceNotFound
	}
	return nil
}
