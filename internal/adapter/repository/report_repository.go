package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/hugohenrick/erp-armazem/internal/domain/report"
	"github.com/hugohenrick/erp-armazem/internal/domain/warehouse"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/shopspring/decimal"
)

// ReportRepository implementa a interface report.Repository. Todas as
// consultas devolvem o erro ao chamador; nenhuma agregação falha em silêncio.
type ReportRepository struct {
	db *database.PostgresDB
}

// NewReportRepository cria uma nova instância de ReportRepository
func NewReportRepository(db *database.PostgresDB) report.Repository {
	return &ReportRepository{db: db}
}

// Sales implementa report.Repository.Sales. Pedidos cancelados ficam de fora
// dos totais.
func (r *ReportRepository) Sales(ctx context.Context, from, to time.Time) (*report.SalesSummary, error) {
	summary := &report.SalesSummary{
		From:       from,
		To:         to,
		TotalNet:   decimal.Zero,
		TotalGross: decimal.Zero,
	}

	err := r.db.Pool().QueryRow(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(net_value), 0),
			COALESCE(SUM(gross_value), 0)
		FROM orders
		WHERE placed_at >= $1 AND placed_at < $2 AND status <> 'CANCELLED'`,
		from, to).Scan(&summary.OrderCount, &summary.TotalNet, &summary.TotalGross)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir vendas: %w", err)
	}

	rows, err := r.db.Pool().Query(ctx,
		`SELECT p.category, COALESCE(SUM(oi.net_value), 0)
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		JOIN products p ON p.id = oi.product_id
		WHERE o.placed_at >= $1 AND o.placed_at < $2 AND o.status <> 'CANCELLED'
		GROUP BY p.category
		ORDER BY 2 DESC`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar vendas por categoria: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var cs report.CategorySales
		if err := rows.Scan(&cs.Category, &cs.NetValue); err != nil {
			return nil, fmt.Errorf("erro ao ler venda por categoria: %w", err)
		}
		summary.ByCategory = append(summary.ByCategory, cs)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

// Stock implementa report.Repository.Stock
func (r *ReportRepository) Stock(ctx context.Context, category string, lowOnly bool) (*report.StockSummary, error) {
	query := `SELECT p.id, p.code, p.name, p.category, i.available, i.reserved,
			i.location, p.unit_price, p.minimum_stock
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
		return nil, fmt.Errorf("erro ao consultar estoque: %w", err)
	}
	defer rows.Close()

	summary := &report.StockSummary{TotalValue: decimal.Zero}
	for rows.Next() {
		var row report.StockRow
		if err := rows.Scan(
			&row.ProductID, &row.Code, &row.Name, &row.Category,
			&row.Available, &row.Reserved, &row.Location, &row.UnitPrice,
			&row.MinimumStock); err != nil {
			return nil, fmt.Errorf("erro ao ler linha de estoque: %w", err)
		}
		row.Low = row.Available <= row.MinimumStock
		if row.Low {
			summary.LowCount++
		}
		summary.TotalValue = summary.TotalValue.Add(
			row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Available))))
		summary.Rows = append(summary.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}

// Rotation implementa report.Repository.Rotation
func (r *ReportRepository) Rotation(ctx context.Context, from, to time.Time) ([]report.RotationRow, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT p.id, p.code, p.name, COALESCE(SUM(di.quantity), 0)
		FROM warehouse_document_items di
		JOIN warehouse_documents d ON d.id = di.document_id
		JOIN products p ON p.id = di.product_id
		WHERE d.type = $1 AND d.issued_at >= $2 AND d.issued_at < $3
		GROUP BY p.id, p.code, p.name
		ORDER BY 4 DESC`,
		warehouse.TypeIssue, from, to)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar rotação de produtos: %w", err)
	}
	defer rows.Close()

	var result []report.RotationRow
	for rows.Next() {
		var row report.RotationRow
		if err := rows.Scan(&row.ProductID, &row.Code, &row.Name, &row.Issued); err != nil {
			return nil, fmt.Errorf("erro ao ler linha de rotação: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Documents implementa report.Repository.Documents
func (r *ReportRepository) Documents(ctx context.Context, from, to time.Time, docType string) ([]report.DocumentRow, error) {
	query := `SELECT d.id, d.number, d.type, d.issued_at, COUNT(di.id)
		FROM warehouse_documents d
		LEFT JOIN warehouse_document_items di ON di.document_id = d.id
		WHERE d.issued_at >= $1 AND d.issued_at < $2`
	args := []any{from, to}

	if docType != "" {
		args = append(args, docType)
		query += fmt.Sprintf(" AND d.type = $%d", len(args))
	}
	query += ` GROUP BY d.id, d.number, d.type, d.issued_at
		ORDER BY d.issued_at DESC`

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar documentos: %w", err)
	}
	defer rows.Close()

	var result []report.DocumentRow
	for rows.Next() {
		var row report.DocumentRow
		if err := rows.Scan(&row.ID, &row.Number, &row.Type, &row.IssuedAt, &row.Items); err != nil {
			return nil, fmt.Errorf("erro ao ler linha de documento: %w", err)
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Invoices implementa report.Repository.Invoices
func (r *ReportRepository) Invoices(ctx context.Context, from, to time.Time) (*report.InvoiceSummary, error) {
	summary := &report.InvoiceSummary{
		From:       from,
		To:         to,
		TotalNet:   decimal.Zero,
		TotalGross: decimal.Zero,
	}

	err := r.db.Pool().QueryRow(ctx,
		`SELECT COUNT(*),
			COUNT(*) FILTER (WHERE paid),
			COALESCE(SUM(net_value), 0),
			COALESCE(SUM(gross_value), 0)
		FROM invoices
		WHERE issued_at >= $1 AND issued_at < $2`,
		from, to).Scan(
		&summary.InvoiceCount, &summary.PaidCount, &summary.TotalNet,
		&summary.TotalGross)
	if err != nil {
		return nil, fmt.Errorf("erro ao resumir faturas: %w", err)
	}

	return summary, nil
}
