package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hugohenrick/erp-armazem/internal/domain/inventory"
	"github.com/hugohenrick/erp-armazem/internal/domain/product"
	"github.com/hugohenrick/erp-armazem/internal/infrastructure/database"
	"github.com/jackc/pgx/v5"
)

// Erros específicos do repositório de produtos
var (
	ErrProductNotFound     = errors.New("produto não encontrado")
	ErrProductDuplicateKey = errors.New("produto com mesmo código já existe")
)

// ProductRepository implementa a interface product.Repository
type ProductRepository struct {
	db *database.PostgresDB
}

// NewProductRepository cria uma nova instância de ProductRepository
func NewProductRepository(db *database.PostgresDB) product.Repository {
	return &ProductRepository{db: db}
}

// Create implementa product.Repository.Create. O produto e o registro de
// estoque zerado entram na mesma transação.
func (r *ProductRepository) Create(ctx context.Context, p *product.Product, location string) error {
	exists, err := r.ExistsByCode(ctx, p.Code)
	if err != nil {
		return fmt.Errorf("erro ao verificar existência do produto: %w", err)
	}
	if exists {
		return ErrProductDuplicateKey
	}

	record := inventory.NewRecord(p.ID, location)

	return r.db.Transaction(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO products (
				id, code, name, category, unit, unit_price, minimum_stock,
				description, active, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.ID, p.Code, p.Name, p.Category, p.Unit, p.UnitPrice,
			p.MinimumStock, p.Description, p.Active, p.CreatedAt)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				return ErrProductDuplicateKey
			}
			return fmt.Errorf("erro ao criar produto: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO inventory_records (
				id, product_id, available, reserved, location, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			record.ID, record.ProductID, record.Available, record.Reserved,
			record.Location, record.UpdatedAt)
		if err != nil {
			return fmt.Errorf("erro ao criar registro de estoque: %w", err)
		}

		return nil
	})
}

// FindByID implementa product.Repository.FindByID
func (r *ProductRepository) FindByID(ctx context.Context, id string) (*product.Product, error) {
	return r.findOne(ctx, "id = $1", id)
}

// FindByCode implementa product.Repository.FindByCode
func (r *ProductRepository) FindByCode(ctx context.Context, code string) (*product.Product, error) {
	return r.findOne(ctx, "code = $1", code)
}

func (r *ProductRepository) findOne(ctx context.Context, where string, arg any) (*product.Product, error) {
	var p product.Product
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, code, name, category, unit, unit_price, minimum_stock,
			description, active, created_at
		FROM products WHERE `+where,
		arg).Scan(
		&p.ID, &p.Code, &p.Name, &p.Category, &p.Unit, &p.UnitPrice,
		&p.MinimumStock, &p.Description, &p.Active, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("erro ao buscar produto: %w", err)
	}
	return &p, nil
}

// List implementa product.Repository.List
func (r *ProductRepository) List(ctx context.Context, filter product.ListFilter) ([]*product.Product, error) {
	where, args := productFilterClause(filter)

	args = append(args, filter.Limit, filter.Offset)
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, code, name, category, unit, unit_price, minimum_stock,
			description, active, created_at
		FROM products `+where+`
		ORDER BY name ASC
		LIMIT $`+fmt.Sprint(len(args)-1)+` OFFSET $`+fmt.Sprint(len(args)),
		args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar produtos: %w", err)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Category, &p.Unit, &p.UnitPrice,
			&p.MinimumStock, &p.Description, &p.Active, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler produto: %w", err)
		}
		products = append(products, &p)
	}
	return products, rows.Err()
}

// Count implementa product.Repository.Count
func (r *ProductRepository) Count(ctx context.Context, filter product.ListFilter) (int, error) {
	where, args := productFilterClause(filter)

	var count int
	err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM products `+where, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar produtos: %w", err)
	}
	return count, nil
}

// productFilterClause monta a cláusula WHERE da listagem de produtos
func productFilterClause(filter product.ListFilter) (string, []any) {
	var conditions []string
	var args []any

	if filter.Category != "" {
		args = append(args, filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(code ILIKE $%d OR name ILIKE $%d)", n, n))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Update implementa product.Repository.Update
func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE products SET
			name = $2, category = $3, unit = $4, unit_price = $5,
			minimum_stock = $6, description = $7, active = $8
		WHERE id = $1`,
		p.ID, p.Name, p.Category, p.Unit, p.UnitPrice, p.MinimumStock,
		p.Description, p.Active)
	if err != nil {
		return fmt.Errorf("erro ao atualizar produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// SetActive implementa product.Repository.SetActive
func (r *ProductRepository) SetActive(ctx context.Context, id string, active bool) error {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE products SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("erro ao alterar status do produto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}
	return nil
}

// ExistsByCode implementa product.Repository.ExistsByCode
func (r *ProductRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.db.Pool().QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM products WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar código do produto: %w", err)
	}
	return exists, nil
}

// Categories implementa product.Repository.Categories
func (r *ProductRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT DISTINCT category FROM products WHERE category <> '' ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar categorias: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("erro ao ler categoria: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
