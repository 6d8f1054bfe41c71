package product

import "context"

// ListFilter define os filtros de listagem de produtos
type ListFilter struct {
	Category string
	Search   string // busca por código ou nome
	Limit    int
	Offset   int
}

// Repository define a interface para operações de repositório de produtos
type Repository interface {
	// Create cria o produto e o registro de estoque zerado na mesma transação
	Create(ctx context.Context, p *Product, location string) error

	// FindByID busca um produto pelo ID
	FindByID(ctx context.Context, id string) (*Product, error)

	// FindByCode busca um produto pelo código
	FindByCode(ctx context.Context, code string) (*Product, error)

	// List lista produtos com filtros e paginação
	List(ctx context.Context, filter ListFilter) ([]*Product, error)

	// Count conta os produtos que atendem ao filtro
	Count(ctx context.Context, filter ListFilter) (int, error)

	// Update atualiza os dados cadastrais
	Update(ctx context.Context, p *Product) error

	// SetActive ativa ou desativa o produto
	SetActive(ctx context.Context, id string, active bool) error

	// ExistsByCode verifica se já existe produto com o código
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// Categories retorna as categorias distintas em uso
	Categories(ctx context.Context) ([]string, error)
}
