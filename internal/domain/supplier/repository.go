package supplier

import "context"

// Repository define a interface para operações de repositório de fornecedores
type Repository interface {
	// Create cria um novo fornecedor
	Create(ctx context.Context, s *Supplier) error

	// FindByID busca um fornecedor pelo ID
	FindByID(ctx context.Context, id string) (*Supplier, error)

	// List lista fornecedores com busca por nome/NIF e paginação
	List(ctx context.Context, search string, limit, offset int) ([]*Supplier, error)

	// Count conta os fornecedores da busca
	Count(ctx context.Context, search string) (int, error)

	// Update atualiza os dados de um fornecedor existente
	Update(ctx context.Context, s *Supplier) error

	// SetActive ativa ou desativa o fornecedor
	SetActive(ctx context.Context, id string, active bool) error

	// ExistsByTaxID verifica se já existe fornecedor com o NIF
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
}
