package customer

import "context"

// Repository define a interface para operações de repositório de clientes
type Repository interface {
	// Create cria um novo cliente
	Create(ctx context.Context, c *Customer) error

	// FindByID busca um cliente pelo ID
	FindByID(ctx context.Context, id string) (*Customer, error)

	// List lista clientes com busca por nome/NIF/email e paginação
	List(ctx context.Context, search string, limit, offset int) ([]*Customer, error)

	// Count conta os clientes da busca
	Count(ctx context.Context, search string) (int, error)

	// Update atualiza os dados de um cliente existente
	Update(ctx context.Context, c *Customer) error

	// SetActive ativa ou desativa o cliente
	SetActive(ctx context.Context, id string, active bool) error

	// ExistsByTaxID verifica se já existe cliente com o NIF
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
}
