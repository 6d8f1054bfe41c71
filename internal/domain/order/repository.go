package order

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de pedidos
type Repository interface {
	// Create persiste o pedido e suas posições em uma única transação,
	// gerando o número sequencial do período
	Create(ctx context.Context, o *Order) error

	// FindByID busca um pedido com suas posições
	FindByID(ctx context.Context, id string) (*Order, error)

	// List lista pedidos com filtro opcional de status e paginação
	List(ctx context.Context, status Status, limit, offset int) ([]*Order, error)

	// Count conta os pedidos do filtro
	Count(ctx context.Context, status Status) (int, error)

	// UpdateStatus persiste uma mudança de status já validada na entidade
	UpdateStatus(ctx context.Context, id string, status Status, fulfilledAt *time.Time) error

	// SetItemPicked persiste a marcação de separação de uma posição
	SetItemPicked(ctx context.Context, orderID, itemID string, picked bool) error
}
