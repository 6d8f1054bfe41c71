package purchase

import (
	"context"
	"time"
)

// Repository define a interface para operações de repositório de ordens de compra
type Repository interface {
	// Create persiste a ordem e suas posições em uma única transação,
	// gerando o número sequencial do período
	Create(ctx context.Context, o *Order) error

	// FindByID busca uma ordem com suas posições
	FindByID(ctx context.Context, id string) (*Order, error)

	// List lista ordens com filtro opcional de status e paginação
	List(ctx context.Context, status Status, limit, offset int) ([]*Order, error)

	// Count conta as ordens do filtro
	Count(ctx context.Context, status Status) (int, error)

	// UpdateStatus persiste uma mudança de status já validada na entidade
	UpdateStatus(ctx context.Context, id string, status Status, actualDelivery *time.Time) error
}
