package warehouse

import "context"

// Repository define a interface para operações de repositório de documentos
// de armazém. A criação é uma transação única: documento, posições e os
// ajustes de estoque correspondentes entram ou falham juntos.
type Repository interface {
	// Create persiste o documento. Para recebimentos cada posição soma ao
	// disponível do produto; para expedições cada posição exige disponível
	// suficiente e, na primeira falta, a operação inteira é abortada com o
	// produto nomeado no erro. Expedição vinculada a um pedido muda o
	// pedido para SHIPPED na mesma transação.
	Create(ctx context.Context, d *Document) error

	// FindByID busca um documento com suas posições
	FindByID(ctx context.Context, id string) (*Document, error)

	// List lista documentos com filtro opcional de tipo e paginação
	List(ctx context.Context, docType Type, limit, offset int) ([]*Document, error)

	// Count conta os documentos do filtro
	Count(ctx context.Context, docType Type) (int, error)
}
