package inventory

import "context"

// StockItem é a visão de estoque com os dados do produto associado
type StockItem struct {
	Record
	ProductCode  string `json:"product_code"`
	ProductName  string `json:"product_name"`
	Category     string `json:"category"`
	MinimumStock int    `json:"minimum_stock"`
	Low          bool   `json:"low"`
}

// Repository define a interface para operações de repositório de estoque
type Repository interface {
	// FindByProduct busca o registro de estoque de um produto
	FindByProduct(ctx context.Context, productID string) (*Record, error)

	// List retorna a visão de estoque dos produtos ativos
	List(ctx context.Context, category string, lowOnly bool) ([]*StockItem, error)

	// UpdateLocation atualiza a localização física do estoque
	UpdateLocation(ctx context.Context, productID, location string) error

	// Reserve move quantidade do disponível para o reservado de forma
	// atômica; falha sem alterar nada quando não há disponível suficiente
	Reserve(ctx context.Context, productID string, quantity int) error
}
