package invoice

import "context"

// Repository define a interface para operações de repositório de faturas
type Repository interface {
	// Create persiste a fatura gerando o número do período mensal; falha
	// com ErrAlreadyInvoiced se o pedido já possui fatura
	Create(ctx context.Context, i *Invoice) error

	// FindByID busca uma fatura pelo ID
	FindByID(ctx context.Context, id string) (*Invoice, error)

	// FindByOrder busca a fatura de um pedido
	FindByOrder(ctx context.Context, orderID string) (*Invoice, error)

	// List lista faturas com paginação
	List(ctx context.Context, limit, offset int) ([]*Invoice, error)

	// Count conta as faturas
	Count(ctx context.Context) (int, error)

	// MarkPaid registra o pagamento
	MarkPaid(ctx context.Context, id string) error
}
