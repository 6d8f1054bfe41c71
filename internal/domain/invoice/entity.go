package invoice

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hugohenrick/erp-armazem/internal/domain/order"
	"github.com/shopspring/decimal"
)

var (
	// ErrAlreadyInvoiced é retornado quando o pedido já possui fatura
	ErrAlreadyInvoiced = errors.New("já existe fatura para este pedido")
)

// VATRate é a alíquota fixa aplicada sobre o valor líquido
var VATRate = decimal.RequireFromString("0.23")

// DuePeriod é o prazo padrão de pagamento
const DuePeriod = 14 * 24 * time.Hour

// Invoice representa uma fatura emitida para um pedido de venda
type Invoice struct {
	ID         string          `json:"id"`
	Number     string          `json:"number"` // Escopo mensal, imutável
	CustomerID string          `json:"customer_id"`
	OrderID    string          `json:"order_id"`
	IssuedAt   time.Time       `json:"issued_at"`
	SaleDate   time.Time       `json:"sale_date"`
	DueDate    time.Time       `json:"due_date"`
	NetValue   decimal.Decimal `json:"net_value"`
	VATValue   decimal.Decimal `json:"vat_value"`
	GrossValue decimal.Decimal `json:"gross_value"`
	Paid       bool            `json:"paid"`
}

// NewFromOrder cria a fatura de um pedido: líquido do pedido, IVA = líquido
// × 0,23, bruto = líquido × 1,23 e vencimento em 14 dias
func NewFromOrder(o *order.Order) *Invoice {
	now := time.Now()
	return &Invoice{
		ID:         uuid.New().String(),
		CustomerID: o.CustomerID,
		OrderID:    o.ID,
		IssuedAt:   now,
		SaleDate:   now,
		DueDate:    now.Add(DuePeriod),
		NetValue:   o.NetValue,
		VATValue:   o.NetValue.Mul(VATRate),
		GrossValue: o.GrossValue,
		Paid:       false,
	}
}

// MarkPaid registra o pagamento da fatura
func (i *Invoice) MarkPaid() {
	i.Paid = true
}
