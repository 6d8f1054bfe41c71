package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

// SequenceRepository gera os sequenciais de numeração de documentos.
// Cada período (prefixo + ano, ou prefixo + ano + mês) tem uma linha de
// contador própria; o incremento é feito em um único comando, portanto duas
// criações simultâneas no mesmo período nunca recebem o mesmo valor.
type SequenceRepository struct{}

// NewSequenceRepository cria uma nova instância de SequenceRepository
func NewSequenceRepository() *SequenceRepository {
	return &SequenceRepository{}
}

// NextYearly devolve o próximo sequencial do período anual, dentro da
// transação do documento que está sendo criado
func (r *SequenceRepository) NextYearly(ctx context.Context, tx pgx.Tx, prefix string, year int) (int64, error) {
	return r.next(ctx, tx, prefix, year, 0)
}

// NextMonthly devolve o próximo sequencial do período mensal
func (r *SequenceRepository) NextMonthly(ctx context.Context, tx pgx.Tx, prefix string, year int, month time.Month) (int64, error) {
	return r.next(ctx, tx, prefix, year, int(month))
}

func (r *SequenceRepository) next(ctx context.Context, tx pgx.Tx, prefix string, year, month int) (int64, error) {
	var value int64
	err := tx.QueryRow(ctx,
		`INSERT INTO document_sequences (prefix, year, month, last_value)
		 VALUES ($1, $2, $3, 1)
		 ON CONFLICT (prefix, year, month)
		 DO UPDATE SET last_value = document_sequences.last_value + 1
		 RETURNING last_value`,
		prefix, year, month).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("erro ao gerar sequencial %s/%d/%d: %w", prefix, year, month, err)
	}
	return value, nil
}
