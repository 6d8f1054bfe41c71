// Package docnumber monta os números legíveis de documentos do sistema.
// O sequencial é obtido de um contador atômico por período; aqui fica apenas
// a formatação.
package docnumber

import (
	"fmt"
	"time"
)

// Prefixos dos documentos emitidos pelo sistema
const (
	PrefixOrder    = "PED" // Pedido de venda
	PrefixPurchase = "OC"  // Ordem de compra
	PrefixReceipt  = "REC" // Recebimento de mercadoria
	PrefixIssue    = "EXP" // Expedição de mercadoria
	PrefixInvoice  = "FAT" // Fatura
)

// Yearly formata um número com período anual: PREFIX/YYYY/NNNNN
func Yearly(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s/%d/%05d", prefix, year, seq)
}

// Monthly formata um número com período mensal: PREFIX/YYYY/MM/NNNN
func Monthly(prefix string, year int, month time.Month, seq int64) string {
	return fmt.Sprintf("%s/%d/%02d/%04d", prefix, year, int(month), seq)
}
