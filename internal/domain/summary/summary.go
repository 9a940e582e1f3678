// Package summary agrega os lançamentos de um mês nos totais exibidos no
// painel: receitas, despesas fixas, parcelas e saldo.
package summary

import (
	"time"

	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

// FinancialSummary acumula os totais de um mês. Despesas variáveis e outros
// tipos não-receita debitam o saldo mas não aparecem em nenhum total próprio.
type FinancialSummary struct {
	Income        money.Cents `json:"incomeCents"`
	FixedExpenses money.Cents `json:"fixedExpensesCents"`
	Installments  money.Cents `json:"installmentsCents"`
	Balance       money.Cents `json:"balanceCents"`
}

// Add dobra um lançamento no resumo: receita soma em Income e no saldo;
// cada tipo de despesa soma no seu total e debita o saldo.
func (s *FinancialSummary) Add(tx *transaction.Transaction) {
	switch tx.Type {
	case transaction.Income:
		s.Income += tx.Amount
		s.Balance += tx.Amount
	case transaction.ExpenseFixed:
		s.FixedExpenses += tx.Amount
		s.Balance -= tx.Amount
	case transaction.ExpenseInstallment:
		s.Installments += tx.Amount
		s.Balance -= tx.Amount
	default:
		s.Balance -= tx.Amount
	}
}

// ForMonth calcula o resumo de (year, month) a partir de uma lista qualquer
// de lançamentos, ignorando os de outros meses. A ordem da lista não afeta o
// resultado.
func ForMonth(transactions []*transaction.Transaction, year int, month time.Month) FinancialSummary {
	var s FinancialSummary
	for _, tx := range transactions {
		if !pkg.SameMonth(tx.Date, year, month) {
			continue
		}
		s.Add(tx)
	}
	return s
}

// ForTransactions calcula o resumo de uma lista já filtrada por período.
func ForTransactions(transactions []*transaction.Transaction) FinancialSummary {
	var s FinancialSummary
	for _, tx := range transactions {
		s.Add(tx)
	}
	return s
}
