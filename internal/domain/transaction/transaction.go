package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

// DefaultCategory é usada quando o lançamento chega sem categoria.
const DefaultCategory = "Geral"

type Transaction struct {
	Id          ulid.ULID   `json:"id"`
	TenantId    ulid.ULID   `json:"tenantId"`
	UserId      ulid.ULID   `json:"userId"`
	Description string      `json:"description"`
	Amount      money.Cents `json:"amountCents"`
	Date        time.Time   `json:"date"`
	Type        Types       `json:"type"`
	Category    string      `json:"category"`

	// Campos de parcelamento: ou ambos presentes com 1 <= current <= total,
	// ou ambos ausentes. GroupId identifica o grupo de parcelas de forma
	// exata; linhas antigas podem não tê-lo e caem no casamento heurístico.
	InstallmentCurrent *int       `json:"installmentCurrent,omitempty"`
	InstallmentTotal   *int       `json:"installmentTotal,omitempty"`
	GroupId            *ulid.ULID `json:"installmentGroupId,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

type Types string

const (
	Income             Types = "INCOME"
	ExpenseFixed       Types = "EXPENSE_FIXED"
	ExpenseInstallment Types = "EXPENSE_INSTALLMENT"
	ExpenseVariable    Types = "EXPENSE_VARIABLE"
)

func (t Types) IsValid() bool {
	switch t {
	case Income, ExpenseFixed, ExpenseInstallment, ExpenseVariable:
		return true
	}
	return false
}

// IsExpense informa se o tipo debita o saldo. Todo tipo não-receita é
// despesa para fins de particionamento de categorias e do saldo.
func (t Types) IsExpense() bool {
	return t != Income
}

type InstallmentInfo struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Installments devolve o par {current, total} ou nil quando o lançamento
// não pertence a um grupo de parcelas.
func (t *Transaction) Installments() *InstallmentInfo {
	if t.InstallmentCurrent == nil || t.InstallmentTotal == nil {
		return nil
	}
	return &InstallmentInfo{Current: *t.InstallmentCurrent, Total: *t.InstallmentTotal}
}

func (t *Transaction) HasInstallments() bool {
	return t.Installments() != nil
}

func (t *Transaction) SetInstallments(current, total int) {
	t.InstallmentCurrent = &current
	t.InstallmentTotal = &total
}

// ValidInstallmentFields verifica o invariante dos campos de parcela:
// ambos ausentes, ou ambos presentes com 1 <= current <= total.
func (t *Transaction) ValidInstallmentFields() bool {
	if t.InstallmentCurrent == nil && t.InstallmentTotal == nil {
		return true
	}
	if t.InstallmentCurrent == nil || t.InstallmentTotal == nil {
		return false
	}
	return *t.InstallmentCurrent >= 1 && *t.InstallmentCurrent <= *t.InstallmentTotal
}
