package contracts

import (
	"time"

	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

// TransactionCreateRequest cobre lançamento avulso e parcelado. Valores
// chegam em reais e são convertidos para centavos na borda. Sem data
// explícita o lançamento cai no dia 15 do mês selecionado.
type TransactionCreateRequest struct {
	Description string     `json:"description" binding:"required,max=255"`
	Amount      float64    `json:"amount" binding:"required,gte=0"`
	Type        string     `json:"type" binding:"required,oneof=INCOME EXPENSE_FIXED EXPENSE_INSTALLMENT EXPENSE_VARIABLE"`
	Category    string     `json:"category" binding:"omitempty,max=100"`
	Date        *time.Time `json:"date" binding:"omitempty"`
	Month       int        `json:"month" binding:"omitempty,min=1,max=12"`
	Year        int        `json:"year" binding:"omitempty,min=2000,max=2100"`

	Installments *InstallmentRequest `json:"installments" binding:"omitempty"`
}

type InstallmentRequest struct {
	Count          int  `json:"count" binding:"required,min=2,max=48"`
	IsTotalAmount  bool `json:"isTotalAmount"`
	StartNextMonth bool `json:"startNextMonth"`
}

type TransactionUpdateRequest struct {
	Description *string    `json:"description" binding:"omitempty,max=255"`
	Amount      *float64   `json:"amount" binding:"omitempty,gte=0"`
	Date        *time.Time `json:"date" binding:"omitempty"`
	Category    *string    `json:"category" binding:"omitempty,max=100"`
	Type        *string    `json:"type" binding:"omitempty,oneof=INCOME EXPENSE_FIXED EXPENSE_INSTALLMENT EXPENSE_VARIABLE"`
}

type TransactionCreateResponse struct {
	Message     string              `json:"message"`
	Transaction TransactionResponse `json:"transaction"`
}

type InstallmentInfoResponse struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

type TransactionResponse struct {
	Id           string                   `json:"id"`
	Description  string                   `json:"description"`
	Amount       float64                  `json:"amount"`
	Date         time.Time                `json:"date"`
	Type         string                   `json:"type"`
	Category     string                   `json:"category"`
	Installments *InstallmentInfoResponse `json:"installments,omitempty"`
	GroupId      string                   `json:"installmentGroupId,omitempty"`
	CreatedAt    time.Time                `json:"createdAt"`
	UpdatedAt    *time.Time               `json:"updatedAt,omitempty"`
}

func ToTransactionResponse(t *transaction.Transaction) TransactionResponse {
	resp := TransactionResponse{
		Id:          t.Id.String(),
		Description: t.Description,
		Amount:      t.Amount.Float64(),
		Date:        t.Date,
		Type:        string(t.Type),
		Category:    t.Category,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
	if info := t.Installments(); info != nil {
		resp.Installments = &InstallmentInfoResponse{Current: info.Current, Total: info.Total}
	}
	if t.GroupId != nil {
		resp.GroupId = t.GroupId.String()
	}
	return resp
}

func ToTransactionResponses(transactions []*transaction.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, ToTransactionResponse(t))
	}
	return out
}

// AmountToCents converte o valor da API (reais) para centavos.
func AmountToCents(amount float64) (money.Cents, error) {
	return money.FromFloat(amount)
}
