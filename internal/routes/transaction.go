package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ronaldorededigital/confin/internal/contracts"
	"github.com/ronaldorededigital/confin/internal/domain/installment"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

// resolveDate aplica a regra de data dos lançamentos manuais: data explícita
// vale como veio; mês/ano sem data caem no dia 15 do mês escolhido; nada
// informado cai no dia 15 do mês corrente.
func resolveDate(body *contracts.TransactionCreateRequest) time.Time {
	if body.Date != nil && !body.Date.IsZero() {
		return *body.Date
	}
	if body.Month >= 1 && body.Month <= 12 && body.Year > 0 {
		return pkg.MidMonth(body.Year, time.Month(body.Month))
	}
	now := time.Now()
	return pkg.MidMonth(now.Year(), now.Month())
}

func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	userID, err := h.GetUserIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	amount, err := contracts.AmountToCents(body.Amount)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("amount", "valor inválido"))
		return
	}

	date := resolveDate(&body)
	ctx := c.Request.Context()

	if body.Installments != nil {
		first, err := h.InstallmentService.Create(ctx, installment.Request{
			TenantId:       tenantID,
			UserId:         userID,
			Description:    body.Description,
			Amount:         amount,
			Date:           date,
			Category:       body.Category,
			Count:          body.Installments.Count,
			IsTotalAmount:  body.Installments.IsTotalAmount,
			StartNextMonth: body.Installments.StartNextMonth,
		})
		if err != nil {
			h.respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
			Message:     "Compra parcelada criada com sucesso",
			Transaction: contracts.ToTransactionResponse(first),
		})
		return
	}

	transactionEntity := transaction.Transaction{
		TenantId:    tenantID,
		UserId:      userID,
		Description: body.Description,
		Amount:      amount,
		Date:        date,
		Type:        transaction.Types(body.Type),
		Category:    body.Category,
	}

	if err := h.TransactionService.Create(ctx, &transactionEntity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Lançamento criado com sucesso",
		Transaction: contracts.ToTransactionResponse(&transactionEntity),
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	now := time.Now()
	monthNum := int(now.Month())
	year := now.Year()
	months := 1
	if m, err := pkg.ParseInt(c.DefaultQuery("month", "")); err == nil && m >= 1 && m <= 12 {
		monthNum = m
	}
	if y, err := pkg.ParseInt(c.DefaultQuery("year", "")); err == nil && y > 0 {
		year = y
	}
	if n, err := pkg.ParseInt(c.DefaultQuery("months", "")); err == nil && n > 1 {
		months = n
	}

	ctx := c.Request.Context()
	transactions, err := h.TransactionService.ListRange(ctx, tenantID, year, time.Month(monthNum), months)
	if err != nil {
		h.respondError(c, err)
		return
	}

	// O eco de month/year/months deixa o cliente descartar respostas que
	// chegaram fora de ordem.
	c.JSON(http.StatusOK, gin.H{
		"month":        monthNum,
		"year":         year,
		"months":       months,
		"transactions": contracts.ToTransactionResponses(transactions),
	})
}

func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	transactionEntity, err := h.TransactionService.GetByID(ctx, transactionID, tenantID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.ToTransactionResponse(transactionEntity))
}

func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err = c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ErrBadRequest.WithError(err))
		return
	}

	req := transaction.UpdateRequest{
		Description: body.Description,
		Date:        body.Date,
		Category:    body.Category,
	}
	if body.Amount != nil {
		amount, err := contracts.AmountToCents(*body.Amount)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("amount", "valor inválido"))
			return
		}
		req.Amount = &amount
	}
	if body.Type != nil {
		txType := transaction.Types(*body.Type)
		req.Type = &txType
	}

	ctx := c.Request.Context()
	updated, err := h.TransactionService.Update(ctx, transactionID, tenantID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionCreateResponse{
		Message:     "Lançamento atualizado com sucesso",
		Transaction: contracts.ToTransactionResponse(updated),
	})
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "formato inválido"))
		return
	}

	tenantID, err := h.GetTenantIDFromContext(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	deleteAll := c.Query("all") == "true"

	ctx := c.Request.Context()
	if err := h.TransactionService.Delete(ctx, transactionID, tenantID, deleteAll); err != nil {
		h.respondError(c, err)
		return
	}

	message := "Lançamento removido com sucesso"
	if deleteAll {
		message = "Parcelamento removido com sucesso"
	}
	c.JSON(http.StatusOK, contracts.MessageResponse{Message: message})
}
