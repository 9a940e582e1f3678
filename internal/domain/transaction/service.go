package transaction

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/logger"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// Create grava um lançamento avulso. Parcelamentos passam pelo motor de
// parcelas, não por aqui; ainda assim uma linha avulsa pode carregar os
// campos de parcela (importações, ajustes manuais), desde que válidos.
func (s *Service) Create(ctx context.Context, tx *Transaction) error {
	if pkg.IsEmptyULID(tx.TenantId) || pkg.IsEmptyULID(tx.UserId) {
		return appErrors.NewValidationError("tenant_id", "tenant e usuário são obrigatórios")
	}
	if !tx.Type.IsValid() {
		return appErrors.NewValidationError("type", "tipo de lançamento inválido")
	}
	if strings.TrimSpace(tx.Description) == "" {
		return appErrors.NewValidationError("description", "é obrigatório")
	}
	if tx.Amount < 0 {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if !tx.ValidInstallmentFields() {
		return appErrors.NewValidationError("installments", "parcela atual deve estar entre 1 e o total")
	}

	if tx.Category == "" {
		tx.Category = DefaultCategory
	}

	tx.Id = pkg.GenerateULIDObject()
	tx.CreatedAt = pkg.SetTimestamps()
	tx.UpdatedAt = nil

	if err := s.Repository.Create(ctx, tx); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

// ListMonth devolve os lançamentos do tenant dentro de um único mês.
func (s *Service) ListMonth(ctx context.Context, tenantID ulid.ULID, year int, month time.Month) ([]*Transaction, error) {
	start, end := pkg.MonthRange(year, month)
	return s.list(ctx, tenantID, start, end)
}

// ListRange devolve os lançamentos de monthsCount meses a partir de
// (year, month), inclusive o mês final parcial.
func (s *Service) ListRange(ctx context.Context, tenantID ulid.ULID, year int, month time.Month, monthsCount int) ([]*Transaction, error) {
	start, end := pkg.MonthsRange(year, month, monthsCount)
	return s.list(ctx, tenantID, start, end)
}

// list degrada falha de leitura para lista vazia: consultas alimentam telas
// e o chamador sempre recebe um estado renderizável, possivelmente vazio.
func (s *Service) list(ctx context.Context, tenantID ulid.ULID, start, end time.Time) ([]*Transaction, error) {
	transactions, err := s.Repository.ListByTenantAndDateRange(ctx, tenantID, start, end)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("tenant_id", tenantID.String()).
			Msg("Falha ao listar lançamentos, devolvendo lista vazia")
		return []*Transaction{}, nil
	}
	return transactions, nil
}

func (s *Service) GetByID(ctx context.Context, transactionID, tenantID ulid.ULID) (*Transaction, error) {
	tx, err := s.Repository.GetByIDAndTenant(ctx, transactionID, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTransactionNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return tx, nil
}

// UpdateRequest restringe o que uma edição pode alterar. Campos nil ficam
// como estão; qualquer edição carimba updatedAt.
type UpdateRequest struct {
	Description *string
	Amount      *money.Cents
	Date        *time.Time
	Category    *string
	Type        *Types
}

func (s *Service) Update(ctx context.Context, transactionID, tenantID ulid.ULID, req UpdateRequest) (*Transaction, error) {
	tx, err := s.GetByID(ctx, transactionID, tenantID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		if desc == "" {
			return nil, appErrors.NewValidationError("description", "é obrigatório")
		}
		tx.Description = desc
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
		}
		tx.Amount = *req.Amount
	}
	if req.Date != nil && !req.Date.IsZero() {
		tx.Date = *req.Date
	}
	if req.Category != nil && *req.Category != "" {
		tx.Category = *req.Category
	}
	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, appErrors.NewValidationError("type", "tipo de lançamento inválido")
		}
		tx.Type = *req.Type
	}

	now := pkg.SetTimestamps()
	tx.UpdatedAt = &now

	if err := s.Repository.Update(ctx, tx); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return tx, nil
}

// Delete remove um lançamento. Com deleteAll=true e o alvo pertencendo a um
// grupo de parcelas, remove o grupo inteiro: pelo installment_group_id
// quando a linha o carrega, senão pelo casamento heurístico
// {tenant, descrição, tipo, total}. Um deleteAll sobre linha sem parcelas
// degrada para remoção simples, como no fluxo original.
func (s *Service) Delete(ctx context.Context, transactionID, tenantID ulid.ULID, deleteAll bool) error {
	tx, err := s.GetByID(ctx, transactionID, tenantID)
	if err != nil {
		return err
	}

	if deleteAll && tx.HasInstallments() {
		if tx.GroupId != nil {
			if err := s.Repository.DeleteByGroup(ctx, tenantID, *tx.GroupId); err != nil {
				return appErrors.NewDatabaseError(err)
			}
			return nil
		}

		match := GroupMatch{
			TenantId:          tenantID,
			Description:       tx.Description,
			Type:              tx.Type,
			InstallmentsTotal: *tx.InstallmentTotal,
		}
		if err := s.Repository.DeleteByMatch(ctx, match); err != nil {
			return appErrors.NewDatabaseError(err)
		}
		return nil
	}

	if err := s.Repository.Delete(ctx, transactionID, tenantID); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}
