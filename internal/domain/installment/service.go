package installment

import (
	"context"
	"strings"

	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type Service struct {
	Repository transaction.Repository
}

func NewService(repo transaction.Repository) *Service {
	return &Service{Repository: repo}
}

// Create valida a requisição, expande o grupo e grava todas as parcelas em
// um único lote atômico. Devolve a primeira parcela como confirmação; quem
// precisar do conjunto completo deve consultar novamente.
func (s *Service) Create(ctx context.Context, req Request) (*transaction.Transaction, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	groupID := pkg.GenerateULIDObject()
	rows := Expand(req, groupID, pkg.SetTimestamps())

	if err := s.Repository.CreateBatch(ctx, rows); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return rows[0], nil
}

func validate(req Request) error {
	if pkg.IsEmptyULID(req.TenantId) || pkg.IsEmptyULID(req.UserId) {
		return appErrors.NewValidationError("tenant_id", "tenant e usuário são obrigatórios")
	}
	if strings.TrimSpace(req.Description) == "" {
		return appErrors.NewValidationError("description", "é obrigatório")
	}
	if req.Amount < 0 {
		return appErrors.NewValidationError("amount", "deve ser maior ou igual a zero")
	}
	if req.Count < MinCount {
		return appErrors.NewValidationError("count", "número de parcelas deve ser no mínimo 2")
	}
	if req.Count > MaxCount {
		return appErrors.NewValidationError("count", "número de parcelas deve ser no máximo 48")
	}
	if req.Date.IsZero() {
		return appErrors.NewValidationError("date", "é obrigatório")
	}
	return nil
}
