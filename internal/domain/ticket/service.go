package ticket

import (
	"context"
	"errors"
	"strings"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

// Open cria um chamado em aberto em nome do usuário autenticado.
func (s *Service) Open(ctx context.Context, tenantID, userID ulid.ULID, userName, subject string) (*SupportTicket, error) {
	if pkg.IsEmptyULID(tenantID) || pkg.IsEmptyULID(userID) {
		return nil, appErrors.NewValidationError("tenant_id", "tenant e usuário são obrigatórios")
	}
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return nil, appErrors.NewValidationError("subject", "é obrigatório")
	}

	t := &SupportTicket{
		Id:        pkg.GenerateULIDObject(),
		TenantId:  tenantID,
		UserId:    userID,
		UserName:  strings.TrimSpace(userName),
		Subject:   subject,
		Status:    StatusOpen,
		CreatedAt: pkg.SetTimestamps(),
	}

	if err := s.Repository.Create(ctx, t); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

// ListByTenant devolve os chamados do próprio tenant, para o usuário
// acompanhar o andamento.
func (s *Service) ListByTenant(ctx context.Context, tenantID ulid.ULID) ([]*SupportTicket, error) {
	tickets, err := s.Repository.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return tickets, nil
}

// ListAll devolve todos os chamados da plataforma; só o painel
// administrativo chega aqui.
func (s *Service) ListAll(ctx context.Context) ([]*SupportTicket, error) {
	tickets, err := s.Repository.ListAll(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return tickets, nil
}

// Resolve fecha um chamado aberto. Resolver chamado já fechado é idempotente.
func (s *Service) Resolve(ctx context.Context, ticketID ulid.ULID) (*SupportTicket, error) {
	t, err := s.Repository.GetByID(ctx, ticketID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrTicketNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	if !t.IsOpen() {
		return t, nil
	}

	t.Status = StatusClosed
	now := pkg.SetTimestamps()
	t.UpdatedAt = &now

	if err := s.Repository.Update(ctx, t); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

// CountOpen conta os chamados abertos da plataforma inteira.
func (s *Service) CountOpen(ctx context.Context) (int64, error) {
	count, err := s.Repository.CountByStatus(ctx, StatusOpen)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}
