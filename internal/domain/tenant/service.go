package tenant

import (
	"context"
	"strings"

	"github.com/oklog/ulid/v2"

	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, tenant *Tenant) error
	GetByID(ctx context.Context, id ulid.ULID) (*Tenant, error)
	GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*Tenant, int64, error)
}

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

func (s *Service) Create(ctx context.Context, name string) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	now := pkg.SetTimestamps()
	tenant := &Tenant{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, tenant); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return tenant, nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Tenant, error) {
	tenant, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.ErrTenantNotFound.WithError(err)
	}
	return tenant, nil
}

func (s *Service) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Tenant, int64, error) {
	tenants, total, err := s.Repository.GetAll(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return tenants, total, nil
}
