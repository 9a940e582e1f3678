package category

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, categoryID, tenantID ulid.ULID) error
	GetByID(ctx context.Context, categoryID, tenantID ulid.ULID) (*Category, error)
	GetByName(ctx context.Context, name string, tenantID ulid.ULID) (*Category, error)
	GetAllByTenant(ctx context.Context, tenantID ulid.ULID) ([]*Category, error)
	CountByTenant(ctx context.Context, tenantID ulid.ULID) (int64, error)
}
