package user

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*User, int64, error)
	CountAll(ctx context.Context) (int64, error)
	CountByPlan(ctx context.Context, plan Plan) (int64, error)
}
