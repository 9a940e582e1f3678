package user

import (
	"context"
	"errors"

	"github.com/oklog/ulid/v2"
	"golang.org/x/crypto/bcrypt"
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

func (s *Service) Create(ctx context.Context, user *User) error {
	user.Id = pkg.GenerateULIDObject()

	now := pkg.SetTimestamps()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.PlanSince = now

	if user.AvatarInitials == "" {
		user.AvatarInitials = AvatarInitialsFor(user.Name)
	}
	if user.Role == "" {
		user.Role = RoleTenantAdmin
	}
	if user.Plan == "" {
		user.Plan = PlanFree
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), 12)
	if err != nil {
		return err
	}
	user.Password = string(hashedPassword)

	return s.Repository.Create(ctx, user)
}

func (s *Service) Update(ctx context.Context, user *User) error {
	return s.Repository.Update(ctx, user)
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	return s.Repository.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*User, error) {
	user, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return user, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	user, err := s.Repository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, appErrors.ErrUserNotFound
		}
		return nil, appErrors.NewDatabaseError(err)
	}
	return user, nil
}

func (s *Service) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*User, int64, error) {
	users, total, err := s.Repository.GetAll(ctx, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return users, total, nil
}

func (s *Service) UpdatePlan(ctx context.Context, userID ulid.ULID, newPlan Plan) (*User, error) {
	if !newPlan.IsValid() {
		return nil, appErrors.NewValidationError("plan", "plano inválido")
	}

	user, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if user.Plan == newPlan {
		return user, nil
	}

	user.Plan = newPlan
	user.PlanSince = pkg.SetTimestamps()
	user.UpdatedAt = pkg.SetTimestamps()

	if err := s.Repository.Update(ctx, user); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return user, nil
}

func (s *Service) CountAll(ctx context.Context) (int64, error) {
	count, err := s.Repository.CountAll(ctx)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (s *Service) CountByPlan(ctx context.Context, p Plan) (int64, error) {
	count, err := s.Repository.CountByPlan(ctx, p)
	if err != nil {
		return 0, appErrors.NewDatabaseError(err)
	}
	return count, nil
}

func (s *Service) Exists(ctx context.Context, userID ulid.ULID) error {
	_, err := s.GetByID(ctx, userID)
	return err
}
