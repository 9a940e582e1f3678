package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/user"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type UserRepository struct {
	DB *gorm.DB
}

var _ user.Repository = (*UserRepository)(nil)

type userDB struct {
	Id             string    `gorm:"type:varchar(26);primaryKey"`
	TenantId       string    `gorm:"type:varchar(26);index;not null;column:tenant_id"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Email          string    `gorm:"type:varchar(100);uniqueIndex:idx_users_email;not null"`
	Password       string    `gorm:"type:varchar(255);not null"`
	AvatarInitials string    `gorm:"type:varchar(4);column:avatar_initials"`
	Role           string    `gorm:"type:varchar(15);default:'tenant_admin'"`
	Plan           string    `gorm:"type:varchar(10);default:'free';index:idx_users_plan"`
	PlanSince      time.Time `gorm:"type:timestamp;default:CURRENT_TIMESTAMP;column:plan_since"`
	CreatedAt      time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime;not null"`
}

func (userDB) TableName() string {
	return "users"
}

func toDomainUser(udb *userDB) (*user.User, error) {
	id, err := pkg.ParseULID(udb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	tenantID, err := pkg.ParseULID(udb.TenantId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &user.User{
		Id:             id,
		TenantId:       tenantID,
		Name:           udb.Name,
		Email:          udb.Email,
		Password:       udb.Password,
		AvatarInitials: udb.AvatarInitials,
		Role:           user.Role(udb.Role),
		Plan:           user.Plan(udb.Plan),
		PlanSince:      udb.PlanSince,
		CreatedAt:      udb.CreatedAt,
		UpdatedAt:      udb.UpdatedAt,
	}, nil
}

func toDBUser(u *user.User) *userDB {
	return &userDB{
		Id:             u.Id.String(),
		TenantId:       u.TenantId.String(),
		Name:           u.Name,
		Email:          u.Email,
		Password:       u.Password,
		AvatarInitials: u.AvatarInitials,
		Role:           string(u.Role),
		Plan:           string(u.Plan),
		PlanSince:      u.PlanSince,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	return r.DB.WithContext(ctx).Table("users").Create(udb).Error
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	udb := toDBUser(u)
	return r.DB.WithContext(ctx).Table("users").Where("id = ?", udb.Id).Updates(udb).Error
}

func (r *UserRepository) Delete(ctx context.Context, id ulid.ULID) error {
	result := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).Delete(&userDB{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("id = ?", id.String()).First(&udb).Error; err != nil {
		return nil, err
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var udb userDB
	if err := r.DB.WithContext(ctx).Table("users").Where("email = ?", email).First(&udb).Error; err != nil {
		return nil, err
	}
	return toDomainUser(&udb)
}

func (r *UserRepository) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*user.User, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("users")
	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainUser)
}

func (r *UserRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("users").Count(&count).Error
	return count, err
}

func (r *UserRepository) CountByPlan(ctx context.Context, plan user.Plan) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("users").Where("plan = ?", string(plan)).Count(&count).Error
	return count, err
}
