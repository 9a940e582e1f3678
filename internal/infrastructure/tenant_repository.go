package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/tenant"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type TenantRepository struct {
	DB *gorm.DB
}

var _ tenant.Repository = (*TenantRepository)(nil)

type tenantDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (tenantDB) TableName() string {
	return "tenants"
}

func toDomainTenant(tdb *tenantDB) (*tenant.Tenant, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &tenant.Tenant{
		Id:        id,
		Name:      tdb.Name,
		CreatedAt: tdb.CreatedAt,
		UpdatedAt: tdb.UpdatedAt,
	}, nil
}

func toDBTenant(t *tenant.Tenant) *tenantDB {
	return &tenantDB{
		Id:        t.Id.String(),
		Name:      t.Name,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TenantRepository) Create(ctx context.Context, t *tenant.Tenant) error {
	return r.DB.WithContext(ctx).Table("tenants").Create(toDBTenant(t)).Error
}

func (r *TenantRepository) GetByID(ctx context.Context, id ulid.ULID) (*tenant.Tenant, error) {
	var tdb tenantDB
	if err := r.DB.WithContext(ctx).Table("tenants").Where("id = ?", id.String()).First(&tdb).Error; err != nil {
		return nil, err
	}
	return toDomainTenant(&tdb)
}

func (r *TenantRepository) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*tenant.Tenant, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("tenants")
	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainTenant)
}
