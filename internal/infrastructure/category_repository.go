package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/category"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type CategoryRepository struct {
	DB *gorm.DB
}

var _ category.Repository = (*CategoryRepository)(nil)

type categoryDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	TenantId  string    `gorm:"type:varchar(26);not null;column:tenant_id;uniqueIndex:idx_categories_tenant_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_tenant_name"`
	Type      string    `gorm:"type:varchar(20);not null"`
	IsDefault bool      `gorm:"not null;default:false;column:is_default"`
	CreatedAt time.Time `gorm:"autoCreateTime;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;not null"`
}

func (categoryDB) TableName() string {
	return "categories"
}

func toDomainCategory(cdb *categoryDB) (*category.Category, error) {
	id, err := pkg.ParseULID(cdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	tenantID, err := pkg.ParseULID(cdb.TenantId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	return &category.Category{
		Id:        id,
		TenantId:  tenantID,
		Name:      cdb.Name,
		Type:      transaction.Types(cdb.Type),
		IsDefault: cdb.IsDefault,
		CreatedAt: cdb.CreatedAt,
		UpdatedAt: cdb.UpdatedAt,
	}, nil
}

func toDBCategory(c *category.Category) *categoryDB {
	return &categoryDB{
		Id:        c.Id.String(),
		TenantId:  c.TenantId.String(),
		Name:      c.Name,
		Type:      string(c.Type),
		IsDefault: c.IsDefault,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *category.Category) error {
	return r.DB.WithContext(ctx).Table("categories").Create(toDBCategory(c)).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *category.Category) error {
	cdb := toDBCategory(c)
	return r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND tenant_id = ?", cdb.Id, cdb.TenantId).
		Updates(cdb).Error
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID, tenantID ulid.ULID) error {
	return r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND tenant_id = ?", categoryID.String(), tenantID.String()).
		Delete(&categoryDB{}).Error
}

func (r *CategoryRepository) GetByID(ctx context.Context, categoryID, tenantID ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("id = ? AND tenant_id = ?", categoryID.String(), tenantID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetByName(ctx context.Context, name string, tenantID ulid.ULID) (*category.Category, error) {
	var cdb categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("name = ? AND tenant_id = ?", name, tenantID.String()).
		First(&cdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainCategory(&cdb)
}

func (r *CategoryRepository) GetAllByTenant(ctx context.Context, tenantID ulid.ULID) ([]*category.Category, error) {
	var rows []categoryDB
	err := r.DB.WithContext(ctx).Table("categories").
		Where("tenant_id = ?", tenantID.String()).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*category.Category, 0, len(rows))
	for i := range rows {
		item, err := toDomainCategory(&rows[i])
		if err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *CategoryRepository) CountByTenant(ctx context.Context, tenantID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("categories").
		Where("tenant_id = ?", tenantID.String()).
		Count(&count).Error
	return count, err
}
