package infrastructure

import (
	"gorm.io/gorm"
)

// ResourceCounter alimenta o middleware de plano com os totais do tenant.
type ResourceCounter struct {
	DB *gorm.DB
}

func (r *ResourceCounter) CountTransactions(tenantID string) (int64, error) {
	var count int64
	err := r.DB.Table("transactions").Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

func (r *ResourceCounter) CountCategories(tenantID string) (int64, error) {
	var count int64
	err := r.DB.Table("categories").Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}

func (r *ResourceCounter) CountUsers(tenantID string) (int64, error) {
	var count int64
	err := r.DB.Table("users").Where("tenant_id = ?", tenantID).Count(&count).Error
	return count, err
}
