package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

type TransactionRepository struct {
	DB *gorm.DB
}

var _ transaction.Repository = (*TransactionRepository)(nil)

type transactionDB struct {
	Id                 string     `gorm:"type:varchar(26);primaryKey;column:id"`
	TenantId           string     `gorm:"type:varchar(26);not null;column:tenant_id;index:idx_transactions_tenant_date,priority:1"`
	UserId             string     `gorm:"type:varchar(26);index;not null;column:user_id"`
	Description        string     `gorm:"size:255;not null;column:description"`
	AmountCents        int64      `gorm:"not null;column:amount_cents"`
	Date               time.Time  `gorm:"not null;column:date;index:idx_transactions_tenant_date,priority:2"`
	Type               string     `gorm:"type:varchar(20);not null;column:type"`
	Category           string     `gorm:"type:varchar(100);not null;column:category"`
	InstallmentCurrent *int       `gorm:"column:installment_current"`
	InstallmentTotal   *int       `gorm:"column:installment_total"`
	GroupId            *string    `gorm:"type:varchar(26);column:installment_group_id;index:idx_transactions_group"`
	CreatedAt          time.Time  `gorm:"not null;column:created_at"`
	UpdatedAt          *time.Time `gorm:"column:updated_at"`
}

func (transactionDB) TableName() string {
	return "transactions"
}

func toDomainTransaction(tdb *transactionDB) (*transaction.Transaction, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}
	tenantID, err := pkg.ParseULID(tdb.TenantId)
	if err != nil {
		return nil, err
	}
	userID, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, err
	}

	var groupID *ulid.ULID
	if tdb.GroupId != nil && *tdb.GroupId != "" {
		parsed, err := pkg.ParseULID(*tdb.GroupId)
		if err != nil {
			return nil, err
		}
		groupID = &parsed
	}

	return &transaction.Transaction{
		Id:                 id,
		TenantId:           tenantID,
		UserId:             userID,
		Description:        tdb.Description,
		Amount:             money.Cents(tdb.AmountCents),
		Date:               tdb.Date,
		Type:               transaction.Types(tdb.Type),
		Category:           tdb.Category,
		InstallmentCurrent: tdb.InstallmentCurrent,
		InstallmentTotal:   tdb.InstallmentTotal,
		GroupId:            groupID,
		CreatedAt:          tdb.CreatedAt,
		UpdatedAt:          tdb.UpdatedAt,
	}, nil
}

func toDBTransaction(t *transaction.Transaction) *transactionDB {
	var groupID *string
	if t.GroupId != nil {
		s := t.GroupId.String()
		groupID = &s
	}
	return &transactionDB{
		Id:                 t.Id.String(),
		TenantId:           t.TenantId.String(),
		UserId:             t.UserId.String(),
		Description:        t.Description,
		AmountCents:        int64(t.Amount),
		Date:               t.Date,
		Type:               string(t.Type),
		Category:           t.Category,
		InstallmentCurrent: t.InstallmentCurrent,
		InstallmentTotal:   t.InstallmentTotal,
		GroupId:            groupID,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").Create(tdb).Error
}

// CreateBatch grava o grupo inteiro dentro de uma transação de banco. Falha
// em qualquer linha desfaz todas.
func (r *TransactionRepository) CreateBatch(ctx context.Context, transactions []*transaction.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	rows := make([]*transactionDB, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, toDBTransaction(t))
	}

	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Table("transactions").Create(rows).Error
	})
}

// Update grava as colunas editáveis via Select explícito: Updates com
// struct pula campos zero, e um amount editado para 0 precisa persistir.
func (r *TransactionRepository) Update(ctx context.Context, t *transaction.Transaction) error {
	tdb := toDBTransaction(t)
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND tenant_id = ?", tdb.Id, tdb.TenantId).
		Select("description", "amount_cents", "date", "type", "category", "updated_at").
		Updates(tdb).Error
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID, tenantID ulid.ULID) error {
	return r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND tenant_id = ?", transactionID.String(), tenantID.String()).
		Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) DeleteByGroup(ctx context.Context, tenantID, groupID ulid.ULID) error {
	return r.DB.WithContext(ctx).Table("transactions").
		Where("tenant_id = ? AND installment_group_id = ?", tenantID.String(), groupID.String()).
		Delete(&transactionDB{}).Error
}

// DeleteByMatch cobre linhas antigas sem installment_group_id: remove todo
// lançamento do tenant com a mesma descrição, tipo e total de parcelas.
func (r *TransactionRepository) DeleteByMatch(ctx context.Context, match transaction.GroupMatch) error {
	return r.DB.WithContext(ctx).Table("transactions").
		Where("tenant_id = ? AND description = ? AND type = ? AND installment_total = ?",
			match.TenantId.String(), match.Description, string(match.Type), match.InstallmentsTotal).
		Delete(&transactionDB{}).Error
}

func (r *TransactionRepository) GetByIDAndTenant(ctx context.Context, transactionID, tenantID ulid.ULID) (*transaction.Transaction, error) {
	var tdb transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("id = ? AND tenant_id = ?", transactionID.String(), tenantID.String()).
		First(&tdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainTransaction(&tdb)
}

func (r *TransactionRepository) ListByTenantAndDateRange(ctx context.Context, tenantID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	var rows []transactionDB
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("tenant_id = ? AND date >= ? AND date <= ?", tenantID.String(), start, end).
		Order("date ASC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*transaction.Transaction, 0, len(rows))
	for i := range rows {
		item, err := toDomainTransaction(&rows[i])
		if err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *TransactionRepository) CountByTenant(ctx context.Context, tenantID ulid.ULID) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("transactions").
		Where("tenant_id = ?", tenantID.String()).
		Count(&count).Error
	return count, err
}
