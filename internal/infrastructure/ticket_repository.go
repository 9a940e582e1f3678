package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/ticket"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type TicketRepository struct {
	DB *gorm.DB
}

var _ ticket.Repository = (*TicketRepository)(nil)

type ticketDB struct {
	Id        string     `gorm:"type:varchar(26);primaryKey"`
	TenantId  string     `gorm:"type:varchar(26);not null;column:tenant_id;index:idx_tickets_tenant"`
	UserId    string     `gorm:"type:varchar(26);not null;column:user_id"`
	UserName  string     `gorm:"type:varchar(100);not null;column:user_name"`
	Subject   string     `gorm:"size:255;not null"`
	Status    string     `gorm:"type:varchar(10);not null;default:'open';index:idx_tickets_status"`
	CreatedAt time.Time  `gorm:"autoCreateTime;not null"`
	UpdatedAt *time.Time `gorm:"column:updated_at"`
}

func (ticketDB) TableName() string {
	return "support_tickets"
}

func toDomainTicket(tdb *ticketDB) (*ticket.SupportTicket, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	tenantID, err := pkg.ParseULID(tdb.TenantId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}
	userID, err := pkg.ParseULID(tdb.UserId)
	if err != nil {
		return nil, appErrors.ErrInternalServer.WithError(err)
	}

	return &ticket.SupportTicket{
		Id:        id,
		TenantId:  tenantID,
		UserId:    userID,
		UserName:  tdb.UserName,
		Subject:   tdb.Subject,
		Status:    ticket.Status(tdb.Status),
		CreatedAt: tdb.CreatedAt,
		UpdatedAt: tdb.UpdatedAt,
	}, nil
}

func toDBTicket(t *ticket.SupportTicket) *ticketDB {
	return &ticketDB{
		Id:        t.Id.String(),
		TenantId:  t.TenantId.String(),
		UserId:    t.UserId.String(),
		UserName:  t.UserName,
		Subject:   t.Subject,
		Status:    string(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.SupportTicket) error {
	return r.DB.WithContext(ctx).Table("support_tickets").Create(toDBTicket(t)).Error
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error {
	tdb := toDBTicket(t)
	return r.DB.WithContext(ctx).Table("support_tickets").Where("id = ?", tdb.Id).Updates(tdb).Error
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID ulid.ULID) (*ticket.SupportTicket, error) {
	var tdb ticketDB
	if err := r.DB.WithContext(ctx).Table("support_tickets").Where("id = ?", ticketID.String()).First(&tdb).Error; err != nil {
		return nil, err
	}
	return toDomainTicket(&tdb)
}

func (r *TicketRepository) ListByTenant(ctx context.Context, tenantID ulid.ULID) ([]*ticket.SupportTicket, error) {
	var rows []ticketDB
	err := r.DB.WithContext(ctx).Table("support_tickets").
		Where("tenant_id = ?", tenantID.String()).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainTickets(rows)
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*ticket.SupportTicket, error) {
	var rows []ticketDB
	err := r.DB.WithContext(ctx).Table("support_tickets").
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainTickets(rows)
}

func (r *TicketRepository) CountByStatus(ctx context.Context, status ticket.Status) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Table("support_tickets").
		Where("status = ?", string(status)).
		Count(&count).Error
	return count, err
}

func toDomainTickets(rows []ticketDB) ([]*ticket.SupportTicket, error) {
	out := make([]*ticket.SupportTicket, 0, len(rows))
	for i := range rows {
		item, err := toDomainTicket(&rows[i])
		if err != nil {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}
