package ticket

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, ticket *SupportTicket) error
	Update(ctx context.Context, ticket *SupportTicket) error
	GetByID(ctx context.Context, ticketID ulid.ULID) (*SupportTicket, error)
	ListByTenant(ctx context.Context, tenantID ulid.ULID) ([]*SupportTicket, error)
	ListAll(ctx context.Context) ([]*SupportTicket, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
}
