package transaction

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// GroupMatch descreve o casamento heurístico de um grupo de parcelas para
// linhas gravadas sem installment_group_id: todo lançamento do tenant com a
// mesma descrição, tipo e total de parcelas é considerado membro,
// independentemente de current ou valor.
type GroupMatch struct {
	TenantId          ulid.ULID
	Description       string
	Type              Types
	InstallmentsTotal int
}

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	// CreateBatch grava todas as linhas em uma única transação de banco:
	// ou todas entram, ou nenhuma.
	CreateBatch(ctx context.Context, transactions []*Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	Delete(ctx context.Context, transactionID, tenantID ulid.ULID) error
	DeleteByGroup(ctx context.Context, tenantID, groupID ulid.ULID) error
	DeleteByMatch(ctx context.Context, match GroupMatch) error
	GetByIDAndTenant(ctx context.Context, transactionID, tenantID ulid.ULID) (*Transaction, error)
	ListByTenantAndDateRange(ctx context.Context, tenantID ulid.ULID, start, end time.Time) ([]*Transaction, error)
	CountByTenant(ctx context.Context, tenantID ulid.ULID) (int64, error)
}
