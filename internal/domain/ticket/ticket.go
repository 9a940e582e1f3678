// Package ticket registra chamados de suporte abertos pelos usuários e
// resolvidos pelo administrador da plataforma.
package ticket

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

type SupportTicket struct {
	Id       ulid.ULID `json:"id"`
	TenantId ulid.ULID `json:"tenantId"`
	UserId   ulid.ULID `json:"userId"`
	UserName string    `json:"userName"`
	Subject  string    `json:"subject"`
	Status   Status    `json:"status"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

func (t *SupportTicket) IsOpen() bool {
	return t.Status == StatusOpen
}
