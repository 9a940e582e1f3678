package tenant

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Tenant é a unidade de cobrança e posse (uma família ou conta compartilhada).
// Usuários, categorias e transações são sempre escopados por tenant.
type Tenant struct {
	Id        ulid.ULID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
