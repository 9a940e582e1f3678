package user

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type User struct {
	Id             ulid.ULID `json:"id"`
	TenantId       ulid.ULID `json:"tenantId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Password       string    `json:"-"`
	AvatarInitials string    `json:"avatarInitials"`
	Role           Role      `json:"role"`
	Plan           Plan      `json:"plan"`
	PlanSince      time.Time `json:"planSince"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type Role string

const (
	RoleSaasAdmin   Role = "saas_admin"
	RoleTenantAdmin Role = "tenant_admin"
	RoleMember      Role = "member"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleSaasAdmin, RoleTenantAdmin, RoleMember:
		return true
	}
	return false
}

type Plan string

const (
	PlanFree    Plan = "free"
	PlanPremium Plan = "premium"
)

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanPremium:
		return true
	}
	return false
}

// AvatarInitialsFor deriva as iniciais exibidas no avatar a partir do nome,
// como o cadastro original fazia: dois primeiros caracteres em maiúsculas.
func AvatarInitialsFor(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "US"
	}
	runes := []rune(name)
	if len(runes) == 1 {
		return strings.ToUpper(string(runes[0]))
	}
	return strings.ToUpper(string(runes[:2]))
}
