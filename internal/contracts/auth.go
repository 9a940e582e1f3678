package contracts

import (
	"time"

	"github.com/ronaldorededigital/confin/internal/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	TenantName string `json:"tenantName" binding:"omitempty,max=100"`
}

type GoogleLoginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	Id             string    `json:"id"`
	TenantId       string    `json:"tenantId"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	AvatarInitials string    `json:"avatarInitials"`
	Role           string    `json:"role"`
	Plan           string    `json:"plan"`
	PlanSince      time.Time `json:"planSince"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		Id:             u.Id.String(),
		TenantId:       u.TenantId.String(),
		Name:           u.Name,
		Email:          u.Email,
		AvatarInitials: u.AvatarInitials,
		Role:           string(u.Role),
		Plan:           string(u.Plan),
		PlanSince:      u.PlanSince,
		CreatedAt:      u.CreatedAt,
	}
}
