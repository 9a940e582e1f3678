package contracts

import (
	"github.com/ronaldorededigital/confin/internal/domain/admin"
	"github.com/ronaldorededigital/confin/internal/domain/user"
)

type AdminOverviewResponse struct {
	TotalUsers       int64   `json:"totalUsers"`
	PremiumUsers     int64   `json:"premiumUsers"`
	OpenTickets      int64   `json:"openTickets"`
	EstimatedRevenue float64 `json:"estimatedRevenue"`
}

func ToAdminOverviewResponse(o *admin.Overview) AdminOverviewResponse {
	return AdminOverviewResponse{
		TotalUsers:       o.TotalUsers,
		PremiumUsers:     o.PremiumUsers,
		OpenTickets:      o.OpenTickets,
		EstimatedRevenue: o.EstimatedRevenue.Float64(),
	}
}

type SetPlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=free premium"`
}

type AdminUserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

func ToAdminUserListResponse(users []*user.User, total int64, page, limit int) AdminUserListResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return AdminUserListResponse{Users: out, Total: total, Page: page, Limit: limit}
}
