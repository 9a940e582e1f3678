// Package admin concentra as operações do painel da plataforma: visão
// geral de usuários e receita, troca de plano e fila de chamados.
package admin

import (
	"context"

	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/domain/plan"
	"github.com/ronaldorededigital/confin/internal/domain/ticket"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

// Overview resume a plataforma para o administrador.
type Overview struct {
	TotalUsers       int64       `json:"totalUsers"`
	PremiumUsers     int64       `json:"premiumUsers"`
	OpenTickets      int64       `json:"openTickets"`
	EstimatedRevenue money.Cents `json:"estimatedRevenueCents"`
}

type Service struct {
	Users   *user.Service
	Tickets *ticket.Service
}

func NewService(users *user.Service, tickets *ticket.Service) *Service {
	return &Service{Users: users, Tickets: tickets}
}

// GetOverview calcula os totais do painel. A receita estimada é a
// multiplicação direta dos assinantes premium pelo preço de tabela.
func (s *Service) GetOverview(ctx context.Context) (*Overview, error) {
	total, err := s.Users.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	premium, err := s.Users.CountByPlan(ctx, user.PlanPremium)
	if err != nil {
		return nil, err
	}

	openTickets, err := s.Tickets.CountOpen(ctx)
	if err != nil {
		return nil, err
	}

	return &Overview{
		TotalUsers:       total,
		PremiumUsers:     premium,
		OpenTickets:      openTickets,
		EstimatedRevenue: money.Cents(premium) * plan.PremiumMonthlyPrice,
	}, nil
}

// ListUsers devolve os usuários da plataforma paginados.
func (s *Service) ListUsers(ctx context.Context, pagination *pkg.PaginationParams) ([]*user.User, int64, error) {
	return s.Users.GetAll(ctx, pagination)
}

// SetUserPlan promove ou rebaixa o plano de um usuário.
func (s *Service) SetUserPlan(ctx context.Context, userID ulid.ULID, p user.Plan) (*user.User, error) {
	return s.Users.UpdatePlan(ctx, userID, p)
}

// ListTickets devolve a fila completa de chamados.
func (s *Service) ListTickets(ctx context.Context) ([]*ticket.SupportTicket, error) {
	return s.Tickets.ListAll(ctx)
}

// ResolveTicket fecha um chamado da fila.
func (s *Service) ResolveTicket(ctx context.Context, ticketID ulid.ULID) (*ticket.SupportTicket, error) {
	return s.Tickets.Resolve(ctx, ticketID)
}
