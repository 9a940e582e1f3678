package admin_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/admin"
	"github.com/ronaldorededigital/confin/internal/domain/ticket"
	"github.com/ronaldorededigital/confin/internal/domain/user"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

type fakeUserRepository struct {
	users       map[ulid.ULID]*user.User
	countAll    int64
	countByPlan map[user.Plan]int64
	updated     *user.User
}

func (f *fakeUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (f *fakeUserRepository) Update(ctx context.Context, u *user.User) error {
	f.updated = u
	return nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id ulid.ULID) error { return nil }

func (f *fakeUserRepository) GetByID(ctx context.Context, id ulid.ULID) (*user.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepository) GetAll(ctx context.Context, pagination *pkg.PaginationParams) ([]*user.User, int64, error) {
	var all []*user.User
	for _, u := range f.users {
		all = append(all, u)
	}
	return all, int64(len(all)), nil
}

func (f *fakeUserRepository) CountAll(ctx context.Context) (int64, error) {
	return f.countAll, nil
}

func (f *fakeUserRepository) CountByPlan(ctx context.Context, p user.Plan) (int64, error) {
	return f.countByPlan[p], nil
}

type fakeTicketRepository struct {
	open int64
}

func (f *fakeTicketRepository) Create(ctx context.Context, t *ticket.SupportTicket) error {
	return nil
}

func (f *fakeTicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error {
	return nil
}

func (f *fakeTicketRepository) GetByID(ctx context.Context, ticketID ulid.ULID) (*ticket.SupportTicket, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTicketRepository) ListByTenant(ctx context.Context, tenantID ulid.ULID) ([]*ticket.SupportTicket, error) {
	return nil, nil
}

func (f *fakeTicketRepository) ListAll(ctx context.Context) ([]*ticket.SupportTicket, error) {
	return nil, nil
}

func (f *fakeTicketRepository) CountByStatus(ctx context.Context, status ticket.Status) (int64, error) {
	return f.open, nil
}

func newAdminService(userRepo *fakeUserRepository, ticketRepo *fakeTicketRepository) *admin.Service {
	return admin.NewService(user.NewService(userRepo), ticket.NewService(ticketRepo))
}

func TestGetOverviewComputesRevenueFromPremiumUsers(t *testing.T) {
	userRepo := &fakeUserRepository{
		countAll:    42,
		countByPlan: map[user.Plan]int64{user.PlanPremium: 7},
	}
	ticketRepo := &fakeTicketRepository{open: 3}
	service := newAdminService(userRepo, ticketRepo)

	overview, err := service.GetOverview(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if overview.TotalUsers != 42 {
		t.Errorf("expected 42 users, got %d", overview.TotalUsers)
	}
	if overview.PremiumUsers != 7 {
		t.Errorf("expected 7 premium users, got %d", overview.PremiumUsers)
	}
	if overview.OpenTickets != 3 {
		t.Errorf("expected 3 open tickets, got %d", overview.OpenTickets)
	}
	// 7 assinantes x R$ 19,90.
	if overview.EstimatedRevenue != money.Cents(13930) {
		t.Errorf("expected revenue 13930 cents, got %d", overview.EstimatedRevenue)
	}
}

func TestSetUserPlanPromotesUser(t *testing.T) {
	target := &user.User{
		Id:   pkg.GenerateULIDObject(),
		Name: "Maria",
		Plan: user.PlanFree,
	}
	userRepo := &fakeUserRepository{users: map[ulid.ULID]*user.User{target.Id: target}}
	service := newAdminService(userRepo, &fakeTicketRepository{})

	updated, err := service.SetUserPlan(context.Background(), target.Id, user.PlanPremium)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Plan != user.PlanPremium {
		t.Errorf("expected premium plan, got %s", updated.Plan)
	}
	if userRepo.updated == nil {
		t.Error("expected the user to be persisted")
	}
}

func TestSetUserPlanRejectsUnknownPlan(t *testing.T) {
	service := newAdminService(&fakeUserRepository{}, &fakeTicketRepository{})

	_, err := service.SetUserPlan(context.Background(), pkg.GenerateULIDObject(), user.Plan("enterprise"))
	if err == nil {
		t.Fatal("expected validation error for unknown plan")
	}
}
