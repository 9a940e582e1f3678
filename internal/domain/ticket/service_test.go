package ticket_test

import (
	"context"
	"testing"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/ticket"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
)

type fakeTicketRepository struct {
	createFunc        func(ctx context.Context, t *ticket.SupportTicket) error
	updateFunc        func(ctx context.Context, t *ticket.SupportTicket) error
	getByIDFunc       func(ctx context.Context, ticketID ulid.ULID) (*ticket.SupportTicket, error)
	listByTenantFunc  func(ctx context.Context, tenantID ulid.ULID) ([]*ticket.SupportTicket, error)
	listAllFunc       func(ctx context.Context) ([]*ticket.SupportTicket, error)
	countByStatusFunc func(ctx context.Context, status ticket.Status) (int64, error)
}

func (f *fakeTicketRepository) Create(ctx context.Context, t *ticket.SupportTicket) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, t)
	}
	return nil
}

func (f *fakeTicketRepository) Update(ctx context.Context, t *ticket.SupportTicket) error {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, t)
	}
	return nil
}

func (f *fakeTicketRepository) GetByID(ctx context.Context, ticketID ulid.ULID) (*ticket.SupportTicket, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, ticketID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTicketRepository) ListByTenant(ctx context.Context, tenantID ulid.ULID) ([]*ticket.SupportTicket, error) {
	if f.listByTenantFunc != nil {
		return f.listByTenantFunc(ctx, tenantID)
	}
	return nil, nil
}

func (f *fakeTicketRepository) ListAll(ctx context.Context) ([]*ticket.SupportTicket, error) {
	if f.listAllFunc != nil {
		return f.listAllFunc(ctx)
	}
	return nil, nil
}

func (f *fakeTicketRepository) CountByStatus(ctx context.Context, status ticket.Status) (int64, error) {
	if f.countByStatusFunc != nil {
		return f.countByStatusFunc(ctx, status)
	}
	return 0, nil
}

func TestOpenCreatesOpenTicket(t *testing.T) {
	var created *ticket.SupportTicket
	repo := &fakeTicketRepository{
		createFunc: func(ctx context.Context, tk *ticket.SupportTicket) error {
			created = tk
			return nil
		},
	}
	service := ticket.NewService(repo)

	tk, err := service.Open(context.Background(), pkg.GenerateULIDObject(), pkg.GenerateULIDObject(), "Maria", "  Não consigo excluir parcelas  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created != tk {
		t.Fatal("expected ticket to be persisted and returned")
	}
	if tk.Status != ticket.StatusOpen {
		t.Errorf("expected status open, got %s", tk.Status)
	}
	if tk.Subject != "Não consigo excluir parcelas" {
		t.Errorf("expected trimmed subject, got %q", tk.Subject)
	}
	if pkg.IsEmptyULID(tk.Id) {
		t.Error("expected an id to be assigned")
	}
}

func TestOpenRejectsBlankSubject(t *testing.T) {
	service := ticket.NewService(&fakeTicketRepository{})

	_, err := service.Open(context.Background(), pkg.GenerateULIDObject(), pkg.GenerateULIDObject(), "Maria", "   ")
	if err == nil {
		t.Fatal("expected validation error for blank subject")
	}
}

func TestResolveClosesOpenTicket(t *testing.T) {
	open := &ticket.SupportTicket{
		Id:     pkg.GenerateULIDObject(),
		Status: ticket.StatusOpen,
	}
	var updated *ticket.SupportTicket
	repo := &fakeTicketRepository{
		getByIDFunc: func(ctx context.Context, ticketID ulid.ULID) (*ticket.SupportTicket, error) {
			return open, nil
		},
		updateFunc: func(ctx context.Context, tk *ticket.SupportTicket) error {
			updated = tk
			return nil
		},
	}
	service := ticket.NewService(repo)

	tk, err := service.Resolve(context.Background(), open.Id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tk.Status != ticket.StatusClosed {
		t.Errorf("expected closed status, got %s", tk.Status)
	}
	if updated == nil {
		t.Error("expected the ticket to be persisted")
	}
	if tk.UpdatedAt == nil {
		t.Error("expected updatedAt to be stamped")
	}
}

func TestResolveClosedTicketIsIdempotent(t *testing.T) {
	closed := &ticket.SupportTicket{
		Id:     pkg.GenerateULIDObject(),
		Status: ticket.StatusClosed,
	}
	updateCalled := false
	repo := &fakeTicketRepository{
		getByIDFunc: func(ctx context.Context, ticketID ulid.ULID) (*ticket.SupportTicket, error) {
			return closed, nil
		},
		updateFunc: func(ctx context.Context, tk *ticket.SupportTicket) error {
			updateCalled = true
			return nil
		},
	}
	service := ticket.NewService(repo)

	tk, err := service.Resolve(context.Background(), closed.Id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updateCalled {
		t.Error("expected no update for an already closed ticket")
	}
	if tk.Status != ticket.StatusClosed {
		t.Errorf("expected closed status, got %s", tk.Status)
	}
}

func TestResolveUnknownTicket(t *testing.T) {
	service := ticket.NewService(&fakeTicketRepository{})

	_, err := service.Resolve(context.Background(), pkg.GenerateULIDObject())
	if err != appErrors.ErrTicketNotFound {
		t.Errorf("expected ErrTicketNotFound, got %v", err)
	}
}
