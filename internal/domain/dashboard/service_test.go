package dashboard_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ronaldorededigital/confin/internal/domain/dashboard"
	"github.com/ronaldorededigital/confin/internal/domain/insight"
	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

type fakeTransactionRepository struct {
	listFunc func(ctx context.Context, tenantID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error)
}

func (f *fakeTransactionRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) CreateBatch(ctx context.Context, txs []*transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	return nil
}

func (f *fakeTransactionRepository) Delete(ctx context.Context, transactionID, tenantID ulid.ULID) error {
	return nil
}

func (f *fakeTransactionRepository) DeleteByGroup(ctx context.Context, tenantID, groupID ulid.ULID) error {
	return nil
}

func (f *fakeTransactionRepository) DeleteByMatch(ctx context.Context, match transaction.GroupMatch) error {
	return nil
}

func (f *fakeTransactionRepository) GetByIDAndTenant(ctx context.Context, transactionID, tenantID ulid.ULID) (*transaction.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepository) ListByTenantAndDateRange(ctx context.Context, tenantID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, tenantID, start, end)
	}
	return nil, nil
}

func (f *fakeTransactionRepository) CountByTenant(ctx context.Context, tenantID ulid.ULID) (int64, error) {
	return 0, nil
}

type fakeGenerator struct {
	generateFunc func(ctx context.Context, systemInstruction, prompt string) (string, error)
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if f.generateFunc != nil {
		return f.generateFunc(ctx, systemInstruction, prompt)
	}
	return `["ok"]`, nil
}

func marchTransactions(tenantID ulid.ULID) []*transaction.Transaction {
	return []*transaction.Transaction{
		{
			Id:          pkg.GenerateULIDObject(),
			TenantId:    tenantID,
			Description: "Salário",
			Amount:      money.Cents(500000),
			Date:        time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC),
			Type:        transaction.Income,
		},
		{
			Id:          pkg.GenerateULIDObject(),
			TenantId:    tenantID,
			Description: "Aluguel",
			Amount:      money.Cents(180000),
			Date:        time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			Type:        transaction.ExpenseFixed,
		},
		{
			Id:          pkg.GenerateULIDObject(),
			TenantId:    tenantID,
			Description: "Internet",
			Amount:      money.Cents(10000),
			Date:        time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC),
			Type:        transaction.ExpenseFixed,
		},
	}
}

func newDashboardService(repo *fakeTransactionRepository, gen insight.Generator) *dashboard.Service {
	return dashboard.NewService(transaction.NewService(repo), insight.NewAdvisor(gen))
}

func TestGetDashboardSummarizesRequestedMonth(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()
	repo := &fakeTransactionRepository{
		listFunc: func(ctx context.Context, id ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
			return marchTransactions(tenantID), nil
		},
	}
	service := newDashboardService(repo, &fakeGenerator{})

	resp, err := service.GetDashboard(context.Background(), tenantID, "Maria", 2026, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Summary.Income != 500000 {
		t.Errorf("expected income 500000, got %d", resp.Summary.Income)
	}
	if resp.Summary.Balance != 320000 {
		t.Errorf("expected balance 320000, got %d", resp.Summary.Balance)
	}
	// O lançamento de fevereiro fica fora da lista do mês.
	if len(resp.Transactions) != 2 {
		t.Fatalf("expected 2 transactions for March, got %d", len(resp.Transactions))
	}
	// Mais recente primeiro.
	if resp.Transactions[0].Description != "Aluguel" {
		t.Errorf("expected most recent first, got %q", resp.Transactions[0].Description)
	}
}

func TestGetDashboardBuildsSixMonthTrend(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()
	repo := &fakeTransactionRepository{
		listFunc: func(ctx context.Context, id ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
			return marchTransactions(tenantID), nil
		},
	}
	service := newDashboardService(repo, &fakeGenerator{})

	resp, err := service.GetDashboard(context.Background(), tenantID, "Maria", 2026, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.MonthlyTrend) != 6 {
		t.Fatalf("expected 6 trend items, got %d", len(resp.MonthlyTrend))
	}
	first := resp.MonthlyTrend[0]
	if first.Year != 2025 || first.Month != 10 {
		t.Errorf("expected trend to start at 2025-10, got %d-%02d", first.Year, first.Month)
	}
	last := resp.MonthlyTrend[5]
	if last.Year != 2026 || last.Month != 3 {
		t.Errorf("expected trend to end at 2026-03, got %d-%02d", last.Year, last.Month)
	}
	if last.Income != 500000 || last.Expenses != 180000 || last.Balance != 320000 {
		t.Errorf("unexpected trend for current month: %+v", last)
	}
	february := resp.MonthlyTrend[4]
	if february.Expenses != 10000 {
		t.Errorf("expected February expenses 10000, got %d", february.Expenses)
	}
}

func TestGetDashboardInsightFailureDoesNotBlock(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()
	repo := &fakeTransactionRepository{
		listFunc: func(ctx context.Context, id ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
			return marchTransactions(tenantID), nil
		},
	}
	gen := &fakeGenerator{
		generateFunc: func(ctx context.Context, systemInstruction, prompt string) (string, error) {
			return "", errors.New("model unavailable")
		},
	}
	service := newDashboardService(repo, gen)

	resp, err := service.GetDashboard(context.Background(), tenantID, "Maria", 2026, 3)
	if err != nil {
		t.Fatalf("expected dashboard despite insight failure, got %v", err)
	}
	if len(resp.Insights) != len(insight.FailureInsights) {
		t.Errorf("expected failure fallback insights, got %v", resp.Insights)
	}
}

func TestGetDashboardDefaultsInvalidMonthToCurrent(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()
	var gotStart time.Time
	repo := &fakeTransactionRepository{
		listFunc: func(ctx context.Context, id ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
			gotStart = start
			return nil, nil
		},
	}
	service := newDashboardService(repo, &fakeGenerator{})

	if _, err := service.GetDashboard(context.Background(), tenantID, "Maria", 0, 99); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	expected := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -5, 0)
	if gotStart.Year() != expected.Year() || gotStart.Month() != expected.Month() {
		t.Errorf("expected range starting %d-%02d, got %d-%02d", expected.Year(), expected.Month(), gotStart.Year(), gotStart.Month())
	}
}
