package transaction_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"

	"github.com/ronaldorededigital/confin/internal/domain/transaction"
	appErrors "github.com/ronaldorededigital/confin/internal/errors"
	"github.com/ronaldorededigital/confin/internal/pkg"
	"github.com/ronaldorededigital/confin/internal/pkg/money"
)

type fakeRepository struct {
	createFunc        func(ctx context.Context, tx *transaction.Transaction) error
	updateFunc        func(ctx context.Context, tx *transaction.Transaction) error
	deleteFunc        func(ctx context.Context, transactionID, tenantID ulid.ULID) error
	deleteByGroupFunc func(ctx context.Context, tenantID, groupID ulid.ULID) error
	deleteByMatchFunc func(ctx context.Context, match transaction.GroupMatch) error
	getFunc           func(ctx context.Context, transactionID, tenantID ulid.ULID) (*transaction.Transaction, error)
	listFunc          func(ctx context.Context, tenantID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error)
}

func (f *fakeRepository) Create(ctx context.Context, tx *transaction.Transaction) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, tx)
	}
	return nil
}

func (f *fakeRepository) CreateBatch(ctx context.Context, txs []*transaction.Transaction) error {
	return nil
}

func (f *fakeRepository) Update(ctx context.Context, tx *transaction.Transaction) error {
	if f.updateFunc != nil {
		return f.updateFunc(ctx, tx)
	}
	return nil
}

func (f *fakeRepository) Delete(ctx context.Context, transactionID, tenantID ulid.ULID) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, transactionID, tenantID)
	}
	return nil
}

func (f *fakeRepository) DeleteByGroup(ctx context.Context, tenantID, groupID ulid.ULID) error {
	if f.deleteByGroupFunc != nil {
		return f.deleteByGroupFunc(ctx, tenantID, groupID)
	}
	return nil
}

func (f *fakeRepository) DeleteByMatch(ctx context.Context, match transaction.GroupMatch) error {
	if f.deleteByMatchFunc != nil {
		return f.deleteByMatchFunc(ctx, match)
	}
	return nil
}

func (f *fakeRepository) GetByIDAndTenant(ctx context.Context, transactionID, tenantID ulid.ULID) (*transaction.Transaction, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, transactionID, tenantID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepository) ListByTenantAndDateRange(ctx context.Context, tenantID ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, tenantID, start, end)
	}
	return nil, nil
}

func (f *fakeRepository) CountByTenant(ctx context.Context, tenantID ulid.ULID) (int64, error) {
	return 0, nil
}

func validTransaction() *transaction.Transaction {
	return &transaction.Transaction{
		TenantId:    pkg.GenerateULIDObject(),
		UserId:      pkg.GenerateULIDObject(),
		Description: "Mercado",
		Amount:      money.Cents(25990),
		Date:        time.Date(2026, time.May, 15, 0, 0, 0, 0, time.UTC),
		Type:        transaction.ExpenseVariable,
	}
}

func TestCreateAssignsIDAndDefaultCategory(t *testing.T) {
	var saved *transaction.Transaction
	repo := &fakeRepository{
		createFunc: func(ctx context.Context, tx *transaction.Transaction) error {
			saved = tx
			return nil
		},
	}
	svc := transaction.NewService(repo)

	entity := validTransaction()
	if err := svc.Create(context.Background(), entity); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if saved == nil {
		t.Fatal("expected transaction to be persisted")
	}
	if pkg.IsEmptyULID(saved.Id) {
		t.Error("expected a generated id")
	}
	if saved.Category != transaction.DefaultCategory {
		t.Errorf("expected default category %q, got %q", transaction.DefaultCategory, saved.Category)
	}
}

func TestCreateRejectsBlankDescription(t *testing.T) {
	svc := transaction.NewService(&fakeRepository{})

	entity := validTransaction()
	entity.Description = "   "

	err := svc.Create(context.Background(), entity)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestCreateRejectsNegativeAmount(t *testing.T) {
	svc := transaction.NewService(&fakeRepository{})

	entity := validTransaction()
	entity.Amount = money.Cents(-1)

	err := svc.Create(context.Background(), entity)
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestGetByIDMapsRecordNotFound(t *testing.T) {
	svc := transaction.NewService(&fakeRepository{})

	_, err := svc.GetByID(context.Background(), pkg.GenerateULIDObject(), pkg.GenerateULIDObject())
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != appErrors.ErrTransactionNotFound.Code {
		t.Fatalf("expected TRANSACTION_NOT_FOUND, got %v", err)
	}
}

func TestUpdateAppliesOnlyProvidedFields(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()
	existing := validTransaction()
	existing.Id = pkg.GenerateULIDObject()
	existing.TenantId = tenantID
	existing.Category = "Alimentação"

	var updated *transaction.Transaction
	repo := &fakeRepository{
		getFunc: func(ctx context.Context, transactionID, tid ulid.ULID) (*transaction.Transaction, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, tx *transaction.Transaction) error {
			updated = tx
			return nil
		},
	}
	svc := transaction.NewService(repo)

	newDesc := "Feira da semana"
	result, err := svc.Update(context.Background(), existing.Id, tenantID, transaction.UpdateRequest{
		Description: &newDesc,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated == nil {
		t.Fatal("expected update to reach the repository")
	}
	if result.Description != newDesc {
		t.Errorf("expected description %q, got %q", newDesc, result.Description)
	}
	if result.Category != "Alimentação" {
		t.Errorf("category should be untouched, got %q", result.Category)
	}
	if result.Amount != money.Cents(25990) {
		t.Errorf("amount should be untouched, got %d", result.Amount)
	}
	if result.UpdatedAt == nil {
		t.Error("expected updatedAt to be stamped")
	}
}

func TestUpdateAllowsZeroAmount(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()
	existing := validTransaction()
	existing.Id = pkg.GenerateULIDObject()
	existing.TenantId = tenantID

	var updated *transaction.Transaction
	repo := &fakeRepository{
		getFunc: func(ctx context.Context, transactionID, tid ulid.ULID) (*transaction.Transaction, error) {
			return existing, nil
		},
		updateFunc: func(ctx context.Context, tx *transaction.Transaction) error {
			updated = tx
			return nil
		},
	}
	svc := transaction.NewService(repo)

	zero := money.Cents(0)
	result, err := svc.Update(context.Background(), existing.Id, tenantID, transaction.UpdateRequest{
		Amount: &zero,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated == nil {
		t.Fatal("expected update to reach the repository")
	}
	if updated.Amount != money.Cents(0) {
		t.Errorf("expected amount zeroed in the persisted entity, got %d", updated.Amount)
	}
	if result.Amount != money.Cents(0) {
		t.Errorf("expected amount zero, got %d", result.Amount)
	}
}

func TestUpdateRejectsInvalidType(t *testing.T) {
	existing := validTransaction()
	existing.Id = pkg.GenerateULIDObject()

	repo := &fakeRepository{
		getFunc: func(ctx context.Context, transactionID, tenantID ulid.ULID) (*transaction.Transaction, error) {
			return existing, nil
		},
	}
	svc := transaction.NewService(repo)

	badType := transaction.Types("EXPENSE_WEIRD")
	_, err := svc.Update(context.Background(), existing.Id, existing.TenantId, transaction.UpdateRequest{
		Type: &badType,
	})
	appErr, ok := appErrors.AsAppError(err)
	if !ok || appErr.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected VALIDATION_ERROR, got %v", err)
	}
}

func TestDeleteAllUsesGroupIDWhenPresent(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()
	groupID := pkg.GenerateULIDObject()

	target := validTransaction()
	target.Id = pkg.GenerateULIDObject()
	target.TenantId = tenantID
	target.Type = transaction.ExpenseInstallment
	target.GroupId = &groupID
	target.SetInstallments(2, 12)

	var deletedGroup *ulid.ULID
	matchCalled := false
	repo := &fakeRepository{
		getFunc: func(ctx context.Context, transactionID, tid ulid.ULID) (*transaction.Transaction, error) {
			return target, nil
		},
		deleteByGroupFunc: func(ctx context.Context, tid, gid ulid.ULID) error {
			deletedGroup = &gid
			return nil
		},
		deleteByMatchFunc: func(ctx context.Context, match transaction.GroupMatch) error {
			matchCalled = true
			return nil
		},
	}
	svc := transaction.NewService(repo)

	if err := svc.Delete(context.Background(), target.Id, tenantID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if deletedGroup == nil || *deletedGroup != groupID {
		t.Error("expected deletion by the stored group id")
	}
	if matchCalled {
		t.Error("heuristic match must not run when the group id is present")
	}
}

func TestDeleteAllFallsBackToHeuristicMatch(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()

	target := validTransaction()
	target.Id = pkg.GenerateULIDObject()
	target.TenantId = tenantID
	target.Description = "Geladeira 10x"
	target.Type = transaction.ExpenseInstallment
	target.SetInstallments(3, 10)

	var match *transaction.GroupMatch
	repo := &fakeRepository{
		getFunc: func(ctx context.Context, transactionID, tid ulid.ULID) (*transaction.Transaction, error) {
			return target, nil
		},
		deleteByMatchFunc: func(ctx context.Context, m transaction.GroupMatch) error {
			match = &m
			return nil
		},
	}
	svc := transaction.NewService(repo)

	if err := svc.Delete(context.Background(), target.Id, tenantID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if match == nil {
		t.Fatal("expected the heuristic match to run for rows without a group id")
	}
	if match.Description != "Geladeira 10x" || match.InstallmentsTotal != 10 {
		t.Errorf("unexpected match tuple: %+v", match)
	}
	if match.TenantId != tenantID {
		t.Error("match must stay scoped to the tenant")
	}
}

func TestDeleteAllOnPlainRowDegradesToSingleDelete(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()

	target := validTransaction()
	target.Id = pkg.GenerateULIDObject()
	target.TenantId = tenantID

	singleDeleted := false
	repo := &fakeRepository{
		getFunc: func(ctx context.Context, transactionID, tid ulid.ULID) (*transaction.Transaction, error) {
			return target, nil
		},
		deleteFunc: func(ctx context.Context, transactionID, tid ulid.ULID) error {
			singleDeleted = true
			return nil
		},
		deleteByGroupFunc: func(ctx context.Context, tid, gid ulid.ULID) error {
			t.Fatal("group delete must not run for a row without installments")
			return nil
		},
	}
	svc := transaction.NewService(repo)

	if err := svc.Delete(context.Background(), target.Id, tenantID, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !singleDeleted {
		t.Error("expected plain single-row deletion")
	}
}

func TestListMonthDegradesToEmptyOnReadError(t *testing.T) {
	repo := &fakeRepository{
		listFunc: func(ctx context.Context, tid ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
			return nil, errors.New("connection refused")
		},
	}
	svc := transaction.NewService(repo)

	list, err := svc.ListMonth(context.Background(), pkg.GenerateULIDObject(), 2026, time.May)
	if err != nil {
		t.Fatalf("expected read failure to degrade, got error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Errorf("expected an empty renderable list, got %v", list)
	}
}

func TestListRangeUsesInclusiveEndOfLastMonth(t *testing.T) {
	tenantID := pkg.GenerateULIDObject()

	var gotStart, gotEnd time.Time
	repo := &fakeRepository{
		listFunc: func(ctx context.Context, tid ulid.ULID, start, end time.Time) ([]*transaction.Transaction, error) {
			gotStart = start
			gotEnd = end
			return nil, nil
		},
	}
	svc := transaction.NewService(repo)

	if _, err := svc.ListRange(context.Background(), tenantID, 2026, time.January, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotStart.Month() != time.January || gotStart.Day() != 1 {
		t.Errorf("expected range starting Jan 1, got %v", gotStart)
	}
	if gotEnd.Month() != time.March || gotEnd.Day() != 31 {
		t.Errorf("expected range ending Mar 31, got %v", gotEnd)
	}
}
