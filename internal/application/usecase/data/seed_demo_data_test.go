package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

type fakeTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.transactions = append(r.transactions, txn)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *fakeTransactionRepo) FindByMonth(_ context.Context, year int, month time.Month) ([]*entity.Transaction, error) {
	var matched []*entity.Transaction
	for _, t := range r.transactions {
		if t.Date.Year() == year && t.Date.Month() == month {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }

func (r *fakeTransactionRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *fakeTransactionRepo) DeleteAll(_ context.Context) error {
	r.transactions = nil
	return nil
}

func (r *fakeTransactionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.transactions)), nil
}

type fakeSettingsRepo struct {
	settings *entity.Settings
}

func (r *fakeSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if r.settings == nil {
		return entity.DefaultSettings(), nil
	}
	return r.settings, nil
}

func (r *fakeSettingsRepo) Save(_ context.Context, settings *entity.Settings) error {
	r.settings = settings
	return nil
}

type fakeBudgetRepo struct {
	goals []*entity.BudgetGoal
}

func (r *fakeBudgetRepo) Save(_ context.Context, goal *entity.BudgetGoal) error {
	r.goals = append(r.goals, goal)
	return nil
}

func (r *fakeBudgetRepo) FindByCategory(_ context.Context, _ entity.Category) (*entity.BudgetGoal, error) {
	return nil, nil
}

func (r *fakeBudgetRepo) FindAll(_ context.Context) ([]*entity.BudgetGoal, error) {
	return r.goals, nil
}

func (r *fakeBudgetRepo) Delete(_ context.Context, _ entity.Category) error { return nil }

func (r *fakeBudgetRepo) DeleteAll(_ context.Context) error {
	r.goals = nil
	return nil
}

type fakeNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeNotificationRepo) FindAll(_ context.Context) ([]*entity.Notification, error) {
	return r.notifications, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fakeNotificationRepo) MarkAllRead(_ context.Context) error           { return nil }
func (r *fakeNotificationRepo) Delete(_ context.Context, _ uuid.UUID) error   { return nil }

func (r *fakeNotificationRepo) DeleteAll(_ context.Context) error {
	r.notifications = nil
	return nil
}

func (r *fakeNotificationRepo) UnreadCount(_ context.Context) (int64, error) {
	return int64(len(r.notifications)), nil
}

type fakeProfileRepo struct {
	profile *entity.UserProfile
}

func (r *fakeProfileRepo) Get(_ context.Context) (*entity.UserProfile, error) {
	return r.profile, nil
}

func (r *fakeProfileRepo) Save(_ context.Context, profile *entity.UserProfile) error {
	r.profile = profile
	return nil
}

func (r *fakeProfileRepo) Delete(_ context.Context) error {
	r.profile = nil
	return nil
}

func TestSeedDemoData_EmptyLedger(t *testing.T) {
	transactionRepo := &fakeTransactionRepo{}
	uc := NewSeedDemoDataUseCase(transactionRepo, &fakeSettingsRepo{})

	now := time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)
	output, err := uc.Execute(context.Background(), SeedDemoDataInput{Now: now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !output.Seeded || output.Count != 13 {
		t.Fatalf("expected 13 seeded transactions, got seeded=%v count=%d", output.Seeded, output.Count)
	}
	if len(transactionRepo.transactions) != 13 {
		t.Fatalf("expected 13 stored transactions, got %d", len(transactionRepo.transactions))
	}

	// Dates land in the seeding month.
	first := transactionRepo.transactions[0]
	if first.Date.Year() != 2025 || first.Date.Month() != time.March {
		t.Errorf("expected dates in March 2025, got %s", first.Date)
	}
	if first.Type != entity.TransactionTypeIncome || !first.Amount.Equal(decimal.NewFromInt(4500)) {
		t.Errorf("unexpected first row: %s %s", first.Type, first.Amount)
	}
}

func TestSeedDemoData_SkipsNonEmptyLedger(t *testing.T) {
	transactionRepo := &fakeTransactionRepo{
		transactions: []*entity.Transaction{{ID: uuid.New()}},
	}
	uc := NewSeedDemoDataUseCase(transactionRepo, &fakeSettingsRepo{})

	output, err := uc.Execute(context.Background(), SeedDemoDataInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Seeded {
		t.Error("must not seed over an existing ledger")
	}
	if len(transactionRepo.transactions) != 1 {
		t.Errorf("expected ledger untouched, got %d rows", len(transactionRepo.transactions))
	}
}

func TestSeedDemoData_SkipsAfterClear(t *testing.T) {
	settings := entity.DefaultSettings()
	settings.DataCleared = true
	transactionRepo := &fakeTransactionRepo{}
	uc := NewSeedDemoDataUseCase(transactionRepo, &fakeSettingsRepo{settings: settings})

	output, err := uc.Execute(context.Background(), SeedDemoDataInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Seeded || len(transactionRepo.transactions) != 0 {
		t.Error("must not seed once data was explicitly cleared")
	}
}
