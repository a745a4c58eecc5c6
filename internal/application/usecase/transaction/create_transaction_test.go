package transaction

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/smartspend/backend/internal/application/usecase/alert"
	"github.com/smartspend/backend/internal/application/usecase/analytics"
	"github.com/smartspend/backend/internal/application/usecase/budget"
	"github.com/smartspend/backend/internal/domain/entity"
	domainerror "github.com/smartspend/backend/internal/domain/error"
)

type memTransactionRepo struct {
	transactions []*entity.Transaction
}

func (r *memTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	r.transactions = append(r.transactions, txn)
	return nil
}

func (r *memTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *memTransactionRepo) FindAll(_ context.Context) ([]*entity.Transaction, error) {
	return r.transactions, nil
}

func (r *memTransactionRepo) FindByMonth(_ context.Context, year int, month time.Month) ([]*entity.Transaction, error) {
	return analytics.FilterByMonth(r.transactions, year, month), nil
}

func (r *memTransactionRepo) Update(_ context.Context, txn *entity.Transaction) error {
	for i, t := range r.transactions {
		if t.ID == txn.ID {
			r.transactions[i] = txn
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *memTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	kept := r.transactions[:0]
	for _, t := range r.transactions {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	r.transactions = kept
	return nil
}

func (r *memTransactionRepo) DeleteAll(_ context.Context) error {
	r.transactions = nil
	return nil
}

func (r *memTransactionRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.transactions)), nil
}

type memNotificationRepo struct {
	notifications []*entity.Notification
}

func (r *memNotificationRepo) Create(_ context.Context, n *entity.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *memNotificationRepo) FindAll(_ context.Context) ([]*entity.Notification, error) {
	return r.notifications, nil
}

func (r *memNotificationRepo) MarkRead(_ context.Context, _ uuid.UUID) error { return nil }
func (r *memNotificationRepo) MarkAllRead(_ context.Context) error           { return nil }
func (r *memNotificationRepo) Delete(_ context.Context, _ uuid.UUID) error   { return nil }
func (r *memNotificationRepo) DeleteAll(_ context.Context) error             { return nil }
func (r *memNotificationRepo) UnreadCount(_ context.Context) (int64, error) {
	return int64(len(r.notifications)), nil
}

type memSettingsRepo struct {
	settings *entity.Settings
}

func (r *memSettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	if r.settings == nil {
		return entity.DefaultSettings(), nil
	}
	return r.settings, nil
}

func (r *memSettingsRepo) Save(_ context.Context, settings *entity.Settings) error {
	r.settings = settings
	return nil
}

type memBudgetRepo struct {
	goals map[entity.Category]*entity.BudgetGoal
}

func (r *memBudgetRepo) Save(_ context.Context, goal *entity.BudgetGoal) error {
	r.goals[goal.Category] = goal
	return nil
}

func (r *memBudgetRepo) FindByCategory(_ context.Context, category entity.Category) (*entity.BudgetGoal, error) {
	return r.goals[category], nil
}

func (r *memBudgetRepo) FindAll(_ context.Context) ([]*entity.BudgetGoal, error) { return nil, nil }
func (r *memBudgetRepo) Delete(_ context.Context, _ entity.Category) error       { return nil }
func (r *memBudgetRepo) DeleteAll(_ context.Context) error                       { return nil }

type memAlertRegistry struct {
	alerts []*entity.Alert
}

func (r *memAlertRegistry) Show(_ context.Context, a *entity.Alert) error {
	r.alerts = append(r.alerts, a)
	return nil
}

func (r *memAlertRegistry) Dismiss(_ context.Context, _ uuid.UUID) error { return nil }
func (r *memAlertRegistry) Active(_ context.Context) ([]*entity.Alert, error) {
	return r.alerts, nil
}

type createFixture struct {
	uc               *CreateTransactionUseCase
	transactionRepo  *memTransactionRepo
	notificationRepo *memNotificationRepo
	budgetRepo       *memBudgetRepo
	registry         *memAlertRegistry
}

func newCreateFixture() *createFixture {
	transactionRepo := &memTransactionRepo{}
	notificationRepo := &memNotificationRepo{}
	settingsRepo := &memSettingsRepo{}
	budgetRepo := &memBudgetRepo{goals: make(map[entity.Category]*entity.BudgetGoal)}
	registry := &memAlertRegistry{}

	showAlert := alert.NewShowAlertUseCase(registry, notificationRepo)
	evaluateBudget := budget.NewEvaluateBudgetUseCase(budgetRepo, transactionRepo, settingsRepo, showAlert)

	return &createFixture{
		uc:               NewCreateTransactionUseCase(transactionRepo, notificationRepo, settingsRepo, evaluateBudget),
		transactionRepo:  transactionRepo,
		notificationRepo: notificationRepo,
		budgetRepo:       budgetRepo,
		registry:         registry,
	}
}

func validExpenseInput() CreateTransactionInput {
	return CreateTransactionInput{
		Type:          entity.TransactionTypeExpense,
		Amount:        decimal.NewFromInt(85),
		Category:      entity.CategoryFood,
		Date:          time.Now().UTC(),
		Notes:         "Groceries",
		PaymentMethod: entity.PaymentMethodCard,
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	f := newCreateFixture()

	tests := []struct {
		name     string
		mutate   func(*CreateTransactionInput)
		wantCode domainerror.TransactionErrorCode
	}{
		{
			"rejects unknown type",
			func(i *CreateTransactionInput) { i.Type = "transfer" },
			domainerror.ErrCodeInvalidTransactionType,
		},
		{
			"rejects zero amount",
			func(i *CreateTransactionInput) { i.Amount = decimal.Zero },
			domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			"rejects negative amount",
			func(i *CreateTransactionInput) { i.Amount = decimal.NewFromInt(-5) },
			domainerror.ErrCodeInvalidTransactionAmount,
		},
		{
			"rejects income category on expense",
			func(i *CreateTransactionInput) { i.Category = entity.CategorySalary },
			domainerror.ErrCodeInvalidCategoryForType,
		},
		{
			"rejects zero date",
			func(i *CreateTransactionInput) { i.Date = time.Time{} },
			domainerror.ErrCodeInvalidTransactionDate,
		},
		{
			"rejects unknown payment method",
			func(i *CreateTransactionInput) { i.PaymentMethod = "cheque" },
			domainerror.ErrCodeInvalidPaymentMethod,
		},
		{
			"rejects oversized notes",
			func(i *CreateTransactionInput) { i.Notes = strings.Repeat("x", MaxNotesLength+1) },
			domainerror.ErrCodeMissingTransactionFields,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validExpenseInput()
			tt.mutate(&input)

			_, err := f.uc.Execute(context.Background(), input)

			var txnErr *domainerror.TransactionError
			if !errors.As(err, &txnErr) {
				t.Fatalf("expected TransactionError, got %v", err)
			}
			if txnErr.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s", tt.wantCode, txnErr.Code)
			}
		})
	}

	if len(f.transactionRepo.transactions) != 0 {
		t.Error("rejected inputs must not be persisted")
	}
	if len(f.notificationRepo.notifications) != 0 {
		t.Error("rejected inputs must not emit notifications")
	}
}

func TestCreateTransaction_PersistsAndNotifies(t *testing.T) {
	f := newCreateFixture()

	output, err := f.uc.Execute(context.Background(), validExpenseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.transactionRepo.transactions) != 1 {
		t.Fatalf("expected 1 stored transaction, got %d", len(f.transactionRepo.transactions))
	}
	if output.Transaction.CategoryLabel != "Food & Dining" {
		t.Errorf("unexpected category label %q", output.Transaction.CategoryLabel)
	}

	if len(f.notificationRepo.notifications) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(f.notificationRepo.notifications))
	}
	n := f.notificationRepo.notifications[0]
	if n.Title != "Expense Added" {
		t.Errorf("unexpected title %q", n.Title)
	}
	if n.Message != "Spent $85.00 for Food & Dining - Groceries" {
		t.Errorf("unexpected message %q", n.Message)
	}
	if n.Payload == nil || n.Payload.Transaction == nil {
		t.Fatal("expected transaction payload")
	}
	if n.Payload.Transaction.Currency != "$" {
		t.Errorf("expected default currency, got %q", n.Payload.Transaction.Currency)
	}
}

func TestCreateTransaction_IncomeNotification(t *testing.T) {
	f := newCreateFixture()

	input := CreateTransactionInput{
		Type:          entity.TransactionTypeIncome,
		Amount:        decimal.NewFromInt(4500),
		Category:      entity.CategorySalary,
		Date:          time.Now().UTC(),
		PaymentMethod: entity.PaymentMethodBank,
	}

	output, err := f.uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Budget != nil {
		t.Error("income must not trigger budget evaluation")
	}

	n := f.notificationRepo.notifications[0]
	if n.Title != "Income Added" {
		t.Errorf("unexpected title %q", n.Title)
	}
	if n.Message != "Received $4500.00 for Salary" {
		t.Errorf("unexpected message %q", n.Message)
	}
}

func TestCreateTransaction_TriggersBudgetAlert(t *testing.T) {
	f := newCreateFixture()
	f.budgetRepo.goals[entity.CategoryFood] = entity.NewBudgetGoal(entity.CategoryFood, decimal.NewFromInt(100))

	output, err := f.uc.Execute(context.Background(), validExpenseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if output.Budget == nil {
		t.Fatal("expected budget evaluation result")
	}
	if output.Budget.State != entity.BudgetStateWarning {
		t.Errorf("expected warning state at 85/100, got %s", output.Budget.State)
	}
	if len(f.registry.alerts) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(f.registry.alerts))
	}

	// Two notifications: the transaction record and the budget alert.
	if len(f.notificationRepo.notifications) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(f.notificationRepo.notifications))
	}
}

func TestCreateTransaction_NoGoalNoBudgetResult(t *testing.T) {
	f := newCreateFixture()

	output, err := f.uc.Execute(context.Background(), validExpenseInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output.Budget != nil {
		t.Error("expected no budget result without a configured goal")
	}
}
