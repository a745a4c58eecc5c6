// Package adapter defines interfaces that are implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartspend/backend/internal/domain/entity"
)

// TransactionRepository defines the interface for ledger persistence operations.
// Implementations must serialize mutations: every write is a synchronous
// read-modify-write that is durable before the call returns.
type TransactionRepository interface {
	// Create persists a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindAll retrieves the full ledger, newest first by creation time.
	FindAll(ctx context.Context) ([]*entity.Transaction, error)

	// FindByMonth retrieves transactions whose Date (not CreatedAt) falls in
	// the given calendar month. Month is 1-12.
	FindByMonth(ctx context.Context, year int, month time.Month) ([]*entity.Transaction, error)

	// Update persists changes to an existing transaction.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteAll removes every transaction.
	DeleteAll(ctx context.Context) error

	// Count returns the number of transactions in the ledger.
	Count(ctx context.Context) (int64, error)
}
