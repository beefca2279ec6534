package repositories

import (
	"context"

	"github.com/SscSPs/purchase_transactions/internal/core/domain"
)

// TransactionReader defines read operations for purchase transactions
type TransactionReader interface {
	// FindAllTransactions retrieves every stored transaction in insertion order.
	FindAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// FindEarliestTransaction retrieves the transaction with the oldest CreatedAt.
	// Returns apperrors.ErrNotFound when the store is empty.
	FindEarliestTransaction(ctx context.Context) (*domain.Transaction, error)

	// FindLatestTransaction retrieves the transaction with the newest CreatedAt.
	// Returns apperrors.ErrNotFound when the store is empty.
	FindLatestTransaction(ctx context.Context) (*domain.Transaction, error)
}

// TransactionWriter defines write operations for purchase transactions
type TransactionWriter interface {
	// SaveTransaction persists a new transaction and returns it with its assigned ID.
	SaveTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
