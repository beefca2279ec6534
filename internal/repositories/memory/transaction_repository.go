// Package memory holds process-local repository implementations used when no database is configured.
package memory

import (
	"context"
	"sync"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_transactions/internal/core/ports/repositories"
)

// TransactionRepository keeps transactions in insertion order behind a RWMutex.
type TransactionRepository struct {
	mu     sync.RWMutex
	nextID int64
	items  []domain.Transaction
}

// NewTransactionRepository creates an empty in-memory transaction store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{nextID: 1}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction stores a copy of tx under the next sequential ID.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	tx.TransactionID = r.nextID
	r.nextID++
	r.items = append(r.items, tx)

	saved := tx
	return &saved, nil
}

// FindAllTransactions returns a snapshot of every stored transaction in insertion order.
func (r *TransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.items))
	copy(out, r.items)
	return out, nil
}

// FindEarliestTransaction returns the transaction with the oldest CreatedAt, first inserted on ties.
func (r *TransactionRepository) FindEarliestTransaction(ctx context.Context) (*domain.Transaction, error) {
	return r.pick(ctx, func(candidate, best domain.Transaction) bool {
		return candidate.CreatedAt.Before(best.CreatedAt)
	})
}

// FindLatestTransaction returns the transaction with the newest CreatedAt, last inserted on ties.
func (r *TransactionRepository) FindLatestTransaction(ctx context.Context) (*domain.Transaction, error) {
	return r.pick(ctx, func(candidate, best domain.Transaction) bool {
		return !candidate.CreatedAt.Before(best.CreatedAt)
	})
}

// pick scans in insertion order and keeps the candidate whenever better reports true.
func (r *TransactionRepository) pick(ctx context.Context, better func(candidate, best domain.Transaction) bool) (*domain.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.items) == 0 {
		return nil, apperrors.NewNotFoundError("No transaction record found")
	}

	best := r.items[0]
	for _, candidate := range r.items[1:] {
		if better(candidate, best) {
			best = candidate
		}
	}
	return &best, nil
}
