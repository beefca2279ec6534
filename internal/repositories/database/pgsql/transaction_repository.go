package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_transactions/internal/core/ports/repositories"
	"github.com/SscSPs/purchase_transactions/internal/models"
	"github.com/SscSPs/purchase_transactions/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `transaction_id, description, amount, created_at`

type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new repository for purchase transactions.
func NewPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// SaveTransaction inserts a transaction and returns it with the generated ID.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, tx domain.Transaction) (*domain.Transaction, error) {
	modelTx := mapping.ToModelTransaction(tx)

	query := `
		INSERT INTO transactions (description, amount, created_at)
		VALUES ($1, $2, $3)
		RETURNING transaction_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelTx.Description,
		modelTx.Amount,
		modelTx.CreatedAt,
	).Scan(&modelTx.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	saved := mapping.ToDomainTransaction(modelTx)
	// keep the caller's amount scale, NUMERIC(19,2) would widen it on read-back
	saved.Amount = tx.Amount
	return &saved, nil
}

// FindAllTransactions retrieves every transaction ordered by ID.
func (r *PgxTransactionRepository) FindAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY transaction_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTxs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		return scanTransaction(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTxs), nil
}

// FindEarliestTransaction retrieves the transaction with the oldest created_at.
func (r *PgxTransactionRepository) FindEarliestTransaction(ctx context.Context) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at ASC, transaction_id ASC LIMIT 1;`
	modelTx, err := r.queryOneTransaction(ctx, query)
	if err != nil {
		return nil, err
	}
	domainTx := mapping.ToDomainTransaction(*modelTx)
	return &domainTx, nil
}

// FindLatestTransaction retrieves the transaction with the newest created_at.
func (r *PgxTransactionRepository) FindLatestTransaction(ctx context.Context) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY created_at DESC, transaction_id DESC LIMIT 1;`
	modelTx, err := r.queryOneTransaction(ctx, query)
	if err != nil {
		return nil, err
	}
	domainTx := mapping.ToDomainTransaction(*modelTx)
	return &domainTx, nil
}
