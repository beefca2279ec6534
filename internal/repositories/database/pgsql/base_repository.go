package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	"github.com/SscSPs/purchase_transactions/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// scanTransaction reads one transactions row in column order
// transaction_id, description, amount, created_at.
func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.Description,
		&m.Amount,
		&m.CreatedAt,
	)
	return m, err
}

// queryOneTransaction runs a query expected to yield at most one transactions row.
// No rows maps to apperrors.ErrNotFound.
func (r *BaseRepository) queryOneTransaction(ctx context.Context, query string, args ...any) (*models.Transaction, error) {
	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("No transaction record found")
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}
	return &m, nil
}
