package pgsql

import (
	portsrepo "github.com/SscSPs/purchase_transactions/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the Postgres-backed transaction store with the given rate source.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rateReader portsrepo.ExchangeRateReader) portsrepo.RepositoryProvider {
	transactionRepo := NewPgxTransactionRepository(dbPool)

	return portsrepo.RepositoryProvider{
		TransactionRepo:  transactionRepo,
		ExchangeRateRepo: rateReader,
	}
}
