package services

import (
	"context"

	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	"github.com/SscSPs/purchase_transactions/internal/dto"
)

// TransactionWriterSvc defines write operations for purchase transactions
type TransactionWriterSvc interface {
	// CreateTransaction validates and persists a new purchase transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations that convert transactions into a target currency
type TransactionReaderSvc interface {
	// EnquireLastTransaction converts the most recently created transaction into currency.
	EnquireLastTransaction(ctx context.Context, currency string) (*domain.ConvertedTransaction, error)

	// ListTransactions converts every transaction into currency. All or nothing.
	ListTransactions(ctx context.Context, currency string) ([]domain.ConvertedTransaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionWriterSvc
	TransactionReaderSvc
}
