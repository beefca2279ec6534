package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	portsrepo "github.com/SscSPs/purchase_transactions/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/purchase_transactions/internal/core/ports/services"
	"github.com/SscSPs/purchase_transactions/internal/dto"
	"github.com/SscSPs/purchase_transactions/internal/utils/conversion"
)

const (
	msgCurrencyRequired = "Currency must not be null"
	msgCurrencyInvalid  = "Currency must be a single Treasury currency label"
	msgNoTransaction    = "No transaction record found"
	msgRateNotFound     = "Exchange rate not found"
)

// TransactionServiceOption is a function that configures a transactionService
type TransactionServiceOption func(*transactionService)

// WithClock overrides the time source used to stamp new transactions.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// transactionService records purchases and reports them converted with Treasury rates.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	rateReader      portsrepo.ExchangeRateReader
	now             func() time.Time
}

// NewTransactionService creates a new transaction service with the given repositories and options
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	rateReader portsrepo.ExchangeRateReader,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: transactionRepo,
		rateReader:      rateReader,
		now:             time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// CreateTransaction validates the request and stores a new transaction stamped with the current time.
func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	tx, err := domain.NewTransaction(req.Description, req.Amount, s.now())
	if err != nil {
		s.LogDebug(ctx, "Rejected transaction", slog.String("reason", err.Error()))
		return nil, err
	}

	saved, err := s.transactionRepo.SaveTransaction(ctx, *tx)
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created",
		slog.Int64("transaction_id", saved.TransactionID),
		slog.String("amount", saved.Amount.String()))
	return saved, nil
}

// EnquireLastTransaction converts the most recently created transaction into currency.
func (s *transactionService) EnquireLastTransaction(ctx context.Context, currency string) (*domain.ConvertedTransaction, error) {
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	tx, err := s.transactionRepo.FindLatestTransaction(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgNoTransaction)
		}
		s.LogError(ctx, err, "Failed to load latest transaction")
		return nil, err
	}

	rates, err := s.fetchRates(ctx, currency, tx.CreatedAt)
	if err != nil {
		return nil, err
	}

	view, err := conversion.Convert(*tx, rates)
	if err != nil {
		s.LogInfo(ctx, "No qualifying exchange rate",
			slog.Int64("transaction_id", tx.TransactionID),
			slog.String("currency", currency))
		return nil, apperrors.NewRateNotFoundError(msgRateNotFound)
	}
	return view, nil
}

// ListTransactions converts every stored transaction into currency.
// Rates are fetched once, windowed on the earliest transaction; one
// transaction without a qualifying rate fails the whole call.
func (s *transactionService) ListTransactions(ctx context.Context, currency string) ([]domain.ConvertedTransaction, error) {
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	txs, err := s.transactionRepo.FindAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions")
		return nil, err
	}
	if len(txs) == 0 {
		return []domain.ConvertedTransaction{}, nil
	}

	earliest, err := s.transactionRepo.FindEarliestTransaction(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load earliest transaction")
		return nil, err
	}

	rates, err := s.fetchRates(ctx, currency, earliest.CreatedAt)
	if err != nil {
		return nil, err
	}

	views, err := conversion.ConvertAll(txs, rates)
	if err != nil {
		s.LogInfo(ctx, "No qualifying exchange rate for at least one transaction",
			slog.String("currency", currency),
			slog.Int("transactions", len(txs)))
		return nil, apperrors.NewRateNotFoundError(msgRateNotFound)
	}
	return views, nil
}

// validateCurrency rejects empty labels and anything that would alter the rate source filter.
func validateCurrency(currency string) error {
	if currency == "" {
		return apperrors.NewMissingFieldError(msgCurrencyRequired)
	}
	if strings.ContainsAny(currency, ",()") {
		return apperrors.NewInvalidFieldError(msgCurrencyInvalid)
	}
	return nil
}

// fetchRates asks the rate source for currency rates effective six months before createdAt or later.
func (s *transactionService) fetchRates(ctx context.Context, currency string, createdAt time.Time) ([]domain.ExchangeRate, error) {
	minDate := conversion.SixMonthsBefore(createdAt)

	s.LogDebug(ctx, "Fetching exchange rates",
		slog.String("currency", currency),
		slog.String("min_effective_date", conversion.FormatDate(minDate)))

	rates, err := s.rateReader.FetchRates(ctx, currency, minDate)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch exchange rates", slog.String("currency", currency))
		return nil, err
	}
	if len(rates) == 0 {
		return nil, apperrors.NewRateNotFoundError(msgRateNotFound)
	}
	return rates, nil
}
