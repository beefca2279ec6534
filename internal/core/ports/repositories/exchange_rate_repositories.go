package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/purchase_transactions/internal/core/domain"
)

// ExchangeRateReader defines read operations against the external exchange rate source
type ExchangeRateReader interface {
	// FetchRates retrieves the observations for currency effective on or after minEffectiveDate.
	// Fails with apperrors.ErrRatesUnavailable when the source is unreachable or has no rows.
	FetchRates(ctx context.Context, currency string, minEffectiveDate time.Time) ([]domain.ExchangeRate, error)
}
