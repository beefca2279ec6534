package conversion

import (
	"time"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	"github.com/SscSPs/purchase_transactions/internal/core/domain"
)

// AmountPlaces is the number of decimal places a converted amount is rounded to.
const AmountPlaces = 2

// InWindow reports whether effectiveDate lies strictly between the date six months before
// createdAt and the calendar date of createdAt. Both bounds are exclusive.
func InWindow(createdAt, effectiveDate time.Time) bool {
	start := SixMonthsBefore(createdAt)
	end := DateOf(createdAt)
	date := DateOf(effectiveDate)
	return date.After(start) && date.Before(end)
}

// SelectRate picks the most recent rate inside the window of createdAt.
// Rates sharing an effective date resolve to the first one in the slice. rates is not modified.
func SelectRate(createdAt time.Time, rates []domain.ExchangeRate) (*domain.ExchangeRate, error) {
	var best *domain.ExchangeRate
	for i := range rates {
		rate := &rates[i]
		if !InWindow(createdAt, rate.EffectiveDate) {
			continue
		}
		if best == nil || DateOf(rate.EffectiveDate).After(DateOf(best.EffectiveDate)) {
			best = rate
		}
	}
	if best == nil {
		return nil, apperrors.NewRateNotFoundError("Exchange rate not found")
	}
	selected := *best
	return &selected, nil
}

// ToView converts tx through rate. A nil rate means selection failed upstream.
func ToView(tx domain.Transaction, rate *domain.ExchangeRate) (*domain.ConvertedTransaction, error) {
	if rate == nil {
		return nil, apperrors.NewRateNotFoundError("Exchange rate not found")
	}

	// decimal.Round rounds half away from zero, which is half-up for non-negative amounts.
	converted := tx.Amount.Mul(rate.Rate).Round(AmountPlaces)

	return &domain.ConvertedTransaction{
		TransactionID:             tx.TransactionID,
		Description:               tx.Description,
		AmountInUSD:               tx.Amount,
		Currency:                  rate.Currency,
		ExchangeRate:              rate.Rate,
		ExchangeRateEffectiveDate: DateOf(rate.EffectiveDate),
		Amount:                    converted,
		TransactionDate:           DateOf(tx.CreatedAt),
	}, nil
}

// Convert selects the applicable rate for tx and maps it into a ConvertedTransaction.
func Convert(tx domain.Transaction, rates []domain.ExchangeRate) (*domain.ConvertedTransaction, error) {
	rate, err := SelectRate(tx.CreatedAt, rates)
	if err != nil {
		return nil, err
	}
	return ToView(tx, rate)
}

// ConvertAll converts every transaction against the same rate list, preserving order.
// A single failure fails the whole batch.
func ConvertAll(txs []domain.Transaction, rates []domain.ExchangeRate) ([]domain.ConvertedTransaction, error) {
	views := make([]domain.ConvertedTransaction, 0, len(txs))
	for _, tx := range txs {
		view, err := Convert(tx, rates)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}
