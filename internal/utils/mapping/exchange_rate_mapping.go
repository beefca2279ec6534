package mapping

import (
	"fmt"

	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	"github.com/SscSPs/purchase_transactions/internal/models"
	"github.com/SscSPs/purchase_transactions/internal/utils/conversion"
)

// ToDomainExchangeRate converts a FiscalData record to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) (domain.ExchangeRate, error) {
	effective, err := conversion.ParseDate(m.EffectiveDate)
	if err != nil {
		return domain.ExchangeRate{}, fmt.Errorf("invalid effective_date %q: %w", m.EffectiveDate, err)
	}

	var record = effective
	if m.RecordDate != "" {
		record, err = conversion.ParseDate(m.RecordDate)
		if err != nil {
			return domain.ExchangeRate{}, fmt.Errorf("invalid record_date %q: %w", m.RecordDate, err)
		}
	}

	return domain.ExchangeRate{
		Currency:      m.CountryCurrencyDesc,
		Rate:          m.ExchangeRate,
		EffectiveDate: effective,
		RecordDate:    record,
	}, nil
}

// ToDomainExchangeRateSlice converts FiscalData records, failing on the first malformed one
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) ([]domain.ExchangeRate, error) {
	res := make([]domain.ExchangeRate, 0, len(ms))
	for _, m := range ms {
		rate, err := ToDomainExchangeRate(m)
		if err != nil {
			return nil, err
		}
		res = append(res, rate)
	}
	return res, nil
}
