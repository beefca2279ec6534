package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one observation from the external rate source: how many units of Currency
// one US dollar bought from EffectiveDate onward.
type ExchangeRate struct {
	Currency      string          `json:"currency"` // Provider label, e.g. "Canada-Dollar"
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate time.Time       `json:"effectiveDate"` // Calendar date, midnight UTC
	RecordDate    time.Time       `json:"recordDate"`    // Calendar date, midnight UTC
}
