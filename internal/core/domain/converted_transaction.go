package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ConvertedTransaction is a read-only projection of a Transaction through one chosen ExchangeRate.
type ConvertedTransaction struct {
	TransactionID             int64
	Description               string
	AmountInUSD               decimal.Decimal
	Currency                  string // Label as returned by the rate source
	ExchangeRate              decimal.Decimal
	ExchangeRateEffectiveDate time.Time
	Amount                    decimal.Decimal // AmountInUSD * ExchangeRate, half-up to 2 places
	TransactionDate           time.Time       // Calendar date of CreatedAt in UTC
}
