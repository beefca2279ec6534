package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is one record of the Treasury "rates_of_exchange" dataset as it comes over the wire.
// Dates are YYYY-MM-DD strings; the rate is a JSON string holding a decimal.
type ExchangeRate struct {
	CountryCurrencyDesc string          `json:"country_currency_desc"`
	ExchangeRate        decimal.Decimal `json:"exchange_rate"`
	EffectiveDate       string          `json:"effective_date"`
	RecordDate          string          `json:"record_date"`
}

// ExchangeRatePage is the envelope FiscalData wraps every dataset response in.
type ExchangeRatePage struct {
	Data  []ExchangeRate `json:"data"`
	Meta  PageMeta       `json:"meta"`
	Links PageLinks      `json:"links"`
}

// PageMeta holds the paging counters of a FiscalData response.
type PageMeta struct {
	Count      int `json:"count"`
	TotalCount int `json:"total-count"`
	TotalPages int `json:"total-pages"`
}

// PageLinks holds the relative paging links of a FiscalData response. Next is null on the last page.
type PageLinks struct {
	Self  string  `json:"self"`
	First string  `json:"first"`
	Prev  *string `json:"prev"`
	Next  *string `json:"next"`
	Last  string  `json:"last"`
}
