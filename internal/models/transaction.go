package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the row shape of the transactions table.
type Transaction struct {
	TransactionID int64           `json:"transactionID"` // Primary Key (BIGSERIAL)
	Description   string          `json:"description"`   // VARCHAR(50), not null
	Amount        decimal.Decimal `json:"amount"`        // NUMERIC(19,2), not null
	CreatedAt     time.Time       `json:"createdAt"`     // TIMESTAMPTZ, not null
}
