package domain

import (
	"time"
	"unicode/utf8"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// MaxDescriptionLength is the longest description accepted, in characters.
	MaxDescriptionLength = 50
	// MaxAmountScale is the number of decimal places an amount may declare.
	MaxAmountScale = 2
)

// Transaction is a recorded purchase in USD. It is never mutated after creation.
type Transaction struct {
	TransactionID int64           `json:"transactionID"` // Assigned by the store
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`    // USD, keeps the scale it was declared with
	CreatedAt     time.Time       `json:"createdAt"` // UTC
}

// NewTransaction validates the creation inputs and builds a Transaction stamped with now (UTC).
// Rules run in order and the first failure is returned.
func NewTransaction(description *string, amount *decimal.Decimal, now time.Time) (*Transaction, error) {
	if description == nil {
		return nil, apperrors.NewMissingFieldError("Description must not be null")
	}
	if amount == nil {
		return nil, apperrors.NewMissingFieldError("Amount must not be null")
	}
	if amount.IsNegative() {
		return nil, apperrors.NewInvalidAmountError("Amount should be positive")
	}
	// Scale is read from the literal: 123.00 passes, 123.000 does not.
	if DeclaredScale(*amount) > MaxAmountScale {
		return nil, apperrors.NewInvalidAmountError("Amount's decimal place should less than or equal to 2 only")
	}
	if utf8.RuneCountInString(*description) > MaxDescriptionLength {
		return nil, apperrors.NewInvalidFieldError("Description is too long (max. 50)")
	}

	return &Transaction{
		Description: *description,
		Amount:      *amount,
		CreatedAt:   now.UTC(),
	}, nil
}

// DeclaredScale returns the number of fractional digits d was written with.
// Widened to int64 so the smallest exponent does not wrap when negated.
func DeclaredScale(d decimal.Decimal) int64 {
	if exp := int64(d.Exponent()); exp < 0 {
		return -exp
	}
	return 0
}
