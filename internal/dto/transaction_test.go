package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransactionRequest_KeepsDeclaredScale(t *testing.T) {
	var req CreateTransactionRequest
	require.NoError(t, json.Unmarshal([]byte(`{"description":"Desk","amount":123.000}`), &req))
	require.NotNil(t, req.Amount)
	assert.Equal(t, int32(-3), req.Amount.Exponent())

	req = CreateTransactionRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"5.10"}`), &req))
	assert.Nil(t, req.Description)
	assert.Equal(t, int32(-2), req.Amount.Exponent())
}

func TestToConvertedTransactionResponse(t *testing.T) {
	resp := ToConvertedTransactionResponse(&domain.ConvertedTransaction{
		TransactionID:             3,
		Description:               "Desk",
		AmountInUSD:               decimal.RequireFromString("10"),
		Currency:                  "Euro Zone-Euro",
		ExchangeRate:              decimal.RequireFromString("0.925"),
		ExchangeRateEffectiveDate: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Amount:                    decimal.RequireFromString("9.25"),
		TransactionDate:           time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC),
	})

	assert.Equal(t, "10.00", resp.AmountInUSD)
	assert.Equal(t, "9.25", resp.Amount)
	assert.Equal(t, "2024-03-31", resp.ExchangeRateEffectiveDate)
	assert.Equal(t, "2024-04-28", resp.TransactionDate)
}

func TestToListTransactionsResponse_EmptyIsArray(t *testing.T) {
	body, err := json.Marshal(ToListTransactionsResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"transactionList":[]}`, string(body))
}
