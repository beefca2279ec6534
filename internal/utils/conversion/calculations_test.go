package conversion

import (
	"testing"
	"time"

	"github.com/SscSPs/purchase_transactions/internal/apperrors"
	"github.com/SscSPs/purchase_transactions/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func hkdRate(effective, rate string) domain.ExchangeRate {
	return domain.ExchangeRate{
		Currency:      "Hong Kong-Dollar",
		Rate:          decimal.RequireFromString(rate),
		EffectiveDate: date(effective),
		RecordDate:    date(effective),
	}
}

func TestSelectRate(t *testing.T) {
	createdAt := date("2024-04-28")

	tests := []struct {
		name      string
		rates     []domain.ExchangeRate
		wantDate  string
		wantRate  string
		wantError bool
	}{
		{
			name: "most recent qualifying rate wins",
			rates: []domain.ExchangeRate{
				hkdRate("2024-03-31", "7.831"),
				hkdRate("2023-12-31", "7.821"),
				hkdRate("2023-09-30", "7.841"),
			},
			wantDate: "2024-03-31",
			wantRate: "7.831",
		},
		{
			name: "input order does not matter",
			rates: []domain.ExchangeRate{
				hkdRate("2023-09-30", "7.841"),
				hkdRate("2023-12-31", "7.821"),
				hkdRate("2024-03-31", "7.831"),
			},
			wantDate: "2024-03-31",
			wantRate: "7.831",
		},
		{
			name:      "only rate older than the window",
			rates:     []domain.ExchangeRate{hkdRate("2023-09-30", "7.841")},
			wantError: true,
		},
		{
			name:      "empty rate list",
			rates:     nil,
			wantError: true,
		},
		{
			name:      "rate on the transaction date is excluded",
			rates:     []domain.ExchangeRate{hkdRate("2024-04-28", "7.9")},
			wantError: true,
		},
		{
			name:      "rate exactly six months before is excluded",
			rates:     []domain.ExchangeRate{hkdRate("2023-10-28", "7.9")},
			wantError: true,
		},
		{
			name:      "rate after the transaction date is excluded",
			rates:     []domain.ExchangeRate{hkdRate("2024-05-01", "7.9")},
			wantError: true,
		},
		{
			name: "day after the lower bound qualifies",
			rates: []domain.ExchangeRate{
				hkdRate("2023-10-28", "7.1"),
				hkdRate("2023-10-29", "7.2"),
			},
			wantDate: "2023-10-29",
			wantRate: "7.2",
		},
		{
			name: "day before the transaction qualifies over same-day rate",
			rates: []domain.ExchangeRate{
				hkdRate("2024-04-28", "7.5"),
				hkdRate("2024-04-27", "7.4"),
			},
			wantDate: "2024-04-27",
			wantRate: "7.4",
		},
		{
			name: "ties on effective date keep the first observation",
			rates: []domain.ExchangeRate{
				hkdRate("2024-03-31", "7.831"),
				hkdRate("2024-03-31", "7.999"),
			},
			wantDate: "2024-03-31",
			wantRate: "7.831",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectRate(createdAt, tt.rates)
			if tt.wantError {
				require.Error(t, err)
				assert.Nil(t, got)
				assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDate, FormatDate(got.EffectiveDate))
			assert.True(t, decimal.RequireFromString(tt.wantRate).Equal(got.Rate))
		})
	}
}

func TestSelectRate_Idempotent(t *testing.T) {
	createdAt := date("2024-04-28")
	rates := []domain.ExchangeRate{
		hkdRate("2023-12-31", "7.821"),
		hkdRate("2024-03-31", "7.831"),
	}

	first, err := SelectRate(createdAt, rates)
	require.NoError(t, err)
	second, err := SelectRate(createdAt, rates)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// Input untouched.
	assert.Equal(t, "2023-12-31", FormatDate(rates[0].EffectiveDate))
}

func TestSelectRate_UsesUTCCalendarDate(t *testing.T) {
	// 01:00 in Hong Kong on the 28th is still the 27th in UTC.
	createdAt := time.Date(2024, 4, 28, 1, 0, 0, 0, time.FixedZone("HKT", 8*60*60))
	rates := []domain.ExchangeRate{
		hkdRate("2024-04-27", "7.5"),
		hkdRate("2024-04-26", "7.4"),
	}

	got, err := SelectRate(createdAt, rates)
	require.NoError(t, err)
	assert.Equal(t, "2024-04-26", FormatDate(got.EffectiveDate))

	// Late in the UTC day, the same-day rate is still excluded.
	lateUTC := time.Date(2024, 4, 28, 23, 59, 59, 0, time.UTC)
	got, err = SelectRate(lateUTC, []domain.ExchangeRate{hkdRate("2024-04-28", "7.5")})
	require.Error(t, err)
	assert.Nil(t, got)
}

func TestToView(t *testing.T) {
	tx := domain.Transaction{
		TransactionID: 1,
		Description:   "Transaction 1 Description",
		Amount:        decimal.NewFromInt(1000),
		CreatedAt:     time.Date(2024, 4, 28, 15, 4, 5, 0, time.UTC),
	}
	rate := hkdRate("2024-03-31", "7.831")

	view, err := ToView(tx, &rate)
	require.NoError(t, err)

	assert.Equal(t, int64(1), view.TransactionID)
	assert.Equal(t, "Transaction 1 Description", view.Description)
	assert.True(t, decimal.NewFromInt(1000).Equal(view.AmountInUSD))
	assert.Equal(t, "Hong Kong-Dollar", view.Currency)
	assert.True(t, decimal.RequireFromString("7.831").Equal(view.ExchangeRate))
	assert.Equal(t, "2024-03-31", FormatDate(view.ExchangeRateEffectiveDate))
	assert.Equal(t, "7831.00", view.Amount.StringFixed(2))
	assert.Equal(t, "2024-04-28", FormatDate(view.TransactionDate))
}

func TestToView_NilRate(t *testing.T) {
	view, err := ToView(domain.Transaction{Amount: decimal.NewFromInt(1)}, nil)
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestToView_Rounding(t *testing.T) {
	tests := []struct {
		amount string
		rate   string
		want   string
	}{
		{"10", "7.8356", "78.36"},
		{"1", "0.125", "0.13"}, // half-up, not half-even
		{"1", "0.135", "0.14"},
		{"1", "0.1249", "0.12"},
		{"0", "7.831", "0.00"},
		{"123.45", "1.3333", "164.60"},
	}

	for _, tt := range tests {
		t.Run(tt.amount+"x"+tt.rate, func(t *testing.T) {
			tx := domain.Transaction{Amount: decimal.RequireFromString(tt.amount), CreatedAt: date("2024-04-28")}
			rate := hkdRate("2024-03-31", tt.rate)
			view, err := ToView(tx, &rate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, view.Amount.StringFixed(2))
		})
	}
}

func TestConvert(t *testing.T) {
	tx := domain.Transaction{
		TransactionID: 7,
		Description:   "Dinner",
		Amount:        decimal.NewFromInt(10),
		CreatedAt:     date("2024-04-28"),
	}

	view, err := Convert(tx, []domain.ExchangeRate{hkdRate("2024-03-31", "7.8356")})
	require.NoError(t, err)
	assert.Equal(t, "78.36", view.Amount.StringFixed(2))

	view, err = Convert(tx, []domain.ExchangeRate{hkdRate("2023-09-30", "7.841")})
	require.Error(t, err)
	assert.Nil(t, view)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}

func TestConvertAll(t *testing.T) {
	txs := []domain.Transaction{
		{TransactionID: 1, Amount: decimal.NewFromInt(1000), CreatedAt: date("2024-04-28")},
		{TransactionID: 2, Amount: decimal.NewFromInt(2000), CreatedAt: date("2023-12-28")},
	}
	rates := []domain.ExchangeRate{
		hkdRate("2024-03-31", "7.831"),
		hkdRate("2023-12-31", "7.821"),
		hkdRate("2023-09-30", "7.841"),
	}

	views, err := ConvertAll(txs, rates)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, int64(1), views[0].TransactionID)
	assert.Equal(t, "2024-03-31", FormatDate(views[0].ExchangeRateEffectiveDate))
	assert.Equal(t, int64(2), views[1].TransactionID)
	assert.Equal(t, "2023-09-30", FormatDate(views[1].ExchangeRateEffectiveDate))
	assert.Equal(t, "15682.00", views[1].Amount.StringFixed(2))

	// One transaction without a rate fails the batch.
	txs = append(txs, domain.Transaction{TransactionID: 3, Amount: decimal.NewFromInt(1), CreatedAt: date("2022-01-01")})
	views, err = ConvertAll(txs, rates)
	require.Error(t, err)
	assert.Nil(t, views)
	assert.ErrorIs(t, err, apperrors.ErrRateNotFound)
}
