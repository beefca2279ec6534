package conversion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSixMonthsBefore(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC), "2023-10-28"},
		{time.Date(2024, 4, 28, 23, 59, 59, 999, time.UTC), "2023-10-28"},
		{time.Date(2023, 12, 28, 12, 0, 0, 0, time.UTC), "2023-06-28"},
		{time.Date(2024, 8, 31, 0, 0, 0, 0, time.UTC), "2024-02-29"},
		{time.Date(2023, 8, 31, 0, 0, 0, 0, time.UTC), "2023-02-28"},
		{time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), "2023-09-30"},
		{time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), "2023-07-15"},
		// 2024-05-01 02:00 in UTC+8 is 2024-04-30 in UTC.
		{time.Date(2024, 5, 1, 2, 0, 0, 0, time.FixedZone("HKT", 8*60*60)), "2023-10-30"},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			got := SixMonthsBefore(tt.in)
			assert.Equal(t, tt.want, FormatDate(got))
			assert.Equal(t, time.UTC, got.Location())
			assert.Zero(t, got.Hour())
		})
	}
}

func TestFormatAndParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, "2024-03-31", FormatDate(d))

	_, err = ParseDate("31/03/2024")
	assert.Error(t, err)

	assert.Equal(t, "2024-04-27", FormatDate(time.Date(2024, 4, 28, 1, 0, 0, 0, time.FixedZone("HKT", 8*60*60))))
}

func TestDateOf(t *testing.T) {
	got := DateOf(time.Date(2024, 4, 28, 13, 14, 15, 16, time.UTC))
	assert.Equal(t, time.Date(2024, 4, 28, 0, 0, 0, 0, time.UTC), got)
}
