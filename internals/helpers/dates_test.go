package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    time.Time
		wantErr bool
	}{
		{name: "valid", in: "2024-09-15", want: time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", in: "2024-02-29", want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "non leap year feb 29", in: "2023-02-29", wantErr: true},
		{name: "missing zero padding", in: "2024-1-5", wantErr: true},
		{name: "wrong separators", in: "2024/01/05", wantErr: true},
		{name: "month out of range", in: "2024-13-01", wantErr: true},
		{name: "empty", in: "", wantErr: true},
		{name: "garbage", in: "not-a-date", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-31", FormatDate(parsed))
}

func TestMonthsBetween(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{name: "same day", a: date(2024, 1, 15), b: date(2024, 1, 15), want: 0},
		{name: "one day short of a month", a: date(2024, 1, 15), b: date(2024, 2, 14), want: 0},
		{name: "exactly one month", a: date(2024, 1, 15), b: date(2024, 2, 15), want: 1},
		{name: "one year", a: date(2023, 3, 1), b: date(2024, 3, 1), want: 12},
		{name: "partial months do not count", a: date(2023, 1, 31), b: date(2023, 3, 30), want: 1},
		{name: "b before a", a: date(2024, 5, 1), b: date(2024, 4, 1), want: 0},
		{name: "across year boundary", a: date(2023, 11, 10), b: date(2024, 2, 10), want: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.a, tt.b))
		})
	}
}

func TestFutureAndPastBounds(t *testing.T) {
	now := time.Now().UTC()

	assert.False(t, IsMoreThanDaysInFuture(now.AddDate(0, 0, 10), 30))
	assert.True(t, IsMoreThanDaysInFuture(now.AddDate(0, 0, 31), 30))

	assert.False(t, IsMoreThanYearsInPast(now.AddDate(-10, 0, 0), 50))
	assert.True(t, IsMoreThanYearsInPast(now.AddDate(-51, 0, 0), 50))
}
