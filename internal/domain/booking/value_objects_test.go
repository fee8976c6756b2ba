//go:build unit

package booking_test

import (
	"testing"
	"time"

	"moveit-backend/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewDateRange(t *testing.T) {
	t.Run("end after start is valid", func(t *testing.T) {
		r, err := booking.NewDateRange(date(2024, 3, 10), date(2024, 3, 15))
		require.NoError(t, err)
		assert.Equal(t, date(2024, 3, 10), r.Start())
		assert.Equal(t, date(2024, 3, 15), r.End())
	})

	t.Run("end equal to start is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2024, 3, 10), date(2024, 3, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		_, err := booking.NewDateRange(date(2024, 3, 15), date(2024, 3, 10))
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})
}

func TestDateRangeDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		days  int
	}{
		{
			name:  "exact five days",
			start: date(2024, 3, 10),
			end:   date(2024, 3, 15),
			days:  5,
		},
		{
			name:  "single day",
			start: date(2024, 3, 10),
			end:   date(2024, 3, 11),
			days:  1,
		},
		{
			name:  "partial day rounds up",
			start: time.Date(2024, 3, 10, 10, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 14, 16, 0, 0, 0, time.UTC),
			days:  5,
		},
		{
			name:  "under a day rounds up to one",
			start: time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC),
			days:  1,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := booking.NewDateRange(c.start, c.end)
			require.NoError(t, err)
			assert.Equal(t, c.days, r.Days())
		})
	}
}

func TestDateRangeTotalAmount(t *testing.T) {
	r, err := booking.NewDateRange(date(2024, 3, 10), date(2024, 3, 15))
	require.NoError(t, err)

	assert.Equal(t, int64(250000), r.TotalAmount(50000))
	assert.Equal(t, int64(0), r.TotalAmount(0))
}

func TestDateRangeValidateNotPast(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)

	t.Run("start earlier today is accepted", func(t *testing.T) {
		r, err := booking.NewDateRange(date(2024, 3, 10), date(2024, 3, 12))
		require.NoError(t, err)
		assert.NoError(t, r.ValidateNotPast(now))
	})

	t.Run("start tomorrow is accepted", func(t *testing.T) {
		r, err := booking.NewDateRange(date(2024, 3, 11), date(2024, 3, 12))
		require.NoError(t, err)
		assert.NoError(t, r.ValidateNotPast(now))
	})

	t.Run("start yesterday is rejected", func(t *testing.T) {
		r, err := booking.NewDateRange(date(2024, 3, 9), date(2024, 3, 12))
		require.NoError(t, err)
		assert.ErrorIs(t, r.ValidateNotPast(now), booking.ErrStartDateInPast)
	})
}

func TestDateRangeClampEnd(t *testing.T) {
	r, err := booking.NewDateRange(date(2024, 3, 10), date(2024, 3, 15))
	require.NoError(t, err)

	t.Run("keeps end when start stays before it", func(t *testing.T) {
		moved := r.ClampEnd(date(2024, 3, 12))
		assert.Equal(t, date(2024, 3, 12), moved.Start())
		assert.Equal(t, date(2024, 3, 15), moved.End())
	})

	t.Run("pushes end when start moves past it", func(t *testing.T) {
		moved := r.ClampEnd(date(2024, 3, 20))
		assert.Equal(t, date(2024, 3, 20), moved.Start())
		assert.Equal(t, date(2024, 3, 21), moved.End())
	})
}
