//go:build unit

package booking_test

import (
	"testing"
	"time"

	"moveit-backend/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	r, err := booking.NewDateRange(date(2024, 3, 10), date(2024, 3, 15))
	require.NoError(t, err)

	cases := []struct {
		name      string
		now       time.Time
		cancelled bool
		want      booking.Status
	}{
		{
			name: "before start is upcoming",
			now:  date(2024, 3, 5),
			want: booking.StatusUpcoming,
		},
		{
			name: "at start is ongoing",
			now:  date(2024, 3, 10),
			want: booking.StatusOngoing,
		},
		{
			name: "mid range is ongoing",
			now:  date(2024, 3, 12),
			want: booking.StatusOngoing,
		},
		{
			name: "at end is completed",
			now:  date(2024, 3, 15),
			want: booking.StatusCompleted,
		},
		{
			name: "after end is completed",
			now:  date(2024, 3, 20),
			want: booking.StatusCompleted,
		},
		{
			name:      "cancellation wins over dates",
			now:       date(2024, 3, 12),
			cancelled: true,
			want:      booking.StatusCancelled,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.DeriveStatus(r, c.now, c.cancelled))
		})
	}
}

func TestStatusIsValid(t *testing.T) {
	for _, s := range []booking.Status{
		booking.StatusUpcoming,
		booking.StatusOngoing,
		booking.StatusCompleted,
		booking.StatusCancelled,
	} {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, booking.Status("pending").IsValid())
}
