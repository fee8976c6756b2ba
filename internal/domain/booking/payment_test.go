//go:build unit

package booking_test

import (
	"regexp"
	"testing"
	"time"

	"moveit-backend/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestParsePaymentStatus(t *testing.T) {
	cases := []struct {
		name      string
		raw       string
		kind      booking.PaymentStatusKind
		paid      bool
		cancelled bool
	}{
		{
			name: "successful is paid",
			raw:  "successful",
			kind: booking.PaymentSuccessful,
			paid: true,
		},
		{
			name: "completed is paid",
			raw:  "completed",
			kind: booking.PaymentCompleted,
			paid: true,
		},
		{
			name:      "cancelled",
			raw:       "cancelled",
			kind:      booking.PaymentCancelled,
			cancelled: true,
		},
		{
			name: "case and whitespace are normalized",
			raw:  "  Successful ",
			kind: booking.PaymentSuccessful,
			paid: true,
		},
		{
			name: "failed maps to unknown",
			raw:  "failed",
			kind: booking.PaymentUnknown,
		},
		{
			name: "empty maps to unknown",
			raw:  "",
			kind: booking.PaymentUnknown,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			status := booking.ParsePaymentStatus(c.raw)
			assert.Equal(t, c.kind, status.Kind())
			assert.Equal(t, c.paid, status.Paid())
			assert.Equal(t, c.cancelled, status.Cancelled())
			assert.Equal(t, c.raw, status.Raw(), "raw input must survive parsing")
		})
	}
}

func TestNewTransactionRef(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	ref := booking.NewTransactionRef(now)
	assert.Regexp(t, regexp.MustCompile(`^booking-1710072000000-\d{1,6}$`), ref)

	other := booking.NewTransactionRef(now)
	assert.NotEqual(t, ref, other, "two refs from the same instant should differ")
}
