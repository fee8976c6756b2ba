package booking

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

type PaymentStatusKind int

const (
	PaymentSuccessful PaymentStatusKind = iota
	PaymentCompleted
	PaymentCancelled
	PaymentUnknown
)

// PaymentStatus is the gateway redirect status as an exhaustive variant.
// Anything outside the three documented statuses is carried as Unknown with
// the raw string preserved, so callers must branch on it explicitly instead
// of falling through.
type PaymentStatus struct {
	kind PaymentStatusKind
	raw  string
}

func ParsePaymentStatus(raw string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "successful":
		return PaymentStatus{kind: PaymentSuccessful, raw: raw}
	case "completed":
		return PaymentStatus{kind: PaymentCompleted, raw: raw}
	case "cancelled":
		return PaymentStatus{kind: PaymentCancelled, raw: raw}
	default:
		return PaymentStatus{kind: PaymentUnknown, raw: raw}
	}
}

func (p PaymentStatus) Kind() PaymentStatusKind { return p.kind }
func (p PaymentStatus) Raw() string             { return p.raw }

// Paid reports whether the gateway captured the money.
func (p PaymentStatus) Paid() bool {
	return p.kind == PaymentSuccessful || p.kind == PaymentCompleted
}

func (p PaymentStatus) Cancelled() bool {
	return p.kind == PaymentCancelled
}

// NewTransactionRef generates the client-visible payment reference:
// "booking-" + timestamp + "-" + random. Uniqueness is ultimately enforced
// by the transaction_ref constraint on the bookings table.
func NewTransactionRef(now time.Time) string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	n := binary.BigEndian.Uint32(b[:]) % 1000000
	return fmt.Sprintf("booking-%d-%d", now.UnixMilli(), n)
}
