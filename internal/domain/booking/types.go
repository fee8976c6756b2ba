package booking

import "time"

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// DeriveStatus resolves the display status from the rental period.
// Cancellation is sticky; the rest follows the dates.
func DeriveStatus(r DateRange, now time.Time, cancelled bool) Status {
	switch {
	case cancelled:
		return StatusCancelled
	case now.Before(r.Start()):
		return StatusUpcoming
	case now.Before(r.End()):
		return StatusOngoing
	default:
		return StatusCompleted
	}
}
