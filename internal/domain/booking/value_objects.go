package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidDateRange = errors.New("end date must be after start date")
	ErrStartDateInPast  = errors.New("start date cannot be in the past")
)

const day = 24 * time.Hour

// DateRange is a validated rental period. An instance always satisfies
// end > start, so day-count and amount derivations cannot go negative.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	if !end.After(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Days is the billable day count: ceil of the elapsed duration in days,
// never below 1 for a valid range.
func (r DateRange) Days() int {
	d := r.end.Sub(r.start)
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// ValidateNotPast rejects ranges starting before today. The comparison is
// against midnight so a booking made later the same day is still accepted.
func (r DateRange) ValidateNotPast(now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if r.start.Before(today) {
		return ErrStartDateInPast
	}
	return nil
}

// ClampEnd recomputes the range for a new start date. Moving the start past
// the current end forces end = start + 1 day, mirroring the picker behavior.
func (r DateRange) ClampEnd(start time.Time) DateRange {
	end := r.end
	if !end.After(start) {
		end = start.Add(day)
	}
	return DateRange{start: start, end: end}
}

// TotalAmount is the rental price for the range: days × pricePerDay, in
// whole naira. Integer arithmetic, no rounding.
func (r DateRange) TotalAmount(pricePerDay int64) int64 {
	return int64(r.Days()) * pricePerDay
}
