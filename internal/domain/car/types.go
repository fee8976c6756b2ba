package car

type Status string

// Fleet statuses as the dashboard presents them. The original data carries
// the misspelled MAINTAINANCE; it is accepted on input and normalized.
const (
	StatusAvailable   Status = "AVAILABLE"
	StatusRented      Status = "RENTED"
	StatusMaintenance Status = "MAINTENANCE"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusRented, StatusMaintenance:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	if s == "MAINTAINANCE" {
		return StatusMaintenance, nil
	}
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
