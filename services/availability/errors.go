package availability

import "errors"

var (
	// ErrInvalidDate is returned for dates not in "YYYY-MM-DD" form.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
	// ErrInvalidDuration is returned for non-positive service durations.
	ErrInvalidDuration = errors.New("service duration must be positive")
)
