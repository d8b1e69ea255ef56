package transfers

import "errors"

// ErrBookingNotFound is returned when no queued booking matches the given ID.
var ErrBookingNotFound = errors.New("booking not found")
