package rides

import "errors"

// ErrDuplicateBookingRequest is returned by the store when a pending request
// already exists for the same ride and passenger
var ErrDuplicateBookingRequest = errors.New("booking request already pending")
