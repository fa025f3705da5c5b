package matching

import "errors"

var (
	ErrInvalidRequestID  = errors.New("invalid request id")
	ErrRequestNotPending = errors.New("request is not pending")

	// ErrOfferAlreadyExists marks a duplicate (request, driver) pair. The
	// engine skips such candidates silently; the pair was already offered.
	ErrOfferAlreadyExists = errors.New("offer already exists for this request and driver")
)
