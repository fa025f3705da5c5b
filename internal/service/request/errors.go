package request

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRequestID      = errors.New("invalid request id")
	ErrInvalidFee            = errors.New("invalid fee")
	ErrInvalidLocation       = errors.New("invalid location")
	ErrInvalidAddress        = errors.New("invalid address")

	ErrRequestNotFound = errors.New("request not found")
	ErrInvalidStatus   = errors.New("operation not allowed in current request status")

	// ErrRequestUnavailable is the conditional-update outcome when the
	// request can no longer take a driver: another driver already won, or
	// the request left the pending/proposed states.
	ErrRequestUnavailable = errors.New("request no longer available")
)
