package requestevent

import "errors"

var (
	ErrMissingEventFields = errors.New("event request id and status are required")
	ErrUndefinedStatus    = errors.New("undefined request status")
)
