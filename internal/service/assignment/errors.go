package assignment

import "errors"

var (
	ErrInvalidOfferID  = errors.New("invalid offer id")
	ErrInvalidDriverID = errors.New("invalid driver id")

	ErrOfferNotFound  = errors.New("offer not found")
	ErrOfferOwnership = errors.New("offer belongs to another driver")

	// ErrOfferAlreadyResponded covers offers already in a terminal state;
	// terminal offers are never re-opened.
	ErrOfferAlreadyResponded = errors.New("offer already responded to")

	// ErrOfferExpired is the lazy-expiry outcome: the TTL elapsed before
	// the driver acted, discovered on access rather than by the sweeper.
	ErrOfferExpired = errors.New("offer expired")

	// ErrRequestTaken means the winner-resolution conditional update lost
	// the race: another offer won or the request left pending/proposed.
	// Never returned for store faults, which surface as wrapped errors.
	ErrRequestTaken = errors.New("request no longer available")
)
