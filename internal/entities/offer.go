package entities

import (
	"time"

	"github.com/google/uuid"
)

type Offer struct {
	ID          uuid.UUID
	RequestID   uuid.UUID
	DriverID    uuid.UUID
	Status      OfferStatusType
	SentAt      time.Time
	ExpiresAt   *time.Time
	RespondedAt *time.Time
}

type OfferStatusType string

const (
	OfferSent     OfferStatusType = "sent"
	OfferAccepted OfferStatusType = "accepted"
	OfferRejected OfferStatusType = "rejected"
	OfferExpired  OfferStatusType = "expired"
)

func (s OfferStatusType) String() string {
	return string(s)
}

// IsExpiredAt reports whether the offer's TTL has elapsed at the given
// instant. Offers without a deadline never expire by time.
func (o *Offer) IsExpiredAt(now time.Time) bool {
	return o.ExpiresAt != nil && !o.ExpiresAt.After(now)
}

type OfferModify struct {
	ID        *uuid.UUID
	RequestID *uuid.UUID
	DriverID  *uuid.UUID
	Status    *OfferStatusType
	SentAt    *time.Time
	ExpiresAt *time.Time
}
