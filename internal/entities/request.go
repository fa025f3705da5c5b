package entities

import (
	"time"

	"github.com/google/uuid"
)

type DeliveryRequest struct {
	ID                 uuid.UUID
	RestaurantID       uuid.UUID
	AssignedDriverID   *uuid.UUID
	Status             RequestStatusType
	Origin             GeoPoint
	OriginAddress      string
	Destination        GeoPoint
	DestinationAddress string
	FeeCents           int64
	Notes              string
	CreatedAt          time.Time
	AssignedAt         *time.Time
	CancelledAt        *time.Time
	DeliveredAt        *time.Time
}

type RequestStatusType string

const (
	RequestPending    RequestStatusType = "pending"
	RequestProposed   RequestStatusType = "proposed"
	RequestAccepted   RequestStatusType = "accepted"
	RequestInDelivery RequestStatusType = "in_delivery"
	RequestDelivered  RequestStatusType = "delivered"
	RequestCancelled  RequestStatusType = "cancelled"
)

func (s RequestStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed.
func (s RequestStatusType) IsTerminal() bool {
	return s == RequestDelivered || s == RequestCancelled
}

// HasDriver reports whether a request in this status must carry an
// assigned driver.
func (s RequestStatusType) HasDriver() bool {
	return s == RequestAccepted || s == RequestInDelivery || s == RequestDelivered
}

type DeliveryRequestModify struct {
	ID                 *uuid.UUID
	RestaurantID       *uuid.UUID
	Status             *RequestStatusType
	Origin             *GeoPoint
	OriginAddress      *string
	Destination        *GeoPoint
	DestinationAddress *string
	FeeCents           *int64
	Notes              *string
	CreatedAt          *time.Time
}

// MatchResult is the outcome of one escalation run for a request. Zero
// OffersCreated is a legitimate no-supply outcome, not an error.
type MatchResult struct {
	RequestID     uuid.UUID
	OffersCreated int
	RadiusMeters  int
}

// Assignment is the outcome of a winning accept: the request with the
// driver set plus the accepted offer.
type Assignment struct {
	Request *DeliveryRequest
	Offer   *Offer
}
