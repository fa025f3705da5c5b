// Package dto holds the JSON wire types of the REST API.
package dto

import "time"

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RequestCreate struct {
	RestaurantID       string   `json:"restaurant_id"`
	Origin             GeoPoint `json:"origin"`
	OriginAddress      string   `json:"origin_address"`
	Destination        GeoPoint `json:"destination"`
	DestinationAddress string   `json:"destination_address"`
	FeeCents           int64    `json:"fee_cents"`
	Notes              string   `json:"notes,omitempty"`
}

type DeliveryRequest struct {
	ID                 string     `json:"id"`
	RestaurantID       string     `json:"restaurant_id"`
	AssignedDriverID   *string    `json:"assigned_driver_id,omitempty"`
	Status             string     `json:"status"`
	Origin             GeoPoint   `json:"origin"`
	OriginAddress      string     `json:"origin_address"`
	Destination        GeoPoint   `json:"destination"`
	DestinationAddress string     `json:"destination_address"`
	FeeCents           int64      `json:"fee_cents"`
	Notes              string     `json:"notes,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	AssignedAt         *time.Time `json:"assigned_at,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
	DeliveredAt        *time.Time `json:"delivered_at,omitempty"`
}

type Offer struct {
	ID          string     `json:"id"`
	RequestID   string     `json:"request_id"`
	DriverID    string     `json:"driver_id"`
	Status      string     `json:"status"`
	SentAt      time.Time  `json:"sent_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`
}

type OfferList struct {
	Offers []Offer `json:"offers"`
}

type MatchResult struct {
	RequestID     string `json:"request_id"`
	OffersCreated int    `json:"offers_created"`
	RadiusMeters  int    `json:"radius_meters"`
}

type OfferResponse struct {
	OfferID  string `json:"offer_id"`
	DriverID string `json:"driver_id"`
}

type Assignment struct {
	Request DeliveryRequest `json:"request"`
	Offer   Offer           `json:"offer"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
