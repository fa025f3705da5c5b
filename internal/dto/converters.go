package dto

import (
	"dispatch/internal/entities"
)

func FromRequestEntity(e *entities.DeliveryRequest) DeliveryRequest {
	requestDTO := DeliveryRequest{
		ID:                 e.ID.String(),
		RestaurantID:       e.RestaurantID.String(),
		Status:             e.Status.String(),
		Origin:             GeoPoint{Lat: e.Origin.Lat, Lon: e.Origin.Lon},
		OriginAddress:      e.OriginAddress,
		Destination:        GeoPoint{Lat: e.Destination.Lat, Lon: e.Destination.Lon},
		DestinationAddress: e.DestinationAddress,
		FeeCents:           e.FeeCents,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt,
		AssignedAt:         e.AssignedAt,
		CancelledAt:        e.CancelledAt,
		DeliveredAt:        e.DeliveredAt,
	}

	if e.AssignedDriverID != nil {
		driverID := e.AssignedDriverID.String()
		requestDTO.AssignedDriverID = &driverID
	}

	return requestDTO
}

func FromOfferEntity(e *entities.Offer) Offer {
	return Offer{
		ID:          e.ID.String(),
		RequestID:   e.RequestID.String(),
		DriverID:    e.DriverID.String(),
		Status:      e.Status.String(),
		SentAt:      e.SentAt,
		ExpiresAt:   e.ExpiresAt,
		RespondedAt: e.RespondedAt,
	}
}
