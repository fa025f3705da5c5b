package request

import (
	"dispatch/internal/entities"
)

func ToDomain(r *RequestDB) *entities.DeliveryRequest {
	if r == nil {
		return nil
	}
	return &entities.DeliveryRequest{
		ID:                 r.ID,
		RestaurantID:       r.RestaurantID,
		AssignedDriverID:   r.AssignedDriverID,
		Status:             entities.RequestStatusType(r.Status),
		Origin:             entities.GeoPoint{Lat: r.OriginLat, Lon: r.OriginLon},
		OriginAddress:      r.OriginAddress,
		Destination:        entities.GeoPoint{Lat: r.DestinationLat, Lon: r.DestinationLon},
		DestinationAddress: r.DestinationAddress,
		FeeCents:           r.FeeCents,
		Notes:              r.Notes,
		CreatedAt:          r.CreatedAt,
		AssignedAt:         r.AssignedAt,
		CancelledAt:        r.CancelledAt,
		DeliveredAt:        r.DeliveredAt,
	}
}

func FromDomainModify(r *entities.DeliveryRequestModify) *RequestModifyDB {
	if r == nil {
		return nil
	}
	requestModifyDB := &RequestModifyDB{
		ID:           r.ID,
		RestaurantID: r.RestaurantID,
		FeeCents:     r.FeeCents,
		Notes:        r.Notes,
		CreatedAt:    r.CreatedAt,
	}

	if r.Status != nil {
		status := r.Status.String()
		requestModifyDB.Status = &status
	}
	if r.Origin != nil {
		requestModifyDB.OriginLat = &r.Origin.Lat
		requestModifyDB.OriginLon = &r.Origin.Lon
	}
	if r.OriginAddress != nil {
		requestModifyDB.OriginAddress = r.OriginAddress
	}
	if r.Destination != nil {
		requestModifyDB.DestinationLat = &r.Destination.Lat
		requestModifyDB.DestinationLon = &r.Destination.Lon
	}
	if r.DestinationAddress != nil {
		requestModifyDB.DestinationAddress = r.DestinationAddress
	}

	return requestModifyDB
}
