package offer

import (
	"dispatch/internal/entities"
)

func ToDomain(o *OfferDB) *entities.Offer {
	if o == nil {
		return nil
	}
	return &entities.Offer{
		ID:          o.ID,
		RequestID:   o.RequestID,
		DriverID:    o.DriverID,
		Status:      entities.OfferStatusType(o.Status),
		SentAt:      o.SentAt,
		ExpiresAt:   o.ExpiresAt,
		RespondedAt: o.RespondedAt,
	}
}

func FromDomainModify(o *entities.OfferModify) *OfferModifyDB {
	if o == nil {
		return nil
	}
	offerModifyDB := &OfferModifyDB{
		ID:        o.ID,
		RequestID: o.RequestID,
		DriverID:  o.DriverID,
		SentAt:    o.SentAt,
		ExpiresAt: o.ExpiresAt,
	}

	if o.Status != nil {
		status := o.Status.String()
		offerModifyDB.Status = &status
	}

	return offerModifyDB
}
