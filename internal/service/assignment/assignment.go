package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/entities"
	requestservice "dispatch/internal/service/request"
	"dispatch/pkg/logger"
)

type Assignment struct {
	offers   OfferRepository
	requests RequestRepository
	log      handlerLogger
}

func New(log handlerLogger, offers OfferRepository, requests RequestRepository) *Assignment {
	return &Assignment{
		offers:   offers,
		requests: requests,
		log:      log.With(),
	}
}

// AcceptOffer resolves a driver's accept. The winner is decided by a
// single conditional update on the request row: whichever concurrent
// accept lands that update first wins, everyone else observes the guard
// as false. No in-process state takes part in the decision, so the
// guarantee holds across processes.
func (s *Assignment) AcceptOffer(ctx context.Context, offerID, driverID uuid.UUID) (*entities.Assignment, error) {
	offerEntity, err := s.loadOwnedOffer(ctx, offerID, driverID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	if offerEntity.IsExpiredAt(now) {
		// Lazy expiry: the TTL is enforced on access, not only by the
		// sweeper. Expiring here is a side effect even on the reject path.
		s.expireOffer(ctx, offerEntity.ID, now)
		LazyExpiriesTotal.Inc()
		return nil, ErrOfferExpired
	}

	requestEntity, err := s.requests.AssignDriver(ctx, offerEntity.RequestID, driverID, now)
	if err != nil {
		if errors.Is(err, requestservice.ErrRequestUnavailable) {
			// Lost the race. Expire this offer so it never sits in
			// terminal ambiguity.
			AcceptConflictsTotal.Inc()
			s.expireOffer(ctx, offerEntity.ID, now)
			return nil, ErrRequestTaken
		}
		// A store fault here must stay distinguishable from losing the
		// race: the caller may retry, a loser must not.
		return nil, fmt.Errorf("assign driver to request: %w", err)
	}

	accepted, err := s.offers.Transition(ctx, offerEntity.ID, entities.OfferSent, entities.OfferAccepted, now)
	if err != nil || !accepted {
		// The winner decision is already settled on the request row;
		// offer bookkeeping failing is recoverable by the sweeper.
		s.log.With(
			logger.NewField("offer", offerEntity.ID),
			logger.NewField("error", err),
		).Error("mark winning offer accepted")
	} else {
		offerEntity.Status = entities.OfferAccepted
		offerEntity.RespondedAt = &now
	}

	if _, err := s.offers.ExpireActive(ctx, offerEntity.RequestID, &offerEntity.ID, now); err != nil {
		// Best-effort cleanup, safe to re-run; the sweeper picks up
		// whatever is left once TTLs elapse.
		s.log.With(
			logger.NewField("request", offerEntity.RequestID),
			logger.NewField("error", err),
		).Error("expire sibling offers")
	}

	AcceptWinsTotal.Inc()

	return &entities.Assignment{
		Request: requestEntity,
		Offer:   offerEntity,
	}, nil
}

// RejectOffer removes this driver from consideration. The request and
// every other offer are untouched.
func (s *Assignment) RejectOffer(ctx context.Context, offerID, driverID uuid.UUID) error {
	offerEntity, err := s.loadOwnedOffer(ctx, offerID, driverID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	rejected, err := s.offers.Transition(ctx, offerEntity.ID, entities.OfferSent, entities.OfferRejected, now)
	if err != nil {
		return fmt.Errorf("mark offer rejected: %w", err)
	}
	if !rejected {
		// The sweeper or a concurrent responder got there first.
		return ErrOfferAlreadyResponded
	}

	return nil
}

func (s *Assignment) loadOwnedOffer(ctx context.Context, offerID, driverID uuid.UUID) (*entities.Offer, error) {
	if offerID == uuid.Nil {
		return nil, ErrInvalidOfferID
	}
	if driverID == uuid.Nil {
		return nil, ErrInvalidDriverID
	}

	offerEntity, err := s.offers.GetByID(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("get offer: %w", err)
	}

	if offerEntity.DriverID != driverID {
		return nil, ErrOfferOwnership
	}
	if offerEntity.Status != entities.OfferSent {
		return nil, fmt.Errorf("%w: status is %s", ErrOfferAlreadyResponded, offerEntity.Status)
	}

	return offerEntity, nil
}

func (s *Assignment) expireOffer(ctx context.Context, offerID uuid.UUID, now time.Time) {
	if _, err := s.offers.Transition(ctx, offerID, entities.OfferSent, entities.OfferExpired, now); err != nil {
		s.log.With(
			logger.NewField("offer", offerID),
			logger.NewField("error", err),
		).Error("expire offer")
	}
}
