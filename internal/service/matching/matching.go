package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const pendingBatchLimit = 50

// Policy controls escalation: radii are tried in order until at least one
// offer is created, then escalation stops.
type Policy struct {
	RadiiMeters    []int
	CandidateLimit int
	OfferTTL       time.Duration
}

type Matching struct {
	requests RequestRepository
	offers   OfferRepository
	geo      GeoIndex
	policy   Policy
	log      handlerLogger
}

func New(log handlerLogger, requests RequestRepository, offers OfferRepository, geo GeoIndex, policy Policy) *Matching {
	return &Matching{
		requests: requests,
		offers:   offers,
		geo:      geo,
		policy:   policy,
		log:      log.With(),
	}
}

// ProposeToDrivers runs one escalation pass for a pending request. It
// widens the search radius until at least one offer is created, then
// moves the request pending -> proposed and stops. Zero offers across all
// radii is a legitimate no-supply result: the request stays pending and
// no error is returned.
func (m *Matching) ProposeToDrivers(ctx context.Context, requestID uuid.UUID) (*entities.MatchResult, error) {
	if requestID == uuid.Nil {
		return nil, ErrInvalidRequestID
	}

	requestEntity, err := m.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	// Escalation is a one-shot transition: re-proposing a proposed
	// request needs an explicit reset, not a silent no-op.
	if requestEntity.Status != entities.RequestPending {
		return nil, fmt.Errorf("%w: status is %s", ErrRequestNotPending, requestEntity.Status)
	}

	var lastRadius int
	for _, radius := range m.policy.RadiiMeters {
		lastRadius = radius

		candidates, err := m.geo.FindNear(ctx, requestEntity.Origin, float64(radius), m.policy.CandidateLimit)
		if err != nil {
			return nil, fmt.Errorf("find drivers within %dm: %w", radius, err)
		}
		if len(candidates) == 0 {
			continue
		}

		created := m.fanOut(ctx, requestEntity, candidates)
		if created == 0 {
			continue
		}

		proposed, err := m.requests.MarkProposed(ctx, requestID)
		if err != nil {
			return nil, fmt.Errorf("mark request proposed: %w", err)
		}
		if !proposed {
			// The request left pending during fan-out (accept or cancel
			// landed first). The offers stand; the winner decision is
			// arbitrated by the store either way.
			m.log.Warn("request changed state during offer fan-out",
				logger.NewField("request", requestID),
			)
		}

		OffersCreatedTotal.Add(float64(created))
		SearchRadiusMeters.Observe(float64(radius))

		return &entities.MatchResult{
			RequestID:     requestID,
			OffersCreated: created,
			RadiusMeters:  radius,
		}, nil
	}

	NoSupplyTotal.Inc()

	return &entities.MatchResult{
		RequestID:     requestID,
		OffersCreated: 0,
		RadiusMeters:  lastRadius,
	}, nil
}

// MatchPending runs ProposeToDrivers over the oldest pending requests.
// Called periodically so requests that found no supply earlier get
// retried as drivers come online.
func (m *Matching) MatchPending(ctx context.Context) (int, error) {
	pending, err := m.requests.ListPending(ctx, pendingBatchLimit)
	if err != nil {
		return 0, fmt.Errorf("list pending requests: %w", err)
	}

	matched := 0
	for _, requestEntity := range pending {
		result, err := m.ProposeToDrivers(ctx, requestEntity.ID)
		if err != nil {
			if errors.Is(err, ErrRequestNotPending) {
				continue
			}
			if ctx.Err() != nil {
				return matched, ctx.Err()
			}
			m.log.With(
				logger.NewField("request", requestEntity.ID),
				logger.NewField("error", err),
			).Error("propose pending request")
			continue
		}
		if result.OffersCreated > 0 {
			matched++
		}
	}

	return matched, nil
}

func (m *Matching) fanOut(ctx context.Context, requestEntity *entities.DeliveryRequest, candidates []entities.DriverCandidate) int {
	now := time.Now().UTC()
	expiresAt := now.Add(m.policy.OfferTTL)

	created := 0
	for _, candidate := range candidates {
		offerModify := entities.OfferModify{
			ID:        pointer.To(uuid.New()),
			RequestID: pointer.To(requestEntity.ID),
			DriverID:  pointer.To(candidate.DriverID),
			Status:    pointer.To(entities.OfferSent),
			SentAt:    pointer.To(now),
			ExpiresAt: pointer.To(expiresAt),
		}

		_, err := m.offers.Create(ctx, offerModify)
		if err != nil {
			if errors.Is(err, ErrOfferAlreadyExists) {
				continue
			}
			// Partial fan-out is acceptable: one candidate failing must
			// not fail the whole escalation.
			OfferCreateFaultsTotal.Inc()
			m.log.With(
				logger.NewField("request", requestEntity.ID),
				logger.NewField("driver", candidate.DriverID),
				logger.NewField("error", err),
			).Error("create offer")
			continue
		}

		created++
	}

	return created
}
