package request

import (
	"context"
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"github.com/google/uuid"

	"dispatch/internal/entities"
)

type Request struct {
	repository Repository
	offers     OfferRepository
	txManager  TxManager
}

func New(repository Repository, offers OfferRepository, txManager TxManager) *Request {
	return &Request{
		repository: repository,
		offers:     offers,
		txManager:  txManager,
	}
}

func (s *Request) CreateRequest(ctx context.Context, requestModify entities.DeliveryRequestModify) (*entities.DeliveryRequest, error) {
	if requestModify.RestaurantID == nil ||
		requestModify.Origin == nil ||
		requestModify.OriginAddress == nil ||
		requestModify.Destination == nil ||
		requestModify.DestinationAddress == nil ||
		requestModify.FeeCents == nil {
		return nil, ErrMissingRequiredFields
	}

	if *requestModify.RestaurantID == uuid.Nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidPoint(*requestModify.Origin) || !isValidPoint(*requestModify.Destination) {
		return nil, ErrInvalidLocation
	}
	if !isValidAddress(*requestModify.OriginAddress) || !isValidAddress(*requestModify.DestinationAddress) {
		return nil, ErrInvalidAddress
	}
	if *requestModify.FeeCents < 0 {
		return nil, ErrInvalidFee
	}

	requestModify.ID = pointer.To(uuid.New())
	requestModify.Status = pointer.To(entities.RequestPending)
	requestModify.CreatedAt = pointer.To(time.Now().UTC())
	if requestModify.Notes == nil {
		requestModify.Notes = pointer.To("")
	}

	created, err := s.repository.Create(ctx, requestModify)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	return created, nil
}

func (s *Request) GetRequest(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidRequestID
	}

	requestEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	return requestEntity, nil
}

func (s *Request) ListOffers(ctx context.Context, requestID uuid.UUID) ([]entities.Offer, error) {
	if requestID == uuid.Nil {
		return nil, ErrInvalidRequestID
	}

	if _, err := s.repository.GetByID(ctx, requestID); err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}

	offers, err := s.offers.ListByRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	return offers, nil
}

// CancelRequest moves a non-terminal request to cancelled and expires its
// live offers. Both writes happen inside one transaction so an offer can
// not be accepted against a request that is already observed cancelled.
func (s *Request) CancelRequest(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error) {
	if id == uuid.Nil {
		return nil, ErrInvalidRequestID
	}

	now := time.Now().UTC()

	var cancelled *entities.DeliveryRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		requestEntity, err := s.repository.Cancel(ctx, id, now)
		if err != nil {
			return fmt.Errorf("cancel request: %w", err)
		}

		if _, err := s.offers.ExpireActive(ctx, id, nil, now); err != nil {
			return fmt.Errorf("expire offers of cancelled request: %w", err)
		}

		cancelled = requestEntity
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cancelled, nil
}

func (s *Request) MarkInDelivery(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidRequestID
	}

	moved, err := s.repository.MarkInDelivery(ctx, id)
	if err != nil {
		return fmt.Errorf("mark request in delivery: %w", err)
	}
	if !moved {
		return fmt.Errorf("%w: request is not accepted", ErrInvalidStatus)
	}

	return nil
}

func (s *Request) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidRequestID
	}

	delivered, err := s.repository.MarkDelivered(ctx, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("mark request delivered: %w", err)
	}
	if !delivered {
		return fmt.Errorf("%w: request is not in delivery", ErrInvalidStatus)
	}

	return nil
}
