package request_handle

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/internal/service/requestevent"
)

type MatchingService interface {
	ProposeToDrivers(ctx context.Context, requestID uuid.UUID) (*entities.MatchResult, error)
}

type RequestService interface {
	CancelRequest(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
	MarkInDelivery(ctx context.Context, id uuid.UUID) error
	MarkDelivered(ctx context.Context, id uuid.UUID) error
}

type StatusHandlerFactory struct {
	matchingService MatchingService
	requestService  RequestService
}

func NewStatusHandlerFactory(matchingService MatchingService, requestService RequestService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		matchingService: matchingService,
		requestService:  requestService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status string) (requestevent.ExecuteFn, error) {
	switch status {
	case "created":
		return f.createdHandler, nil
	case "cancelled":
		return f.cancelledHandler, nil
	case "picked_up":
		return f.pickedUpHandler, nil
	case "delivered":
		return f.deliveredHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", requestevent.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) createdHandler(ctx context.Context, requestID uuid.UUID) error {
	if _, err := f.matchingService.ProposeToDrivers(ctx, requestID); err != nil {
		return fmt.Errorf("propose drivers for created request %s: %w", requestID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, requestID uuid.UUID) error {
	if _, err := f.requestService.CancelRequest(ctx, requestID); err != nil {
		return fmt.Errorf("cancel request %s: %w", requestID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) pickedUpHandler(ctx context.Context, requestID uuid.UUID) error {
	if err := f.requestService.MarkInDelivery(ctx, requestID); err != nil {
		return fmt.Errorf("mark request %s in delivery: %w", requestID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, requestID uuid.UUID) error {
	if err := f.requestService.MarkDelivered(ctx, requestID); err != nil {
		return fmt.Errorf("mark request %s delivered: %w", requestID, err)
	}
	return nil
}
