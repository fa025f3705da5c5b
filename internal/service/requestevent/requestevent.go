package requestevent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service applies request status events published by the restaurant
// ordering system onto the dispatch flows.
type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessStatusChange(ctx context.Context, requestID string, status string) error {
	if requestID == "" || status == "" {
		return ErrMissingEventFields
	}

	id, err := uuid.Parse(requestID)
	if err != nil {
		return fmt.Errorf("parse request id %q: %w", requestID, err)
	}

	executeFn, err := s.statusFactory.GetHandler(status)
	if err != nil {
		return err
	}

	if err := executeFn(ctx, id); err != nil {
		return err
	}

	return nil
}
