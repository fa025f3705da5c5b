//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OfferRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Offer, error)
	Transition(ctx context.Context, id uuid.UUID, from, to entities.OfferStatusType, respondedAt time.Time) (bool, error)
	ExpireActive(ctx context.Context, requestID uuid.UUID, exclude *uuid.UUID, at time.Time) (int64, error)
}

type RequestRepository interface {
	AssignDriver(ctx context.Context, id, driverID uuid.UUID, at time.Time) (*entities.DeliveryRequest, error)
}
