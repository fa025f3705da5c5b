//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=matching_test
package matching

import (
	"context"

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

type RequestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
	MarkProposed(ctx context.Context, id uuid.UUID) (bool, error)
	ListPending(ctx context.Context, limit int) ([]entities.DeliveryRequest, error)
}

type OfferRepository interface {
	Create(ctx context.Context, offerModifyEntity entities.OfferModify) (*entities.Offer, error)
}

// GeoIndex answers "which eligible drivers are within radius of point",
// distance-ascending and capped. It is maintained by the driver-profile
// subsystem; the matching engine only queries it.
type GeoIndex interface {
	FindNear(ctx context.Context, origin entities.GeoPoint, radiusMeters float64, limit int) ([]entities.DriverCandidate, error)
}
