//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_test
package request

import (
	"context"
	"time"

	"github.com/google/uuid"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, requestModifyEntity entities.DeliveryRequestModify) (*entities.DeliveryRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)

	Cancel(ctx context.Context, id uuid.UUID, at time.Time) (*entities.DeliveryRequest, error)
	MarkInDelivery(ctx context.Context, id uuid.UUID) (bool, error)
	MarkDelivered(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
}

type OfferRepository interface {
	ListByRequest(ctx context.Context, requestID uuid.UUID) ([]entities.Offer, error)
	ExpireActive(ctx context.Context, requestID uuid.UUID, exclude *uuid.UUID, at time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
