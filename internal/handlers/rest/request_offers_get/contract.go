//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_offers_get_test
package request_offers_get

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

type Service interface {
	ListOffers(ctx context.Context, requestID uuid.UUID) ([]entities.Offer, error)
}
