//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_get_test
package request_get

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
	GetRequest(ctx context.Context, id uuid.UUID) (*entities.DeliveryRequest, error)
}
