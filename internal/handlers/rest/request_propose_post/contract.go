//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=request_propose_post_test
package request_propose_post

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
	ProposeToDrivers(ctx context.Context, requestID uuid.UUID) (*entities.MatchResult, error)
}
