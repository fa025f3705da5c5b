//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sweeper_test
package sweeper

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
	ListExpirable(ctx context.Context, now time.Time, limit int) ([]entities.Offer, error)
	Transition(ctx context.Context, id uuid.UUID, from, to entities.OfferStatusType, respondedAt time.Time) (bool, error)
}
