package sweeper

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const sweepBatchSize = 100

type Sweeper struct {
	offers OfferRepository
	log    handlerLogger
}

func New(log handlerLogger, offers OfferRepository) *Sweeper {
	return &Sweeper{
		offers: offers,
		log:    log.With(),
	}
}

// SweepExpired drives every SENT offer whose deadline passed to EXPIRED.
// Each offer is moved by its own conditional update, so a race against a
// concurrent accept is settled by whichever transition lands first; the
// loser is a no-op. Request state is never touched: a request left with
// no live offers stays pending/proposed and gets re-proposed by the
// matching task. Idempotent and safe to run concurrently with itself.
func (s *Sweeper) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	var total int64

	for {
		due, err := s.offers.ListExpirable(ctx, now, sweepBatchSize)
		if err != nil {
			return total, fmt.Errorf("list expirable offers: %w", err)
		}
		if len(due) == 0 {
			return total, nil
		}

		progressed := false
		for _, offerEntity := range due {
			expired, err := s.offers.Transition(ctx, offerEntity.ID, entities.OfferSent, entities.OfferExpired, now)
			if err != nil {
				s.log.With(
					logger.NewField("offer", offerEntity.ID),
					logger.NewField("error", err),
				).Error("expire offer")
				continue
			}
			// A false result means an accept/reject landed first; fine.
			if expired {
				total++
			}
			progressed = true
		}

		// Every transition faulted: bail out instead of spinning on the
		// same batch until the next tick.
		if !progressed || len(due) < sweepBatchSize {
			return total, nil
		}
	}
}
