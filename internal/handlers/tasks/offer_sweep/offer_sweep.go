package offer_sweep

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}

type OfferSweep struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOfferSweep(log logger.Logger, service Service, interval time.Duration) *OfferSweep {
	return &OfferSweep{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OfferSweep) TTL() time.Duration {
	return o.interval
}

func (o *OfferSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	expired, err := o.service.SweepExpired(ctxWithTimeout, time.Now().UTC())

	if expired > 0 {
		o.log.With(
			logger.NewField("expired_offers", expired),
		).Info("offer sweep")
	}

	return err
}

func (o *OfferSweep) Info() string {
	return "offer sweep"
}
