package request_matching

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	MatchPending(ctx context.Context) (int, error)
}

type RequestMatching struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewRequestMatching(log logger.Logger, service Service, interval time.Duration) *RequestMatching {
	return &RequestMatching{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *RequestMatching) TTL() time.Duration {
	return r.interval
}

func (r *RequestMatching) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	matched, err := r.service.MatchPending(ctxWithTimeout)

	if matched > 0 {
		r.log.With(
			logger.NewField("matched_requests", matched),
		).Info("pending request matching")
	}

	return err
}

func (r *RequestMatching) Info() string {
	return "pending request matching"
}
