package request_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"

	"dispatch/internal/service/requestevent"
	"dispatch/pkg/logger"
)

type statusChangedEvent struct {
	RequestID string `json:"request_id"`
	Status    string `json:"status"`
}

type Handler struct {
	eventService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, eventService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		eventService:             eventService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("request.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Session closed on rebalance or consumer group stop.
			h.log.Info("request.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing handles a single Kafka message. It returns true when
// ConsumeClaim must stop (context cancelled), false to keep consuming.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("request.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("request", event.RequestID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("request.status.changed processing")

	err = h.eventService.ProcessStatusChange(ctx, event.RequestID, event.Status)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, requestevent.ErrUndefinedStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler unknown status for request")

		case errors.Is(err, requestevent.ErrMissingEventFields):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler incomplete event")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("request.status.changed handler failed to process request")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("request.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
