package request_propose_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"dispatch/internal/dto"
	"dispatch/internal/service/matching"
	"dispatch/internal/service/request"
	"dispatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	requestID, err := uuid.Parse(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := h.service.ProposeToDrivers(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, matching.ErrInvalidRequestID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, request.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, matching.ErrRequestNotPending):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.MatchResult{
		RequestID:     result.RequestID.String(),
		OffersCreated: result.OffersCreated,
		RadiusMeters:  result.RadiusMeters,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
