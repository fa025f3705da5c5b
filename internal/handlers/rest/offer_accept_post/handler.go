package offer_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"dispatch/internal/dto"
	"dispatch/internal/service/assignment"
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
	var offerResponseDTO dto.OfferResponse
	err := json.NewDecoder(r.Body).Decode(&offerResponseDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offerID, err := uuid.Parse(offerResponseDTO.OfferID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	driverID, err := uuid.Parse(offerResponseDTO.DriverID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.AcceptOffer(r.Context(), offerID, driverID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOfferID),
			errors.Is(err, assignment.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOfferOwnership):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, assignment.ErrOfferAlreadyResponded),
			errors.Is(err, assignment.ErrRequestTaken):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, assignment.ErrOfferExpired):
			w.WriteHeader(http.StatusGone)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Assignment{
		Request: dto.FromRequestEntity(assignmentEntity.Request),
		Offer:   dto.FromOfferEntity(assignmentEntity.Offer),
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
