package offer_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"dispatch/internal/dto"
	"dispatch/internal/service/assignment"
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

	err = h.service.RejectOffer(r.Context(), offerID, driverID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOfferID),
			errors.Is(err, assignment.ErrInvalidDriverID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrOfferNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrOfferOwnership):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, assignment.ErrOfferAlreadyResponded):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
