package request_offers_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"dispatch/internal/dto"
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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	requestID, err := uuid.Parse(idStr)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	offers, err := h.service.ListOffers(r.Context(), requestID)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrRequestNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, request.ErrInvalidRequestID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OfferList{
		Offers: make([]dto.Offer, 0, len(offers)),
	}
	for i := range offers {
		response.Offers = append(response.Offers, dto.FromOfferEntity(&offers[i]))
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
