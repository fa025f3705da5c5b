package request_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"dispatch/internal/dto"
	"dispatch/internal/entities"
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
	var requestCreateDTO dto.RequestCreate
	err := json.NewDecoder(r.Body).Decode(&requestCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	restaurantID, err := uuid.Parse(requestCreateDTO.RestaurantID)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	origin := entities.GeoPoint{Lat: requestCreateDTO.Origin.Lat, Lon: requestCreateDTO.Origin.Lon}
	destination := entities.GeoPoint{Lat: requestCreateDTO.Destination.Lat, Lon: requestCreateDTO.Destination.Lon}
	requestModifyEntity := entities.DeliveryRequestModify{
		RestaurantID:       &restaurantID,
		Origin:             &origin,
		OriginAddress:      &requestCreateDTO.OriginAddress,
		Destination:        &destination,
		DestinationAddress: &requestCreateDTO.DestinationAddress,
		FeeCents:           &requestCreateDTO.FeeCents,
		Notes:              &requestCreateDTO.Notes,
	}

	created, err := h.service.CreateRequest(r.Context(), requestModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, request.ErrMissingRequiredFields),
			errors.Is(err, request.ErrInvalidLocation),
			errors.Is(err, request.ErrInvalidAddress),
			errors.Is(err, request.ErrInvalidFee):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromRequestEntity(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
