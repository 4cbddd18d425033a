package parcel_track_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftship/internal/dto"
	"swiftship/internal/entities"
	"swiftship/internal/service/query"
	"swiftship/pkg/logger"
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
	trackingID := r.URL.Query().Get("tracking_id")
	if trackingID == "" {
		h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: "Tracking ID is required",
		})
		return
	}

	detail, err := h.service.GetByTrackingID(r.Context(), trackingID)
	if err != nil {
		switch {
		case errors.Is(err, query.ErrInvalidTrackingID):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Tracking ID is required",
			})
		case errors.Is(err, query.ErrParcelNotFound):
			h.writeResponse(w, http.StatusNotFound, dto.Envelope{
				Success: false,
				Message: "Parcel not found",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("track parcel")
			h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
				Success: false,
				Message: "An internal error occurred.",
			})
		}
		return
	}

	h.writeResponse(w, http.StatusOK, dto.Envelope{
		Success: true,
		Data: dto.ParcelDetail{
			TrackingID:      detail.Parcel.TrackingID,
			Status:          detail.Status.String(),
			PickupAddress:   detail.Parcel.PickupAddress,
			DeliveryAddress: detail.Parcel.DeliveryAddress,
			Description:     detail.Parcel.Description,
			LastUpdated:     detail.LastUpdated,
			Events:          toEventDTOs(detail.Events),
		},
	})
}

func toEventDTOs(events []entities.TrackingEvent) []dto.TrackingEvent {
	eventDTOs := make([]dto.TrackingEvent, len(events))
	for i, event := range events {
		eventDTOs[i] = dto.TrackingEvent{
			ID:          event.ID,
			Status:      event.Status.String(),
			Location:    event.Location,
			Timestamp:   event.Timestamp,
			Description: event.Description,
		}
	}
	return eventDTOs
}

func (h *Handler) writeResponse(w http.ResponseWriter, status int, response dto.Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
