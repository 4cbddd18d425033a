package status_update_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftship/internal/dto"
	"swiftship/internal/entities"
	"swiftship/internal/service/ledger"
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
	var statusUpdateDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: "Invalid JSON input",
		})
		return
	}

	description := ""
	if statusUpdateDTO.Description != nil {
		description = *statusUpdateDTO.Description
	}

	event, err := h.service.AppendEventByTrackingID(
		r.Context(),
		statusUpdateDTO.TrackingID,
		entities.ParcelStatusType(statusUpdateDTO.Status),
		statusUpdateDTO.Location,
		description,
	)
	if err != nil {
		switch {
		case errors.Is(err, ledger.ErrInvalidTrackingID),
			errors.Is(err, ledger.ErrInvalidStatus),
			errors.Is(err, ledger.ErrInvalidLocation):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Invalid input data",
			})
		case errors.Is(err, ledger.ErrParcelNotFound):
			h.writeResponse(w, http.StatusNotFound, dto.Envelope{
				Success: false,
				Message: "Parcel not found",
			})
		case errors.Is(err, ledger.ErrIllegalTransition):
			h.writeResponse(w, http.StatusConflict, dto.Envelope{
				Success: false,
				Message: "Status transition not allowed",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("update parcel status")
			h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
				Success: false,
				Message: "An internal error occurred.",
			})
		}
		return
	}

	h.writeResponse(w, http.StatusCreated, dto.Envelope{
		Success: true,
		Message: "Status updated successfully",
		Data: dto.StatusUpdateResponse{
			TrackingID: statusUpdateDTO.TrackingID,
			Status:     event.Status.String(),
			Location:   event.Location,
			Timestamp:  event.Timestamp,
		},
	})
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
