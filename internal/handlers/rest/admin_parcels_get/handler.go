package admin_parcels_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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
	var filter entities.ParcelFilter

	if statusStr := r.URL.Query().Get("status"); statusStr != "" {
		status := entities.ParcelStatusType(statusStr)
		filter.Status = &status
	}

	if senderIDStr := r.URL.Query().Get("sender_id"); senderIDStr != "" {
		senderID, err := strconv.ParseInt(senderIDStr, 10, 64)
		if err != nil {
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Invalid or missing sender ID",
			})
			return
		}
		filter.SenderID = &senderID
	}

	summaries, err := h.service.ListAll(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, query.ErrInvalidStatus):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Invalid status filter",
			})
		case errors.Is(err, query.ErrInvalidSenderID):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Invalid or missing sender ID",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list parcels")
			h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
				Success: false,
				Message: "An internal error occurred.",
			})
		}
		return
	}

	h.writeResponse(w, http.StatusOK, dto.Envelope{
		Success: true,
		Data:    toSummaryDTOs(summaries),
	})
}

func toSummaryDTOs(summaries []entities.ParcelSummary) []dto.ParcelSummary {
	summaryDTOs := make([]dto.ParcelSummary, len(summaries))
	for i, summary := range summaries {
		summaryDTOs[i] = dto.ParcelSummary{
			ID:              summary.ID,
			TrackingID:      summary.TrackingID,
			CreatedAt:       summary.CreatedAt,
			PickupAddress:   summary.PickupAddress,
			DeliveryAddress: summary.DeliveryAddress,
			Description:     summary.Description,
			Status:          summary.Status.String(),
			LastUpdated:     summary.LastUpdated,
		}
	}
	return summaryDTOs
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
