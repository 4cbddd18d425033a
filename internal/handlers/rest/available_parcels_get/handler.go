package available_parcels_get

import (
	"encoding/json"
	"net/http"

	"swiftship/internal/dto"
	"swiftship/internal/entities"
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
	summaries, err := h.service.ListAvailable(r.Context())
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("list available parcels")
		h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
			Success: false,
			Message: "An internal error occurred.",
		})
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
