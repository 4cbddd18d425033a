package parcels_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"swiftship/internal/dto"
	"swiftship/internal/entities"
	"swiftship/internal/pkg/middlewares/auth"
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
	senderID, ok := resolveSenderID(r)
	if !ok {
		h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: "Invalid or missing sender ID",
		})
		return
	}

	summaries, err := h.service.ListBySender(r.Context(), senderID)
	if err != nil {
		switch {
		case errors.Is(err, query.ErrInvalidSenderID):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Invalid or missing sender ID",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("list parcels by sender")
			h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
				Success: false,
				Message: "An internal error occurred.",
			})
		}
		return
	}

	message := "Parcels retrieved successfully"
	if len(summaries) == 0 {
		message = "No parcels found"
	}

	h.writeResponse(w, http.StatusOK, dto.Envelope{
		Success: true,
		Message: message,
		Data:    toSummaryDTOs(summaries),
	})
}

// resolveSenderID берет id отправителя из claims аутентифицированного
// пользователя; query-параметр sender_id оставлен для легаси-фронтенда,
// но для роли customer он игнорируется, чтобы нельзя было читать чужие
// посылки. Админ может смотреть любого отправителя.
func resolveSenderID(r *http.Request) (int64, bool) {
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok && claims.Role == entities.RoleCustomer {
		return claims.UserID, true
	}

	senderID, err := strconv.ParseInt(r.URL.Query().Get("sender_id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return senderID, true
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
