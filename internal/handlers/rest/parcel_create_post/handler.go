package parcel_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftship/internal/dto"
	"swiftship/internal/entities"
	"swiftship/internal/pkg/middlewares/auth"
	"swiftship/internal/service/registry"
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
	var parcelCreateDTO dto.ParcelCreateRequest
	err := json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: "Invalid JSON input",
		})
		return
	}

	// sender_id из тела оставлен для легаси-фронтенда, но для роли
	// customer побеждает id из claims: нельзя создавать посылки от
	// чужого имени.
	senderID := parcelCreateDTO.SenderID
	if claims, ok := auth.ClaimsFromContext(r.Context()); ok && claims.Role == entities.RoleCustomer {
		senderID = claims.UserID
	}

	parcelModifyEntity := entities.ParcelModify{
		SenderID:        &senderID,
		ReceiverName:    &parcelCreateDTO.RecipientName,
		ReceiverPhone:   &parcelCreateDTO.RecipientPhone,
		PickupAddress:   &parcelCreateDTO.PickupAddress,
		DeliveryAddress: &parcelCreateDTO.DeliveryAddress,
		Weight:          &parcelCreateDTO.Weight,
		Dimensions:      parcelCreateDTO.Dimensions,
		Description:     parcelCreateDTO.Description,
	}

	parcelEntity, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrMissingRequiredFields),
			errors.Is(err, registry.ErrInvalidSenderID),
			errors.Is(err, registry.ErrInvalidReceiverName),
			errors.Is(err, registry.ErrInvalidReceiverPhone),
			errors.Is(err, registry.ErrInvalidAddress),
			errors.Is(err, registry.ErrInvalidWeight):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Invalid input data",
			})
		case errors.Is(err, registry.ErrSenderNotFound):
			h.writeResponse(w, http.StatusNotFound, dto.Envelope{
				Success: false,
				Message: "Sender not found",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("create parcel")
			h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
				Success: false,
				Message: "An internal error occurred.",
			})
		}
		return
	}

	h.writeResponse(w, http.StatusCreated, dto.Envelope{
		Success: true,
		Message: "Parcel created successfully",
		Data: dto.ParcelCreateResponse{
			ID:         parcelEntity.ID,
			TrackingID: parcelEntity.TrackingID,
			Status:     entities.DefaultParcelStatus.String(),
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
