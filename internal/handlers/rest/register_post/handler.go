package register_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftship/internal/dto"
	"swiftship/internal/entities"
	"swiftship/internal/service/identity"
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
	var registerDTO dto.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&registerDTO)
	if err != nil {
		h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: "Invalid JSON input",
		})
		return
	}

	var role *entities.UserRole
	if registerDTO.Role != nil {
		roleValue := entities.UserRole(*registerDTO.Role)
		role = &roleValue
	}

	user, authToken, err := h.service.Register(r.Context(), registerDTO.Name, registerDTO.Email, registerDTO.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrMissingRequiredFields),
			errors.Is(err, identity.ErrInvalidName),
			errors.Is(err, identity.ErrInvalidEmail),
			errors.Is(err, identity.ErrInvalidPassword),
			errors.Is(err, identity.ErrInvalidRole):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Invalid input data",
			})
		case errors.Is(err, identity.ErrEmailTaken):
			h.writeResponse(w, http.StatusConflict, dto.Envelope{
				Success: false,
				Message: "Email already registered",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("register user")
			h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
				Success: false,
				Message: "An internal error occurred.",
			})
		}
		return
	}

	h.writeResponse(w, http.StatusCreated, dto.Envelope{
		Success: true,
		Message: "Registration successful",
		Data: dto.AuthResponse{
			Token: authToken,
			User: dto.User{
				ID:    user.ID,
				Name:  user.Name,
				Email: user.Email,
				Role:  user.Role.String(),
			},
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
