package login_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"swiftship/internal/dto"
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
	var loginDTO dto.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&loginDTO)
	if err != nil {
		h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
			Success: false,
			Message: "Invalid JSON input",
		})
		return
	}

	user, authToken, err := h.service.Login(r.Context(), loginDTO.Email, loginDTO.Password)
	if err != nil {
		switch {
		case errors.Is(err, identity.ErrMissingRequiredFields):
			h.writeResponse(w, http.StatusBadRequest, dto.Envelope{
				Success: false,
				Message: "Email and password are required",
			})
		case errors.Is(err, identity.ErrInvalidCredentials):
			h.writeResponse(w, http.StatusUnauthorized, dto.Envelope{
				Success: false,
				Message: "Invalid email or password",
			})
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("login user")
			h.writeResponse(w, http.StatusInternalServerError, dto.Envelope{
				Success: false,
				Message: "An internal error occurred.",
			})
		}
		return
	}

	h.writeResponse(w, http.StatusOK, dto.Envelope{
		Success: true,
		Message: "Login successful",
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
