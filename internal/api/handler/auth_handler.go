package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"jobboard/internal/app/service"
	"jobboard/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.authService.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrConflict) {
			common.RespondWithError(w, http.StatusBadRequest, "User already exists")
			return
		}
		if errors.Is(err, common.ErrBadRequest) {
			common.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		log.Error().Err(err).Msg("registration failed")
		common.RespondWithError(w, http.StatusUnauthorized, "Registration failed, try again")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if common.HTTPStatusFromError(err) >= http.StatusInternalServerError {
			log.Error().Err(err).Msg("login failed")
		}
		common.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
