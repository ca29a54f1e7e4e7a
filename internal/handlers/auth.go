package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mtw/paperstore/internal/service"
	"go.uber.org/zap"
)

// AuthService определяет проверку пасскода дашборда.
type AuthService interface {
	Login(passcode string) (string, error)
}

type AuthHandler struct {
	authService AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

type loginRequest struct {
	Passcode string `json:"passcode"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login проверяет пасскод дашборда и выдает токен сессии
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.authService.Login(req.Passcode)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPasscode) {
			writeError(w, h.logger, http.StatusUnauthorized, "Invalid passcode")
			return
		}
		h.logger.Error("failed to login", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, loginResponse{Token: token})
}
