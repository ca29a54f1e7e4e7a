package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// writeJSON кодирует ответ в JSON с заданным статусом
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse представляет тело ошибки
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

// writeError отвечает JSON-ошибкой
func writeError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	writeJSON(w, logger, status, errorResponse{Error: message})
}

// writeFieldErrors отвечает ошибками валидации по полям
func writeFieldErrors(w http.ResponseWriter, logger *zap.Logger, fields map[string]string) {
	writeJSON(w, logger, http.StatusUnprocessableEntity, errorResponse{
		Error:  "validation failed",
		Fields: fields,
	})
}
