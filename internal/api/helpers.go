package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const (
	errInternalText  = "Error interno del servidor"
	errBadBodyText   = "Cuerpo de la solicitud inválido"
	errBadParamsText = "Parámetros de la solicitud inválidos"
	errForbiddenText = "Permisos insuficientes"
)

type ResponseError struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	Error         string   `json:"error,omitempty"`
	RequiredRoles []string `json:"requiredRoles,omitempty"`
	CurrentRole   string   `json:"currentRole,omitempty"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	errText := ""
	if err != nil {
		errText = err.Error()
	}

	slog.ErrorContext(ctx, msg, "error", errText, "http_code", code)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err = json.NewEncoder(w).Encode(ResponseError{
		Message: msg,
		Error:   errText,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode error response",
			"error", err.Error(),
			"http_code", http.StatusInternalServerError)
	}
}

// SendForbidden answers a denied request with the roles that would have
// been accepted, so the client can explain the denial.
func SendForbidden(ctx context.Context, w http.ResponseWriter, requiredRoles []string, currentRole string) {
	slog.WarnContext(ctx, "access denied",
		"required_roles", requiredRoles,
		"current_role", currentRole,
		"http_code", http.StatusForbidden)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusForbidden)

	err := json.NewEncoder(w).Encode(ResponseError{
		Message:       errForbiddenText,
		RequiredRoles: requiredRoles,
		CurrentRole:   currentRole,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to encode error response",
			"error", err.Error(),
			"http_code", http.StatusInternalServerError)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}
}
