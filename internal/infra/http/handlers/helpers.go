package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/handover-portal/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUsecaseError maps the engine's error taxonomy to HTTP statuses. Every
// error here is a rejected transition: the caller can always retry.
func writeUsecaseError(w http.ResponseWriter, err error) {
	code := usecase.ErrorCode(err)

	status := http.StatusInternalServerError
	switch code {
	case usecase.CodeInvalidCredentials, usecase.CodeIncorrectOTP:
		status = http.StatusUnauthorized
	case usecase.CodeWrongStage:
		status = http.StatusConflict
	case usecase.CodeMissingReference, usecase.CodeValidationError:
		status = http.StatusBadRequest
	case usecase.CodeDeliveryFailed:
		status = http.StatusBadGateway
	}

	if code == "" {
		code = "INTERNAL_ERROR"
	}
	writeErrorResponse(w, status, code, err.Error())
}
