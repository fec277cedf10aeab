package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/nhalm/canonlog"
)

func renderJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func renderError(w http.ResponseWriter, r *http.Request, statusCode int, err error, message string) {
	canonlog.AddRequestError(r.Context(), err)
	renderJSON(w, statusCode, NewErrorResponse(sanitizeErrorMessage(message, statusCode)))
}

func sanitizeErrorMessage(message string, statusCode int) string {
	lowerMsg := strings.ToLower(message)

	if strings.Contains(lowerMsg, "sql") ||
		strings.Contains(lowerMsg, "database") ||
		strings.Contains(lowerMsg, "postgres") {
		if statusCode >= 500 {
			return "An internal error occurred"
		}
		return "Invalid request"
	}

	if statusCode >= 500 {
		return "An internal error occurred"
	}

	return message
}

func Success(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusOK, NewDataResponse(data))
}

func Created(w http.ResponseWriter, data any) {
	renderJSON(w, http.StatusCreated, NewDataResponse(data))
}

// ValidationFailed writes the 400 violations list.
func ValidationFailed(w http.ResponseWriter, r *http.Request, result ValidationResult) {
	canonlog.AddRequestFields(r.Context(), map[string]any{
		"validation_errors": len(result),
	})
	renderJSON(w, http.StatusBadRequest, NewValidationErrorResponse(result))
}

func RequestTooLarge(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusRequestEntityTooLarge, err, message)
}

func NotFound(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusNotFound, err, message)
}

func Forbidden(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusForbidden, err, message)
}

func InternalError(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusInternalServerError, err, message)
}

func ServiceUnavailable(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusServiceUnavailable, err, message)
}

func GatewayTimeout(w http.ResponseWriter, r *http.Request, err error, message string) {
	renderError(w, r, http.StatusGatewayTimeout, err, message)
}
