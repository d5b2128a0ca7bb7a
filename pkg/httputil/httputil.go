// Package httputil provides the JSON response envelope and error writers
// shared by every HTTP handler in the service.
package httputil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/hellospace/storefront/pkg/apperr"
	"github.com/hellospace/storefront/pkg/logger"
	"github.com/hellospace/storefront/pkg/validate"
)

// Envelope is the standard JSON response body: exactly one of Data or Error.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failure in the standard response format.
type ErrorBody struct {
	Code      string            `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// WriteJSON writes v as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; an encode failure here cannot be reported.
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success envelope.
func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Envelope{Data: data})
}

// WriteError maps err to the standard error envelope. Internal errors are
// logged with the request-scoped logger and reported without detail.
func WriteError(w http.ResponseWriter, r *http.Request, err error, fallback *slog.Logger) {
	requestID := logger.CorrelationID(r.Context())

	var fieldErrs *validate.FieldErrors
	if errors.As(err, &fieldErrs) {
		WriteJSON(w, http.StatusBadRequest, Envelope{
			Error: &ErrorBody{
				Code:      "VALIDATION_ERROR",
				Message:   "request validation failed",
				Fields:    fieldErrs.Fields(),
				RequestID: requestID,
			},
		})
		return
	}

	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		WriteJSON(w, appErr.Status, Envelope{
			Error: &ErrorBody{Code: appErr.Code, Message: appErr.Message, RequestID: requestID},
		})
		return
	}

	status := apperr.StatusOf(err)
	code := "INTERNAL_ERROR"
	message := "an internal error occurred"

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		code, message = "NOT_FOUND", "resource not found"
	case errors.Is(err, apperr.ErrInvalidInput):
		code, message = "INVALID_INPUT", err.Error()
	case errors.Is(err, apperr.ErrConflict):
		code, message = "CONFLICT", err.Error()
	}

	if status == http.StatusInternalServerError {
		l := logger.FromContext(r.Context())
		if l == slog.Default() && fallback != nil {
			l = fallback
		}
		l.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	}

	WriteJSON(w, status, Envelope{
		Error: &ErrorBody{Code: code, Message: message, RequestID: requestID},
	})
}

// DecodeValid decodes the request body into dst and validates it.
func DecodeValid(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.InvalidInput("invalid request body: " + err.Error())
	}
	return validate.Struct(dst)
}
