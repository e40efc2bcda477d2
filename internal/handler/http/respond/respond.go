// Package respond writes the API's JSON envelope and maps domain errors to
// HTTP status codes. Internal error details are logged, never returned.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"article-api/internal/domain/entity"
	"article-api/internal/observability/logging"
)

// Envelope is the shape of every API response body.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Log the error but cannot send error response as headers already sent
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// OK writes a success envelope. Empty message and nil data are omitted.
func OK(w http.ResponseWriter, code int, data any, message string) {
	JSON(w, code, Envelope{Success: true, Data: data, Message: message})
}

// Error writes a failure envelope with msg as the error text.
func Error(w http.ResponseWriter, code int, msg string) {
	JSON(w, code, Envelope{Success: false, Error: msg})
}

// StatusFor maps an error to its HTTP status by kind.
// Errors without a known kind are 500.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, entity.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrValidationFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, entity.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, entity.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes err as a failure envelope.
// Client errors carry their own message. For server errors the fallback
// message is written and the sanitized error is logged with the request's logger.
func Fail(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if err == nil {
		return
	}

	code := StatusFor(err)
	if code >= http.StatusInternalServerError {
		// 内部エラーはログに出力し、汎用メッセージを返す
		logger := slog.Default()
		if r != nil {
			logger = logging.FromContext(r.Context())
		}
		logger.Error("internal server error",
			slog.Int("code", code),
			slog.String("user_message", fallback),
			slog.String("error", SanitizeError(err)))
		if fallback == "" {
			fallback = http.StatusText(code)
		}
		Error(w, code, fallback)
		return
	}

	Error(w, code, clientMessage(err, code))
}

func clientMessage(err error, code int) string {
	var ve *entity.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ke *entity.KindError
	if errors.As(err, &ke) {
		return ke.Msg
	}
	return http.StatusText(code)
}
