package respond

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"article-api/internal/domain/entity"
)

var (
	// ErrInvalidBody is returned for a body that is not a single JSON object.
	ErrInvalidBody = entity.NewError(entity.ErrInvalidInput, "invalid request body")

	// ErrBodyTooLarge is returned when the body exceeds the server's limit.
	ErrBodyTooLarge = entity.NewError(entity.ErrInvalidInput, "request body too large")
)

// DecodeJSON decodes the request body into v.
// An empty body decodes to the zero value so that missing fields surface
// as validation errors rather than a decode failure.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrBodyTooLarge
		}
		return ErrInvalidBody
	}
	if dec.More() {
		return ErrInvalidBody
	}
	return nil
}
