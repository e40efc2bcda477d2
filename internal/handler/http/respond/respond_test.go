package respond

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"article-api/internal/domain/entity"
	"article-api/internal/observability/logging"
)

func TestJSON(t *testing.T) {
	tests := map[string]struct {
		code int
		v    any
		body string
	}{
		"map": {http.StatusOK, map[string]string{"message": "Article API is running"}, `{"message":"Article API is running"}`},
		"struct": {http.StatusCreated, struct {
			ID int64 `json:"id"`
		}{ID: 7}, `{"id":7}`},
		"nil no body": {http.StatusNoContent, nil, ""},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			JSON(w, tt.code, tt.v)

			if w.Code != tt.code {
				t.Errorf("Code = %d, want %d", w.Code, tt.code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q", ct)
			}
			if got := strings.TrimSpace(w.Body.String()); got != tt.body {
				t.Errorf("Body = %s, want %s", got, tt.body)
			}
		})
	}
}

// An unencodable value still leaves the status line intact.
func TestJSON_Unencodable(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, func() {})

	if w.Code != http.StatusOK {
		t.Errorf("Code = %d, want 200", w.Code)
	}
}

func TestOK_Envelope(t *testing.T) {
	tests := []struct {
		name    string
		data    any
		message string
		want    string
	}{
		{"data only", map[string]int{"id": 1}, "", `{"success":true,"data":{"id":1}}`},
		{"message only", nil, "Successfully logged out", `{"success":true,"message":"Successfully logged out"}`},
		{"both", []int{1}, "Article created successfully", `{"success":true,"data":[1],"message":"Article created successfully"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			OK(w, http.StatusOK, tt.data, tt.message)
			if got := strings.TrimSpace(w.Body.String()); got != tt.want {
				t.Errorf("Body = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"invalid input", entity.NewError(entity.ErrInvalidInput, "invalid request body"), http.StatusBadRequest},
		{"validation", &entity.ValidationError{Field: "title", Message: "x"}, http.StatusUnprocessableEntity},
		{"wrapped validation", fmt.Errorf("create: %w", &entity.ValidationError{}), http.StatusUnprocessableEntity},
		{"unauthorized", entity.NewError(entity.ErrUnauthorized, "Invalid credentials"), http.StatusUnauthorized},
		{"forbidden", entity.NewError(entity.ErrForbidden, "no"), http.StatusForbidden},
		{"not found", fmt.Errorf("get: %w", entity.NewError(entity.ErrNotFound, "Article not found")), http.StatusNotFound},
		{"conflict", entity.NewError(entity.ErrConflict, "email already exists"), http.StatusConflict},
		{"unknown", errors.New("connection refused"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFor(tt.err); got != tt.want {
				t.Errorf("StatusFor() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFail(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback string
		wantCode int
		wantMsg  string
	}{
		{
			name:     "kind error uses its own message",
			err:      fmt.Errorf("get: %w", entity.NewError(entity.ErrNotFound, "Article not found")),
			fallback: "Failed to fetch article",
			wantCode: http.StatusNotFound,
			wantMsg:  "Article not found",
		},
		{
			name:     "validation error uses field message",
			err:      &entity.ValidationError{Field: "title", Message: "The title field is required."},
			wantCode: http.StatusUnprocessableEntity,
			wantMsg:  "The title field is required.",
		},
		{
			name:     "internal error uses fallback",
			err:      errors.New("pq: password=hunter2 rejected"),
			fallback: "Failed to create article",
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Failed to create article",
		},
		{
			name:     "internal error without fallback",
			err:      errors.New("boom"),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Internal Server Error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			Fail(w, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, tt.fallback)

			if w.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", w.Code, tt.wantCode)
			}
			var body Envelope
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body.Success {
				t.Error("success = true, want false")
			}
			if body.Error != tt.wantMsg {
				t.Errorf("error = %q, want %q", body.Error, tt.wantMsg)
			}
		})
	}
}

func TestFail_LogsSanitizedError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(logging.WithLogger(r.Context(), logger))

	w := httptest.NewRecorder()
	Fail(w, r, errors.New("dial postgres://app:topsecret@db:5432/x"), "Failed to fetch articles")

	out := buf.String()
	if strings.Contains(out, "topsecret") {
		t.Errorf("log leaks password: %s", out)
	}
	if !strings.Contains(out, "Failed to fetch articles") {
		t.Errorf("log misses user message: %s", out)
	}
	if strings.Contains(w.Body.String(), "postgres") {
		t.Errorf("response leaks internal error: %s", w.Body.String())
	}
}

func TestFail_NilError(t *testing.T) {
	w := httptest.NewRecorder()
	Fail(w, nil, nil, "x")
	if w.Body.Len() != 0 {
		t.Errorf("expected no body, got %q", w.Body.String())
	}
}
