package auth

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/domain/entity"
	"article-api/internal/repository"
	authservice "article-api/internal/service/auth"
)

/* ───────── ヘルパ ───────── */

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func newMux(svc Service) *http.ServeMux {
	mux := http.NewServeMux()
	Register(mux, svc)
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	r := httptest.NewRequest(method, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), "body: %s", w.Body.String())
	return w, env
}

func annResult() *authservice.AuthResult {
	return &authservice.AuthResult{Token: "tok", User: annUser, ExpiresIn: 3600}
}

/* ─── 1. Register ─── */

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"created", `{"name":"Ann","email":"ann@example.com","password":"secret1","password_confirmation":"secret1"}`, nil, http.StatusCreated, ""},
		{"malformed body", `{"name":`, nil, http.StatusBadRequest, "invalid request body"},
		{"validation", `{}`, &entity.ValidationError{Field: "name", Message: "The name field is required."}, http.StatusUnprocessableEntity, "The name field is required."},
		{"duplicate race", `{}`, repository.ErrDuplicateEmail, http.StatusConflict, "email already exists"},
		{"store failure", `{}`, errStore, http.StatusInternalServerError, "User registration failed"},
		{"signing failure", `{}`, fmt.Errorf("%w: boom", authservice.ErrTokenSigning), http.StatusInternalServerError, "Could not create token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &stubService{result: annResult(), err: tt.err}
			if tt.err != nil {
				svc.result = nil
			}

			w, env := do(t, newMux(svc), http.MethodPost, "/register", tt.body, "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantError, env.Error)
			if tt.wantStatus != http.StatusCreated {
				assert.False(t, env.Success)
				return
			}

			assert.True(t, env.Success)
			assert.Equal(t, "secret1", svc.gotRegister.PasswordConfirmation)
			var data registerResponse
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, "tok", data.Token)
			assert.Equal(t, "ann@example.com", data.User.Email)
			assert.NotContains(t, w.Body.String(), "password")
			assert.NotContains(t, w.Body.String(), annUser.PasswordHash)
		})
	}
}

/* ─── 2. Login ─── */

func TestLoginHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{result: annResult()}
		w, env := do(t, newMux(svc), http.MethodPost, "/login", `{"email":"ann@example.com","password":"secret1"}`, "")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "ann@example.com", svc.gotEmail)

		var data tokenResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "tok", data.Token)
		assert.Equal(t, int64(3600), data.ExpiresIn)
		require.NotNil(t, data.User)
		assert.Equal(t, int64(1), data.User.ID)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		svc := &stubService{err: authservice.ErrInvalidCredentials}
		w, env := do(t, newMux(svc), http.MethodPost, "/login", `{"email":"ann@example.com","password":"nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", env.Error)
	})

	t.Run("server failure", func(t *testing.T) {
		svc := &stubService{err: errStore}
		w, env := do(t, newMux(svc), http.MethodPost, "/login", `{}`, "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Could not create token", env.Error)
	})
}

/* ─── 3. Logout / Refresh ─── */

func TestLogoutHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal()}
		w, env := do(t, newMux(svc), http.MethodPost, "/logout", "", "tok")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Successfully logged out", env.Message)
		assert.Equal(t, 1, svc.logouts)
	})

	t.Run("requires token", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal()}
		w, _ := do(t, newMux(svc), http.MethodPost, "/logout", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Zero(t, svc.logouts)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal(), err: errStore}
		w, env := do(t, newMux(svc), http.MethodPost, "/logout", "", "tok")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to logout, please try again", env.Error)
	})
}

func TestRefreshHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{result: &authservice.AuthResult{Token: "new", User: annUser, ExpiresIn: 3600}}
		w, env := do(t, newMux(svc), http.MethodPost, "/refresh", "", "old")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "old", svc.gotToken)
		var data tokenResponse
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "new", data.Token)
		assert.Equal(t, int64(3600), data.ExpiresIn)
	})

	t.Run("refresh window elapsed", func(t *testing.T) {
		svc := &stubService{err: authservice.ErrRefreshExpired}
		w, env := do(t, newMux(svc), http.MethodPost, "/refresh", "", "old")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Token can no longer be refreshed", env.Error)
	})
}

/* ─── 4. /user ─── */

func TestGetUserHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal(), user: annUser}
		w, env := do(t, newMux(svc), http.MethodGet, "/user", "", "tok")

		require.Equal(t, http.StatusOK, w.Code)
		var u UserDTO
		require.NoError(t, json.Unmarshal(env.Data, &u))
		assert.Equal(t, NewUserDTO(annUser), u)
	})

	t.Run("user gone", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal(), err: authservice.ErrUserNotFound}
		w, env := do(t, newMux(svc), http.MethodGet, "/user", "", "tok")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", env.Error)
	})

	t.Run("store failure", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal(), err: errStore}
		w, env := do(t, newMux(svc), http.MethodGet, "/user", "", "tok")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to fetch user profile", env.Error)
	})
}

func TestUpdateUserHandler(t *testing.T) {
	t.Run("persists", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal(), user: annUser}
		w, env := do(t, newMux(svc), http.MethodPut, "/user", `{"name":"Ann B","email":"annb@example.com"}`, "tok")

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Ann B", svc.gotProfile.Name)
		var u UserDTO
		require.NoError(t, json.Unmarshal(env.Data, &u))
		assert.Equal(t, "annb@example.com", u.Email)
	})

	t.Run("validation", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal(), err: &entity.ValidationError{Field: "email", Message: "The email has already been taken."}}
		w, env := do(t, newMux(svc), http.MethodPut, "/user", `{"name":"Ann","email":"bob@example.com"}`, "tok")
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "The email has already been taken.", env.Error)
	})

	t.Run("save failure", func(t *testing.T) {
		svc := &stubService{principal: annPrincipal(), err: errStore}
		w, env := do(t, newMux(svc), http.MethodPut, "/user", `{"name":"Ann","email":"ann@example.com"}`, "tok")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Failed to update user", env.Error)
	})
}

func TestMustPrincipal_WithoutMiddleware(t *testing.T) {
	w := httptest.NewRecorder()
	GetUserHandler{Svc: &stubService{}}.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/user", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
