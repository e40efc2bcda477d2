package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	authservice "article-api/internal/service/auth"
)

type LoginHandler struct{ Svc Service }

// ServeHTTP ログイン
// @Summary      JWT トークン取得
// @Description  メールアドレスとパスワードで認証し、JWT トークンを発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body loginRequest true "ログイン情報"
// @Success      200 {object} respond.Envelope{data=tokenResponse} "JWT トークン"
// @Failure      400 {object} respond.Envelope "リクエストが不正"
// @Failure      401 {object} respond.Envelope "認証失敗"
// @Failure      500 {object} respond.Envelope "トークン生成失敗"
// @Router       /login [post]
func (h LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "login"
	start := time.Now()
	logger := logging.FromContext(r.Context())

	var req loginRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		observe(op, start, respond.StatusFor(err))
		respond.Fail(w, r, err, "")
		return
	}

	res, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			logger.Warn("authentication failed",
				slog.String("reason", "invalid_credentials"),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		}
		observe(op, start, respond.StatusFor(err))
		respond.Fail(w, r, err, "Could not create token")
		return
	}

	logger.Info("authentication successful",
		slog.Int64("user_id", res.User.ID),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	observe(op, start, http.StatusOK)

	user := NewUserDTO(res.User)
	respond.OK(w, http.StatusOK, tokenResponse{
		Token:     res.Token,
		User:      &user,
		ExpiresIn: res.ExpiresIn,
	}, "")
}

// observe records the outcome of an account operation.
func observe(op string, start time.Time, status int) {
	RecordAuthRequest(op, resultFor(status))
	RecordAuthDuration(op, time.Since(start).Seconds())
}

// signingFallback picks the 500 message: token signing failures get their own.
func signingFallback(err error, fallback string) string {
	if errors.Is(err, authservice.ErrTokenSigning) {
		return "Could not create token"
	}
	return fallback
}
