package auth

import (
	"log/slog"
	"net/http"
	"time"

	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/metrics"
	authservice "article-api/internal/service/auth"
)

type RegisterHandler struct{ Svc Service }

// ServeHTTP ユーザー登録
// @Summary      ユーザー登録
// @Description  新しいユーザーを作成し、JWT トークンを発行します
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body registerRequest true "登録情報"
// @Success      201 {object} respond.Envelope{data=registerResponse} "登録成功"
// @Failure      400 {object} respond.Envelope "リクエストが不正"
// @Failure      409 {object} respond.Envelope "メールアドレス重複"
// @Failure      422 {object} respond.Envelope "バリデーションエラー"
// @Failure      500 {object} respond.Envelope "登録失敗"
// @Router       /register [post]
func (h RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "register"
	start := time.Now()
	logger := logging.FromContext(r.Context())

	var req registerRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		observe(op, start, respond.StatusFor(err))
		respond.Fail(w, r, err, "")
		return
	}

	res, err := h.Svc.Register(r.Context(), authservice.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		observe(op, start, respond.StatusFor(err))
		respond.Fail(w, r, err, signingFallback(err, "User registration failed"))
		return
	}

	metrics.RecordUserRegistered()
	logger.Info("user registered", slog.Int64("user_id", res.User.ID))
	observe(op, start, http.StatusCreated)
	respond.OK(w, http.StatusCreated, registerResponse{
		Token: res.Token,
		User:  NewUserDTO(res.User),
	}, "")
}
