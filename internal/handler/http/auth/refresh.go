package auth

import (
	"net/http"
	"time"

	"article-api/internal/handler/http/respond"
)

type RefreshHandler struct{ Svc Service }

// ServeHTTP トークン更新
// @Summary      トークン更新
// @Description  リフレッシュ期間内のトークンを新しいトークンと交換します。古いトークンは失効します。
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} respond.Envelope{data=tokenResponse} "新しいトークン"
// @Failure      401 {object} respond.Envelope "トークンが無効・失効・期限切れ"
// @Failure      500 {object} respond.Envelope "サーバーエラー"
// @Router       /refresh [post]
func (h RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "refresh"
	start := time.Now()

	res, err := h.Svc.Refresh(r.Context(), BearerToken(r))
	if err != nil {
		observe(op, start, respond.StatusFor(err))
		respond.Fail(w, r, err, signingFallback(err, "Could not refresh token"))
		return
	}

	observe(op, start, http.StatusOK)
	respond.OK(w, http.StatusOK, tokenResponse{
		Token:     res.Token,
		ExpiresIn: res.ExpiresIn,
	}, "")
}
