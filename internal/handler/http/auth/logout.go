package auth

import (
	"net/http"
	"time"

	"article-api/internal/handler/http/respond"
)

type LogoutHandler struct{ Svc Service }

// ServeHTTP ログアウト
// @Summary      ログアウト
// @Description  現在のトークンを失効させます
// @Tags         auth
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} respond.Envelope "ログアウト成功"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      500 {object} respond.Envelope "ログアウト失敗"
// @Router       /logout [post]
func (h LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "logout"
	start := time.Now()

	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	if err := h.Svc.Logout(r.Context(), p); err != nil {
		observe(op, start, respond.StatusFor(err))
		respond.Fail(w, r, err, "Failed to logout, please try again")
		return
	}

	observe(op, start, http.StatusOK)
	respond.OK(w, http.StatusOK, nil, "Successfully logged out")
}
