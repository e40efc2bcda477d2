package auth

import (
	"net/http"

	"article-api/internal/handler/http/respond"
	authservice "article-api/internal/service/auth"
)

type GetUserHandler struct{ Svc Service }

// ServeHTTP ログインユーザー取得
// @Summary      ログインユーザー取得
// @Tags         user
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} respond.Envelope{data=UserDTO}
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      404 {object} respond.Envelope "ユーザーが存在しない"
// @Failure      500 {object} respond.Envelope "サーバーエラー"
// @Router       /user [get]
func (h GetUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	u, err := h.Svc.CurrentUser(r.Context(), p)
	if err != nil {
		respond.Fail(w, r, err, "Failed to fetch user profile")
		return
	}
	respond.OK(w, http.StatusOK, NewUserDTO(u), "")
}

type UpdateUserHandler struct{ Svc Service }

// ServeHTTP ログインユーザー更新
// @Summary      ログインユーザー更新
// @Description  名前とメールアドレスを更新します
// @Tags         user
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body profileRequest true "プロフィール"
// @Success      200 {object} respond.Envelope{data=UserDTO}
// @Failure      400 {object} respond.Envelope "リクエストが不正"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      404 {object} respond.Envelope "ユーザーが存在しない"
// @Failure      409 {object} respond.Envelope "メールアドレス重複"
// @Failure      422 {object} respond.Envelope "バリデーションエラー"
// @Failure      500 {object} respond.Envelope "更新失敗"
// @Router       /user [put]
func (h UpdateUserHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := mustPrincipal(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Fail(w, r, err, "")
		return
	}

	u, err := h.Svc.UpdateProfile(r.Context(), p, authservice.ProfileInput{Name: req.Name, Email: req.Email})
	if err != nil {
		respond.Fail(w, r, err, "Failed to update user")
		return
	}
	respond.OK(w, http.StatusOK, NewUserDTO(u), "")
}
