package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を著者情報付きで取得します
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} respond.Envelope{data=DTO} "記事詳細"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      404 {object} respond.Envelope "記事が存在しない"
// @Failure      500 {object} respond.Envelope "サーバーエラー"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Fail(w, r, artUC.ErrArticleNotFound, "")
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		respond.Fail(w, r, err, "Failed to fetch article")
		return
	}
	respond.OK(w, http.StatusOK, NewDTO(*art), "")
}
