package article

import (
	"errors"
	"net/http"

	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/auth"
	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/metrics"
	artUC "article-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  自分の記事を削除します
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} respond.Envelope "削除成功"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      403 {object} respond.Envelope "他人の記事"
// @Failure      404 {object} respond.Envelope "記事が存在しない"
// @Failure      500 {object} respond.Envelope "削除失敗"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Token not provided")
		return
	}

	id, err := pathutil.PathID(r, "id")
	if err != nil {
		respond.Fail(w, r, artUC.ErrArticleNotFound, "")
		return
	}

	if err := h.Svc.Delete(r.Context(), p.UserID, id); err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			auth.RecordForbiddenAttempt(r.Method)
		}
		respond.Fail(w, r, err, "Failed to delete article")
		return
	}

	metrics.RecordArticleMutation(metrics.OpDelete)
	respond.OK(w, http.StatusOK, nil, "Article deleted successfully")
}
