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

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  自分の記事のタイトルと本文を更新します
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "記事ID"
// @Param        article body articleRequest true "更新内容"
// @Success      200 {object} respond.Envelope{data=DTO} "更新された記事"
// @Failure      400 {object} respond.Envelope "リクエストが不正"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      403 {object} respond.Envelope "他人の記事"
// @Failure      404 {object} respond.Envelope "記事が存在しない"
// @Failure      422 {object} respond.Envelope "バリデーションエラー"
// @Failure      500 {object} respond.Envelope "更新失敗"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.CheckOwner(r.Context(), p.UserID, id); err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			auth.RecordForbiddenAttempt(r.Method)
		}
		respond.Fail(w, r, err, "Failed to update article")
		return
	}

	var req articleRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Fail(w, r, err, "")
		return
	}

	art, err := h.Svc.Update(r.Context(), p.UserID, artUC.UpdateInput{ID: id, Title: req.Title, Content: req.Content})
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			auth.RecordForbiddenAttempt(r.Method)
		}
		respond.Fail(w, r, err, "Failed to update article")
		return
	}

	metrics.RecordArticleMutation(metrics.OpUpdate)
	respond.OK(w, http.StatusOK, NewDTO(*art), "Article updated successfully")
}
