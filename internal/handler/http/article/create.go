package article

import (
	"log/slog"
	"net/http"

	"article-api/internal/handler/http/auth"
	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/metrics"
	artUC "article-api/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  ログインユーザーを著者として新しい記事を作成します
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body articleRequest true "記事情報"
// @Success      201 {object} respond.Envelope{data=DTO} "作成された記事"
// @Failure      400 {object} respond.Envelope "リクエストが不正"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      422 {object} respond.Envelope "バリデーションエラー"
// @Failure      500 {object} respond.Envelope "作成失敗"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Token not provided")
		return
	}

	var req articleRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Fail(w, r, err, "")
		return
	}

	art, err := h.Svc.Create(r.Context(), p.UserID, artUC.CreateInput{Title: req.Title, Content: req.Content})
	if err != nil {
		respond.Fail(w, r, err, "Failed to create article")
		return
	}

	metrics.RecordArticleMutation(metrics.OpCreate)
	logging.FromContext(r.Context()).Info("article created", slog.Int64("article_id", art.Article.ID))
	respond.OK(w, http.StatusCreated, NewDTO(*art), "Article created successfully")
}
