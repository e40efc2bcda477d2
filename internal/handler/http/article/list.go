package article

import (
	"log/slog"
	"net/http"
	"time"

	"article-api/internal/common/pagination"
	"article-api/internal/handler/http/auth"
	"article-api/internal/handler/http/respond"
	"article-api/internal/observability/logging"
	"article-api/internal/observability/metrics"
	artUC "article-api/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得（ページネーション対応）
// @Description  全ユーザーの記事を新しい順に 10 件ずつ取得します
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        page   query    int  false  "ページ番号 (1-based)" default(1) minimum(1)
// @Success      200 {object} respond.Envelope{data=pagination.Response[DTO]} "ページネーション付き記事一覧"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      500 {object} respond.Envelope "サーバーエラー"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	listPage(w, r, h.PaginationCfg, "/articles", "Failed to fetch articles",
		func(page int) (*artUC.PaginatedResult, error) {
			return h.Svc.List(r.Context(), page)
		})
}

type MineHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP 自分の記事一覧取得
// @Summary      自分の記事一覧取得
// @Description  ログインユーザーが書いた記事を新しい順に 10 件ずつ取得します
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        page   query    int  false  "ページ番号 (1-based)" default(1) minimum(1)
// @Success      200 {object} respond.Envelope{data=pagination.Response[DTO]} "ページネーション付き記事一覧"
// @Failure      401 {object} respond.Envelope "認証エラー"
// @Failure      500 {object} respond.Envelope "サーバーエラー"
// @Router       /my-articles [get]
func (h MineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respond.Error(w, http.StatusUnauthorized, "Token not provided")
		return
	}
	listPage(w, r, h.PaginationCfg, "/my-articles", "Failed to fetch your articles",
		func(page int) (*artUC.PaginatedResult, error) {
			return h.Svc.ListByAuthor(r.Context(), p.UserID, page)
		})
}

func listPage(
	w http.ResponseWriter,
	r *http.Request,
	cfg pagination.Config,
	endpoint, fallback string,
	fetch func(page int) (*artUC.PaginatedResult, error),
) {
	start := time.Now()
	logger := logging.FromContext(r.Context())

	params := pagination.ParseQueryParams(r, cfg)

	result, err := fetch(params.Page)
	if err != nil {
		logger.Error("failed to list articles",
			slog.String("endpoint", endpoint),
			slog.Int("page", params.Page),
			slog.String("error", respond.SanitizeError(err)))
		pagination.Observe(logger, endpoint, params, 0, http.StatusInternalServerError, time.Since(start))
		respond.Fail(w, r, err, fallback)
		return
	}

	dtos := make([]DTO, 0, len(result.Data))
	for _, item := range result.Data {
		dtos = append(dtos, NewDTO(item))
	}

	if endpoint == "/articles" {
		metrics.UpdateArticlesTotal(result.Pagination.Total)
	}
	pagination.Observe(logger, endpoint, params, len(dtos), http.StatusOK, time.Since(start))

	respond.OK(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination), "")
}
