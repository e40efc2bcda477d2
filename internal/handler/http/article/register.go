package article

import (
	"net/http"

	"article-api/internal/common/pagination"
	artUC "article-api/internal/usecase/article"
)

// Register registers all article routes with the given mux.
// Every route is wrapped in authn: reading articles also requires a token.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config, authn func(http.Handler) http.Handler) {
	mux.Handle("GET /articles", authn(ListHandler{Svc: svc, PaginationCfg: paginationCfg}))
	mux.Handle("GET /my-articles", authn(MineHandler{Svc: svc, PaginationCfg: paginationCfg}))
	mux.Handle("GET /articles/{id}", authn(GetHandler{svc}))

	mux.Handle("POST /articles", authn(CreateHandler{svc}))
	mux.Handle("PUT /articles/{id}", authn(UpdateHandler{svc}))
	mux.Handle("DELETE /articles/{id}", authn(DeleteHandler{svc}))
}
