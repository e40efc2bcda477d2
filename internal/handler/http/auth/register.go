package auth

import (
	"net/http"
)

// Register mounts the account routes on mux and returns the authentication
// middleware so other route groups can share it.
func Register(mux *http.ServeMux, svc Service) func(http.Handler) http.Handler {
	authn := Authn(svc)

	mux.Handle("POST /register", RegisterHandler{svc})
	mux.Handle("POST /login", LoginHandler{svc})
	mux.Handle("POST /refresh", RefreshHandler{svc})

	mux.Handle("POST /logout", authn(LogoutHandler{svc}))
	mux.Handle("GET /user", authn(GetUserHandler{svc}))
	mux.Handle("PUT /user", authn(UpdateUserHandler{svc}))

	return authn
}
