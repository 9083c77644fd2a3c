package router

import (
	"net/http"

	"authd/app/controllers"
	"authd/app/middleware"
	"authd/app/policy"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, adminCtrl *controllers.AdminController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()
	// public
	mux.HandleFunc("/ping", httpCtrl.Ping)
	mux.HandleFunc("/register", authCtrl.Register)
	mux.HandleFunc("/login", authCtrl.Login)

	// bearer-protected
	mux.Handle("/refresh", mw.RequireAuth(http.HandlerFunc(authCtrl.Refresh)))
	mux.Handle("/me", mw.RequireAuth(http.HandlerFunc(authCtrl.Me)))

	// admin-only
	mux.Handle("/admin/users", mw.RequirePolicy(policy.Admin(), http.HandlerFunc(adminCtrl.ListAccounts)))

	return mux
}
